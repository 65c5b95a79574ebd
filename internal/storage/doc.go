// Package storage persists scraped data as JSON files under a data directory.
//
// Each scraped date gets its own games file (games_YYYY-MM-DD.json) and the
// conference-membership index lives in conference_history.json. Files are
// plain indented JSON so they stay inspectable and diffable.
package storage
