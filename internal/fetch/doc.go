// Package fetch provides the shared rate-limited page fetcher used by every
// scraper in the toolkit.
//
// Public sports-statistics sites ban aggressive clients, so the fetcher
// enforces a minimum delay between requests and retries transient failures
// (network errors, 429s, 5xx responses) with exponential backoff. Client
// errors other than 429 are permanent and not retried.
package fetch
