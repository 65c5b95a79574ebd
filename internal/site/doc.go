// Package site renders the accumulated scrape data into a static HTML
// dashboard: an index of tracked dates, one page of box scores per date, and
// a teams page annotated with each team's conference for the season.
package site
