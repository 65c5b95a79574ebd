// Package cli wires the hooptrack subcommands: scraping daily games,
// harvesting conference membership, resolving a team's conference for a
// season, generating the static dashboard, and running on a schedule.
package cli
