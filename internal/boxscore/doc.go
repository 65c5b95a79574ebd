// Package boxscore scrapes daily college-basketball scoreboards and the box
// scores they link to.
//
// A scoreboard page yields one Game per matchup (teams, final score, link to
// the box score); the linked page adds per-player stat lines. Games carry a
// deterministic SHA1-based ID derived from the date and team names so repeat
// scrapes of the same day dedupe cleanly.
package boxscore
