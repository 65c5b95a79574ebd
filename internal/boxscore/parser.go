package boxscore

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseScoreboard extracts completed games from a daily scoreboard page.
// Each game summary block lists the away team first, then the home team, with
// final scores and a link to the full box score.
func ParseScoreboard(doc *goquery.Document, date, sourceURL string) []*Game {
	games := make([]*Game, 0)

	doc.Find("div.game_summary").Each(func(i int, sel *goquery.Selection) {
		rows := sel.Find("table.teams tr")
		if rows.Length() < 2 {
			return
		}

		away, awayScore, awayOK := parseTeamRow(rows.Eq(0))
		home, homeScore, homeOK := parseTeamRow(rows.Eq(1))
		if !awayOK || !homeOK {
			return
		}

		game := NewGame(date, away, home, awayScore, homeScore, sourceURL)
		if href, exists := sel.Find("td.gamelink a, p.links a").First().Attr("href"); exists {
			game.BoxScoreURL = href
		}
		games = append(games, game)
	})

	// Repeat scrapes and duplicated summary blocks collapse to one game.
	seen := make(map[string]bool)
	unique := make([]*Game, 0, len(games))
	for _, g := range games {
		if !seen[g.ID] {
			seen[g.ID] = true
			unique = append(unique, g)
		}
	}
	return unique
}

// parseTeamRow pulls a team name and final score out of one scoreboard row.
func parseTeamRow(row *goquery.Selection) (string, int, bool) {
	name := strings.TrimSpace(row.Find("td a").First().Text())
	if name == "" {
		name = strings.TrimSpace(row.Find("td").First().Text())
	}
	if name == "" {
		return "", 0, false
	}

	scoreText := strings.TrimSpace(row.Find("td.right, td.score").First().Text())
	score, err := strconv.Atoi(scoreText)
	if err != nil {
		return "", 0, false
	}
	return name, score, true
}

// ParseBoxScore fills a game's player lines from its box score page. Stat
// tables appear in scoreboard order: away team first, home team second. Rows
// that fail to parse (header repeats, DNP rows) are skipped.
func ParseBoxScore(doc *goquery.Document, game *Game) {
	tables := doc.Find("table.stats_table")
	if tables.Length() == 0 {
		return
	}

	game.AwayPlayers = parsePlayerTable(tables.Eq(0))
	if tables.Length() > 1 {
		game.HomePlayers = parsePlayerTable(tables.Eq(1))
	}
}

// parsePlayerTable extracts player stat rows from one team's table.
func parsePlayerTable(table *goquery.Selection) []PlayerLine {
	lines := make([]PlayerLine, 0)
	table.Find("tbody tr").Each(func(i int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find("[data-stat=player]").First().Text())
		if name == "" || strings.EqualFold(name, "Reserves") {
			return
		}
		minutes, ok := statInt(row, "mp")
		if !ok {
			// Rows without minutes are DNPs or totals.
			return
		}
		points, _ := statInt(row, "pts")
		rebounds, _ := statInt(row, "trb")
		assists, _ := statInt(row, "ast")
		lines = append(lines, PlayerLine{
			Name:     name,
			Minutes:  minutes,
			Points:   points,
			Rebounds: rebounds,
			Assists:  assists,
		})
	})
	return lines
}

// statInt reads one data-stat cell as an integer.
func statInt(row *goquery.Selection, stat string) (int, bool) {
	text := strings.TrimSpace(row.Find("[data-stat=" + stat + "]").First().Text())
	if text == "" {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}
