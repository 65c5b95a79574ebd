package boxscore

import (
	"crypto/sha1"
	"fmt"
	"time"
)

// DateLayout is the wire and file-name form of a game date.
const DateLayout = "2006-01-02"

// PlayerLine is one player's row from a box score table.
type PlayerLine struct {
	Name     string `json:"name"`
	Minutes  int    `json:"minutes"`
	Points   int    `json:"points"`
	Rebounds int    `json:"rebounds"`
	Assists  int    `json:"assists"`
}

// Game is a single matchup scraped from a daily scoreboard, optionally
// enriched with player lines from its box score page.
type Game struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"` // DateLayout
	AwayTeam    string       `json:"away_team"`
	HomeTeam    string       `json:"home_team"`
	AwayScore   int          `json:"away_score"`
	HomeScore   int          `json:"home_score"`
	AwayPlayers []PlayerLine `json:"away_players,omitempty"`
	HomePlayers []PlayerLine `json:"home_players,omitempty"`
	BoxScoreURL string       `json:"box_score_url,omitempty"`
	SourceURL   string       `json:"source_url"`
	FetchedAt   time.Time    `json:"fetched_at"`
}

// GenerateID creates a deterministic ID for a game from its stable fields.
func GenerateID(date, away, home string) string {
	h := sha1.New()
	h.Write([]byte(date + "|" + away + "|" + home))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// NewGame creates a Game with its ID and FetchedAt populated.
func NewGame(date, away, home string, awayScore, homeScore int, sourceURL string) *Game {
	return &Game{
		ID:        GenerateID(date, away, home),
		Date:      date,
		AwayTeam:  away,
		HomeTeam:  home,
		AwayScore: awayScore,
		HomeScore: homeScore,
		SourceURL: sourceURL,
		FetchedAt: time.Now().UTC(),
	}
}

// Winner returns the winning team name, or "" for a tie (bad scrape).
func (g *Game) Winner() string {
	switch {
	case g.HomeScore > g.AwayScore:
		return g.HomeTeam
	case g.AwayScore > g.HomeScore:
		return g.AwayTeam
	}
	return ""
}

// SeasonYear maps a game date to the season it belongs to. College seasons
// are named for their closing year, so November and December games count
// toward the next calendar year.
func SeasonYear(t time.Time) int {
	if t.Month() >= time.November {
		return t.Year() + 1
	}
	return t.Year()
}
