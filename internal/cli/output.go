package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hooptrack/hooptrack/internal/boxscore"
)

// OutputFormat specifies the output format.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ResolveResult is the output of the resolve command.
type ResolveResult struct {
	Team       string `json:"team"`
	Year       int    `json:"year"`
	Gender     string `json:"gender"`
	Conference string `json:"conference,omitempty"`
	Found      bool   `json:"found"`
}

// WriteResolve writes a resolve result in the requested format.
func WriteResolve(w io.Writer, result *ResolveResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}
	if !result.Found {
		_, err := fmt.Fprintf(w, "%s (%s, %d): no conference found\n",
			result.Team, result.Gender, result.Year)
		return err
	}
	_, err := fmt.Fprintf(w, "%s (%s, %d): %s\n",
		result.Team, result.Gender, result.Year, result.Conference)
	return err
}

// GamesResult is the output of the games command.
type GamesResult struct {
	Date      string           `json:"date"`
	GameCount int              `json:"game_count"`
	Games     []*boxscore.Game `json:"games"`
}

// WriteGames writes a scraped day's summary in the requested format.
func WriteGames(w io.Writer, result *GamesResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}
	if result.GameCount == 0 {
		_, err := fmt.Fprintf(w, "No games found for %s.\n", result.Date)
		return err
	}
	fmt.Fprintf(w, "%d games on %s:\n\n", result.GameCount, result.Date)
	for _, game := range result.Games {
		fmt.Fprintf(w, "  %s %d at %s %d\n",
			game.AwayTeam, game.AwayScore, game.HomeTeam, game.HomeScore)
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
