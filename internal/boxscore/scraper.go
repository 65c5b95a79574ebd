package boxscore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hooptrack/hooptrack/internal/fetch"
)

// Scraper fetches daily scoreboards and their linked box scores.
type Scraper struct {
	fetcher *fetch.Fetcher
	baseURL string
}

// NewScraper creates a box-score scraper rooted at baseURL.
func NewScraper(fetcher *fetch.Fetcher, baseURL string) *Scraper {
	return &Scraper{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// scoreboardURL builds the daily index URL for a date.
func (s *Scraper) scoreboardURL(t time.Time) string {
	return fmt.Sprintf("%s/boxscores/index.cgi?month=%d&day=%d&year=%d",
		s.baseURL, int(t.Month()), t.Day(), t.Year())
}

// FetchDay scrapes every completed game for one date. When followLinks is
// set, each game's box score page is fetched too, adding player lines; a
// failed box score download degrades that game to scores only.
func (s *Scraper) FetchDay(ctx context.Context, date time.Time, followLinks bool) ([]*Game, error) {
	url := s.scoreboardURL(date)
	doc, err := s.fetcher.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}

	games := ParseScoreboard(doc, date.Format(DateLayout), url)
	log.Info().Str("date", date.Format(DateLayout)).Int("games", len(games)).
		Msg("Parsed scoreboard")

	if !followLinks {
		return games, nil
	}

	for _, game := range games {
		if game.BoxScoreURL == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return games, err
		}
		boxURL := game.BoxScoreURL
		if strings.HasPrefix(boxURL, "/") {
			boxURL = s.baseURL + boxURL
		}
		boxDoc, err := s.fetcher.Get(ctx, boxURL)
		if err != nil {
			log.Warn().Err(err).Str("url", boxURL).Msg("Skipping box score page")
			continue
		}
		ParseBoxScore(boxDoc, game)
	}
	return games, nil
}
