package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hooptrack/hooptrack/internal/boxscore"
)

var (
	flagGamesDate string
	flagBoxScores bool
)

func newGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Scrape one day's games and store them",
		RunE:  runGames,
	}

	cmd.Flags().StringVar(&flagGamesDate, "date", "", "Date to scrape (YYYY-MM-DD, default yesterday)")
	cmd.Flags().BoolVar(&flagBoxScores, "box-scores", true, "Follow links and scrape full box scores")

	return cmd
}

func runGames(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	date := time.Now().AddDate(0, 0, -1)
	if flagGamesDate != "" {
		date, err = time.Parse(boxscore.DateLayout, flagGamesDate)
		if err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", flagGamesDate)
		}
	}

	store, err := newStorage()
	if err != nil {
		return err
	}

	scraper := boxscore.NewScraper(newFetcher(), cfg.ScoreboardBaseURL)
	games, err := scraper.FetchDay(cmd.Context(), date, flagBoxScores)
	if err != nil {
		return fmt.Errorf("scraping games: %w", err)
	}

	dateStr := date.Format(boxscore.DateLayout)
	if err := store.SaveGames(dateStr, games); err != nil {
		return fmt.Errorf("saving games: %w", err)
	}
	log.Info().Str("date", dateStr).Int("games", len(games)).Msg("Games stored")

	result := &GamesResult{Date: dateStr, GameCount: len(games), Games: games}
	return WriteGames(os.Stdout, result, format)
}
