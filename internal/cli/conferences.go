package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hooptrack/hooptrack/internal/conference"
)

func newConferencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conferences",
		Short: "Scrape conference membership pages and rebuild the history index",
		RunE:  runConferences,
	}
}

func runConferences(cmd *cobra.Command, args []string) error {
	store, err := newStorage()
	if err != nil {
		return err
	}

	scraper := conference.NewScraper(newFetcher(), cfg.ConferenceBaseURL)
	records, err := scraper.FetchAll(cmd.Context(), cfg.Conferences)
	if err != nil {
		return fmt.Errorf("scraping conferences: %w", err)
	}

	history := conference.Build(records)
	if err := store.SaveHistory(history); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}

	log.Info().Int("records", len(records)).Int("schools", len(history)).
		Str("path", store.HistoryPath()).Msg("Conference history rebuilt")
	return nil
}
