package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hooptrack/hooptrack/internal/boxscore"
	"github.com/hooptrack/hooptrack/internal/storage"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Scrape yesterday's games on a schedule and keep the site fresh",
		Long: `Run the games scrape and site generation on a cron schedule
(HOOPTRACK_WATCH_CRON, default 6:00 daily). Runs until interrupted.`,
		RunE: runWatch,
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	store, err := newStorage()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info().Msg("Received shutdown signal, stopping watch")
		cancel()
	}()

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.WatchCron, func() {
		if err := watchRun(ctx, store); err != nil {
			log.Error().Err(err).Msg("Scheduled scrape failed")
		}
	}); err != nil {
		return fmt.Errorf("scheduling watch run: %w", err)
	}

	scheduler.Start()
	log.Info().Str("schedule", cfg.WatchCron).Msg("Watch started")

	// Do one pass immediately so a fresh install has data before the first
	// scheduled run.
	if err := watchRun(ctx, store); err != nil {
		log.Error().Err(err).Msg("Initial scrape failed")
	}

	<-ctx.Done()
	stopCtx := scheduler.Stop()
	<-stopCtx.Done()
	log.Info().Msg("Watch stopped")
	return nil
}

// watchRun scrapes yesterday's games and regenerates the dashboard.
func watchRun(ctx context.Context, store *storage.Storage) error {
	date := time.Now().AddDate(0, 0, -1)
	dateStr := date.Format(boxscore.DateLayout)

	scraper := boxscore.NewScraper(newFetcher(), cfg.ScoreboardBaseURL)
	games, err := scraper.FetchDay(ctx, date, true)
	if err != nil {
		return fmt.Errorf("scraping games: %w", err)
	}
	if err := store.SaveGames(dateStr, games); err != nil {
		return fmt.Errorf("saving games: %w", err)
	}
	log.Info().Str("date", dateStr).Int("games", len(games)).Msg("Games stored")

	return generateSite(store)
}
