package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hooptrack/hooptrack/internal/conference"
	"github.com/hooptrack/hooptrack/internal/site"
	"github.com/hooptrack/hooptrack/internal/storage"
)

func newSiteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "site",
		Short: "Generate the static HTML dashboard from stored data",
		RunE:  runSite,
	}
}

func runSite(cmd *cobra.Command, args []string) error {
	store, err := newStorage()
	if err != nil {
		return err
	}
	return generateSite(store)
}

// generateSite renders the dashboard, shared by the site and watch commands.
func generateSite(store *storage.Storage) error {
	history, err := store.LoadHistory()
	if err != nil {
		return err
	}
	idx := conference.NewIndex(history, nil)

	generator, err := site.NewGenerator(store, idx, cfg.SiteDir)
	if err != nil {
		return err
	}
	if err := generator.Generate(); err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	return nil
}
