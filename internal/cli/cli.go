package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hooptrack/hooptrack/internal/config"
	"github.com/hooptrack/hooptrack/internal/fetch"
	"github.com/hooptrack/hooptrack/internal/storage"
)

const (
	ExitSuccess  = 0
	ExitError    = 1
	ExitNotFound = 2
)

var (
	flagDataDir string
	flagSiteDir string
	flagFormat  string
	flagVerbose bool

	cfg *config.Config
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hooptrack",
		Short: "Track college-basketball games and conference history",
		Long: `A personal college-basketball game-tracking toolkit.
Scrapes daily box scores and conference-membership pages from public
sports-statistics sites and renders the accumulated data into a static
HTML dashboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			if flagDataDir != "" {
				cfg.DataDir = flagDataDir
			}
			if flagSiteDir != "" {
				cfg.SiteDir = flagSiteDir
			}
			applyLogLevel()
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory for scraped JSON (overrides HOOPTRACK_DATA_DIR)")
	cmd.PersistentFlags().StringVar(&flagSiteDir, "site-dir", "", "Output directory for the generated site (overrides HOOPTRACK_SITE_DIR)")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newGamesCmd())
	cmd.AddCommand(newConferencesCmd())
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newSiteCmd())
	cmd.AddCommand(newWatchCmd())

	return cmd
}

// applyLogLevel sets the global zerolog level from config, with --verbose
// forcing debug.
func applyLogLevel() {
	if flagVerbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// newFetcher builds the shared polite fetcher from config.
func newFetcher() *fetch.Fetcher {
	return fetch.New(
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithTimeout(cfg.FetchTimeout),
		fetch.WithDelay(cfg.FetchDelay),
		fetch.WithRetries(cfg.FetchRetries),
	)
}

// newStorage opens the configured data directory.
func newStorage() (*storage.Storage, error) {
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	return store, nil
}

// outputFormat validates the --format flag.
func outputFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
