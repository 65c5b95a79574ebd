package cli

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hooptrack/hooptrack/internal/boxscore"
	"github.com/hooptrack/hooptrack/internal/conference"
)

var (
	flagResolveYear   int
	flagResolveGender string
)

func newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve TEAM",
		Short: "Resolve the conference a team belonged to in a season",
		Long: `Resolve the conference a team belonged to in a given season.
The team name may be a common abbreviation ("UNC", "UConn", "Ole Miss")
or the canonical school name. Exits with status 2 when no conference is
found; unknown teams are expected, not an error.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runResolve,
	}

	cmd.Flags().IntVar(&flagResolveYear, "year", 0, "Season year (default current season)")
	cmd.Flags().StringVar(&flagResolveGender, "gender", "M", "Program: M or W")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	// School names contain spaces; accept them unquoted.
	team := strings.TrimSpace(strings.Join(args, " "))

	year := flagResolveYear
	if year == 0 {
		year = boxscore.SeasonYear(time.Now())
	}
	gender := conference.ParseGender(flagResolveGender)

	store, err := newStorage()
	if err != nil {
		return err
	}
	history, err := store.LoadHistory()
	if err != nil {
		return err
	}

	idx := conference.NewIndex(history, nil)
	conf, found := idx.Resolve(team, year, gender)

	result := &ResolveResult{
		Team:       team,
		Year:       year,
		Gender:     string(gender),
		Conference: conf,
		Found:      found,
	}
	if err := WriteResolve(os.Stdout, result, format); err != nil {
		return err
	}

	if !found {
		os.Exit(ExitNotFound)
	}
	os.Exit(ExitSuccess)
	return nil
}
