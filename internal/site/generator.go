package site

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hooptrack/hooptrack/internal/boxscore"
	"github.com/hooptrack/hooptrack/internal/conference"
	"github.com/hooptrack/hooptrack/internal/storage"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const styleCSS = `body { font-family: Georgia, serif; margin: 2rem auto; max-width: 52rem; padding: 0 1rem; }
table { border-collapse: collapse; margin: 1rem 0; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
caption { font-weight: bold; text-align: left; padding: 0.3rem 0; }
.meta { color: #666; }
.game { margin-bottom: 2rem; }
`

// Generator renders the static dashboard from stored scrape data.
type Generator struct {
	store     *storage.Storage
	idx       *conference.Index
	outDir    string
	templates *template.Template
}

// daySummary feeds the index template.
type daySummary struct {
	Date      string
	GameCount int
}

// teamRow feeds the teams template.
type teamRow struct {
	Name       string
	Conference string
	Season     int
	GameCount  int
}

// NewGenerator creates a Generator writing under outDir. The conference index
// may hold an empty history; teams then render without a conference.
func NewGenerator(store *storage.Storage, idx *conference.Index, outDir string) (*Generator, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Generator{
		store:     store,
		idx:       idx,
		outDir:    outDir,
		templates: tmpl,
	}, nil
}

// Generate renders the whole dashboard: style sheet, date index, one page per
// scraped date, and the annotated teams page.
func (g *Generator) Generate() error {
	if err := os.MkdirAll(filepath.Join(g.outDir, "days"), 0755); err != nil {
		return fmt.Errorf("creating site directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(g.outDir, "style.css"), []byte(styleCSS), 0644); err != nil {
		return fmt.Errorf("writing style sheet: %w", err)
	}

	dates, err := g.store.ListDates()
	if err != nil {
		return err
	}

	days := make([]daySummary, 0, len(dates))
	type teamKey struct {
		name   string
		season int
	}
	seen := make(map[teamKey]int)

	for _, date := range dates {
		sheet, err := g.store.LoadGames(date)
		if err != nil {
			return err
		}
		days = append(days, daySummary{Date: date, GameCount: len(sheet.Games)})

		if err := g.renderDay(sheet); err != nil {
			return err
		}

		when, err := time.Parse(boxscore.DateLayout, date)
		if err != nil {
			continue
		}
		season := boxscore.SeasonYear(when)
		for _, game := range sheet.Games {
			seen[teamKey{game.AwayTeam, season}]++
			seen[teamKey{game.HomeTeam, season}]++
		}
	}

	if err := g.renderIndex(days); err != nil {
		return err
	}

	teams := make([]teamRow, 0, len(seen))
	for key, count := range seen {
		conf, _ := g.idx.Resolve(key.name, key.season, conference.Men)
		teams = append(teams, teamRow{
			Name:       key.name,
			Conference: conf,
			Season:     key.season,
			GameCount:  count,
		})
	}
	sort.Slice(teams, func(i, j int) bool {
		if teams[i].Name != teams[j].Name {
			return teams[i].Name < teams[j].Name
		}
		return teams[i].Season < teams[j].Season
	})
	if err := g.renderTeams(teams); err != nil {
		return err
	}

	log.Info().Int("days", len(days)).Int("teams", len(teams)).Str("dir", g.outDir).
		Msg("Site generated")
	return nil
}

func (g *Generator) renderIndex(days []daySummary) error {
	data := struct {
		GeneratedAt string
		Days        []daySummary
	}{
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04 UTC"),
		Days:        days,
	}
	return g.renderFile(filepath.Join(g.outDir, "index.html"), "index.html.tmpl", data)
}

func (g *Generator) renderDay(sheet *storage.DaySheet) error {
	path := filepath.Join(g.outDir, "days", sheet.Date+".html")
	return g.renderFile(path, "day.html.tmpl", sheet)
}

func (g *Generator) renderTeams(teams []teamRow) error {
	data := struct{ Teams []teamRow }{Teams: teams}
	return g.renderFile(filepath.Join(g.outDir, "teams.html"), "teams.html.tmpl", data)
}

// renderFile executes one template into a file.
func (g *Generator) renderFile(path, name string, data interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := g.templates.ExecuteTemplate(f, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}
