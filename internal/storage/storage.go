package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hooptrack/hooptrack/internal/boxscore"
	"github.com/hooptrack/hooptrack/internal/conference"
)

const historyFile = "conference_history.json"

// DaySheet is the persisted form of one scraped date.
type DaySheet struct {
	Date      string           `json:"date"`
	UpdatedAt string           `json:"updated_at"` // RFC3339
	Games     []*boxscore.Game `json:"games"`
}

// Storage handles persistence of scraped games and the conference index.
type Storage struct {
	dataDir string
}

// New creates a Storage rooted at dataDir, creating it if needed. A leading
// ~/ expands to the user's home directory.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

// gamesPath returns the path of the games file for a date.
func (s *Storage) gamesPath(date string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("games_%s.json", date))
}

// HistoryPath returns the path of the conference history file.
func (s *Storage) HistoryPath() string {
	return filepath.Join(s.dataDir, historyFile)
}

// SaveGames writes one date's games, stamping the sheet with the save time.
func (s *Storage) SaveGames(date string, games []*boxscore.Game) error {
	sheet := &DaySheet{
		Date:      date,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Games:     games,
	}

	data, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding games: %w", err)
	}
	if err := os.WriteFile(s.gamesPath(date), data, 0644); err != nil {
		return fmt.Errorf("writing games: %w", err)
	}
	return nil
}

// LoadGames reads one date's games. A missing file returns an empty sheet.
func (s *Storage) LoadGames(date string) (*DaySheet, error) {
	data, err := os.ReadFile(s.gamesPath(date))
	if err != nil {
		if os.IsNotExist(err) {
			return &DaySheet{Date: date, Games: make([]*boxscore.Game, 0)}, nil
		}
		return nil, fmt.Errorf("reading games: %w", err)
	}

	var sheet DaySheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("parsing games: %w", err)
	}
	if sheet.Games == nil {
		sheet.Games = make([]*boxscore.Game, 0)
	}
	return &sheet, nil
}

// ListDates returns every scraped date, ascending.
func (s *Storage) ListDates() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dataDir, "games_*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing games files: %w", err)
	}

	dates := make([]string, 0, len(matches))
	for _, path := range matches {
		name := filepath.Base(path)
		date := strings.TrimSuffix(strings.TrimPrefix(name, "games_"), ".json")
		if _, err := time.Parse(boxscore.DateLayout, date); err != nil {
			continue
		}
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}

// SaveHistory persists the conference-membership index.
func (s *Storage) SaveHistory(h conference.History) error {
	return conference.SaveHistory(s.HistoryPath(), h)
}

// LoadHistory loads the conference-membership index. Missing file yields an
// empty history.
func (s *Storage) LoadHistory() (conference.History, error) {
	return conference.LoadHistory(s.HistoryPath())
}
