package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooptrack/hooptrack/internal/boxscore"
	"github.com/hooptrack/hooptrack/internal/conference"
)

func TestSaveLoadGames(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	games := []*boxscore.Game{
		boxscore.NewGame("2026-02-14", "Duke", "North Carolina", 69, 76, "https://example.com"),
		boxscore.NewGame("2026-02-14", "Villanova", "Connecticut", 88, 90, "https://example.com"),
	}
	require.NoError(t, store.SaveGames("2026-02-14", games))

	sheet, err := store.LoadGames("2026-02-14")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-14", sheet.Date)
	assert.NotEmpty(t, sheet.UpdatedAt)
	require.Len(t, sheet.Games, 2)
	assert.Equal(t, "Duke", sheet.Games[0].AwayTeam)
	assert.Equal(t, games[0].ID, sheet.Games[0].ID)
}

func TestLoadGamesMissingDate(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	sheet, err := store.LoadGames("2026-01-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-01", sheet.Date)
	assert.Empty(t, sheet.Games)
	assert.NotNil(t, sheet.Games)
}

func TestListDates(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	dates, err := store.ListDates()
	require.NoError(t, err)
	assert.Empty(t, dates)

	require.NoError(t, store.SaveGames("2026-02-15", nil))
	require.NoError(t, store.SaveGames("2026-02-14", nil))
	require.NoError(t, store.SaveGames("2025-12-31", nil))

	dates, err = store.ListDates()
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-12-31", "2026-02-14", "2026-02-15"}, dates)
}

func TestHistoryRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	// First load on a fresh data dir is empty, not an error.
	h, err := store.LoadHistory()
	require.NoError(t, err)
	assert.Empty(t, h)

	h = conference.History{
		"North Carolina": {
			{Conference: "ACC", From: 1954, To: 2025},
		},
	}
	require.NoError(t, store.SaveHistory(h))

	loaded, err := store.LoadHistory()
	require.NoError(t, err)
	require.Contains(t, loaded, "North Carolina")
	assert.Equal(t, "ACC", loaded["North Carolina"][0].Conference)
}
