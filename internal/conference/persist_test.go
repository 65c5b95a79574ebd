package conference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conference_history.json")

	h := History{
		"Connecticut": {
			{Conference: "Big East", From: 2020, To: 2025},
			{Conference: "Big East", From: 1979, To: 2013},
			{Conference: "American", From: 2013, To: 2020},
		},
		"North Carolina (W)": {
			{Conference: "ACC", From: 1977, To: 2025},
		},
	}
	require.NoError(t, SaveHistory(path, h))

	loaded, err := LoadHistory(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Intervals come back sorted ascending by From.
	ivs := loaded["Connecticut"]
	require.Len(t, ivs, 3)
	assert.Equal(t, 1979, ivs[0].From)
	assert.Equal(t, 2013, ivs[1].From)
	assert.Equal(t, 2020, ivs[2].From)
}

func TestLoadHistoryMissingFile(t *testing.T) {
	h, err := LoadHistory(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, h)
	assert.NotNil(t, h)
}

func TestLoadHistoryMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadHistory(path)
	assert.Error(t, err)
}

func TestLoadHistorySortsUnsortedData(t *testing.T) {
	// Hand-edited or foreign files may not be sorted; Resolve depends on
	// interval order, so LoadHistory re-sorts.
	path := filepath.Join(t.TempDir(), "unsorted.json")
	raw := `{
  "Connecticut": [
    {"conference": "Big East", "from": 2020, "to": 2025},
    {"conference": "Big East", "from": 1979, "to": 2013},
    {"conference": "American", "from": 2013, "to": 2020}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	h, err := LoadHistory(path)
	require.NoError(t, err)

	idx := NewIndex(h, nil)
	conf, ok := idx.Resolve("UConn", 2015, Men)
	require.True(t, ok)
	assert.Equal(t, "American", conf)
}
