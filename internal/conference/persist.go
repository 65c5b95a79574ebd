package conference

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// LoadHistory reads a persisted history file: a JSON object mapping school
// keys to {conference, from, to} arrays. A missing file yields an empty
// history so first runs work without a prior scrape.
func LoadHistory(path string) (History, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(History), nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var h History
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}
	if h == nil {
		h = make(History)
	}

	// Persisted files are sorted on write, but scraped source data is not
	// always well formed. Re-sort on load so Resolve sees ordered intervals.
	for key := range h {
		ivs := h[key]
		sort.SliceStable(ivs, func(i, j int) bool {
			return ivs[i].From < ivs[j].From
		})
	}
	return h, nil
}

// SaveHistory writes the history as indented JSON, each school's intervals
// sorted ascending by From.
func SaveHistory(path string, h History) error {
	for key := range h {
		ivs := h[key]
		sort.SliceStable(ivs, func(i, j int) bool {
			return ivs[i].From < ivs[j].From
		})
	}

	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}
