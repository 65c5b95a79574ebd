package conference

import "sort"

// Build groups scraped membership records by school and gender and orders
// each group's intervals ascending by starting season. The sort is stable, so
// records sharing a From year keep their scrape order. Well-formed data has no
// such ties and no overlapping intervals, but Build does not reject either.
func Build(records []MembershipRecord) History {
	h := make(History)
	for _, r := range records {
		key := historyKey(r.School, r.Gender)
		h[key] = append(h[key], Interval{
			Conference: r.Conference,
			From:       r.From,
			To:         r.To,
		})
	}
	for key := range h {
		ivs := h[key]
		sort.SliceStable(ivs, func(i, j int) bool {
			return ivs[i].From < ivs[j].From
		})
	}
	return h
}

// Index answers point-in-time conference lookups against a built history.
// It is immutable after construction: Resolve never mutates it, so an Index
// is safe for concurrent readers.
type Index struct {
	schools History
	aliases map[string]string
	keys    []string // sorted school keys, for deterministic fuzzy scans
}

// NewIndex builds a query index over a history. A nil aliases table selects
// DefaultAliases; tests can inject substitute tables. The history and alias
// maps are copied so later mutation by the caller cannot leak into the index.
func NewIndex(h History, aliases map[string]string) *Index {
	if aliases == nil {
		aliases = DefaultAliases
	}
	idx := &Index{
		schools: make(History, len(h)),
		aliases: make(map[string]string, len(aliases)),
		keys:    make([]string, 0, len(h)),
	}
	for key, ivs := range h {
		copied := make([]Interval, len(ivs))
		copy(copied, ivs)
		idx.schools[key] = copied
		idx.keys = append(idx.keys, key)
	}
	for name, canonical := range aliases {
		idx.aliases[name] = canonical
	}
	sort.Strings(idx.keys)
	return idx
}

// Schools returns the number of school keys in the index.
func (idx *Index) Schools() int {
	return len(idx.keys)
}
