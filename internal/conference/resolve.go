package conference

import "strings"

// Minimum raw-input length for the substring fuzzy rule. Short abbreviations
// like "UNC" or "USC" must never substring-match an unrelated school such as
// "UNC Asheville"; they resolve through the alias table or not at all.
const fuzzyMinLen = 5

// Resolve maps a team name, a season year, and a gender to the conference the
// team belonged to that season. The name may be an alias ("UConn"), the
// canonical school name, or close enough for a guarded case-insensitive
// match. Resolution strategies run in priority order and the first containing
// interval wins; when none applies, the second return value is false. Resolve
// never fails otherwise: unknown teams are a normal outcome, not an error.
func (idx *Index) Resolve(team string, year int, g Gender) (string, bool) {
	canonical := team
	if c, ok := idx.aliases[team]; ok {
		canonical = c
	}

	strategies := []func() (string, bool){
		func() (string, bool) { return idx.exact(canonical, year, g) },
		func() (string, bool) {
			if canonical == team {
				return "", false
			}
			return idx.exact(team, year, g)
		},
		func() (string, bool) { return idx.fuzzy(canonical, team, year, g) },
	}
	for _, resolve := range strategies {
		if conf, ok := resolve(); ok {
			return conf, true
		}
	}
	return "", false
}

// exact tries the gender-tagged key, then, for men's lookups, the bare school
// name. The bare fallback supports data sets that never tag men's records.
func (idx *Index) exact(name string, year int, g Gender) (string, bool) {
	tagged := name + womensSuffix
	if g == Men {
		tagged = name + mensSuffix
	}
	if conf, ok := idx.containing(tagged, year); ok {
		return conf, true
	}
	if g == Men {
		return idx.containing(name, year)
	}
	return "", false
}

// fuzzy is the last-resort scan over every school key of the requested
// gender. Keys are visited in sorted order so the result does not depend on
// map iteration order. A candidate matches on a case-insensitive exact
// comparison against either the canonicalized or the raw input; substring
// matching in either direction is allowed only when the raw input is at least
// fuzzyMinLen characters.
func (idx *Index) fuzzy(canonical, raw string, year int, g Gender) (string, bool) {
	lowerCanonical := strings.ToLower(canonical)
	lowerRaw := strings.ToLower(raw)

	for _, key := range idx.keys {
		if keyGender(key) != g {
			continue
		}
		name := strings.ToLower(baseName(key))

		matched := name == lowerCanonical || name == lowerRaw
		if !matched && len(raw) >= fuzzyMinLen {
			matched = strings.Contains(name, lowerRaw) || strings.Contains(lowerRaw, name)
		}
		if !matched {
			continue
		}
		if conf, ok := idx.containing(key, year); ok {
			return conf, true
		}
	}
	return "", false
}

// containing scans one school's intervals for the first that covers year.
// Lists are a handful of entries long, so a linear scan is fine.
func (idx *Index) containing(key string, year int) (string, bool) {
	for _, iv := range idx.schools[key] {
		if iv.Contains(year) {
			return iv.Conference, true
		}
	}
	return "", false
}
