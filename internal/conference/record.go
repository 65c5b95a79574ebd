package conference

import "strings"

// Gender selects between the men's and women's program histories, which are
// independent data sets sharing the same school names.
type Gender string

const (
	Men   Gender = "M"
	Women Gender = "W"
)

// Key suffixes used in the persisted index. Men's programs are stored under
// the bare school name; women's programs carry the " (W)" suffix. Some older
// data sets tag men's records explicitly, so " (M)" is accepted on lookup.
const (
	womensSuffix = " (W)"
	mensSuffix   = " (M)"
)

// ParseGender normalizes a user-supplied gender string ("m", "W", "women").
// Returns Men for anything that is not recognizably women's.
func ParseGender(s string) Gender {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "W", "WOMEN", "WOMENS", "WOMEN'S", "F":
		return Women
	}
	return Men
}

// MembershipRecord is a single scraped membership fact: school belonged to
// conference from season From through season To, inclusive.
type MembershipRecord struct {
	School     string `json:"school"`
	Conference string `json:"conference"`
	From       int    `json:"from"`
	To         int    `json:"to"`
	Gender     Gender `json:"gender"`
}

// Interval is the persisted form of one membership stretch, stored under the
// school key so the school name is not repeated per entry.
type Interval struct {
	Conference string `json:"conference"`
	From       int    `json:"from"`
	To         int    `json:"to"`
}

// Contains reports whether year falls inside the closed range [From, To].
// An inverted interval (From > To) never contains any year; malformed scraped
// records degrade to not-found instead of failing.
func (iv Interval) Contains(year int) bool {
	return iv.From <= year && year <= iv.To
}

// History is the on-disk index shape: school key (optionally gender-suffixed)
// to membership intervals sorted ascending by From.
type History map[string][]Interval

// historyKey builds the index key for a school and gender. Men's keys follow
// the unsuffixed convention used by the persisted data.
func historyKey(school string, g Gender) string {
	if g == Women {
		return school + womensSuffix
	}
	return school
}

// keyGender classifies an index key: the women's suffix marks a women's
// program, everything else is men's.
func keyGender(key string) Gender {
	if strings.HasSuffix(key, womensSuffix) {
		return Women
	}
	return Men
}

// baseName strips a gender suffix, if any, from an index key.
func baseName(key string) string {
	if strings.HasSuffix(key, womensSuffix) {
		return strings.TrimSuffix(key, womensSuffix)
	}
	return strings.TrimSuffix(key, mensSuffix)
}
