// Package conference builds and queries the historical conference-membership
// index for Division I basketball programs.
//
// The index maps a school name (with a " (W)" suffix marking women's programs)
// to a chronologically ordered list of membership intervals, each recording the
// conference the school belonged to over an inclusive range of seasons. Resolve
// answers point-in-time questions such as "what conference was North Carolina
// in during the 2019 season?", tolerating common abbreviations ("UNC",
// "Ole Miss") through an injected alias table and a guarded fuzzy fallback.
package conference
