package conference

// DefaultAliases maps common informal team names to the canonical school
// names used as scrape keys. Matching is case-sensitive and exact; the table
// is read-only and shared. Callers with a different source vocabulary can
// inject their own table via NewIndex.
var DefaultAliases = map[string]string{
	"BYU":          "Brigham Young",
	"Cal":          "California",
	"LSU":          "Louisiana State",
	"Ole Miss":     "Mississippi",
	"Penn":         "Pennsylvania",
	"Pitt":         "Pittsburgh",
	"SMU":          "Southern Methodist",
	"TCU":          "Texas Christian",
	"UAB":          "Alabama-Birmingham",
	"UCF":          "Central Florida",
	"UConn":        "Connecticut",
	"UMass":        "Massachusetts",
	"UNC":          "North Carolina",
	"UNLV":         "Nevada-Las Vegas",
	"USC":          "Southern California",
	"UTEP":         "Texas-El Paso",
	"VCU":          "Virginia Commonwealth",
	"Wake":         "Wake Forest",
}
