package conference

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/hooptrack/hooptrack/internal/fetch"
)

// yearRangePattern matches season ranges like "1954-2025", "1979 - 2013" or
// "2013-present".
var yearRangePattern = regexp.MustCompile(`(\d{4})\s*[-–]\s*(\d{4}|[Pp]resent)`)

// Scraper harvests conference-membership pages into MembershipRecords.
type Scraper struct {
	fetcher *fetch.Fetcher
	baseURL string
}

// NewScraper creates a membership scraper rooted at baseURL.
func NewScraper(fetcher *fetch.Fetcher, baseURL string) *Scraper {
	return &Scraper{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// conferenceURL builds the membership page URL for a conference slug.
// Women's pages live under a /women/ path segment.
func (s *Scraper) conferenceURL(slug string, g Gender) string {
	if g == Women {
		return fmt.Sprintf("%s/conferences/%s/women/", s.baseURL, slug)
	}
	return fmt.Sprintf("%s/conferences/%s/", s.baseURL, slug)
}

// FetchConference downloads and parses one conference's membership page for
// one gender.
func (s *Scraper) FetchConference(ctx context.Context, slug string, g Gender) ([]MembershipRecord, error) {
	url := s.conferenceURL(slug, g)
	doc, err := s.fetcher.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching conference %s: %w", slug, err)
	}
	return ParseMembership(doc, g), nil
}

// FetchAll harvests every configured conference for both genders and returns
// the combined record list, ready for Build. Individual page failures are
// logged and skipped so one dead page does not lose the whole scrape.
func (s *Scraper) FetchAll(ctx context.Context, slugs []string) ([]MembershipRecord, error) {
	records := make([]MembershipRecord, 0)
	for _, slug := range slugs {
		for _, g := range []Gender{Men, Women} {
			if err := ctx.Err(); err != nil {
				return records, err
			}
			recs, err := s.FetchConference(ctx, slug, g)
			if err != nil {
				log.Warn().Err(err).Str("conference", slug).Str("gender", string(g)).
					Msg("Skipping conference page")
				continue
			}
			records = append(records, recs...)
		}
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no membership records scraped from %d conferences", len(slugs))
	}
	return records, nil
}

// ParseMembership extracts membership rows from a conference page. The page
// carries the conference name in its heading and one table row per member
// school with the school name and its span of seasons.
func ParseMembership(doc *goquery.Document, g Gender) []MembershipRecord {
	confName := strings.TrimSpace(doc.Find("h1 span.conference, h1").First().Text())
	confName = strings.TrimSuffix(confName, " Conference Index")

	records := make([]MembershipRecord, 0)
	doc.Find("table tbody tr").Each(func(i int, row *goquery.Selection) {
		school := strings.TrimSpace(row.Find("[data-stat=school], td.school a, th a").First().Text())
		if school == "" {
			return
		}

		years := row.Find("[data-stat=years], td.years").First().Text()
		matches := yearRangePattern.FindStringSubmatch(years)
		if matches == nil {
			return
		}

		from, err := strconv.Atoi(matches[1])
		if err != nil {
			return
		}
		to := currentSeason()
		if !strings.EqualFold(matches[2], "present") {
			if to, err = strconv.Atoi(matches[2]); err != nil {
				return
			}
		}

		records = append(records, MembershipRecord{
			School:     school,
			Conference: confName,
			From:       from,
			To:         to,
			Gender:     g,
		})
	})
	return records
}

// currentSeason returns the season year an open-ended membership runs
// through. Seasons are named for their closing year, so from November the
// current season is next calendar year.
func currentSeason() int {
	now := time.Now()
	if now.Month() >= time.November {
		return now.Year() + 1
	}
	return now.Year()
}
