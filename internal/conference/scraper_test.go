package conference

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const membershipHTML = `<!DOCTYPE html>
<html>
<head><title>ACC</title></head>
<body>
<h1><span class="conference">ACC</span></h1>
<table id="membership">
  <thead>
    <tr><th>School</th><th>Years</th></tr>
  </thead>
  <tbody>
    <tr>
      <td data-stat="school"><a href="/schools/north-carolina/">North Carolina</a></td>
      <td data-stat="years">1954-2025</td>
    </tr>
    <tr>
      <td data-stat="school"><a href="/schools/miami-fl/">Miami (FL)</a></td>
      <td data-stat="years">2004-present</td>
    </tr>
    <tr>
      <td data-stat="school"><a href="/schools/maryland/">Maryland</a></td>
      <td data-stat="years">1954 - 2014</td>
    </tr>
    <tr>
      <td data-stat="school"><a href="/schools/mystery/">Mystery School</a></td>
      <td data-stat="years">unknown</td>
    </tr>
  </tbody>
</table>
</body>
</html>`

func TestParseMembership(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(membershipHTML))
	require.NoError(t, err)

	records := ParseMembership(doc, Men)
	require.Len(t, records, 3, "row without a year range is skipped")

	assert.Equal(t, "North Carolina", records[0].School)
	assert.Equal(t, "ACC", records[0].Conference)
	assert.Equal(t, 1954, records[0].From)
	assert.Equal(t, 2025, records[0].To)
	assert.Equal(t, Men, records[0].Gender)

	// Open-ended membership runs through the current season.
	assert.Equal(t, "Miami (FL)", records[1].School)
	assert.Equal(t, 2004, records[1].From)
	assert.GreaterOrEqual(t, records[1].To, 2026)

	// Spaces around the dash are tolerated.
	assert.Equal(t, "Maryland", records[2].School)
	assert.Equal(t, 1954, records[2].From)
	assert.Equal(t, 2014, records[2].To)
}

func TestParseMembershipGenderTag(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(membershipHTML))
	require.NoError(t, err)

	records := ParseMembership(doc, Women)
	require.NotEmpty(t, records)
	for _, r := range records {
		assert.Equal(t, Women, r.Gender)
	}

	// Built history keys women's programs with the suffix.
	h := Build(records)
	assert.Contains(t, h, "North Carolina (W)")
}

func TestConferenceURL(t *testing.T) {
	s := NewScraper(nil, "https://example.com/cbb/")

	assert.Equal(t, "https://example.com/cbb/conferences/acc/", s.conferenceURL("acc", Men))
	assert.Equal(t, "https://example.com/cbb/conferences/acc/women/", s.conferenceURL("acc", Women))
}
