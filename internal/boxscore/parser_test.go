package boxscore

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoreboardHTML = `<!DOCTYPE html>
<html>
<body>
<div class="game_summary">
  <table class="teams">
    <tr class="loser">
      <td><a href="/schools/duke/">Duke</a></td>
      <td class="right">69</td>
    </tr>
    <tr class="winner">
      <td><a href="/schools/north-carolina/">North Carolina</a></td>
      <td class="right">76</td>
    </tr>
  </table>
  <p class="links"><a href="/boxscores/2026-02-14-north-carolina.html">Final</a></p>
</div>
<div class="game_summary">
  <table class="teams">
    <tr>
      <td><a href="/schools/villanova/">Villanova</a></td>
      <td class="right">88</td>
    </tr>
    <tr>
      <td><a href="/schools/connecticut/">Connecticut</a></td>
      <td class="right">90</td>
    </tr>
  </table>
</div>
<div class="game_summary">
  <table class="teams">
    <tr><td><a>Incomplete</a></td><td class="right">TBD</td></tr>
    <tr><td><a>Other</a></td><td class="right">55</td></tr>
  </table>
</div>
</body>
</html>`

func TestParseScoreboard(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(scoreboardHTML))
	require.NoError(t, err)

	games := ParseScoreboard(doc, "2026-02-14", "https://example.com/boxscores/")
	require.Len(t, games, 2, "unscored games are skipped")

	first := games[0]
	assert.Equal(t, "Duke", first.AwayTeam)
	assert.Equal(t, "North Carolina", first.HomeTeam)
	assert.Equal(t, 69, first.AwayScore)
	assert.Equal(t, 76, first.HomeScore)
	assert.Equal(t, "2026-02-14", first.Date)
	assert.Equal(t, "/boxscores/2026-02-14-north-carolina.html", first.BoxScoreURL)
	assert.Equal(t, "North Carolina", first.Winner())
	assert.NotEmpty(t, first.ID)

	second := games[1]
	assert.Equal(t, "Villanova", second.AwayTeam)
	assert.Equal(t, "Connecticut", second.HomeTeam)
	assert.Empty(t, second.BoxScoreURL)
}

func TestParseScoreboardDedupes(t *testing.T) {
	// The same summary block repeated parses to a single game.
	duplicated := strings.Replace(scoreboardHTML, "</body>",
		`<div class="game_summary">
  <table class="teams">
    <tr><td><a>Duke</a></td><td class="right">69</td></tr>
    <tr><td><a>North Carolina</a></td><td class="right">76</td></tr>
  </table>
</div></body>`, 1)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(duplicated))
	require.NoError(t, err)

	games := ParseScoreboard(doc, "2026-02-14", "https://example.com/boxscores/")
	assert.Len(t, games, 2)
}

const boxScoreHTML = `<!DOCTYPE html>
<html>
<body>
<table class="stats_table" id="box-score-basic-duke">
  <caption>Duke</caption>
  <tbody>
    <tr>
      <th data-stat="player">Jon Scheyer Jr.</th>
      <td data-stat="mp">34</td>
      <td data-stat="pts">21</td>
      <td data-stat="trb">4</td>
      <td data-stat="ast">6</td>
    </tr>
    <tr>
      <th data-stat="player">Reserves</th>
    </tr>
    <tr>
      <th data-stat="player">Deep Bench</th>
      <td data-stat="mp"></td>
      <td data-stat="pts"></td>
    </tr>
  </tbody>
</table>
<table class="stats_table" id="box-score-basic-north-carolina">
  <caption>North Carolina</caption>
  <tbody>
    <tr>
      <th data-stat="player">RJ Davis</th>
      <td data-stat="mp">36</td>
      <td data-stat="pts">25</td>
      <td data-stat="trb">5</td>
      <td data-stat="ast">3</td>
    </tr>
  </tbody>
</table>
</body>
</html>`

func TestParseBoxScore(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(boxScoreHTML))
	require.NoError(t, err)

	game := NewGame("2026-02-14", "Duke", "North Carolina", 69, 76, "https://example.com")
	ParseBoxScore(doc, game)

	require.Len(t, game.AwayPlayers, 1, "header and DNP rows are skipped")
	assert.Equal(t, PlayerLine{
		Name:     "Jon Scheyer Jr.",
		Minutes:  34,
		Points:   21,
		Rebounds: 4,
		Assists:  6,
	}, game.AwayPlayers[0])

	require.Len(t, game.HomePlayers, 1)
	assert.Equal(t, "RJ Davis", game.HomePlayers[0].Name)
	assert.Equal(t, 25, game.HomePlayers[0].Points)
}

func TestParseBoxScoreNoTables(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	require.NoError(t, err)

	game := NewGame("2026-02-14", "A", "B", 1, 2, "https://example.com")
	ParseBoxScore(doc, game)
	assert.Empty(t, game.AwayPlayers)
	assert.Empty(t, game.HomePlayers)
}
