package boxscore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIDDeterministic(t *testing.T) {
	a := GenerateID("2026-02-14", "Duke", "North Carolina")
	b := GenerateID("2026-02-14", "Duke", "North Carolina")
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, GenerateID("2026-02-15", "Duke", "North Carolina"))
	assert.NotEqual(t, a, GenerateID("2026-02-14", "North Carolina", "Duke"))
}

func TestSeasonYear(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2019-11-05", 2020}, // opening night counts toward the new season
		{"2019-12-31", 2020},
		{"2020-01-01", 2020},
		{"2020-03-15", 2020},
		{"2020-04-06", 2020}, // championship game
		{"2020-10-15", 2020}, // preseason exhibitions stay in the old label
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			when, err := time.Parse(DateLayout, tt.date)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, SeasonYear(when))
		})
	}
}

func TestWinner(t *testing.T) {
	game := NewGame("2026-02-14", "Duke", "North Carolina", 69, 76, "")
	assert.Equal(t, "North Carolina", game.Winner())

	game.AwayScore = 80
	assert.Equal(t, "Duke", game.Winner())

	game.HomeScore = 80
	assert.Equal(t, "", game.Winner())
}
