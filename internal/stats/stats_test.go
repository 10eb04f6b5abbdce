package stats

import (
	"testing"
	"time"

	"github.com/rglass4/rematch/internal/assert"
	"github.com/rglass4/rematch/internal/data"
)

func leagueTZ(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("America/New_York")
	assert.NilError(t, err)
	return loc
}

func TestFilterByDate(t *testing.T) {
	loc := leagueTZ(t)

	snap := Snapshot{
		Games: []*data.Game{
			{ID: 1, GameDate: time.Date(2024, 1, 1, 20, 30, 0, 0, loc)},
			{ID: 2, GameDate: time.Date(2024, 1, 1, 22, 0, 0, 0, loc)},
			{ID: 3, GameDate: time.Date(2024, 1, 2, 20, 30, 0, 0, loc)},
		},
		Lines: []*data.Line{
			{GameID: 1, PlayerID: 1, PlayedInGame: true},
			{GameID: 2, PlayerID: 1, PlayedInGame: true},
			{GameID: 3, PlayerID: 2, PlayedInGame: true},
		},
		Players: testPlayers,
	}

	t.Run("Single Date", func(t *testing.T) {
		got := FilterByDate(snap, "2024-01-01", loc)

		assert.Equal(t, len(got.Games), 2)
		assert.Equal(t, len(got.Lines), 2)
		for _, l := range got.Lines {
			if l.GameID != 1 && l.GameID != 2 {
				t.Errorf("line for out-of-scope game %d", l.GameID)
			}
		}
		assert.Equal(t, len(got.Players), len(snap.Players))
	})

	t.Run("Total Keeps Everything", func(t *testing.T) {
		got := FilterByDate(snap, TotalScope, loc)

		assert.Equal(t, len(got.Games), 3)
		assert.Equal(t, len(got.Lines), 3)
	})

	t.Run("Empty Selection Keeps Everything", func(t *testing.T) {
		got := FilterByDate(snap, "", loc)

		assert.Equal(t, len(got.Games), 3)
	})

	t.Run("Buckets By League Timezone", func(t *testing.T) {
		// 02:00 UTC on Jan 2 is still the evening of Jan 1 in New York.
		utcSnap := Snapshot{
			Games: []*data.Game{
				{ID: 1, GameDate: time.Date(2024, 1, 2, 2, 0, 0, 0, time.UTC)},
			},
		}

		got := FilterByDate(utcSnap, "2024-01-01", loc)
		assert.Equal(t, len(got.Games), 1)

		got = FilterByDate(utcSnap, "2024-01-02", loc)
		assert.Equal(t, len(got.Games), 0)
	})

	t.Run("No Games On Date", func(t *testing.T) {
		got := FilterByDate(snap, "2030-06-15", loc)

		assert.Equal(t, len(got.Games), 0)
		assert.Equal(t, len(got.Lines), 0)
	})
}

func TestGameDates(t *testing.T) {
	loc := leagueTZ(t)

	games := []*data.Game{
		{ID: 1, GameDate: time.Date(2024, 1, 1, 20, 30, 0, 0, loc)},
		{ID: 2, GameDate: time.Date(2024, 1, 8, 20, 30, 0, 0, loc)},
		{ID: 3, GameDate: time.Date(2024, 1, 1, 22, 0, 0, 0, loc)},
		{ID: 4, GameDate: time.Date(2023, 12, 18, 20, 30, 0, 0, loc)},
	}

	got := GameDates(games, loc)

	assert.StringSliceEqual(t, got, []string{"2024-01-08", "2024-01-01", "2023-12-18"})
}
