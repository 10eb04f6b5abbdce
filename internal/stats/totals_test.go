package stats

import (
	"slices"
	"testing"

	"github.com/rglass4/rematch/internal/assert"
	"github.com/rglass4/rematch/internal/data"
)

var testPlayers = []*data.Player{
	{ID: 1, Name: "Anders"},
	{ID: 2, Name: "Beck"},
	{ID: 3, Name: "Cole"},
}

func TestPlayerTotals(t *testing.T) {
	lines := []*data.Line{
		{GameID: 1, PlayerID: 1, Goals: 2, Assists: 1, PlayedInGame: true},
		{GameID: 2, PlayerID: 1, Goals: 0, Assists: 3, PlayedInGame: true},
		{GameID: 1, PlayerID: 2, Goals: 1, Assists: 0, StartedInGoal: true, PlayedInGame: true},
		{GameID: 2, PlayerID: 99, Goals: 7, Assists: 7, PlayedInGame: true},
	}

	rows := PlayerTotals(testPlayers, lines)

	assert.Equal(t, len(rows), 3)

	assert.Equal(t, rows[0], TotalsRow{
		PlayerID:    1,
		Name:        "Anders",
		GamesPlayed: 2,
		Goals:       2,
		Assists:     4,
		Points:      6,
		PPG:         "3.00",
	})
	assert.Equal(t, rows[1], TotalsRow{
		PlayerID:     2,
		Name:         "Beck",
		GamesPlayed:  1,
		Goals:        1,
		Assists:      0,
		Points:       1,
		GoalieStarts: 1,
		PPG:          "1.00",
	})

	// A player with no lines keeps an all-zero row, ppg included.
	assert.Equal(t, rows[2], TotalsRow{PlayerID: 3, Name: "Cole", PPG: "0.00"})

	for _, row := range rows {
		assert.Equal(t, row.Points, row.Goals+row.Assists)
	}
}

func TestPlayerTotalsNotPlayedLine(t *testing.T) {
	// A line for a player who recorded a goal without attendance marked
	// counts the goal but not a game played.
	lines := []*data.Line{
		{GameID: 1, PlayerID: 1, Goals: 1, PlayedInGame: false},
	}

	rows := PlayerTotals(testPlayers[:1], lines)

	assert.Equal(t, rows[0].GamesPlayed, 0)
	assert.Equal(t, rows[0].Goals, 1)
	assert.Equal(t, rows[0].Points, 1)
	assert.Equal(t, rows[0].PPG, "0.00")
}

func TestSortTotals(t *testing.T) {
	rows := []TotalsRow{
		{PlayerID: 1, Name: "Anders", Points: 4, Goals: 1, GamesPlayed: 3},
		{PlayerID: 2, Name: "Beck", Points: 4, Goals: 3, GamesPlayed: 2},
		{PlayerID: 3, Name: "Cole", Points: 9, Goals: 5, GamesPlayed: 3},
	}

	names := func(rows []TotalsRow) []string {
		out := make([]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.Name)
		}
		return out
	}

	t.Run("Points Descending With Name Tiebreak", func(t *testing.T) {
		got := SortTotals(rows, SortPoints, SortDesc)
		assert.StringSliceEqual(t, names(got), []string{"Cole", "Anders", "Beck"})
	})

	t.Run("Goals Ascending", func(t *testing.T) {
		got := SortTotals(rows, SortGoals, SortAsc)
		assert.StringSliceEqual(t, names(got), []string{"Anders", "Beck", "Cole"})
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := SortTotals(rows, SortGamesPlayed, SortDesc)
		twice := SortTotals(once, SortGamesPlayed, SortDesc)
		assert.StringSliceEqual(t, names(once), names(twice))
	})

	t.Run("Input Unmodified", func(t *testing.T) {
		before := slices.Clone(rows)
		SortTotals(rows, SortAssists, SortAsc)
		for i := range rows {
			assert.Equal(t, rows[i], before[i])
		}
	})

	t.Run("All Ties Order By Name", func(t *testing.T) {
		tied := []TotalsRow{
			{Name: "Cole"}, {Name: "Anders"}, {Name: "Beck"},
		}
		got := SortTotals(tied, SortPoints, SortDesc)
		assert.StringSliceEqual(t, names(got), []string{"Anders", "Beck", "Cole"})
	})
}

func TestDefaultSort(t *testing.T) {
	rows := []TotalsRow{
		{Name: "Beck", Points: 4, Goals: 3},
		{Name: "Anders", Points: 4, Goals: 3},
		{Name: "Cole", Points: 4, Goals: 4},
		{Name: "Dietz", Points: 9, Goals: 1},
	}

	got := DefaultSort(rows)

	want := []string{"Dietz", "Cole", "Anders", "Beck"}
	for i, name := range want {
		assert.Equal(t, got[i].Name, name)
	}
}

func TestNextSort(t *testing.T) {
	tests := []struct {
		name    string
		current Sort
		clicked SortKey
		want    Sort
	}{
		{
			name:    "Same Key Flips To Ascending",
			current: Sort{Key: SortPoints, Dir: SortDesc},
			clicked: SortPoints,
			want:    Sort{Key: SortPoints, Dir: SortAsc},
		},
		{
			name:    "Same Key Flips Back",
			current: Sort{Key: SortPoints, Dir: SortAsc},
			clicked: SortPoints,
			want:    Sort{Key: SortPoints, Dir: SortDesc},
		},
		{
			name:    "New Key Resets Descending",
			current: Sort{Key: SortPoints, Dir: SortAsc},
			clicked: SortGoals,
			want:    Sort{Key: SortGoals, Dir: SortDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, NextSort(tt.current, tt.clicked), tt.want)
		})
	}
}

func TestSplit(t *testing.T) {
	rows := []TotalsRow{
		{Name: "Anders"},
		{Name: "4th Man"},
		{Name: "Beck"},
		{Name: "5th Man"},
	}

	regulars, specials := Split(rows, []string{"4th Man", "5th Man"})

	assert.Equal(t, len(regulars), 2)
	assert.Equal(t, len(specials), 2)
	assert.Equal(t, regulars[0].Name, "Anders")
	assert.Equal(t, regulars[1].Name, "Beck")
	assert.Equal(t, specials[0].Name, "4th Man")
	assert.Equal(t, specials[1].Name, "5th Man")
}
