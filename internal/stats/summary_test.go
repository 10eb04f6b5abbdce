package stats

import (
	"testing"

	"github.com/rglass4/rematch/internal/assert"
	"github.com/rglass4/rematch/internal/data"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		games []*data.Game
		want  Summary
	}{
		{
			name:  "Empty Season",
			games: []*data.Game{},
			want:  Summary{},
		},
		{
			name: "Win And Overtime Loss",
			games: []*data.Game{
				{ID: 1, Result: "W", GoalsFor: 5, GoalsAgainst: 2, Overtime: false},
				{ID: 2, Result: "L", GoalsFor: 1, GoalsAgainst: 3, Overtime: true},
			},
			want: Summary{
				TotalGames:   2,
				Wins:         1,
				Losses:       1,
				OTGames:      1,
				GoalsFor:     6,
				GoalsAgainst: 5,
				GoalDiff:     1,
			},
		},
		{
			name: "Overtime Win Counts Both",
			games: []*data.Game{
				{ID: 1, Result: "W", GoalsFor: 4, GoalsAgainst: 3, Overtime: true},
			},
			want: Summary{
				TotalGames:   1,
				Wins:         1,
				OTGames:      1,
				GoalsFor:     4,
				GoalsAgainst: 3,
				GoalDiff:     1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.games)
			assert.Equal(t, got, tt.want)
			assert.Equal(t, got.GoalDiff, got.GoalsFor-got.GoalsAgainst)
			if got.Wins+got.Losses > got.TotalGames {
				t.Errorf("wins+losses (%d) exceeds total games (%d)",
					got.Wins+got.Losses, got.TotalGames)
			}
		})
	}
}
