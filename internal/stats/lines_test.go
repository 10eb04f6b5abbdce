package stats

import (
	"testing"

	"github.com/rglass4/rematch/internal/assert"
)

func TestBuildLines(t *testing.T) {
	tests := []struct {
		name string
		rows []LineInput
		want int
	}{
		{
			name: "Empty Form",
			rows: []LineInput{},
			want: 0,
		},
		{
			name: "Scoreless Absent Row Dropped",
			rows: []LineInput{
				{PlayerID: 1, Goals: 0, Assists: 0, StartedInGoal: false, PlayedInGame: false},
			},
			want: 0,
		},
		{
			name: "Played Scoreless Row Kept",
			rows: []LineInput{
				{PlayerID: 1, PlayedInGame: true},
			},
			want: 1,
		},
		{
			name: "Goalie Start Alone Kept",
			rows: []LineInput{
				{PlayerID: 1, StartedInGoal: true},
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildLines(7, tt.rows)
			assert.Equal(t, len(got), tt.want)
			for _, line := range got {
				assert.Equal(t, line.GameID, int64(7))
			}
		})
	}
}

func TestBuildLinesClampsNegatives(t *testing.T) {
	got := BuildLines(1, []LineInput{
		{PlayerID: 1, Goals: -3, Assists: -1, PlayedInGame: true},
	})

	assert.Equal(t, len(got), 1)
	assert.Equal(t, got[0].Goals, 0)
	assert.Equal(t, got[0].Assists, 0)
}

func TestBuildLinesNegativesDoNotRescueRow(t *testing.T) {
	// A not-played row whose only "stats" are negative numbers clamps to
	// all-zero and is dropped, not persisted.
	got := BuildLines(1, []LineInput{
		{PlayerID: 1, Goals: -2, Assists: -5},
	})

	assert.Equal(t, len(got), 0)
}

func TestBuildLinesDeduplicates(t *testing.T) {
	got := BuildLines(1, []LineInput{
		{PlayerID: 1, Goals: 1, PlayedInGame: true},
		{PlayerID: 2, Goals: 2, PlayedInGame: true},
		{PlayerID: 1, Goals: 4, Assists: 1, PlayedInGame: true},
	})

	assert.Equal(t, len(got), 2)

	// Last write for a repeated player wins, in the original position.
	assert.Equal(t, got[0].PlayerID, int64(1))
	assert.Equal(t, got[0].Goals, 4)
	assert.Equal(t, got[0].Assists, 1)
	assert.Equal(t, got[1].PlayerID, int64(2))

	seen := make(map[int64]bool)
	for _, line := range got {
		if seen[line.PlayerID] {
			t.Errorf("duplicate line for player %d", line.PlayerID)
		}
		seen[line.PlayerID] = true
	}
}
