package stats

import (
	"testing"

	"github.com/rglass4/rematch/internal/assert"
	"github.com/rglass4/rematch/internal/data"
)

func TestBoxScore(t *testing.T) {
	lines := []*data.Line{
		{GameID: 1, PlayerID: 1, Goals: 1, Assists: 0, PlayedInGame: true},
		{GameID: 1, PlayerID: 2, Goals: 2, Assists: 2, PlayedInGame: true},
		{GameID: 1, PlayerID: 3, PlayedInGame: false},
		{GameID: 1, PlayerID: 4, StartedInGoal: true, PlayedInGame: true},
		{GameID: 2, PlayerID: 5, Goals: 9, PlayedInGame: true},
	}

	got := BoxScore(1, lines)

	assert.Equal(t, len(got), 3)
	assert.Equal(t, got[0].PlayerID, int64(2))
	assert.Equal(t, got[1].PlayerID, int64(1))
	assert.Equal(t, got[2].PlayerID, int64(4))
}

func TestBoxScoreStableTies(t *testing.T) {
	lines := []*data.Line{
		{GameID: 1, PlayerID: 1, Goals: 1, Assists: 1, PlayedInGame: true},
		{GameID: 1, PlayerID: 2, Goals: 0, Assists: 2, PlayedInGame: true},
		{GameID: 1, PlayerID: 3, Goals: 2, Assists: 0, PlayedInGame: true},
	}

	got := BoxScore(1, lines)

	// All three are tied on points and keep their input order.
	assert.Equal(t, got[0].PlayerID, int64(1))
	assert.Equal(t, got[1].PlayerID, int64(2))
	assert.Equal(t, got[2].PlayerID, int64(3))
}

func TestBoxScoreEmpty(t *testing.T) {
	lines := []*data.Line{
		{GameID: 1, PlayerID: 1, PlayedInGame: false},
	}

	got := BoxScore(1, lines)
	assert.Equal(t, len(got), 0)

	got = BoxScore(99, lines)
	assert.Equal(t, len(got), 0)
}
