package stats

import (
	"testing"

	"github.com/rglass4/rematch/internal/assert"
	"github.com/rglass4/rematch/internal/data"
)

func TestCarryForward(t *testing.T) {
	players := []*data.Player{
		{ID: 1, Name: "Anders"},
		{ID: 2, Name: "Beck"},
		{ID: 3, Name: "Cole"},
	}

	t.Run("No Prior Game Defaults All Unchecked", func(t *testing.T) {
		got := CarryForward(players, nil)

		assert.Equal(t, len(got), 3)
		for id, played := range got {
			if played {
				t.Errorf("player %d defaulted to played with no prior game", id)
			}
		}
	})

	t.Run("Prior Attendance Carries Forward", func(t *testing.T) {
		latest := []*data.Line{
			{GameID: 9, PlayerID: 1, PlayedInGame: true},
			{GameID: 9, PlayerID: 2, Goals: 1, PlayedInGame: false},
		}

		got := CarryForward(players, latest)

		assert.Equal(t, got[1], true)
		assert.Equal(t, got[2], false)
		// No line at all means absent.
		assert.Equal(t, got[3], false)
	})

	t.Run("Line For Unknown Player Ignored", func(t *testing.T) {
		latest := []*data.Line{
			{GameID: 9, PlayerID: 42, PlayedInGame: true},
		}

		got := CarryForward(players, latest)

		assert.Equal(t, len(got), 3)
	})
}
