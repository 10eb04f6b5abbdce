package main

import (
	"testing"

	"github.com/rglass4/rematch/internal/assert"
	"github.com/rglass4/rematch/internal/stats"
)

func TestNextSortHints(t *testing.T) {
	t.Run("No Active Sort", func(t *testing.T) {
		hints := nextSortHints(stats.Sort{Dir: stats.SortDesc})

		assert.Equal(t, len(hints), len(stats.SortKeys))
		for _, key := range stats.SortKeys {
			assert.Equal(t, hints[key], stats.Sort{Key: key, Dir: stats.SortDesc})
		}
	})

	t.Run("Active Key Flips Others Reset", func(t *testing.T) {
		hints := nextSortHints(stats.Sort{Key: stats.SortPoints, Dir: stats.SortDesc})

		assert.Equal(t, hints[stats.SortPoints], stats.Sort{Key: stats.SortPoints, Dir: stats.SortAsc})
		assert.Equal(t, hints[stats.SortGoals], stats.Sort{Key: stats.SortGoals, Dir: stats.SortDesc})
		assert.Equal(t, hints[stats.SortGamesPlayed],
			stats.Sort{Key: stats.SortGamesPlayed, Dir: stats.SortDesc})
	})

	t.Run("Flipped Key Flips Back", func(t *testing.T) {
		hints := nextSortHints(stats.Sort{Key: stats.SortGoals, Dir: stats.SortAsc})

		assert.Equal(t, hints[stats.SortGoals], stats.Sort{Key: stats.SortGoals, Dir: stats.SortDesc})
	})
}
