// Package stats is the aggregation engine: pure functions that turn loaded
// game and stat-line collections into season summaries, leaderboards, box
// scores and entry-form defaults. Nothing in here touches the store.
package stats

import (
	"sort"
	"time"

	"github.com/rglass4/rematch/internal/data"
)

// TotalScope selects every game and line instead of a single calendar date.
const TotalScope = "total"

// Snapshot is the immutable view state for one page of stats: everything
// loaded from the store, re-sliced in memory as the user changes scope.
type Snapshot struct {
	Games   []*data.Game
	Lines   []*data.Line
	Players []*data.Player
}

// FilterByDate restricts the snapshot to games falling on one calendar day
// in the league's timezone, plus the lines belonging to those games. Two
// games recorded at different times on the same league night share a date
// bucket. The empty string and TotalScope leave the snapshot untouched.
func FilterByDate(snap Snapshot, day string, loc *time.Location) Snapshot {
	if day == "" || day == TotalScope {
		return snap
	}

	games := make([]*data.Game, 0)
	gameIDs := make(map[int64]bool)
	for _, g := range snap.Games {
		if g.GameDate.In(loc).Format(time.DateOnly) == day {
			games = append(games, g)
			gameIDs[g.ID] = true
		}
	}

	lines := make([]*data.Line, 0)
	for _, l := range snap.Lines {
		if gameIDs[l.GameID] {
			lines = append(lines, l)
		}
	}

	return Snapshot{
		Games:   games,
		Lines:   lines,
		Players: snap.Players,
	}
}

// GameDates lists the distinct calendar dates present in the loaded games,
// most recent first, for the scope selector.
func GameDates(games []*data.Game, loc *time.Location) []string {
	seen := make(map[string]bool)
	dates := make([]string, 0)

	for _, g := range games {
		day := g.GameDate.In(loc).Format(time.DateOnly)
		if !seen[day] {
			seen[day] = true
			dates = append(dates, day)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// meaningful reports whether a line is worth keeping: the player played, or
// recorded a goal, assist or goalie start. An all-zero absent line is noise.
func meaningful(goals, assists int, startedInGoal, played bool) bool {
	return played || goals > 0 || assists > 0 || startedInGoal
}
