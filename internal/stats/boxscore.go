package stats

import (
	"sort"

	"github.com/rglass4/rematch/internal/data"
)

// BoxScore picks one game's meaningful lines and orders them by points
// scored, descending. The sort is stable so ties keep their input order.
// An empty result means the view shows its "no active players" placeholder
// instead of an empty table.
func BoxScore(gameID int64, lines []*data.Line) []*data.Line {
	box := make([]*data.Line, 0)
	for _, l := range lines {
		if l.GameID != gameID {
			continue
		}
		if !meaningful(l.Goals, l.Assists, l.StartedInGoal, l.PlayedInGame) {
			continue
		}
		box = append(box, l)
	}

	sort.SliceStable(box, func(i, j int) bool {
		return box[i].Goals+box[i].Assists > box[j].Goals+box[j].Assists
	})

	return box
}
