package stats

import "github.com/rglass4/rematch/internal/data"

// CarryForward derives the default state of the "played" checkboxes for a
// new game entry from the latest game's lines. A player with no line in
// that game defaults to not played; a line carries its own flag. With no
// prior game at all (nil lines) every player starts unchecked.
func CarryForward(players []*data.Player, latest []*data.Line) map[int64]bool {
	played := make(map[int64]bool, len(players))
	for _, p := range players {
		played[p.ID] = false
	}

	for _, line := range latest {
		if _, ok := played[line.PlayerID]; !ok {
			continue
		}
		played[line.PlayerID] = line.PlayedInGame
	}

	return played
}
