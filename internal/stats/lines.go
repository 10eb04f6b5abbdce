package stats

import "github.com/rglass4/rematch/internal/data"

// LineInput is one player's row from the game entry form.
type LineInput struct {
	PlayerID      int64 `json:"player_id"`
	Goals         int   `json:"goals"`
	Assists       int   `json:"assists"`
	StartedInGoal bool  `json:"started_in_goal"`
	PlayedInGame  bool  `json:"played_in_game"`
}

// BuildLines normalizes the entry-form rows into the stat lines to persist
// for a game. Negative counts clamp to zero, rows that record nothing and
// no attendance are dropped, and a repeated player id keeps only the last
// row seen, so the output holds at most one line per player.
func BuildLines(gameID int64, rows []LineInput) []*data.Line {
	lines := make([]*data.Line, 0, len(rows))
	index := make(map[int64]int)

	for _, row := range rows {
		line := &data.Line{
			GameID:        gameID,
			PlayerID:      row.PlayerID,
			Goals:         max(row.Goals, 0),
			Assists:       max(row.Assists, 0),
			StartedInGoal: row.StartedInGoal,
			PlayedInGame:  row.PlayedInGame,
		}

		if !meaningful(line.Goals, line.Assists, line.StartedInGoal, line.PlayedInGame) {
			continue
		}

		if i, seen := index[line.PlayerID]; seen {
			lines[i] = line
			continue
		}
		index[line.PlayerID] = len(lines)
		lines = append(lines, line)
	}

	return lines
}
