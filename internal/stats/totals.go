package stats

import (
	"fmt"
	"slices"
	"sort"

	"github.com/rglass4/rematch/internal/data"
)

type TotalsRow struct {
	PlayerID     int64  `json:"player_id"`
	Name         string `json:"name"`
	GamesPlayed  int    `json:"gp"`
	Goals        int    `json:"goals"`
	Assists      int    `json:"assists"`
	Points       int    `json:"points"`
	GoalieStarts int    `json:"goalie_starts"`
	PPG          string `json:"ppg"`
}

// PlayerTotals reduces the lines in scope to one totals row per player,
// including players with no activity. Lines referencing an unknown player
// id are dropped. Points are recomputed from goals+assists on every line so
// the two can never drift apart.
func PlayerTotals(players []*data.Player, lines []*data.Line) []TotalsRow {
	rows := make([]TotalsRow, 0, len(players))
	index := make(map[int64]int, len(players))
	for i, p := range players {
		rows = append(rows, TotalsRow{PlayerID: p.ID, Name: p.Name})
		index[p.ID] = i
	}

	for _, line := range lines {
		i, ok := index[line.PlayerID]
		if !ok {
			continue
		}
		row := &rows[i]
		if line.PlayedInGame {
			row.GamesPlayed++
		}
		row.Goals += line.Goals
		row.Assists += line.Assists
		row.Points = row.Goals + row.Assists
		if line.StartedInGoal {
			row.GoalieStarts++
		}
	}

	for i := range rows {
		rows[i].PPG = formatPPG(rows[i].Points, rows[i].GamesPlayed)
	}

	return rows
}

// formatPPG renders points-per-game with two decimal places. Zero games
// played is defined as exactly 0, never a division error.
func formatPPG(points, gamesPlayed int) string {
	if gamesPlayed == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(points)/float64(gamesPlayed))
}

// Split segregates the totals rows for the designated special roster slots
// (exact name match) into their own section, preserving order.
func Split(rows []TotalsRow, specialNames []string) (regulars, specials []TotalsRow) {
	regulars = make([]TotalsRow, 0, len(rows))
	specials = make([]TotalsRow, 0)

	for _, row := range rows {
		if slices.Contains(specialNames, row.Name) {
			specials = append(specials, row)
		} else {
			regulars = append(regulars, row)
		}
	}

	return regulars, specials
}

type SortKey string

const (
	SortPoints       SortKey = "points"
	SortGoals        SortKey = "goals"
	SortAssists      SortKey = "assists"
	SortGamesPlayed  SortKey = "gp"
	SortGoalieStarts SortKey = "goalie_starts"
)

var SortKeys = []SortKey{SortPoints, SortGoals, SortAssists, SortGamesPlayed, SortGoalieStarts}

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

type Sort struct {
	Key SortKey `json:"key"`
	Dir SortDir `json:"dir"`
}

// NextSort gives the sort that results from clicking a column header:
// clicking the current key flips direction, clicking a new key starts it
// descending.
func NextSort(current Sort, clicked SortKey) Sort {
	if current.Key == clicked {
		if current.Dir == SortDesc {
			return Sort{Key: clicked, Dir: SortAsc}
		}
		return Sort{Key: clicked, Dir: SortDesc}
	}
	return Sort{Key: clicked, Dir: SortDesc}
}

func (k SortKey) value(row TotalsRow) int {
	switch k {
	case SortGoals:
		return row.Goals
	case SortAssists:
		return row.Assists
	case SortGamesPlayed:
		return row.GamesPlayed
	case SortGoalieStarts:
		return row.GoalieStarts
	default:
		return row.Points
	}
}

// SortTotals orders a copy of the rows by the selected key and direction,
// breaking every tie by player name ascending so the order is always total.
func SortTotals(rows []TotalsRow, key SortKey, dir SortDir) []TotalsRow {
	sorted := slices.Clone(rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := key.value(sorted[i]), key.value(sorted[j])
		if a != b {
			if dir == SortAsc {
				return a < b
			}
			return a > b
		}
		return sorted[i].Name < sorted[j].Name
	})

	return sorted
}

// DefaultSort is the fixed order of the simplest leaderboard views: points
// descending, then goals descending, then name ascending.
func DefaultSort(rows []TotalsRow) []TotalsRow {
	sorted := slices.Clone(rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		if sorted[i].Goals != sorted[j].Goals {
			return sorted[i].Goals > sorted[j].Goals
		}
		return sorted[i].Name < sorted[j].Name
	})

	return sorted
}
