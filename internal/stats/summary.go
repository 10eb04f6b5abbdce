package stats

import "github.com/rglass4/rematch/internal/data"

type Summary struct {
	TotalGames   int `json:"total_games"`
	Wins         int `json:"wins"`
	Losses       int `json:"losses"`
	OTGames      int `json:"ot_games"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`
	GoalDiff     int `json:"goal_diff"`
}

// Summarize reduces the games in scope to season totals. An empty input
// yields the zero summary.
func Summarize(games []*data.Game) Summary {
	var s Summary

	s.TotalGames = len(games)
	for _, g := range games {
		switch g.Result {
		case data.ResultWin:
			s.Wins++
		case data.ResultLoss:
			s.Losses++
		}
		if g.Overtime {
			s.OTGames++
		}
		s.GoalsFor += g.GoalsFor
		s.GoalsAgainst += g.GoalsAgainst
	}
	s.GoalDiff = s.GoalsFor - s.GoalsAgainst

	return s
}
