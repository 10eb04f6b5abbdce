package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrPlayerNotFound = errors.New("player(s) not found")
	ErrDuplicateLine  = errors.New("duplicate player stat line")
)

// Line is one player's recorded stats for one game. At most one line exists
// per (game, player) pair; the absence of a line means the player did not
// play and recorded nothing.
type Line struct {
	GameID        int64 `json:"game_id"`
	PlayerID      int64 `json:"player_id"`
	Goals         int   `json:"goals"`
	Assists       int   `json:"assists"`
	StartedInGoal bool  `json:"started_in_goal"`
	PlayedInGame  bool  `json:"played_in_game"`
}

type LineModel struct {
	db *sql.DB
}

// resolvePlayed collapses the nullable played_in_game column to a plain bool.
// Lines written before the flag existed have NULL, which means played; rows
// written since always carry an explicit value.
func resolvePlayed(played sql.NullBool) bool {
	if !played.Valid {
		return true
	}
	return played.Bool
}

func scanLine(rows *sql.Rows) (*Line, error) {
	var line Line
	var played sql.NullBool

	err := rows.Scan(
		&line.GameID,
		&line.PlayerID,
		&line.Goals,
		&line.Assists,
		&line.StartedInGoal,
		&played,
	)
	if err != nil {
		return nil, err
	}

	line.PlayedInGame = resolvePlayed(played)
	return &line, nil
}

func (m *LineModel) GetAll() ([]*Line, error) {
	stmt := `
		SELECT game_id, player_id, goals, assists, started_in_goal, played_in_game
		FROM player_game_stats`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return m.queryLines(ctx, stmt)
}

func (m *LineModel) GetForGame(gameID int64) ([]*Line, error) {
	stmt := `
		SELECT game_id, player_id, goals, assists, started_in_goal, played_in_game
		FROM player_game_stats
		WHERE game_id = $1`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return m.queryLines(ctx, stmt, gameID)
}

func (m *LineModel) queryLines(ctx context.Context, stmt string, args ...any) ([]*Line, error) {
	rows, err := m.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]*Line, 0)
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func insertLines(gameID int64, lines []*Line, tx *sql.Tx, ctx context.Context) error {
	if len(lines) == 0 {
		return nil
	}

	stmt := fmt.Sprintf(`
		INSERT INTO player_game_stats (game_id, player_id, goals, assists, started_in_goal,
			played_in_game)
		VALUES %s`, generateLineValues(len(lines)))

	args := make([]any, 0, len(lines)*6)
	for _, line := range lines {
		args = append(args, gameID, line.PlayerID, line.Goals, line.Assists, line.StartedInGoal,
			line.PlayedInGame)
	}

	_, err := tx.ExecContext(ctx, stmt, args...)
	if err != nil {
		switch {
		case err.Error() == `pq: insert or update on table "player_game_stats" violates foreign `+
			`key constraint "player_game_stats_game_id_fkey"`:
			return ErrGameNotFound
		case err.Error() == `pq: insert or update on table "player_game_stats" violates foreign `+
			`key constraint "player_game_stats_player_id_fkey"`:
			return ErrPlayerNotFound
		case err.Error() == `pq: duplicate key value violates unique constraint `+
			`"player_game_stats_pkey"`:
			return ErrDuplicateLine
		default:
			return err
		}
	}

	return nil
}

func deleteLines(gameID int64, tx *sql.Tx, ctx context.Context) error {
	stmt := `
		DELETE FROM player_game_stats
		WHERE game_id = $1`

	_, err := tx.ExecContext(ctx, stmt, gameID)
	return err
}

func generateLineValues(count int) string {
	var output []string
	for i := 0; i < count; i++ {
		base := i * 6
		value := fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6)
		output = append(output, value)
	}
	return strings.Join(output, ", ")
}
