package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rglass4/rematch/internal/validator"
)

var ErrDuplicatePlayerName = errors.New("duplicate player name")

type Player struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PlayerModel struct {
	db *sql.DB
}

func (m *PlayerModel) GetAll() ([]*Player, error) {
	stmt := `
		SELECT id, name
		FROM players
		ORDER BY name ASC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*Player, 0)
	for rows.Next() {
		var player Player
		err := rows.Scan(&player.ID, &player.Name)
		if err != nil {
			return nil, err
		}
		players = append(players, &player)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return players, nil
}

func (m *PlayerModel) Insert(player *Player) error {
	stmt := `
		INSERT INTO players (name)
		VALUES ($1)
		RETURNING id`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := m.db.QueryRowContext(ctx, stmt, player.Name).Scan(&player.ID)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "players_name_key"`:
			return ErrDuplicatePlayerName
		default:
			return err
		}
	}

	return nil
}

// EnsureNames provisions roster slots that do not exist yet, such as the
// "4th Man"/"5th Man" placeholder players. Existing names are left alone.
func (m *PlayerModel) EnsureNames(names []string) error {
	stmt := `
		INSERT INTO players (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	for _, name := range names {
		_, err := m.db.ExecContext(ctx, stmt, name)
		if err != nil {
			return err
		}
	}

	return nil
}

func ValidatePlayer(v *validator.Validator, player *Player) {
	v.Check(player.Name != "", "name", "must be provided")
	v.Check(len(player.Name) <= 40, "name", "must be 40 characters or less")
}
