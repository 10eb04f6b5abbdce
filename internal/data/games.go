package data

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rglass4/rematch/internal/validator"
)

const (
	ResultWin  = "W"
	ResultLoss = "L"
)

type Game struct {
	ID           int64     `json:"id"`
	GameDate     time.Time `json:"game_date"`
	Result       string    `json:"result"`
	GoalsFor     int       `json:"goals_for"`
	GoalsAgainst int       `json:"goals_against"`
	Overtime     bool      `json:"overtime"`
	CreatedAt    time.Time `json:"-"`
	Version      int32     `json:"-"`
}

type GameModel struct {
	db *sql.DB
}

func (m *GameModel) GetAll() ([]*Game, error) {
	stmt := `
		SELECT id, game_date, result, goals_for, goals_against, overtime, created_at, version
		FROM games
		ORDER BY game_date DESC, id DESC`

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := make([]*Game, 0)
	for rows.Next() {
		var game Game
		err := rows.Scan(
			&game.ID,
			&game.GameDate,
			&game.Result,
			&game.GoalsFor,
			&game.GoalsAgainst,
			&game.Overtime,
			&game.CreatedAt,
			&game.Version,
		)
		if err != nil {
			return nil, err
		}
		games = append(games, &game)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return games, nil
}

func (m *GameModel) Get(id int64) (*Game, error) {
	stmt := `
		SELECT id, game_date, result, goals_for, goals_against, overtime, created_at, version
		FROM games
		WHERE id = $1`

	var game Game

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := m.db.QueryRowContext(ctx, stmt, id).Scan(
		&game.ID,
		&game.GameDate,
		&game.Result,
		&game.GoalsFor,
		&game.GoalsAgainst,
		&game.Overtime,
		&game.CreatedAt,
		&game.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &game, nil
}

// Latest returns the most recently created game by id, not by game_date, so
// back-dated entries never steal the carry-forward slot.
func (m *GameModel) Latest() (*Game, error) {
	stmt := `
		SELECT id, game_date, result, goals_for, goals_against, overtime, created_at, version
		FROM games
		ORDER BY id DESC
		LIMIT 1`

	var game Game

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := m.db.QueryRowContext(ctx, stmt).Scan(
		&game.ID,
		&game.GameDate,
		&game.Result,
		&game.GoalsFor,
		&game.GoalsAgainst,
		&game.Overtime,
		&game.CreatedAt,
		&game.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &game, nil
}

// Insert writes the game and its stat lines in one transaction, so a lines
// failure never leaves an orphaned game behind.
func (m *GameModel) Insert(game *Game, lines []*Line) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt := `
		INSERT INTO games (game_date, result, goals_for, goals_against, overtime)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version`

	args := []any{
		game.GameDate,
		game.Result,
		game.GoalsFor,
		game.GoalsAgainst,
		game.Overtime,
	}

	err = tx.QueryRowContext(ctx, stmt, args...).Scan(&game.ID, &game.CreatedAt, &game.Version)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	err = insertLines(game.ID, lines, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	err = tx.Commit()
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	return nil
}

// Update edits the game row and replaces its stat lines wholesale; prior
// lines are deleted, not patched.
func (m *GameModel) Update(game *Game, lines []*Line) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt := `
		UPDATE games
			SET game_date = $1, result = $2, goals_for = $3, goals_against = $4, overtime = $5,
				version = version + 1
			WHERE id = $6 AND version = $7
			RETURNING version`

	args := []any{
		game.GameDate,
		game.Result,
		game.GoalsFor,
		game.GoalsAgainst,
		game.Overtime,
		game.ID,
		game.Version,
	}

	err = tx.QueryRowContext(ctx, stmt, args...).Scan(&game.Version)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}

	err = deleteLines(game.ID, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	err = insertLines(game.ID, lines, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	err = tx.Commit()
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	return nil
}

func (m *GameModel) Delete(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	err = deleteLines(id, tx, ctx)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	stmt := `
		DELETE FROM games
		WHERE id = $1`

	result, err := tx.ExecContext(ctx, stmt, id)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}
	if rowsAffected == 0 {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return ErrRecordNotFound
	}

	err = tx.Commit()
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	return nil
}

func ValidateGame(v *validator.Validator, game *Game) {
	v.Check(!game.GameDate.IsZero(), "game_date", "must be provided")
	v.Check(validator.PermittedValue(game.Result, ResultWin, ResultLoss), "result",
		`must be either "W" or "L"`)
	v.Check(game.GoalsFor >= 0, "goals_for", "must be 0 or greater")
	v.Check(game.GoalsAgainst >= 0, "goals_against", "must be 0 or greater")
}
