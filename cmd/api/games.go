package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rglass4/rematch/internal/data"
	"github.com/rglass4/rematch/internal/stats"
	"github.com/rglass4/rematch/internal/validator"
)

func (app *application) InsertGame(w http.ResponseWriter, r *http.Request) {
	var input struct {
		GameDate     *time.Time        `json:"game_date"`
		Result       string            `json:"result"`
		GoalsFor     int               `json:"goals_for"`
		GoalsAgainst int               `json:"goals_against"`
		Overtime     bool              `json:"overtime"`
		Lines        []stats.LineInput `json:"lines"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	game := &data.Game{
		Result:       input.Result,
		GoalsFor:     input.GoalsFor,
		GoalsAgainst: input.GoalsAgainst,
		Overtime:     input.Overtime,
	}
	if input.GameDate != nil {
		game.GameDate = *input.GameDate
	}

	v := validator.New()
	if data.ValidateGame(v, game); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	lines := stats.BuildLines(0, input.Lines)

	err = app.models.Games.Insert(game, lines)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrPlayerNotFound):
			v.AddError("lines", "one or more player ids do not exist")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.notifyStatsChanged()

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/game/%d", game.ID))
	err = app.writeJSON(w, http.StatusCreated, envelope{"game": game}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetGame(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	game, err := app.models.Games.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	lines, err := app.models.Lines.GetForGame(id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"game": game, "lines": lines}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetAllGames(w http.ResponseWriter, r *http.Request) {
	games, err := app.models.Games.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"games": games}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetNewGameDefaults serves the entry form for the next game: the roster
// with each player's "played" checkbox pre-set from the latest game's
// attendance.
func (app *application) GetNewGameDefaults(w http.ResponseWriter, r *http.Request) {
	players, err := app.models.Players.GetAll()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	var latestLines []*data.Line

	latest, err := app.models.Games.Latest()
	switch {
	case err == nil:
		latestLines, err = app.models.Lines.GetForGame(latest.ID)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}
	case errors.Is(err, data.ErrRecordNotFound):
		// First game of the season: no carry-forward source.
	default:
		app.serverErrorResponse(w, r, err)
		return
	}

	played := stats.CarryForward(players, latestLines)

	err = app.writeJSON(w, http.StatusOK, envelope{
		"players":        players,
		"played_default": played,
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	game, err := app.models.Games.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	var input struct {
		GameDate     *time.Time        `json:"game_date"`
		Result       *string           `json:"result"`
		GoalsFor     *int              `json:"goals_for"`
		GoalsAgainst *int              `json:"goals_against"`
		Overtime     *bool             `json:"overtime"`
		Lines        []stats.LineInput `json:"lines"`
	}

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if input.GameDate != nil {
		game.GameDate = *input.GameDate
	}
	if input.Result != nil {
		game.Result = *input.Result
	}
	if input.GoalsFor != nil {
		game.GoalsFor = *input.GoalsFor
	}
	if input.GoalsAgainst != nil {
		game.GoalsAgainst = *input.GoalsAgainst
	}
	if input.Overtime != nil {
		game.Overtime = *input.Overtime
	}

	v := validator.New()
	if data.ValidateGame(v, game); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	lines := stats.BuildLines(game.ID, input.Lines)

	err = app.models.Games.Update(game, lines)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrEditConflict):
			app.editConflictResponse(w, r)
		case errors.Is(err, data.ErrPlayerNotFound):
			v.AddError("lines", "one or more player ids do not exist")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.notifyStatsChanged()

	err = app.writeJSON(w, http.StatusOK, envelope{"game": game}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.models.Games.Delete(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.notifyStatsChanged()

	err = app.writeJSON(w, http.StatusOK, envelope{
		"message": fmt.Sprintf("game (%d) successfully deleted", id)}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
