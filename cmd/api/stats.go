package main

import (
	"errors"
	"net/http"
	"sync"

	"github.com/rglass4/rematch/internal/data"
	"github.com/rglass4/rematch/internal/stats"
	"github.com/rglass4/rematch/internal/validator"
)

// loadSnapshot pulls the full game/line/player collections for one view.
// The three reads run in parallel and are joined before anything renders;
// any failed read aborts the whole load, so views never see partial data.
func (app *application) loadSnapshot() (stats.Snapshot, error) {
	var snap stats.Snapshot
	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.Games, errs[0] = app.models.Games.GetAll()
	}()
	go func() {
		defer wg.Done()
		snap.Lines, errs[1] = app.models.Lines.GetAll()
	}()
	go func() {
		defer wg.Done()
		snap.Players, errs[2] = app.models.Players.GetAll()
	}()
	wg.Wait()

	if err := firstError(errs...); err != nil {
		return stats.Snapshot{}, err
	}

	return snap, nil
}

// nextSortHints tells the client what sort each column header click yields
// from the current order: the active key flips direction, any other key
// starts descending.
func nextSortHints(current stats.Sort) map[stats.SortKey]stats.Sort {
	hints := make(map[stats.SortKey]stats.Sort, len(stats.SortKeys))
	for _, key := range stats.SortKeys {
		hints[key] = stats.NextSort(current, key)
	}
	return hints
}

// GetStats is the season dashboard: summary plus leaderboards, scoped to
// one league date or the whole season and sorted by a selectable key.
func (app *application) GetStats(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	v := validator.New()

	date := app.readString(qs, "date", stats.TotalScope)
	sortKey := app.readSortKey(qs, v)
	sortDir := app.readSortDir(qs, v)

	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	snap, err := app.loadSnapshot()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	dates := stats.GameDates(snap.Games, app.leagueTZ)
	scoped := stats.FilterByDate(snap, date, app.leagueTZ)

	summary := stats.Summarize(scoped.Games)
	totals := stats.PlayerTotals(scoped.Players, scoped.Lines)
	regulars, specials := stats.Split(totals, app.config.league.specialPlayers)

	current := stats.Sort{Key: stats.SortKey(sortKey), Dir: stats.SortDir(sortDir)}
	if sortKey == "" {
		regulars = stats.DefaultSort(regulars)
		specials = stats.DefaultSort(specials)
	} else {
		regulars = stats.SortTotals(regulars, current.Key, current.Dir)
		specials = stats.SortTotals(specials, current.Key, current.Dir)
	}

	err = app.writeJSON(w, http.StatusOK, envelope{
		"scope":       date,
		"dates":       dates,
		"summary":     summary,
		"leaderboard": regulars,
		"specials":    specials,
		"next_sort":   nextSortHints(current),
	}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetBoxScore(w http.ResponseWriter, r *http.Request) {
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

	box := stats.BoxScore(id, lines)

	response := envelope{
		"game":      game,
		"box_score": box,
	}
	if len(box) == 0 {
		response["placeholder"] = "no active players"
	}

	err = app.writeJSON(w, http.StatusOK, response, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
