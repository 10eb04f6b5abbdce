package main

import (
	"expvar"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (app *application) routes() http.Handler {
	router := chi.NewRouter()

	// Router
	router.NotFound(app.notFoundResponse)
	router.MethodNotAllowed(app.methodNotAllowedRequest)

	// Middleware
	router.Use(app.metrics)
	router.Use(app.recoverPanic)
	router.Use(app.enableCORS)
	router.Use(app.rateLimit)
	router.Use(app.authenticate)

	// Healthcheck
	router.Get("/v1/healthcheck", app.HealthCheck)
	router.Method(http.MethodGet, "/v1/metrics", expvar.Handler())

	// User Endpoints
	router.Post("/v1/user", app.RegisterUser)
	router.Put("/v1/user/activate", app.ActivateUser)
	router.Post("/v1/user/login", app.LoginUser)
	router.Post("/v1/user/magic-link", app.SendMagicLink)
	router.Put("/v1/user/magic-login", app.RedeemMagicLink)

	// Read Views
	router.Get("/v1/players", app.GetAllPlayers)
	router.Get("/v1/stats", app.GetStats)
	router.Get("/v1/games", app.GetAllGames)
	router.Get("/v1/games/defaults", app.GetNewGameDefaults)
	router.Get("/v1/game/{id}", app.GetGame)
	router.Get("/v1/game/{id}/boxscore", app.GetBoxScore)

	// Live Refresh Feed
	router.Get("/v1/live", app.WatchStats)

	// Write Endpoints
	router.With(app.requireActivatedUser).Post("/v1/players", app.InsertPlayer)
	router.With(app.requireActivatedUser).Post("/v1/game", app.InsertGame)
	router.With(app.requireActivatedUser).Patch("/v1/game/{id}", app.UpdateGame)
	router.With(app.requireActivatedUser).Delete("/v1/game/{id}", app.DeleteGame)

	return router
}
