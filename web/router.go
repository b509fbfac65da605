package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unrolled/render"

	"github.com/N0HBDY-code/GOHLS-sub000/controller"
)

func getRouter(ctrl controller.C, render *render.Render, creds AdminCreds) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Get("/standings", standingsHandler(ctrl, render))

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", teamsHandler(ctrl, render))
		r.Get("/{teamID}", getTeamHandler(ctrl, render))
		r.Get("/{teamID}/roster", rosterHandler(ctrl, render))
	})

	r.Route("/players", func(r chi.Router) {
		r.Get("/{playerID}", getPlayerHandler(ctrl, render))
		r.Get("/{playerID}/history", playerHistoryHandler(ctrl, render))
		r.Get("/{playerID}/progressions", progressionsHandler(ctrl, render))
	})

	r.Get("/playoffs/{league}", playoffStatusesHandler(ctrl, render))

	r.Route("/drafts", func(r chi.Router) {
		r.Get("/{season:\\d+}", draftBoardHandler(ctrl, render))
		r.Get("/{season:\\d+}/players", eligiblePlayersHandler(ctrl, render))
		r.Get("/{season:\\d+}/history", draftHistoryHandler(ctrl, render))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("gohls", map[string]string{creds.User: creds.Password}))
		r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

		r.Post("/standings/refresh", refreshStandingsHandler(ctrl, render))
		r.Post("/caches/clear", clearCachesHandler(ctrl, render))
		r.Post("/playoffs/{league}", setPlayoffStatusHandler(ctrl, render))

		r.Post("/draftclasses", createDraftClassHandler(ctrl, render))
		r.Post("/drafts", createDraftHandler(ctrl, render))
		r.Post("/drafts/{season:\\d+}/order", setDraftOrderHandler(ctrl, render))
		r.Post("/drafts/{season:\\d+}/start", startDraftHandler(ctrl, render))
		r.Post("/drafts/{season:\\d+}/picks/{pickID}", makePickHandler(ctrl, render))
		r.Post("/drafts/{season:\\d+}/end", endDraftHandler(ctrl, render))
		r.Delete("/drafts/{season:\\d+}", deleteDraftHandler(ctrl, render))

		r.Post("/trades", tradeHandler(ctrl, render))
		r.Post("/players/{playerID}/progressions", recordProgressionHandler(ctrl, render))
	})

	return r
}
