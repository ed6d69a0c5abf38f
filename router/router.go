// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/avogel3/costumevote/cliparse"
	"github.com/avogel3/costumevote/engine"
	"github.com/avogel3/costumevote/handlers"
	"github.com/avogel3/costumevote/images"
	"github.com/avogel3/costumevote/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	eng := engine.New(db)
	imgs := images.NewStore(cfg.ImageDir)

	// Initialize handlers
	voteHandler := handlers.NewVoteHandler(eng)
	resultsHandler := handlers.NewResultsHandler(eng, cfg)
	tokenHandler := handlers.NewTokenHandler(eng)
	eventHandler := handlers.NewEventHandler(eng)
	candidateHandler := handlers.NewCandidateHandler(eng)
	uploadHandler := handlers.NewUploadHandler(eng, imgs)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting
	mux.HandleFunc("POST /votes", middleware.WithLogging(voteHandler.CastVotes))
	mux.HandleFunc("GET /results/{authCode}", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /candidates/{authCode}", middleware.WithLogging(resultsHandler.GetCandidates))

	// Token and event info
	mux.HandleFunc("GET /tokens/{authCode}", middleware.WithLogging(tokenHandler.GetTokenInfo))
	mux.HandleFunc("GET /events/{authCode}", middleware.WithLogging(eventHandler.GetEvent))

	// Admin controls
	mux.HandleFunc("PUT /events/deadlines/{authCode}", middleware.WithLogging(eventHandler.UpdateDeadlines))
	mux.HandleFunc("PUT /events/results/{state}/{authCode}", middleware.WithLogging(eventHandler.SetResultsState))
	mux.HandleFunc("DELETE /candidates/{id}/{authCode}", middleware.WithLogging(candidateHandler.DeleteByID))
	mux.HandleFunc("DELETE /candidates/code/{target}/{authCode}", middleware.WithLogging(candidateHandler.DeleteByCode))

	// Registration
	mux.HandleFunc("POST /register/{authCode}", middleware.WithLogging(candidateHandler.Register))
	mux.HandleFunc("PUT /candidates", middleware.WithLogging(candidateHandler.Update))
	mux.HandleFunc("POST /upload/{authCode}", middleware.WithLogging(uploadHandler.Upload))
	mux.HandleFunc("GET /images/{id}", middleware.WithLogging(uploadHandler.GetImage))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("costumevote API v1"))
	})

	return mux
}
