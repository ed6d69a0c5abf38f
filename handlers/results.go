// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/avogel3/costumevote/cliparse"
	"github.com/avogel3/costumevote/engine"
	"github.com/avogel3/costumevote/middleware"
	"github.com/avogel3/costumevote/models"
)

type ResultsHandler struct {
	engine *engine.Engine
	cfg    cliparse.Config
}

func NewResultsHandler(eng *engine.Engine, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{engine: eng, cfg: cfg}
}

// GetResults handles GET /results/{authCode}
// Returns 403 while results are closed, unless the code is an admin.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	authCode := r.PathValue("authCode")
	if authCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "auth code is required")
		return
	}

	ranking, err := h.engine.Results(authCode, h.cfg.TopN)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidToken):
			middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, engine.ErrResultsClosed):
			middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
		case errors.Is(err, engine.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		default:
			slog.Error("failed to assemble results", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		EventID: ranking.EventID,
		Top:     ranking.Top,
		Rest:    ranking.Rest,
	})
}

// GetCandidates handles GET /candidates/{authCode}
// Lists all candidates of the code's event, shuffled so the order
// doesn't leak standings while voting is still running.
func (h *ResultsHandler) GetCandidates(w http.ResponseWriter, r *http.Request) {
	authCode := r.PathValue("authCode")
	if authCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "auth code is required")
		return
	}

	candidates, err := h.engine.CandidatesFor(authCode)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidToken):
			middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		default:
			slog.Error("failed to list candidates", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	shuffled := make([]models.Candidate, len(candidates))
	copy(shuffled, candidates)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	middleware.JSONResponse(w, http.StatusOK, shuffled)
}
