// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/avogel3/costumevote/engine"
	"github.com/avogel3/costumevote/middleware"
	"github.com/avogel3/costumevote/models"
)

type EventHandler struct {
	engine *engine.Engine
}

func NewEventHandler(eng *engine.Engine) *EventHandler {
	return &EventHandler{engine: eng}
}

// GetEvent handles GET /events/{authCode}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	authCode := r.PathValue("authCode")
	if authCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "auth code is required")
		return
	}

	evt, phase, err := h.engine.EventFor(authCode)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidToken):
			middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, engine.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		default:
			slog.Error("failed to load event", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EventResponse{
		Event: evt,
		Phase: phase,
	})
}

// UpdateDeadlines handles PUT /events/deadlines/{authCode}
// Admin only. Zero/absent time values leave that deadline untouched.
func (h *EventHandler) UpdateDeadlines(w http.ResponseWriter, r *http.Request) {
	authCode := r.PathValue("authCode")
	if authCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "auth code is required")
		return
	}

	var req models.UpdateDeadlinesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	eventID, err := h.engine.UpdateDeadlines(authCode, req.RegistrationDeadline, req.VotingDeadline)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrAccessDenied):
			middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
		case errors.Is(err, engine.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		default:
			slog.Error("failed to update deadlines", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	slog.Info("event deadlines updated", "event_id", eventID)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"event_id": eventID,
		"message":  "Deadlines updated",
	})
}

// SetResultsState handles PUT /events/results/{state}/{authCode}
// Admin only. State is "open" or "close".
func (h *EventHandler) SetResultsState(w http.ResponseWriter, r *http.Request) {
	authCode := r.PathValue("authCode")
	if authCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "auth code is required")
		return
	}

	var open bool
	switch strings.ToLower(r.PathValue("state")) {
	case "open":
		open = true
	case "close":
		open = false
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "state must be 'open' or 'close'")
		return
	}

	eventID, err := h.engine.SetResultsOpen(authCode, open)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrAccessDenied):
			middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
		case errors.Is(err, engine.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		default:
			slog.Error("failed to set results state", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	message := "Results closed for event " + eventID
	if open {
		message = "Results opened for event " + eventID
	}

	slog.Info("results state changed", "event_id", eventID, "open", open)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"event_id": eventID,
		"message":  message,
	})
}
