// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/avogel3/costumevote/engine"
	"github.com/avogel3/costumevote/middleware"
	"github.com/avogel3/costumevote/models"
)

type CandidateHandler struct {
	engine *engine.Engine
}

func NewCandidateHandler(eng *engine.Engine) *CandidateHandler {
	return &CandidateHandler{engine: eng}
}

// Register handles POST /register/{authCode}
func (h *CandidateHandler) Register(w http.ResponseWriter, r *http.Request) {
	authCode := r.PathValue("authCode")
	if authCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "auth code is required")
		return
	}

	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.Costume == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name and costume are required")
		return
	}

	candidate, err := h.engine.Register(authCode, req.Name, req.Costume)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidToken):
			middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, engine.ErrAlreadyRegistered):
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, engine.ErrRegistrationOver):
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		default:
			slog.Error("failed to register candidate", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	slog.Info("candidate registered", "candidate_id", candidate.ID, "event_id", candidate.EventID, "name", candidate.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		CandidateID: candidate.ID,
	})
}

// Update handles PUT /candidates
// Edits display fields only; vote counters never change here.
func (h *CandidateHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}
	if req.Name == "" || req.Costume == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name and costume are required")
		return
	}

	if err := h.engine.UpdateCandidate(req.ID, req.Name, req.Costume, req.ImageID); err != nil {
		switch {
		case errors.Is(err, engine.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		default:
			slog.Error("failed to update candidate", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Updated successfully",
	})
}

// DeleteByID handles DELETE /candidates/{id}/{authCode}
func (h *CandidateHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	candidateID := r.PathValue("id")
	authCode := r.PathValue("authCode")
	if candidateID == "" || authCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate id and auth code are required")
		return
	}

	if err := h.engine.DeleteCandidate(authCode, candidateID); err != nil {
		switch {
		case errors.Is(err, engine.ErrAccessDenied):
			middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
		case errors.Is(err, engine.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		default:
			slog.Error("failed to delete candidate", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	slog.Info("candidate deleted", "candidate_id", candidateID)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Candidate " + candidateID + " deleted",
	})
}

// DeleteByCode handles DELETE /candidates/code/{target}/{authCode}
// Removes the candidate registered with the target code.
func (h *CandidateHandler) DeleteByCode(w http.ResponseWriter, r *http.Request) {
	targetCode := r.PathValue("target")
	authCode := r.PathValue("authCode")
	if targetCode == "" || authCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "target code and auth code are required")
		return
	}

	candidateID, err := h.engine.DeleteCandidateByCode(authCode, targetCode)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrAccessDenied):
			middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
		case errors.Is(err, engine.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, "Candidate not found")
		default:
			slog.Error("failed to delete candidate", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	slog.Info("candidate deleted", "candidate_id", candidateID, "target_code", targetCode)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Candidate " + candidateID + " deleted",
	})
}
