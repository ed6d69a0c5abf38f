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

type VoteHandler struct {
	engine *engine.Engine
}

func NewVoteHandler(eng *engine.Engine) *VoteHandler {
	return &VoteHandler{engine: eng}
}

// CastVotes handles POST /votes
func (h *VoteHandler) CastVotes(w http.ResponseWriter, r *http.Request) {
	var req models.CastVotesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.AuthCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "auth_code is required")
		return
	}
	if len(req.CandidateIDs) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_ids cannot be empty")
		return
	}

	receipt, err := h.engine.CastVotes(req.AuthCode, req.CandidateIDs)
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrInvalidToken):
			middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, engine.ErrAlreadyVoted):
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, engine.ErrEventMismatch):
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, engine.ErrVotingClosed):
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, engine.ErrNotFound):
			middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		case errors.Is(err, engine.ErrNoCandidates):
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("failed to cast votes", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	slog.Info("votes recorded",
		"event_id", receipt.EventID,
		"candidates", len(receipt.CandidateIDs),
		"remote", middleware.GetClientIP(r),
	)

	middleware.JSONResponse(w, http.StatusOK, models.CastVotesResponse{
		EventID:      receipt.EventID,
		CandidateIDs: receipt.CandidateIDs,
		NewCounts:    receipt.NewCounts,
	})
}
