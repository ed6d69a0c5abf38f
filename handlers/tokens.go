// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/avogel3/costumevote/engine"
	"github.com/avogel3/costumevote/middleware"
	"github.com/avogel3/costumevote/models"
)

type TokenHandler struct {
	engine *engine.Engine
}

func NewTokenHandler(eng *engine.Engine) *TokenHandler {
	return &TokenHandler{engine: eng}
}

// GetTokenInfo handles GET /tokens/{authCode}
// Unknown codes return 200 with every flag false, so clients can probe
// a typed-in code without triggering error handling.
func (h *TokenHandler) GetTokenInfo(w http.ResponseWriter, r *http.Request) {
	authCode := r.PathValue("authCode")
	if authCode == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "auth code is required")
		return
	}

	info, err := h.engine.TokenInfo(authCode)
	if err != nil {
		slog.Error("failed to load token info", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TokenInfoResponse{
		IsValid:      info.IsValid,
		IsRegistered: info.IsRegistered,
		HasVoted:     info.HasVoted,
		IsAdmin:      info.IsAdmin,
	})
}
