// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"

	"github.com/avogel3/costumevote/models"
	"github.com/avogel3/costumevote/store"
)

// TokenInfo describes what a code can still do.
type TokenInfo struct {
	IsValid      bool
	IsRegistered bool
	HasVoted     bool
	IsAdmin      bool
}

// TokenInfo reports the code's state. Unknown codes come back all-false
// rather than erroring; clients poll this to drive their UI.
func (e *Engine) TokenInfo(authCode string) (TokenInfo, error) {
	code, err := store.NewTokens(e.db).Resolve(authCode)
	if errors.Is(err, store.ErrNotFound) {
		return TokenInfo{}, nil
	}
	if err != nil {
		return TokenInfo{}, err
	}

	registered, err := store.NewCandidates(e.db).IsRegistered(authCode)
	if err != nil {
		return TokenInfo{}, err
	}

	return TokenInfo{
		IsValid:      true,
		IsRegistered: registered,
		HasVoted:     code.HasVoted,
		IsAdmin:      code.IsAdmin,
	}, nil
}

// EventFor returns the token's event together with its current phase.
func (e *Engine) EventFor(authCode string) (models.Event, models.EventPhase, error) {
	eventID, err := store.NewTokens(e.db).EventOf(authCode)
	if errors.Is(err, store.ErrNotFound) {
		return models.Event{}, "", ErrInvalidToken
	}
	if err != nil {
		return models.Event{}, "", err
	}

	evt, err := store.NewEvents(e.db).Get(eventID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Event{}, "", ErrNotFound
	}
	if err != nil {
		return models.Event{}, "", err
	}

	return evt, Phase(evt, e.now()), nil
}
