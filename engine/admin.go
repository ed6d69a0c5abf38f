// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"
	"time"

	"github.com/avogel3/costumevote/store"
)

// requireAdmin resolves the code and rejects everything that is not an
// admin of some event. Unknown codes read as non-admins.
func (e *Engine) requireAdmin(authCode string) (eventID string, err error) {
	code, err := store.NewTokens(e.db).Resolve(authCode)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrAccessDenied
	}
	if err != nil {
		return "", err
	}
	if !code.IsAdmin {
		return "", ErrAccessDenied
	}
	return code.EventID, nil
}

// SetResultsOpen toggles result visibility for the admin's own event
// and returns the event id.
func (e *Engine) SetResultsOpen(authCode string, open bool) (string, error) {
	eventID, err := e.requireAdmin(authCode)
	if err != nil {
		return "", err
	}

	if err := store.NewEvents(e.db).SetResultsOpen(eventID, open); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return eventID, nil
}

// UpdateDeadlines sets the provided deadlines on the admin's own event.
// Zero time values leave the corresponding deadline untouched.
func (e *Engine) UpdateDeadlines(authCode string, registration, voting time.Time) (string, error) {
	eventID, err := e.requireAdmin(authCode)
	if err != nil {
		return "", err
	}

	if err := store.NewEvents(e.db).UpdateDeadlines(eventID, registration, voting); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return eventID, nil
}

// DeleteCandidate removes a candidate by id. Admin only; remaining
// candidates keep their counters and registration order.
func (e *Engine) DeleteCandidate(authCode, candidateID string) error {
	if _, err := e.requireAdmin(authCode); err != nil {
		return err
	}

	err := store.NewCandidates(e.db).Delete(candidateID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// DeleteCandidateByCode removes the candidate registered with the
// target code and returns the deleted candidate id. Admin only.
func (e *Engine) DeleteCandidateByCode(authCode, targetCode string) (string, error) {
	if _, err := e.requireAdmin(authCode); err != nil {
		return "", err
	}

	id, err := store.NewCandidates(e.db).DeleteByAuthCode(targetCode)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrNotFound
	}
	return id, err
}
