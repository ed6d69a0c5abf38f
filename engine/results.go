// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"
	"sort"

	"github.com/avogel3/costumevote/models"
	"github.com/avogel3/costumevote/store"
)

// Ranking splits an event's candidates into the leading topN and the
// remainder, both sorted by votes descending.
type Ranking struct {
	EventID string
	Top     []models.Candidate
	Rest    []models.Candidate
}

// Results assembles the ranked candidate list for the token's event.
// Results stay hidden until the event opens them; admin codes bypass
// the switch. Ties keep registration order, so repeated calls over
// unchanged data return identical rankings.
func (e *Engine) Results(authCode string, topN int) (Ranking, error) {
	tokens := store.NewTokens(e.db)

	code, err := tokens.Resolve(authCode)
	if errors.Is(err, store.ErrNotFound) {
		return Ranking{}, ErrInvalidToken
	}
	if err != nil {
		return Ranking{}, err
	}

	evt, err := store.NewEvents(e.db).Get(code.EventID)
	if errors.Is(err, store.ErrNotFound) {
		return Ranking{}, ErrNotFound
	}
	if err != nil {
		return Ranking{}, err
	}

	if !evt.ResultsOpen && !code.IsAdmin {
		return Ranking{}, ErrResultsClosed
	}

	// ListByEvent returns registration order; the stable sort keeps it
	// within equal vote counts.
	list, err := store.NewCandidates(e.db).ListByEvent(code.EventID)
	if err != nil {
		return Ranking{}, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Votes > list[j].Votes
	})

	if topN < 0 {
		topN = 0
	}
	if topN > len(list) {
		topN = len(list)
	}

	return Ranking{
		EventID: code.EventID,
		Top:     list[:topN],
		Rest:    list[topN:],
	}, nil
}

// CandidatesFor lists all candidates of the token's event in
// registration order. No phase or results gate: browsing entries is
// open to any valid code. Callers that show this mid-event should
// shuffle it so the counter order does not leak a ranking.
func (e *Engine) CandidatesFor(authCode string) ([]models.Candidate, error) {
	eventID, err := store.NewTokens(e.db).EventOf(authCode)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}

	return store.NewCandidates(e.db).ListByEvent(eventID)
}
