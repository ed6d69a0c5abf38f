// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avogel3/costumevote/models"
	"github.com/avogel3/costumevote/store"
)

// Engine orchestrates voting, results and admin actions over the store.
type Engine struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Engine {
	return &Engine{db: db, now: time.Now}
}

// NewWithClock injects the time source, for tests and deterministic replay.
func NewWithClock(db *sql.DB, now func() time.Time) *Engine {
	return &Engine{db: db, now: now}
}

// VoteReceipt reports a recorded vote batch: the new counts line up
// with CandidateIDs in request order.
type VoteReceipt struct {
	EventID      string
	CandidateIDs []string
	NewCounts    []int
}

// CastVotes records one vote per listed candidate and consumes the auth
// code, all in a single transaction. The has_voted compare-and-set runs
// first, so two concurrent requests with the same code settle on the
// row lock: exactly one commits the transition and the loser's batch
// rolls back before any counter moved.
func (e *Engine) CastVotes(authCode string, candidateIDs []string) (VoteReceipt, error) {
	if len(candidateIDs) == 0 {
		return VoteReceipt{}, ErrNoCandidates
	}

	tx, err := e.db.Begin()
	if err != nil {
		return VoteReceipt{}, fmt.Errorf("begin vote transaction: %w", err)
	}
	defer tx.Rollback()

	tokens := store.NewTokens(tx)
	candidates := store.NewCandidates(tx)
	events := store.NewEvents(tx)

	code, err := tokens.Resolve(authCode)
	if errors.Is(err, store.ErrNotFound) {
		return VoteReceipt{}, ErrInvalidToken
	}
	if err != nil {
		return VoteReceipt{}, err
	}

	// Reserve the one-shot flag before touching any counter.
	if err := tokens.MarkVoted(authCode); err != nil {
		if errors.Is(err, store.ErrAlreadyVoted) {
			return VoteReceipt{}, ErrAlreadyVoted
		}
		if errors.Is(err, store.ErrNotFound) {
			return VoteReceipt{}, ErrInvalidToken
		}
		return VoteReceipt{}, err
	}

	// The whole batch must target the code's own event.
	for _, id := range candidateIDs {
		candidateEvent, err := candidates.EventOf(id)
		if errors.Is(err, store.ErrNotFound) {
			return VoteReceipt{}, fmt.Errorf("%w: candidate %s", ErrNotFound, id)
		}
		if err != nil {
			return VoteReceipt{}, err
		}
		if candidateEvent != code.EventID {
			return VoteReceipt{}, ErrEventMismatch
		}
	}

	evt, err := events.Get(code.EventID)
	if errors.Is(err, store.ErrNotFound) {
		return VoteReceipt{}, fmt.Errorf("%w: event %s", ErrNotFound, code.EventID)
	}
	if err != nil {
		return VoteReceipt{}, err
	}
	if Phase(evt, e.now()) != models.PhaseVoting {
		return VoteReceipt{}, ErrVotingClosed
	}

	counts := make([]int, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		n, err := candidates.IncrementVote(id)
		if errors.Is(err, store.ErrNotFound) {
			return VoteReceipt{}, fmt.Errorf("%w: candidate %s", ErrNotFound, id)
		}
		if err != nil {
			return VoteReceipt{}, err
		}
		counts = append(counts, n)
	}

	if err := tx.Commit(); err != nil {
		return VoteReceipt{}, fmt.Errorf("commit vote transaction: %w", err)
	}

	return VoteReceipt{
		EventID:      code.EventID,
		CandidateIDs: candidateIDs,
		NewCounts:    counts,
	}, nil
}
