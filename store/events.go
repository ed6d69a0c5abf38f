// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/avogel3/costumevote/models"
)

// Events reads and updates event rows. Events are created out of band;
// the engine only ever mutates results_open and the deadlines.
type Events struct {
	q Querier
}

func NewEvents(q Querier) *Events {
	return &Events{q: q}
}

// Get looks up an event by id.
func (s *Events) Get(id string) (models.Event, error) {
	var e models.Event
	err := s.q.QueryRow(`
		SELECT id, name, registration_deadline, voting_deadline, results_open, created_at
		FROM event
		WHERE id = $1
	`, id).Scan(&e.ID, &e.Name, &e.RegistrationDeadline, &e.VotingDeadline, &e.ResultsOpen, &e.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Event{}, ErrNotFound
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// SetResultsOpen toggles result visibility for the event.
func (s *Events) SetResultsOpen(id string, open bool) error {
	res, err := s.q.Exec(`UPDATE event SET results_open = $2 WHERE id = $1`, id, open)
	if err != nil {
		return fmt.Errorf("set results open: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set results open: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateDeadlines sets the provided deadlines. A zero time leaves the
// corresponding column untouched.
func (s *Events) UpdateDeadlines(id string, registration, voting time.Time) error {
	var (
		res sql.Result
		err error
	)

	switch {
	case !registration.IsZero() && !voting.IsZero():
		res, err = s.q.Exec(`
			UPDATE event SET registration_deadline = $2, voting_deadline = $3
			WHERE id = $1
		`, id, registration, voting)
	case !registration.IsZero():
		res, err = s.q.Exec(`
			UPDATE event SET registration_deadline = $2
			WHERE id = $1
		`, id, registration)
	case !voting.IsZero():
		res, err = s.q.Exec(`
			UPDATE event SET voting_deadline = $2
			WHERE id = $1
		`, id, voting)
	default:
		// Nothing to change; still report unknown events.
		_, err := s.Get(id)
		return err
	}

	if err != nil {
		return fmt.Errorf("update deadlines: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update deadlines: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
