// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/avogel3/costumevote/models"
)

// Candidates is the per-candidate vote ledger plus candidate CRUD.
type Candidates struct {
	q Querier
}

func NewCandidates(q Querier) *Candidates {
	return &Candidates{q: q}
}

// Get looks up a candidate by id.
func (s *Candidates) Get(id string) (models.Candidate, error) {
	var c models.Candidate
	var imageID sql.NullString
	err := s.q.QueryRow(`
		SELECT id, event_id, name, costume, image_id, votes, seq
		FROM candidate
		WHERE id = $1
	`, id).Scan(&c.ID, &c.EventID, &c.Name, &c.Costume, &imageID, &c.Votes, &c.Seq)

	if err == sql.ErrNoRows {
		return models.Candidate{}, ErrNotFound
	}
	if err != nil {
		return models.Candidate{}, fmt.Errorf("get candidate: %w", err)
	}
	c.ImageID = imageID.String
	return c, nil
}

// VoteCount returns the candidate's current vote counter.
func (s *Candidates) VoteCount(id string) (int, error) {
	var votes int
	err := s.q.QueryRow(`SELECT votes FROM candidate WHERE id = $1`, id).Scan(&votes)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("vote count: %w", err)
	}
	return votes, nil
}

// EventOf returns the id of the event the candidate belongs to.
func (s *Candidates) EventOf(id string) (string, error) {
	var eventID string
	err := s.q.QueryRow(`SELECT event_id FROM candidate WHERE id = $1`, id).Scan(&eventID)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("candidate event: %w", err)
	}
	return eventID, nil
}

// IncrementVote adds one vote and returns the new count. The counter
// moves in a single UPDATE so concurrent increments never lose updates.
func (s *Candidates) IncrementVote(id string) (int, error) {
	var votes int
	err := s.q.QueryRow(`
		UPDATE candidate SET votes = votes + 1
		WHERE id = $1
		RETURNING votes
	`, id).Scan(&votes)

	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("increment vote: %w", err)
	}
	return votes, nil
}

// ListByEvent returns all candidates of an event in registration order.
func (s *Candidates) ListByEvent(eventID string) ([]models.Candidate, error) {
	rows, err := s.q.Query(`
		SELECT id, event_id, name, costume, image_id, votes, seq
		FROM candidate
		WHERE event_id = $1
		ORDER BY seq
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		var imageID sql.NullString
		if err := rows.Scan(&c.ID, &c.EventID, &c.Name, &c.Costume, &imageID, &c.Votes, &c.Seq); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		c.ImageID = imageID.String
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	return candidates, nil
}

// IsRegistered reports whether the code already has a candidate row.
func (s *Candidates) IsRegistered(authCode string) (bool, error) {
	var exists bool
	err := s.q.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM candidate WHERE auth_code = $1)
	`, authCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check registration: %w", err)
	}
	return exists, nil
}

// Insert creates the candidate row and fills in its assigned seq.
func (s *Candidates) Insert(c *models.Candidate, authCode string) error {
	var imageID *string
	if c.ImageID != "" {
		imageID = &c.ImageID
	}
	err := s.q.QueryRow(`
		INSERT INTO candidate (id, auth_code, event_id, name, costume, image_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING seq
	`, c.ID, authCode, c.EventID, c.Name, c.Costume, imageID).Scan(&c.Seq)
	if err != nil {
		return fmt.Errorf("insert candidate: %w", err)
	}
	return nil
}

// Update edits the display fields. Votes and event binding never change
// through this path.
func (s *Candidates) Update(id, name, costume, imageID string) error {
	var img *string
	if imageID != "" {
		img = &imageID
	}
	res, err := s.q.Exec(`
		UPDATE candidate SET name = $2, costume = $3, image_id = $4
		WHERE id = $1
	`, id, name, costume, img)
	if err != nil {
		return fmt.Errorf("update candidate: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update candidate: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a candidate by id.
func (s *Candidates) Delete(id string) error {
	res, err := s.q.Exec(`DELETE FROM candidate WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByAuthCode removes the candidate registered with the given code
// and returns the deleted candidate id.
func (s *Candidates) DeleteByAuthCode(authCode string) (string, error) {
	var id string
	err := s.q.QueryRow(`
		DELETE FROM candidate WHERE auth_code = $1
		RETURNING id
	`, authCode).Scan(&id)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("delete candidate by code: %w", err)
	}
	return id, nil
}
