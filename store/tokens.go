// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/avogel3/costumevote/models"
)

// Tokens reads and transitions auth code rows.
type Tokens struct {
	q Querier
}

func NewTokens(q Querier) *Tokens {
	return &Tokens{q: q}
}

// Resolve looks up a code row by its auth code.
func (s *Tokens) Resolve(authCode string) (models.Code, error) {
	var c models.Code
	err := s.q.QueryRow(`
		SELECT auth_code, event_id, is_admin, has_voted
		FROM code
		WHERE auth_code = $1
	`, authCode).Scan(&c.AuthCode, &c.EventID, &c.IsAdmin, &c.HasVoted)

	if err == sql.ErrNoRows {
		return models.Code{}, ErrNotFound
	}
	if err != nil {
		return models.Code{}, fmt.Errorf("resolve auth code: %w", err)
	}
	return c, nil
}

// EventOf returns the id of the event the code belongs to.
func (s *Tokens) EventOf(authCode string) (string, error) {
	c, err := s.Resolve(authCode)
	if err != nil {
		return "", err
	}
	return c.EventID, nil
}

// IsAdmin reports whether the code carries the admin flag.
// Unknown codes are never admins.
func (s *Tokens) IsAdmin(authCode string) bool {
	c, err := s.Resolve(authCode)
	if err != nil {
		return false
	}
	return c.IsAdmin
}

// HasVoted reports whether the code's one-shot vote is consumed.
// Unknown codes report false.
func (s *Tokens) HasVoted(authCode string) bool {
	c, err := s.Resolve(authCode)
	if err != nil {
		return false
	}
	return c.HasVoted
}

// MarkVoted flips has_voted exactly once. The guarded UPDATE is a
// compare-and-set: RowsAffected is 1 only for the single caller that
// performed the false→true transition.
func (s *Tokens) MarkVoted(authCode string) error {
	res, err := s.q.Exec(`
		UPDATE code SET has_voted = TRUE
		WHERE auth_code = $1 AND NOT has_voted
	`, authCode)
	if err != nil {
		return fmt.Errorf("mark voted: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark voted: %w", err)
	}
	if n == 1 {
		return nil
	}

	// Zero rows: the code is unknown, or it already voted.
	if _, err := s.Resolve(authCode); err != nil {
		return err
	}
	return ErrAlreadyVoted
}
