// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"
	"fmt"

	"github.com/avogel3/costumevote/auth"
	"github.com/avogel3/costumevote/models"
	"github.com/avogel3/costumevote/store"
)

// Register creates the candidate row for an unused code while the
// event is still taking registrations. Any image uploaded for the code
// beforehand is attached by id. The unique auth_code constraint backs
// the one-candidate-per-code rule under concurrent registrations.
func (e *Engine) Register(authCode, name, costume string) (models.Candidate, error) {
	tx, err := e.db.Begin()
	if err != nil {
		return models.Candidate{}, fmt.Errorf("begin register transaction: %w", err)
	}
	defer tx.Rollback()

	code, err := store.NewTokens(tx).Resolve(authCode)
	if errors.Is(err, store.ErrNotFound) {
		return models.Candidate{}, ErrInvalidToken
	}
	if err != nil {
		return models.Candidate{}, err
	}

	evt, err := store.NewEvents(tx).Get(code.EventID)
	if err != nil {
		return models.Candidate{}, err
	}
	if Phase(evt, e.now()) != models.PhaseRegistration {
		return models.Candidate{}, ErrRegistrationOver
	}

	candidates := store.NewCandidates(tx)
	registered, err := candidates.IsRegistered(authCode)
	if err != nil {
		return models.Candidate{}, err
	}
	if registered {
		return models.Candidate{}, ErrAlreadyRegistered
	}

	imageID, err := store.NewImages(tx).For(authCode)
	if err != nil {
		return models.Candidate{}, err
	}

	id, err := auth.GenerateID(8)
	if err != nil {
		return models.Candidate{}, fmt.Errorf("generate candidate id: %w", err)
	}

	c := models.Candidate{
		ID:      id,
		EventID: code.EventID,
		Name:    name,
		Costume: costume,
		ImageID: imageID,
	}
	if err := candidates.Insert(&c, authCode); err != nil {
		return models.Candidate{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Candidate{}, fmt.Errorf("commit register transaction: %w", err)
	}
	return c, nil
}

// AttachImage links an uploaded image id to a valid code, replacing any
// earlier upload. If the code already registered a candidate, the
// candidate row is updated too.
func (e *Engine) AttachImage(authCode, imageID string) error {
	tx, err := e.db.Begin()
	if err != nil {
		return fmt.Errorf("begin attach transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := store.NewTokens(tx).Resolve(authCode); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	if err := store.NewImages(tx).Link(authCode, imageID); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		UPDATE candidate SET image_id = $2 WHERE auth_code = $1
	`, authCode, imageID); err != nil {
		return fmt.Errorf("attach image to candidate: %w", err)
	}

	return tx.Commit()
}

// UpdateCandidate edits a candidate's display fields by id.
func (e *Engine) UpdateCandidate(id, name, costume, imageID string) error {
	err := store.NewCandidates(e.db).Update(id, name, costume, imageID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
