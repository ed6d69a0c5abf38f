// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
)

// Images links uploaded image ids to codes. An upload may happen before
// registration, so the link lives outside the candidate row until then.
type Images struct {
	q Querier
}

func NewImages(q Querier) *Images {
	return &Images{q: q}
}

// Link stores the image id for a code, replacing any earlier upload.
func (s *Images) Link(authCode, imageID string) error {
	_, err := s.q.Exec(`
		INSERT INTO image (auth_code, image_id)
		VALUES ($1, $2)
		ON CONFLICT (auth_code) DO UPDATE SET image_id = EXCLUDED.image_id, uploaded_at = NOW()
	`, authCode, imageID)
	if err != nil {
		return fmt.Errorf("link image: %w", err)
	}
	return nil
}

// For returns the image id uploaded for a code, or "" when none exists.
func (s *Images) For(authCode string) (string, error) {
	var imageID string
	err := s.q.QueryRow(`SELECT image_id FROM image WHERE auth_code = $1`, authCode).Scan(&imageID)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("image for code: %w", err)
	}
	return imageID, nil
}
