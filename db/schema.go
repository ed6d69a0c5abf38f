// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Events
CREATE TABLE IF NOT EXISTS event (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    registration_deadline TIMESTAMPTZ NOT NULL,
    voting_deadline TIMESTAMPTZ NOT NULL,
    results_open BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Auth codes
CREATE TABLE IF NOT EXISTS code (
    auth_code TEXT PRIMARY KEY,
    event_id TEXT NOT NULL REFERENCES event(id) ON DELETE CASCADE,
    is_admin BOOLEAN NOT NULL DEFAULT FALSE,
    has_voted BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_code_event_id ON code(event_id);

-- Candidates
-- seq records registration order and breaks ranking ties.
CREATE TABLE IF NOT EXISTS candidate (
    id TEXT PRIMARY KEY,
    auth_code TEXT NOT NULL UNIQUE REFERENCES code(auth_code) ON DELETE CASCADE,
    event_id TEXT NOT NULL REFERENCES event(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    costume TEXT NOT NULL,
    image_id TEXT,
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
    seq BIGSERIAL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_candidate_event_id ON candidate(event_id);
CREATE INDEX IF NOT EXISTS idx_candidate_ranking ON candidate(event_id, votes DESC, seq ASC);

-- Uploaded images, keyed by code so an upload can precede registration
CREATE TABLE IF NOT EXISTS image (
    auth_code TEXT PRIMARY KEY REFERENCES code(auth_code) ON DELETE CASCADE,
    image_id TEXT NOT NULL,
    uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`
