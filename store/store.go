// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrAlreadyVoted = errors.New("auth code was already used")
)

// Querier is the subset of database/sql shared by *sql.DB and *sql.Tx,
// so every store works both standalone and inside a transaction.
type Querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
