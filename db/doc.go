// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db creates the PostgreSQL schema for the costume vote API.

Four tables: event, code, candidate, image. Schema creation is
idempotent (IF NOT EXISTS) and runs on every server start:

	if err := db.CreateSchema(conn); err != nil { ... }

Events and codes are seeded out of band at event setup time; the server
itself only inserts candidate and image rows.
*/
package db
