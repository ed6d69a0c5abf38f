// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and wire types for the costume vote API.

# Domain Types

Three persisted entities back the whole service:

  - Event: a time-boxed contest with two deadlines and a results switch
  - Code: a single-use auth code bound to one event
  - Candidate: a registered contestant with a vote counter

EventPhase (registration → voting → end) is derived from the event
deadlines on every request and never stored.

# Request/Response Types

All HTTP payloads live here so handlers and tests share one set of
JSON-tagged structs. Failures use the ErrorResponse envelope:

	{"error": "Conflict", "message": "auth code was already used"}
*/
package models
