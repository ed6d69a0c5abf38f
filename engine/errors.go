// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "errors"

var (
	ErrInvalidToken      = errors.New("auth code does not exist in any current event")
	ErrAlreadyVoted      = errors.New("auth code was already used")
	ErrAlreadyRegistered = errors.New("auth code already registered a candidate")
	ErrRegistrationOver  = errors.New("the event is past the registration phase")
	ErrEventMismatch     = errors.New("candidate and auth code do not belong to the same event")
	ErrVotingClosed      = errors.New("the event is not in voting phase")
	ErrResultsClosed     = errors.New("event results are closed")
	ErrAccessDenied      = errors.New("access denied")
	ErrNotFound          = errors.New("not found")
	ErrNoCandidates      = errors.New("vote batch is empty")
)
