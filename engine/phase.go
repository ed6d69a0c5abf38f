// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"time"

	"github.com/avogel3/costumevote/models"
)

// Phase derives the event's stage from its deadlines. A zero voting
// deadline means the event has no configured end; comparisons against
// it count as "in the future", so the event never reaches PhaseEnd on
// its own.
func Phase(evt models.Event, now time.Time) models.EventPhase {
	votingOpen := evt.VotingDeadline.IsZero() || now.Before(evt.VotingDeadline)

	if now.After(evt.RegistrationDeadline) && votingOpen {
		return models.PhaseVoting
	}
	if !votingOpen {
		return models.PhaseEnd
	}
	return models.PhaseRegistration
}
