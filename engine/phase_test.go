// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"testing"
	"time"

	"github.com/avogel3/costumevote/models"
)

func TestPhase(t *testing.T) {
	base := time.Date(2025, 10, 31, 18, 0, 0, 0, time.UTC)
	evt := models.Event{
		RegistrationDeadline: base,
		VotingDeadline:       base.Add(10 * time.Minute),
	}

	tests := []struct {
		name string
		now  time.Time
		want models.EventPhase
	}{
		{"before registration deadline", base.Add(-time.Minute), models.PhaseRegistration},
		{"at registration deadline", base, models.PhaseRegistration},
		{"between deadlines", base.Add(5 * time.Minute), models.PhaseVoting},
		{"just before voting deadline", base.Add(10*time.Minute - time.Second), models.PhaseVoting},
		{"at voting deadline", base.Add(10 * time.Minute), models.PhaseEnd},
		{"after voting deadline", base.Add(11 * time.Minute), models.PhaseEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Phase(evt, tt.now); got != tt.want {
				t.Errorf("Phase() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A zero voting deadline means voting never closes.
func TestPhase_OpenEndedVoting(t *testing.T) {
	base := time.Date(2025, 10, 31, 18, 0, 0, 0, time.UTC)
	evt := models.Event{RegistrationDeadline: base}

	if got := Phase(evt, base.Add(-time.Hour)); got != models.PhaseRegistration {
		t.Errorf("Phase() = %v, want registration", got)
	}
	if got := Phase(evt, base.Add(24*365*time.Hour)); got != models.PhaseVoting {
		t.Errorf("Phase() = %v, want voting far in the future", got)
	}
}
