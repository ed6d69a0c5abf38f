// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/avogel3/costumevote/testutil"
)

func TestResolve(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	eventID := testutil.CreateVotingEvent(t, conn)
	authCode := testutil.CreateTestCode(t, conn, eventID, true)

	tokens := NewTokens(conn)

	code, err := tokens.Resolve(authCode)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if code.EventID != eventID {
		t.Errorf("Expected event %s, got %s", eventID, code.EventID)
	}
	if !code.IsAdmin {
		t.Error("Expected admin code")
	}
	if code.HasVoted {
		t.Error("New code should not have voted")
	}

	_, err = tokens.Resolve("no-such-code")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestIsAdminAndHasVoted_Defaults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	tokens := NewTokens(conn)

	// Unknown codes default to false, never error
	if tokens.IsAdmin("no-such-code") {
		t.Error("Unknown code should not be admin")
	}
	if tokens.HasVoted("no-such-code") {
		t.Error("Unknown code should not have voted")
	}
}

func TestMarkVoted(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	eventID := testutil.CreateVotingEvent(t, conn)
	authCode := testutil.CreateTestCode(t, conn, eventID, false)

	tokens := NewTokens(conn)

	// First transition succeeds
	if err := tokens.MarkVoted(authCode); err != nil {
		t.Fatalf("First MarkVoted failed: %v", err)
	}
	if !tokens.HasVoted(authCode) {
		t.Error("Expected has_voted true after MarkVoted")
	}

	// Second transition reports the consumed code
	err := tokens.MarkVoted(authCode)
	if !errors.Is(err, ErrAlreadyVoted) {
		t.Errorf("Expected ErrAlreadyVoted, got %v", err)
	}

	// Unknown codes are distinguished from consumed ones
	err = tokens.MarkVoted("no-such-code")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// TestMarkVoted_Concurrent verifies the compare-and-set: many goroutines
// racing on one code must produce exactly one winner.
func TestMarkVoted_Concurrent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	eventID := testutil.CreateVotingEvent(t, conn)
	authCode := testutil.CreateTestCode(t, conn, eventID, false)

	tokens := NewTokens(conn)

	const racers = 20
	var wins, losses atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tokens.MarkVoted(authCode)
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, ErrAlreadyVoted):
				losses.Add(1)
			default:
				t.Errorf("Unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if wins.Load() != 1 {
		t.Errorf("Expected exactly 1 winner, got %d", wins.Load())
	}
	if losses.Load() != racers-1 {
		t.Errorf("Expected %d losers, got %d", racers-1, losses.Load())
	}
}
