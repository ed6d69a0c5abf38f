// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/avogel3/costumevote/store"
	"github.com/avogel3/costumevote/testutil"
)

func nowOffset(hours int) time.Time {
	return time.Now().Add(time.Duration(hours) * time.Hour)
}

func TestResults_Gating(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	eventID := testutil.CreateVotingEvent(t, conn)
	voterCode := testutil.CreateTestCode(t, conn, eventID, false)
	adminCode := testutil.CreateTestCode(t, conn, eventID, true)
	testutil.CreateTestCandidate(t, conn, eventID, "Alice", 3)

	eng := New(conn)

	// Closed: plain voters are shut out, admins see through.
	if _, err := eng.Results(voterCode, 5); !errors.Is(err, ErrResultsClosed) {
		t.Errorf("Expected ErrResultsClosed, got %v", err)
	}
	if _, err := eng.Results(adminCode, 5); err != nil {
		t.Errorf("Admin should bypass the results gate, got %v", err)
	}

	if err := store.NewEvents(conn).SetResultsOpen(eventID, true); err != nil {
		t.Fatalf("SetResultsOpen failed: %v", err)
	}
	ranking, err := eng.Results(voterCode, 5)
	if err != nil {
		t.Fatalf("Results failed after opening: %v", err)
	}
	if len(ranking.Top) != 1 || ranking.Top[0].Name != "Alice" {
		t.Errorf("Unexpected ranking: %+v", ranking)
	}

	if _, err := eng.Results("not-a-code", 5); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestResults_RankingAndTies(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	eventID := testutil.CreateTestEvent(t, conn, nowOffset(-2), nowOffset(-1), true)
	code := testutil.CreateTestCode(t, conn, eventID, false)

	// A and B tie; A registered first and must stay ahead.
	a := testutil.CreateTestCandidate(t, conn, eventID, "A", 10)
	b := testutil.CreateTestCandidate(t, conn, eventID, "B", 10)
	c := testutil.CreateTestCandidate(t, conn, eventID, "C", 7)

	eng := New(conn)

	ranking, err := eng.Results(code, 2)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	if len(ranking.Top) != 2 || ranking.Top[0].ID != a || ranking.Top[1].ID != b {
		t.Errorf("Expected top [A B], got %+v", ranking.Top)
	}
	if len(ranking.Rest) != 1 || ranking.Rest[0].ID != c {
		t.Errorf("Expected rest [C], got %+v", ranking.Rest)
	}

	// Same data, same order.
	again, err := eng.Results(code, 2)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	for i := range ranking.Top {
		if again.Top[i].ID != ranking.Top[i].ID {
			t.Error("Expected ranking to be deterministic across calls")
		}
	}
}

func TestResults_TopNClamping(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	eventID := testutil.CreateTestEvent(t, conn, nowOffset(-2), nowOffset(-1), true)
	code := testutil.CreateTestCode(t, conn, eventID, false)
	testutil.CreateTestCandidate(t, conn, eventID, "A", 5)
	testutil.CreateTestCandidate(t, conn, eventID, "B", 3)

	eng := New(conn)

	ranking, err := eng.Results(code, 10)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	if len(ranking.Top) != 2 || len(ranking.Rest) != 0 {
		t.Errorf("Expected all candidates in top, got %d/%d", len(ranking.Top), len(ranking.Rest))
	}

	ranking, err = eng.Results(code, 0)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}
	if len(ranking.Top) != 0 || len(ranking.Rest) != 2 {
		t.Errorf("Expected everything in rest, got %d/%d", len(ranking.Top), len(ranking.Rest))
	}
}

func TestCandidatesFor(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	eventID := testutil.CreateVotingEvent(t, conn)
	code := testutil.CreateTestCode(t, conn, eventID, false)
	first := testutil.CreateTestCandidate(t, conn, eventID, "First", 9)
	second := testutil.CreateTestCandidate(t, conn, eventID, "Second", 1)

	eng := New(conn)

	// No results gate on the plain listing.
	list, err := eng.CandidatesFor(code)
	if err != nil {
		t.Fatalf("CandidatesFor failed: %v", err)
	}
	if len(list) != 2 || list[0].ID != first || list[1].ID != second {
		t.Errorf("Expected registration order, got %+v", list)
	}

	if _, err := eng.CandidatesFor("not-a-code"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}
