// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avogel3/costumevote/engine"
	"github.com/avogel3/costumevote/models"
	"github.com/avogel3/costumevote/testutil"
)

func TestGetEventHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	eventID := testutil.CreateVotingEvent(t, db)
	authCode := testutil.CreateTestCode(t, db, eventID, false)

	handler := NewEventHandler(engine.New(db))

	req := httptest.NewRequest("GET", "/events/"+authCode, nil)
	req.SetPathValue("authCode", authCode)
	w := httptest.NewRecorder()
	handler.GetEvent(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d. Body: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp models.EventResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Event.ID != eventID {
		t.Errorf("Expected event %s, got %s", eventID, resp.Event.ID)
	}
	if resp.Phase != models.PhaseVoting {
		t.Errorf("Expected voting phase, got %s", resp.Phase)
	}

	req = httptest.NewRequest("GET", "/events/not-a-code", nil)
	req.SetPathValue("authCode", "not-a-code")
	w = httptest.NewRecorder()
	handler.GetEvent(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestUpdateDeadlinesHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	reg := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	vote := time.Now().Add(2 * time.Hour).UTC().Truncate(time.Second)
	eventID := testutil.CreateTestEvent(t, db, reg, vote, false)
	voterCode := testutil.CreateTestCode(t, db, eventID, false)
	adminCode := testutil.CreateTestCode(t, db, eventID, true)

	handler := NewEventHandler(engine.New(db))

	newVote := vote.Add(time.Hour)

	put := func(authCode string, body interface{}) *httptest.ResponseRecorder {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		req := httptest.NewRequest("PUT", "/events/deadlines/"+authCode, bytes.NewReader(data))
		req.SetPathValue("authCode", authCode)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.UpdateDeadlines(w, req)
		return w
	}

	w := put(voterCode, models.UpdateDeadlinesRequest{VotingDeadline: newVote})
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status %d for voter, got %d", http.StatusForbidden, w.Code)
	}

	w = put(adminCode, models.UpdateDeadlinesRequest{VotingDeadline: newVote})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d. Body: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var got time.Time
	if err := db.QueryRow(`SELECT voting_deadline FROM event WHERE id = $1`, eventID).Scan(&got); err != nil {
		t.Fatalf("Failed to read deadline back: %v", err)
	}
	if !got.Equal(newVote) {
		t.Errorf("Expected voting deadline %v, got %v", newVote, got)
	}
	if err := db.QueryRow(`SELECT registration_deadline FROM event WHERE id = $1`, eventID).Scan(&got); err != nil {
		t.Fatalf("Failed to read deadline back: %v", err)
	}
	if !got.Equal(reg) {
		t.Errorf("Registration deadline should be untouched, got %v", got)
	}
}

func TestSetResultsStateHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	eventID := testutil.CreateVotingEvent(t, db)
	voterCode := testutil.CreateTestCode(t, db, eventID, false)
	adminCode := testutil.CreateTestCode(t, db, eventID, true)

	handler := NewEventHandler(engine.New(db))

	put := func(state, authCode string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("PUT", "/events/results/"+state+"/"+authCode, nil)
		req.SetPathValue("state", state)
		req.SetPathValue("authCode", authCode)
		w := httptest.NewRecorder()
		handler.SetResultsState(w, req)
		return w
	}

	resultsOpen := func() bool {
		var open bool
		if err := db.QueryRow(`SELECT results_open FROM event WHERE id = $1`, eventID).Scan(&open); err != nil {
			t.Fatalf("Failed to read results_open: %v", err)
		}
		return open
	}

	if w := put("open", voterCode); w.Code != http.StatusForbidden {
		t.Errorf("Expected status %d for voter, got %d", http.StatusForbidden, w.Code)
	}
	if resultsOpen() {
		t.Error("Voter request must not open results")
	}

	if w := put("open", adminCode); w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d. Body: %s", http.StatusOK, w.Code, w.Body.String())
	}
	if !resultsOpen() {
		t.Error("Expected results open")
	}

	if w := put("close", adminCode); w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if resultsOpen() {
		t.Error("Expected results closed again")
	}

	if w := put("maybe", adminCode); w.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d for bad state, got %d", http.StatusBadRequest, w.Code)
	}
}
