// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// EventPhase is derived from the event deadlines at request time and is
// never persisted.
type EventPhase string

const (
	PhaseRegistration EventPhase = "registration"
	PhaseVoting       EventPhase = "voting"
	PhaseEnd          EventPhase = "end"
)

// Request types

type CastVotesRequest struct {
	AuthCode     string   `json:"auth_code"`
	CandidateIDs []string `json:"candidate_ids"`
}

type RegisterRequest struct {
	Name    string `json:"name"`
	Costume string `json:"costume"`
}

type UpdateCandidateRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Costume string `json:"costume"`
	ImageID string `json:"image_id"`
}

// Zero time values mean "leave this deadline untouched".
type UpdateDeadlinesRequest struct {
	RegistrationDeadline time.Time `json:"registration_deadline"`
	VotingDeadline       time.Time `json:"voting_deadline"`
}

// Response types

type CastVotesResponse struct {
	EventID      string   `json:"event_id"`
	CandidateIDs []string `json:"candidate_ids"`
	NewCounts    []int    `json:"new_counts"`
}

type TokenInfoResponse struct {
	IsValid      bool `json:"is_valid"`
	IsRegistered bool `json:"is_registered"`
	HasVoted     bool `json:"has_voted"`
	IsAdmin      bool `json:"is_admin"`
}

type RegisterResponse struct {
	CandidateID string `json:"candidate_id"`
}

type UploadResponse struct {
	ImageID string `json:"image_id"`
}

type ResultsResponse struct {
	EventID string      `json:"event_id"`
	Top     []Candidate `json:"top"`
	Rest    []Candidate `json:"rest"`
}

type EventResponse struct {
	Event Event      `json:"event"`
	Phase EventPhase `json:"phase"`
}

// Domain types

type Event struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	VotingDeadline       time.Time `json:"voting_deadline"`
	ResultsOpen          bool      `json:"results_open"`
	CreatedAt            time.Time `json:"created_at"`
}

type Code struct {
	AuthCode string `json:"-"` // capability-bearing, never echoed
	EventID  string `json:"event_id"`
	IsAdmin  bool   `json:"is_admin"`
	HasVoted bool   `json:"has_voted"`
}

type Candidate struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`
	Name    string `json:"name"`
	Costume string `json:"costume"`
	ImageID string `json:"image_id,omitempty"`
	Votes   int    `json:"votes"`
	Seq     int64  `json:"-"` // registration order, used as ranking tie-break
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
