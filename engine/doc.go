// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine implements the voting and event lifecycle logic.

# Event Phases

An event moves through three derived phases based on its two deadlines:

	registration → (registration deadline) → voting → (voting deadline) → end

Phase is a pure function of the event row and a time source; the engine
holds an injectable clock so phase behavior is testable without waiting:

	eng := engine.NewWithClock(db, func() time.Time { return fixed })

# Casting Votes

CastVotes applies a whole batch in one transaction:

 1. resolve the code (ErrInvalidToken)
 2. compare-and-set has_voted (ErrAlreadyVoted)
 3. verify every candidate belongs to the code's event (ErrEventMismatch)
 4. verify the event is in the voting phase (ErrVotingClosed)
 5. increment each counter, collecting new counts in request order

Any failure rolls the whole batch back, including the has_voted
reservation. Two concurrent casts with one code serialize on the code
row: exactly one commits, the other sees ErrAlreadyVoted.

# Results

Results ranks an event's candidates by votes descending, ties broken by
registration order, and splits them into a top-N list and the rest.
Visibility is gated by the event's results switch; admin codes bypass
the gate for viewing only, never for casting.

# Admin Actions

SetResultsOpen, UpdateDeadlines and the candidate deletions require an
admin code and act only on the admin's own event.

All expected failures are sentinel errors (ErrInvalidToken,
ErrAlreadyVoted, ...) that callers dispatch with errors.Is; anything
else is a store failure wrapped with context.
*/
package engine
