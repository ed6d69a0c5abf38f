// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the data access layer over the event, code,
candidate and image tables.

# Stores

Each table gets a small store constructed over a Querier, which both
*sql.DB and *sql.Tx satisfy:

	tokens := store.NewTokens(db)       // standalone
	tokens = store.NewTokens(tx)        // inside a transaction

  - Tokens: auth code lookups and the one-shot has_voted transition
  - Candidates: the vote ledger plus candidate rows
  - Events: event reads, results switch, deadline updates
  - Images: image-id links for codes

# Atomic Primitives

Two operations carry the service's correctness and are single
statements on purpose:

	Tokens.MarkVoted       UPDATE ... WHERE auth_code = $1 AND NOT has_voted
	Candidates.IncrementVote  UPDATE ... SET votes = votes + 1 ... RETURNING votes

MarkVoted is a compare-and-set (exactly one concurrent caller wins);
IncrementVote is a read-modify-write executed inside the database, so
concurrent votes never lose updates.

Lookups that miss return ErrNotFound; a MarkVoted on a consumed code
returns ErrAlreadyVoted. Everything else wraps the driver error.
*/
package store
