// Copyright (c) 2025 Adrian Vogel.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the costume vote API.

# Handler Types

Each handler is a struct over the voting engine, created via a
constructor:

  - VoteHandler: vote batch submission
  - ResultsHandler: ranked results and candidate browsing
  - TokenHandler: auth code state probes
  - EventHandler: event info and admin deadline/results controls
  - CandidateHandler: registration, edits, admin deletions
  - UploadHandler: image upload and serving

# Auth Model

Every operation is gated by an auth code in the URL path or request
body. Codes are bearer capabilities bound to one event: one
registration and one vote batch each. Admin codes additionally control
deadlines, result visibility and candidate removal for their own event.

# Voting Flow

	GET  /tokens/{authCode}       → probe code state
	POST /register/{authCode}     → create candidate entry
	POST /upload/{authCode}       → attach costume picture
	GET  /candidates/{authCode}   → browse entries (shuffled)
	POST /votes                   → cast the one-shot vote batch
	GET  /results/{authCode}      → ranked top/rest once opened

# Error Mapping

Engine sentinels map to client-error statuses: invalid code 401, admin
required / results closed 403, missing entities 404, consumed code /
wrong event / closed phase 409. Store failures log and return 500
without leaking internals.
*/
package handlers
