// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Yoda Polls API.

# Handler Types

Each handler is a struct wrapping the store components it needs:

  - AccountHandler: registration, login, logout
  - PollHandler: poll creation, listing, retrieval
  - VotingHandler: anonymous vote casting
  - ResultsHandler: tally retrieval and CSV export

Handlers are created via constructor functions that accept *sql.DB and Config:

	pollHandler := handlers.NewPollHandler(db, cfg)

# Account Flow

	POST /register → Register (201, user_id)
	POST /login    → Login (200, session token)
	POST /logout   → Logout (204)

Login issues an opaque token the client sends back in X-Session-Token.

# Poll Flow

	GET  /polls      → ListPolls (newest first)
	POST /polls      → CreatePoll (requires X-Session-Token)
	GET  /polls/{id} → GetPoll (poll + options)

Poll creation is all-or-nothing: the poll and its options (two or more
after trimming) are committed in one transaction by the store.

# Voting and Results

	POST /polls/{id}/vote    → CastVote (voter identifier = client IP)
	GET  /polls/{id}/results → GetResults (counts + percentages)
	GET  /polls/{id}/export  → ExportCSV (text/csv download)

Whether a voter may vote more than once per poll is the store's
configured eligibility policy, not handler logic.

# Error Mapping

Store errors carry a kind; writeStoreError maps Validation→400,
NotFound→404, Conflict→409, Unavailable→503. Login's invalid-credential
case is special-cased to 401.
*/
package handlers
