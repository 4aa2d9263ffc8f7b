// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Yoda Polls API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Accounts:

	POST /register - Create account
	POST /login    - Exchange credentials for a session token
	POST /logout   - Invalidate a session token

Polls:

	GET  /polls      - List polls, newest first
	POST /polls      - Create poll (requires X-Session-Token)
	GET  /polls/{id} - Poll details and options

Voting and results (public):

	POST /polls/{id}/vote    - Cast a vote
	GET  /polls/{id}/results - Counts and percentages
	GET  /polls/{id}/export  - CSV download of the tally

# Handler Initialization

The router creates handler instances with dependency injection:

	accountHandler := handlers.NewAccountHandler(db, cfg)
	pollHandler := handlers.NewPollHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
