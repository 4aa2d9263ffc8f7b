// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Yoda Polls API server.

Yoda Polls lets registered users create multiple-choice polls and lets
anonymous visitors cast votes and read tallies.

# Starting the Server

The server runs against SQLite out of the box:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Settings may also be passed as flags:

	go run . -p 8080 -t postgres -d "postgres://..." -vote-policy one-per-voter

A .env file in the working directory is loaded at startup; real
environment variables take precedence.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string; required for postgres
  - VOTE_POLICY (-vote-policy): one-per-voter (default) or unrestricted
  - MAX_POLL_OPTIONS (-max-options): options cap per poll, 0 = unlimited
  - BCRYPT_COST (-bcrypt-cost): password hashing cost

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: the core — identity, sessions, polls, vote ledger, tabulation
  - handlers: HTTP request handlers (accounts, polls, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, client IP extraction
  - models: Request/response types
  - auth: Password hashing and session tokens
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
