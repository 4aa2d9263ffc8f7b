// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables for the configured dialect:

	if err := db.CreateSchema(conn, cfg); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
SQLite and PostgreSQL get separate DDL (auto-increment syntax differs);
everything else in the application runs identical SQL against both.

# Tables

  - users: Registered accounts (unique email, bcrypt password hash)
  - sessions: Opaque login tokens for the request layer
  - polls: One row per poll, owned by a user
  - poll_options: Choices per poll, at least two per created poll
  - votes: Append-only vote ledger

# Relationships

	users 1──* sessions
	users 1──* polls
	polls 1──* poll_options
	polls 1──* votes
	poll_options 1──* votes

# Vote Uniqueness

Under the one-per-voter policy CreateSchema adds a unique index on
votes(poll_id, voter_identifier). Concurrent duplicate votes then resolve
in the store: one insert wins, the other surfaces as a conflict. The
index is intentionally absent under the unrestricted policy.
*/
package db
