// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseURL: Connection string or file path (required for postgres)
  - DatabaseType: "sqlite" (default) or "postgres"
  - VotePolicy: Vote eligibility policy (default: one-per-voter)
  - MaxOptions: Cap on options per poll, 0 = unlimited (default: 0)
  - BcryptCost: Password hashing cost, 0 = library default

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-vote-policy  one-per-voter or unrestricted
	-max-options  Maximum options per poll
	-bcrypt-cost  Password hashing cost

# Environment Variables

Flags fall back to environment variables:

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	VOTE_POLICY      → -vote-policy
	MAX_POLL_OPTIONS → -max-options
	BCRYPT_COST      → -bcrypt-cost

CLI flags take precedence over environment variables.

# Vote Policy

The vote eligibility policy is deliberately explicit rather than a
hardcoded behavior:

  - one-per-voter: a voter identifier may vote at most once per poll;
    a repeat vote is rejected as a conflict.
  - unrestricted: any number of votes per voter identifier.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - DATABASE_URL must be provided when DATABASE_TYPE is postgres
  - DATABASE_TYPE must be sqlite or postgres
  - VOTE_POLICY must be one-per-voter or unrestricted
*/
package cliparse
