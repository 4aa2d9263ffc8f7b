// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterRequest: email, password
  - LoginRequest: email, password
  - CreatePollRequest: title, options ([]string)
  - CastVoteRequest: option_id

# Response Types

Types for JSON responses:

  - RegisterResponse: user_id
  - LoginResponse: token
  - CreatePollResponse: poll, options
  - CastVoteResponse: vote_id
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: registered account (no credential material)
  - Poll: poll metadata, owner and creation time
  - Option: one selectable choice within a poll
  - Vote: immutable ledger entry; the voter identifier is never
    serialized to JSON
  - OptionTally / TallyResult: aggregated counts and percentages

Tally percentages always sum to ~100 (modulo float rounding) when
total_votes > 0, and are 0 for every option otherwise.
*/
package models
