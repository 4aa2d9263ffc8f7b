// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the poll lifecycle and vote-tabulation engine on
top of a relational database.

# Components

  - IdentityStore: user registration and credential verification
  - SessionStore: opaque login tokens for the request layer
  - PollStore: atomic poll+options creation, retrieval, newest-first listing
  - VoteLedger: append-only vote recording with pluggable eligibility
  - Tabulator: on-demand per-option counts and percentages

Each component is a small struct around *sql.DB created via a New
constructor; the same connection is shared by all of them.

# Invariants

  - A created poll always has at least two options; creation of the poll
    and all option rows is one transaction, so a partial poll is never
    visible to readers.
  - A vote's option must belong to the vote's poll. Cross-poll option IDs
    are rejected, not just unknown ones.
  - Votes are append-only. Casting a vote mutates nothing else.
  - Tallies are recomputed from the votes table on every call; there are
    no cached counters to drift.

# Vote Eligibility

The ledger enforces the configured policy:

  - one-per-voter: a second vote for the same (poll, voter identifier)
    fails with ErrDuplicateVote. The duplicate check runs inside the
    insert transaction, and a unique index on (poll_id, voter_identifier)
    backs it against concurrent casts.
  - unrestricted: every valid vote is accepted.

# Errors

Operations return sentinel errors classified by Kind into Validation,
NotFound, Conflict and Unavailable. Unexpected driver failures wrap
ErrStoreUnavailable and may be retried; every other error leaves the
store unchanged.
*/
package store
