// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"time"

	"github.com/danielhkuo/yoda-polls/cliparse"
)

// VoteLedger records votes. It is append-only: votes are never updated or
// deleted, and casting a vote mutates nothing else.
type VoteLedger struct {
	db     *sql.DB
	policy string
}

func NewVoteLedger(db *sql.DB, policy string) *VoteLedger {
	return &VoteLedger{db: db, policy: policy}
}

// CastVote validates and appends one vote, returning the new vote ID.
//
// The option must belong to the given poll: an option ID that exists but
// hangs off a different poll fails with ErrInvalidOption. Under the
// one-per-voter policy a repeat vote from the same voter identifier fails
// with ErrDuplicateVote; the unique index on (poll_id, voter_identifier)
// settles the race when two such votes arrive at once.
func (l *VoteLedger) CastVote(pollID, optionID int64, voterIdentifier string) (int64, error) {
	tx, err := l.db.Begin()
	if err != nil {
		return 0, unavailable("begin transaction", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM polls WHERE poll_id = $1)`, pollID).Scan(&exists)
	if err != nil {
		return 0, unavailable("query poll", err)
	}
	if !exists {
		return 0, ErrPollNotFound
	}

	err = tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM poll_options
			WHERE option_id = $1 AND poll_id = $2
		)
	`, optionID, pollID).Scan(&exists)
	if err != nil {
		return 0, unavailable("query option", err)
	}
	if !exists {
		return 0, ErrInvalidOption
	}

	if l.policy == cliparse.PolicyOnePerVoter {
		err = tx.QueryRow(`
			SELECT EXISTS(
				SELECT 1 FROM votes
				WHERE poll_id = $1 AND voter_identifier = $2
			)
		`, pollID, voterIdentifier).Scan(&exists)
		if err != nil {
			return 0, unavailable("query prior vote", err)
		}
		if exists {
			return 0, ErrDuplicateVote
		}
	}

	var voteID int64
	err = tx.QueryRow(`
		INSERT INTO votes (poll_id, option_id, voter_identifier, voted_at)
		VALUES ($1, $2, $3, $4)
		RETURNING vote_id
	`, pollID, optionID, voterIdentifier, time.Now()).Scan(&voteID)
	if err != nil {
		// Two concurrent votes from the same voter can both pass the
		// check above; the unique index rejects the loser here.
		if isUniqueViolation(err) {
			return 0, ErrDuplicateVote
		}
		return 0, unavailable("insert vote", err)
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateVote
		}
		return 0, unavailable("commit vote", err)
	}

	return voteID, nil
}
