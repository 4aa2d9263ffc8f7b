// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"

	"github.com/danielhkuo/yoda-polls/models"
)

// Tabulator aggregates the vote ledger into per-option counts and
// percentages. It is a pure read: counts are recomputed from the votes
// table on every call, never cached.
type Tabulator struct {
	db *sql.DB
}

func NewTabulator(db *sql.DB) *Tabulator {
	return &Tabulator{db: db}
}

// Tally returns counts and percentages for every option of a poll, in
// option creation order. Percentages are count/total*100 when the poll has
// votes and 0 for every option otherwise.
func (t *Tabulator) Tally(pollID int64) (*models.TallyResult, error) {
	result := models.TallyResult{PollID: pollID}

	err := t.db.QueryRow(`SELECT title FROM polls WHERE poll_id = $1`, pollID).Scan(&result.Title)
	if err == sql.ErrNoRows {
		return nil, ErrPollNotFound
	}
	if err != nil {
		return nil, unavailable("query poll", err)
	}

	rows, err := t.db.Query(`
		SELECT o.option_id, o.option_text, COUNT(v.vote_id)
		FROM poll_options o
		LEFT JOIN votes v ON v.option_id = o.option_id
		WHERE o.poll_id = $1
		GROUP BY o.option_id, o.option_text
		ORDER BY o.option_id
	`, pollID)
	if err != nil {
		return nil, unavailable("query tally", err)
	}
	defer rows.Close()

	result.Options = []models.OptionTally{}
	for rows.Next() {
		var opt models.OptionTally
		if err := rows.Scan(&opt.OptionID, &opt.OptionText, &opt.Count); err != nil {
			return nil, unavailable("scan tally", err)
		}
		result.TotalVotes += opt.Count
		result.Options = append(result.Options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate tally", err)
	}

	if result.TotalVotes > 0 {
		for i := range result.Options {
			result.Options[i].Percentage = float64(result.Options[i].Count) / float64(result.TotalVotes) * 100
		}
	}

	return &result, nil
}
