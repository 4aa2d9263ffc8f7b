// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"strings"
	"time"

	"github.com/danielhkuo/yoda-polls/models"
)

// PollStore creates and retrieves polls and their options. Polls are
// immutable after creation.
type PollStore struct {
	db *sql.DB

	// maxOptions caps options per poll. 0 means unlimited.
	maxOptions int
}

func NewPollStore(db *sql.DB, maxOptions int) *PollStore {
	return &PollStore{db: db, maxOptions: maxOptions}
}

// CreatePoll validates and creates a poll together with all of its options
// in a single transaction. Either the poll and every option exist afterward
// or nothing does; a poll with fewer than two options is never visible.
//
// Validation order: title first, then the option list. Option texts are
// trimmed and blank entries discarded before counting.
func (s *PollStore) CreatePoll(ownerID int64, title string, optionTexts []string) (*models.PollWithOptions, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	texts := make([]string, 0, len(optionTexts))
	for _, text := range optionTexts {
		text = strings.TrimSpace(text)
		if text != "" {
			texts = append(texts, text)
		}
	}
	if len(texts) < 2 {
		return nil, ErrInsufficientOptions
	}
	if s.maxOptions > 0 && len(texts) > s.maxOptions {
		return nil, ErrTooManyOptions
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, unavailable("begin transaction", err)
	}
	defer tx.Rollback()

	poll := models.Poll{
		UserID:    ownerID,
		Title:     title,
		CreatedAt: time.Now(),
	}
	err = tx.QueryRow(`
		INSERT INTO polls (user_id, title, created_at)
		VALUES ($1, $2, $3)
		RETURNING poll_id
	`, poll.UserID, poll.Title, poll.CreatedAt).Scan(&poll.PollID)
	if err != nil {
		return nil, unavailable("insert poll", err)
	}

	options := make([]models.Option, 0, len(texts))
	for _, text := range texts {
		opt := models.Option{PollID: poll.PollID, OptionText: text}
		err = tx.QueryRow(`
			INSERT INTO poll_options (poll_id, option_text)
			VALUES ($1, $2)
			RETURNING option_id
		`, opt.PollID, opt.OptionText).Scan(&opt.OptionID)
		if err != nil {
			return nil, unavailable("insert option", err)
		}
		options = append(options, opt)
	}

	if err := tx.Commit(); err != nil {
		return nil, unavailable("commit poll", err)
	}

	return &models.PollWithOptions{Poll: poll, Options: options}, nil
}

// GetPoll returns a poll and its options in creation order.
func (s *PollStore) GetPoll(pollID int64) (*models.PollWithOptions, error) {
	var poll models.Poll
	err := s.db.QueryRow(`
		SELECT poll_id, user_id, title, created_at
		FROM polls
		WHERE poll_id = $1
	`, pollID).Scan(&poll.PollID, &poll.UserID, &poll.Title, &poll.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrPollNotFound
	}
	if err != nil {
		return nil, unavailable("query poll", err)
	}

	options, err := s.pollOptions(pollID)
	if err != nil {
		return nil, err
	}

	return &models.PollWithOptions{Poll: poll, Options: options}, nil
}

// ListPolls returns all polls, newest first.
func (s *PollStore) ListPolls() ([]models.Poll, error) {
	rows, err := s.db.Query(`
		SELECT poll_id, user_id, title, created_at
		FROM polls
		ORDER BY created_at DESC, poll_id DESC
	`)
	if err != nil {
		return nil, unavailable("query polls", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var poll models.Poll
		if err := rows.Scan(&poll.PollID, &poll.UserID, &poll.Title, &poll.CreatedAt); err != nil {
			return nil, unavailable("scan poll", err)
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate polls", err)
	}

	return polls, nil
}

func (s *PollStore) pollOptions(pollID int64) ([]models.Option, error) {
	rows, err := s.db.Query(`
		SELECT option_id, poll_id, option_text
		FROM poll_options
		WHERE poll_id = $1
		ORDER BY option_id
	`, pollID)
	if err != nil {
		return nil, unavailable("query options", err)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.OptionID, &opt.PollID, &opt.OptionText); err != nil {
			return nil, unavailable("scan option", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("iterate options", err)
	}

	return options, nil
}
