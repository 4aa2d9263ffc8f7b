// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"time"

	"github.com/danielhkuo/yoda-polls/auth"
)

// SessionStore maps opaque login tokens to user IDs. The request layer
// carries the token; cookies and headers never reach the core.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

// Create issues a new session token for a user.
func (s *SessionStore) Create(userID int64) (string, error) {
	token := auth.GenerateSessionToken()

	_, err := s.db.Exec(`
		INSERT INTO sessions (token, user_id, created_at)
		VALUES ($1, $2, $3)
	`, token, userID, time.Now())

	if err != nil {
		return "", unavailable("insert session", err)
	}

	return token, nil
}

// Lookup resolves a session token to its user ID.
func (s *SessionStore) Lookup(token string) (int64, error) {
	if token == "" {
		return 0, ErrSessionNotFound
	}

	var userID int64
	err := s.db.QueryRow(`
		SELECT user_id FROM sessions WHERE token = $1
	`, token).Scan(&userID)

	if err == sql.ErrNoRows {
		return 0, ErrSessionNotFound
	}
	if err != nil {
		return 0, unavailable("query session", err)
	}

	return userID, nil
}

// Delete removes a session token. Deleting an unknown token is not an error.
func (s *SessionStore) Delete(token string) error {
	if _, err := s.db.Exec(`DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return unavailable("delete session", err)
	}
	return nil
}
