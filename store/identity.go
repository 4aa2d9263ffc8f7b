// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"strings"

	"github.com/danielhkuo/yoda-polls/auth"
)

// IdentityStore holds user records and verifies credentials. Secrets are
// only ever persisted as bcrypt hashes.
type IdentityStore struct {
	db   *sql.DB
	cost int
}

func NewIdentityStore(db *sql.DB, bcryptCost int) *IdentityStore {
	return &IdentityStore{db: db, cost: bcryptCost}
}

// Register creates a new user and returns its ID. A duplicate email fails
// with ErrDuplicateEmail and leaves the store unchanged.
func (s *IdentityStore) Register(email, password string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return 0, ErrEmptyEmail
	}
	if password == "" {
		return 0, ErrEmptyPassword
	}

	hash, err := auth.HashPassword(password, s.cost)
	if err != nil {
		return 0, unavailable("hash password", err)
	}

	var userID int64
	err = s.db.QueryRow(`
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING user_id
	`, email, hash).Scan(&userID)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, unavailable("insert user", err)
	}

	return userID, nil
}

// Authenticate verifies a credential pair and returns the user ID.
// Unknown email and wrong password both fail with ErrInvalidCredentials.
func (s *IdentityStore) Authenticate(email, password string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return 0, ErrInvalidCredentials
	}

	var userID int64
	var hash string
	err := s.db.QueryRow(`
		SELECT user_id, password_hash FROM users WHERE email = $1
	`, email).Scan(&userID, &hash)

	if err == sql.ErrNoRows {
		return 0, ErrInvalidCredentials
	}
	if err != nil {
		return 0, unavailable("query user", err)
	}

	if !auth.CheckPassword(hash, password) {
		return 0, ErrInvalidCredentials
	}

	return userID, nil
}
