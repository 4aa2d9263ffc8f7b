// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/yoda-polls/auth"
	"github.com/danielhkuo/yoda-polls/cliparse"
	"github.com/danielhkuo/yoda-polls/db"
)

// GetTestConfig returns a standard test configuration: in-memory SQLite,
// one-per-voter policy, minimum bcrypt cost for speed.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8080,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		VotePolicy:   cliparse.PolicyOnePerVoter,
		MaxOptions:   0,
		BcryptCost:   bcrypt.MinCost,
	}
}

// SetupTestDB creates a fresh in-memory database with the full schema and
// the default test configuration.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return SetupTestDBWithConfig(t, GetTestConfig())
}

// SetupTestDBWithConfig creates a fresh in-memory database using cfg,
// which controls whether the unique vote index exists.
func SetupTestDBWithConfig(t *testing.T, cfg cliparse.Config) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single connection keeps every statement on the same in-memory
	// database and serializes concurrent test traffic the way a real
	// store's row locks would.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, cfg); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestUser inserts a user with a bcrypt-hashed password and returns
// its ID.
func CreateTestUser(t *testing.T, conn *sql.DB, email, password string) int64 {
	t.Helper()

	hash, err := auth.HashPassword(password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	var userID int64
	err = conn.QueryRow(`
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING user_id
	`, email, hash).Scan(&userID)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// CreateTestSession inserts a session for a user and returns the token.
func CreateTestSession(t *testing.T, conn *sql.DB, userID int64) string {
	t.Helper()

	token := auth.GenerateSessionToken()
	_, err := conn.Exec(`
		INSERT INTO sessions (token, user_id, created_at)
		VALUES ($1, $2, $3)
	`, token, userID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}

	return token
}

// CreateTestPoll inserts a poll with the given options and returns the
// poll ID and option IDs in creation order.
func CreateTestPoll(t *testing.T, conn *sql.DB, ownerID int64, title string, optionTexts ...string) (int64, []int64) {
	t.Helper()

	var pollID int64
	err := conn.QueryRow(`
		INSERT INTO polls (user_id, title, created_at)
		VALUES ($1, $2, $3)
		RETURNING poll_id
	`, ownerID, title, time.Now()).Scan(&pollID)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	optionIDs := make([]int64, 0, len(optionTexts))
	for _, text := range optionTexts {
		var optionID int64
		err := conn.QueryRow(`
			INSERT INTO poll_options (poll_id, option_text)
			VALUES ($1, $2)
			RETURNING option_id
		`, pollID, text).Scan(&optionID)
		if err != nil {
			t.Fatalf("Failed to create test option: %v", err)
		}
		optionIDs = append(optionIDs, optionID)
	}

	return pollID, optionIDs
}

// CastTestVote inserts a vote row directly, bypassing eligibility checks.
func CastTestVote(t *testing.T, conn *sql.DB, pollID, optionID int64, voter string) int64 {
	t.Helper()

	var voteID int64
	err := conn.QueryRow(`
		INSERT INTO votes (poll_id, option_id, voter_identifier, voted_at)
		VALUES ($1, $2, $3, $4)
		RETURNING vote_id
	`, pollID, optionID, voter, time.Now()).Scan(&voteID)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
