// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/yoda-polls/models"
	"github.com/danielhkuo/yoda-polls/testutil"
)

// TestConcurrentVotes verifies that simultaneous votes from distinct voters
// all land without corruption or loss.
func TestConcurrentVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(db, cfg)

	userID := testutil.CreateTestUser(t, db, "alice@example.com", "secret1")
	pollID, optionIDs := testutil.CreateTestPoll(t, db, userID, "Lunch?", "Pizza", "Tacos", "Sushi")
	pollPath := strconv.FormatInt(pollID, 10)

	numVoters := 10

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			body := models.CastVoteRequest{OptionID: optionIDs[voterIdx%len(optionIDs)]}
			req := testutil.MakeRequest("POST", "/polls/"+pollPath+"/vote", body, nil)
			req.SetPathValue("id", pollPath)
			req.RemoteAddr = fmt.Sprintf("10.0.1.%d:50000", voterIdx)
			w := httptest.NewRecorder()

			handler.CastVote(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM votes WHERE poll_id = $1`, pollID).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != numVoters {
		t.Errorf("expected %d vote rows, got %d", numVoters, count)
	}
}

// TestConcurrentDuplicateVoters verifies that simultaneous votes with the
// same voter identifier produce exactly one vote row under one-per-voter.
func TestConcurrentDuplicateVoters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewVotingHandler(db, cfg)

	userID := testutil.CreateTestUser(t, db, "alice@example.com", "secret1")
	pollID, optionIDs := testutil.CreateTestPoll(t, db, userID, "Lunch?", "Pizza", "Tacos")
	pollPath := strconv.FormatInt(pollID, 10)

	attempts := 5

	var created, conflicted atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := models.CastVoteRequest{OptionID: optionIDs[idx%2]}
			req := testutil.MakeRequest("POST", "/polls/"+pollPath+"/vote", body, nil)
			req.SetPathValue("id", pollPath)
			req.RemoteAddr = "10.0.0.1:50000"
			w := httptest.NewRecorder()

			handler.CastVote(w, req)

			switch w.Code {
			case http.StatusCreated:
				created.Add(1)
			case http.StatusConflict:
				conflicted.Add(1)
			default:
				t.Errorf("unexpected status %d: %s", w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("expected exactly 1 created vote, got %d", created.Load())
	}
	if int(conflicted.Load()) != attempts-1 {
		t.Errorf("expected %d conflicts, got %d", attempts-1, conflicted.Load())
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM votes WHERE poll_id = $1`, pollID).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 vote row, got %d", count)
	}
}
