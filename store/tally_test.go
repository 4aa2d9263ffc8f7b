// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/danielhkuo/yoda-polls/testutil"
)

func TestTally(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	ownerID := testutil.CreateTestUser(t, db, "alice@example.com", "secret1")
	pollID, optionIDs := testutil.CreateTestPoll(t, db, ownerID, "Lunch?", "Pizza", "Tacos", "Sushi")

	// 3 votes Pizza, 1 vote Tacos, 0 votes Sushi
	testutil.CastTestVote(t, db, pollID, optionIDs[0], "10.0.0.1")
	testutil.CastTestVote(t, db, pollID, optionIDs[0], "10.0.0.2")
	testutil.CastTestVote(t, db, pollID, optionIDs[0], "10.0.0.3")
	testutil.CastTestVote(t, db, pollID, optionIDs[1], "10.0.0.4")

	tabulator := NewTabulator(db)

	tally, err := tabulator.Tally(pollID)
	if err != nil {
		t.Fatalf("Tally failed: %v", err)
	}

	if tally.Title != "Lunch?" {
		t.Errorf("expected title Lunch?, got %q", tally.Title)
	}
	if tally.TotalVotes != 4 {
		t.Errorf("expected 4 total votes, got %d", tally.TotalVotes)
	}
	if len(tally.Options) != 3 {
		t.Fatalf("expected 3 options in tally, got %d", len(tally.Options))
	}

	wantCounts := []int{3, 1, 0}
	wantPercentages := []float64{75, 25, 0}
	sumCounts := 0
	sumPercentages := 0.0
	for i, opt := range tally.Options {
		if opt.OptionID != optionIDs[i] {
			t.Errorf("tally options out of creation order at %d: %+v", i, tally.Options)
		}
		if opt.Count != wantCounts[i] {
			t.Errorf("option %q: expected count %d, got %d", opt.OptionText, wantCounts[i], opt.Count)
		}
		if math.Abs(opt.Percentage-wantPercentages[i]) > 1e-9 {
			t.Errorf("option %q: expected %.1f%%, got %f", opt.OptionText, wantPercentages[i], opt.Percentage)
		}
		sumCounts += opt.Count
		sumPercentages += opt.Percentage
	}

	if sumCounts != tally.TotalVotes {
		t.Errorf("sum of counts %d != total votes %d", sumCounts, tally.TotalVotes)
	}
	if math.Abs(sumPercentages-100) > 1e-6 {
		t.Errorf("percentages sum to %f, want ~100", sumPercentages)
	}
}

func TestTally_NoVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	ownerID := testutil.CreateTestUser(t, db, "alice@example.com", "secret1")
	pollID, _ := testutil.CreateTestPoll(t, db, ownerID, "Lunch?", "Pizza", "Tacos")

	tabulator := NewTabulator(db)

	tally, err := tabulator.Tally(pollID)
	if err != nil {
		t.Fatalf("Tally failed: %v", err)
	}

	if tally.TotalVotes != 0 {
		t.Errorf("expected 0 total votes, got %d", tally.TotalVotes)
	}
	for _, opt := range tally.Options {
		if opt.Count != 0 || opt.Percentage != 0 {
			t.Errorf("option %q: expected 0/0%%, got %d/%f", opt.OptionText, opt.Count, opt.Percentage)
		}
	}
}

func TestTally_PollNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	tabulator := NewTabulator(db)

	_, err := tabulator.Tally(99999)
	if !errors.Is(err, ErrPollNotFound) {
		t.Errorf("expected ErrPollNotFound, got %v", err)
	}
}

func TestTally_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	ownerID := testutil.CreateTestUser(t, db, "alice@example.com", "secret1")
	pollID, optionIDs := testutil.CreateTestPoll(t, db, ownerID, "Lunch?", "Pizza", "Tacos")
	testutil.CastTestVote(t, db, pollID, optionIDs[0], "10.0.0.1")

	tabulator := NewTabulator(db)

	first, err := tabulator.Tally(pollID)
	if err != nil {
		t.Fatalf("first Tally failed: %v", err)
	}
	second, err := tabulator.Tally(pollID)
	if err != nil {
		t.Fatalf("second Tally failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("tally not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestTally_DoesNotMutate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	ownerID := testutil.CreateTestUser(t, db, "alice@example.com", "secret1")
	pollID, optionIDs := testutil.CreateTestPoll(t, db, ownerID, "Lunch?", "Pizza", "Tacos")
	testutil.CastTestVote(t, db, pollID, optionIDs[0], "10.0.0.1")

	tabulator := NewTabulator(db)
	if _, err := tabulator.Tally(pollID); err != nil {
		t.Fatalf("Tally failed: %v", err)
	}

	var votes, options int
	if err := db.QueryRow(`SELECT COUNT(*) FROM votes`).Scan(&votes); err != nil {
		t.Fatal(err)
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM poll_options`).Scan(&options); err != nil {
		t.Fatal(err)
	}
	if votes != 1 || options != 2 {
		t.Errorf("tally mutated state: %d votes, %d options", votes, options)
	}
}

func TestTally_ReflectsNewVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	ownerID := testutil.CreateTestUser(t, db, "alice@example.com", "secret1")
	pollID, optionIDs := testutil.CreateTestPoll(t, db, ownerID, "Lunch?", "Pizza", "Tacos")

	tabulator := NewTabulator(db)

	before, err := tabulator.Tally(pollID)
	if err != nil {
		t.Fatal(err)
	}
	if before.TotalVotes != 0 {
		t.Fatalf("expected empty tally, got %d votes", before.TotalVotes)
	}

	// No cached counters: a committed vote shows up on the next call
	testutil.CastTestVote(t, db, pollID, optionIDs[1], "10.0.0.1")

	after, err := tabulator.Tally(pollID)
	if err != nil {
		t.Fatal(err)
	}
	if after.TotalVotes != 1 || after.Options[1].Count != 1 {
		t.Errorf("tally did not reflect committed vote: %+v", after)
	}
}
