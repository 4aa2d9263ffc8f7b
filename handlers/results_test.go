// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/danielhkuo/yoda-polls/models"
	"github.com/danielhkuo/yoda-polls/testutil"
)

func TestGetResultsHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(db, cfg)

	userID := testutil.CreateTestUser(t, db, "alice@example.com", "secret1")
	pollID, optionIDs := testutil.CreateTestPoll(t, db, userID, "Lunch?", "Pizza", "Tacos")

	testutil.CastTestVote(t, db, pollID, optionIDs[0], "10.0.0.1")
	testutil.CastTestVote(t, db, pollID, optionIDs[0], "10.0.0.2")
	testutil.CastTestVote(t, db, pollID, optionIDs[1], "10.0.0.3")

	pollPath := strconv.FormatInt(pollID, 10)
	req := testutil.MakeRequest("GET", "/polls/"+pollPath+"/results", nil, nil)
	req.SetPathValue("id", pollPath)
	w := httptest.NewRecorder()

	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.TallyResult
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalVotes != 3 {
		t.Errorf("expected 3 total votes, got %d", resp.TotalVotes)
	}
	if len(resp.Options) != 2 {
		t.Fatalf("expected 2 option tallies, got %d", len(resp.Options))
	}
	if resp.Options[0].Count != 2 || resp.Options[1].Count != 1 {
		t.Errorf("unexpected counts: %+v", resp.Options)
	}

	sum := 0.0
	for _, opt := range resp.Options {
		sum += opt.Percentage
	}
	if math.Abs(sum-100) > 1e-6 {
		t.Errorf("percentages sum to %f, want ~100", sum)
	}
}

func TestGetResultsHandler_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewResultsHandler(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/polls/99999/results", nil, nil)
	req.SetPathValue("id", "99999")
	w := httptest.NewRecorder()

	handler.GetResults(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestExportCSVHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(db, cfg)

	userID := testutil.CreateTestUser(t, db, "alice@example.com", "secret1")
	pollID, optionIDs := testutil.CreateTestPoll(t, db, userID, "Lunch?", "Pizza", "Tacos")
	testutil.CastTestVote(t, db, pollID, optionIDs[0], "10.0.0.1")

	pollPath := strconv.FormatInt(pollID, 10)
	req := testutil.MakeRequest("GET", "/polls/"+pollPath+"/export", nil, nil)
	req.SetPathValue("id", pollPath)
	w := httptest.NewRecorder()

	handler.ExportCSV(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("expected attachment disposition, got %q", cd)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("response is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 CSV rows, got %d: %v", len(records), records)
	}
	if records[0][0] != "Poll Title" || records[0][1] != "Lunch?" {
		t.Errorf("unexpected header row: %v", records[0])
	}
	if records[1][0] != "Pizza" || records[1][1] != "1" {
		t.Errorf("unexpected Pizza row: %v", records[1])
	}
	if records[2][0] != "Tacos" || records[2][1] != "0" {
		t.Errorf("unexpected Tacos row: %v", records[2])
	}
}

func TestExportCSVHandler_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewResultsHandler(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/polls/99999/export", nil, nil)
	req.SetPathValue("id", "99999")
	w := httptest.NewRecorder()

	handler.ExportCSV(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
