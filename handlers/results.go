// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/yoda-polls/cliparse"
	"github.com/danielhkuo/yoda-polls/middleware"
	"github.com/danielhkuo/yoda-polls/store"
)

type ResultsHandler struct {
	tabulator *store.Tabulator
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{
		tabulator: store.NewTabulator(db),
	}
}

// GetResults handles GET /polls/{id}/results
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	tally, err := h.tabulator.Tally(pollID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, tally)
}

// ExportCSV handles GET /polls/{id}/export.
// Streams the tally as a CSV download: a title row, then one
// option_text,count row per option in creation order.
func (h *ResultsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	tally, err := h.tabulator.Tally(pollID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=poll_%d_results.csv", pollID))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Poll Title", tally.Title})
	for _, opt := range tally.Options {
		_ = cw.Write([]string{opt.OptionText, strconv.Itoa(opt.Count)})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("failed to write CSV export", "error", err, "poll_id", pollID)
	}
}
