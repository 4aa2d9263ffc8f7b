// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/yoda-polls/cliparse"
	"github.com/danielhkuo/yoda-polls/middleware"
	"github.com/danielhkuo/yoda-polls/models"
	"github.com/danielhkuo/yoda-polls/store"
)

type VotingHandler struct {
	ledger *store.VoteLedger
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{
		ledger: store.NewVoteLedger(db, cfg.VotePolicy),
	}
}

// CastVote handles POST /polls/{id}/vote. Voting is anonymous; the client
// IP is the voter identifier.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.OptionID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "option_id is required")
		return
	}

	voter := middleware.GetClientIP(r)

	voteID, err := h.ledger.CastVote(pollID, req.OptionID, voter)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("vote recorded", "poll_id", pollID, "option_id", req.OptionID, "vote_id", voteID)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		VoteID: voteID,
	})
}
