// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/yoda-polls/cliparse"
	"github.com/danielhkuo/yoda-polls/middleware"
	"github.com/danielhkuo/yoda-polls/models"
	"github.com/danielhkuo/yoda-polls/store"
)

type PollHandler struct {
	polls    *store.PollStore
	sessions *store.SessionStore
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{
		polls:    store.NewPollStore(db, cfg.MaxOptions),
		sessions: store.NewSessionStore(db),
	}
}

// CreatePoll handles POST /polls. Requires a logged-in user.
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	userID, err := h.sessions.Lookup(middleware.SessionToken(r))
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "You must be logged in to create a poll")
			return
		}
		writeStoreError(w, err)
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	created, err := h.polls.CreatePoll(userID, req.Title, req.Options)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("poll created",
		"poll_id", created.Poll.PollID,
		"user_id", userID,
		"options", len(created.Options),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{
		Poll:    created.Poll,
		Options: created.Options,
	})
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.polls.ListPolls()
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	poll, err := h.polls.GetPoll(pollID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}
