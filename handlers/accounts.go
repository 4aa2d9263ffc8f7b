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

type AccountHandler struct {
	identity *store.IdentityStore
	sessions *store.SessionStore
}

func NewAccountHandler(db *sql.DB, cfg cliparse.Config) *AccountHandler {
	return &AccountHandler{
		identity: store.NewIdentityStore(db, cfg.BcryptCost),
		sessions: store.NewSessionStore(db),
	}
}

// Register handles POST /register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	userID, err := h.identity.Register(req.Email, req.Password)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("user registered", "user_id", userID)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		UserID: userID,
	})
}

// Login handles POST /login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	userID, err := h.identity.Authenticate(req.Email, req.Password)
	if err != nil {
		// Invalid credentials get 401 rather than the kind's default 400
		if store.Kind(err) == store.KindValidation {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeStoreError(w, err)
		return
	}

	token, err := h.sessions.Create(userID)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	slog.Info("user logged in", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token: token,
	})
}

// Logout handles POST /logout
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r)
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, middleware.SessionHeader+" header required")
		return
	}

	if err := h.sessions.Delete(token); err != nil {
		writeStoreError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
