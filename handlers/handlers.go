// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/yoda-polls/middleware"
	"github.com/danielhkuo/yoda-polls/store"
)

// writeStoreError maps a store error to an HTTP status. The error kind
// decides the status; the sentinel message is the user-visible text.
func writeStoreError(w http.ResponseWriter, err error) {
	switch store.Kind(err) {
	case store.KindValidation:
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case store.KindNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case store.KindConflict:
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case store.KindUnavailable:
		slog.Error("store unavailable", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Store temporarily unavailable, retry later")
	default:
		slog.Error("unexpected store error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

// pathID parses the {id} path segment as a poll or option ID.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
