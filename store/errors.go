// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies store errors for the request layer. Every error
// returned by a store operation maps to exactly one kind via Kind.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnavailable
)

var (
	// Validation errors: bad input, user-correctable.
	ErrEmptyEmail          = errors.New("email is required")
	ErrEmptyPassword       = errors.New("password is required")
	ErrEmptyTitle          = errors.New("title is required")
	ErrInsufficientOptions = errors.New("poll requires at least two options")
	ErrTooManyOptions      = errors.New("poll has too many options")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	// Not-found errors: referenced entity absent.
	ErrPollNotFound    = errors.New("poll not found")
	ErrInvalidOption   = errors.New("option does not belong to this poll")
	ErrSessionNotFound = errors.New("session not found")

	// Conflict errors: the caller must resolve before retrying.
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateVote  = errors.New("voter has already voted on this poll")

	// Transient infrastructure failure; the caller may retry with backoff.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Kind reports the taxonomy class of an error returned by the store.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrEmptyEmail),
		errors.Is(err, ErrEmptyPassword),
		errors.Is(err, ErrEmptyTitle),
		errors.Is(err, ErrInsufficientOptions),
		errors.Is(err, ErrTooManyOptions),
		errors.Is(err, ErrInvalidCredentials):
		return KindValidation
	case errors.Is(err, ErrPollNotFound),
		errors.Is(err, ErrInvalidOption),
		errors.Is(err, ErrSessionNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrDuplicateVote):
		return KindConflict
	case errors.Is(err, ErrStoreUnavailable):
		return KindUnavailable
	default:
		return KindUnknown
	}
}

// unavailable wraps an unexpected driver failure so it classifies as
// retryable while keeping the cause in the chain.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(ErrStoreUnavailable, err))
}

// isUniqueViolation reports whether err is a unique-constraint violation
// from either supported driver. lib/pq and modernc sqlite expose no shared
// error type, but both embed a recognizable phrase.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
