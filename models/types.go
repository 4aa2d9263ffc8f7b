package models

import "time"

// Request types

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Title   string   `json:"title"`
	Options []string `json:"options"`
}

type CastVoteRequest struct {
	OptionID int64 `json:"option_id"`
}

// Response types

type RegisterResponse struct {
	UserID int64 `json:"user_id"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type CreatePollResponse struct {
	Poll    Poll     `json:"poll"`
	Options []Option `json:"options"`
}

type CastVoteResponse struct {
	VoteID int64 `json:"vote_id"`
}

// Domain types

type User struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

type Poll struct {
	PollID    int64     `json:"poll_id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type Option struct {
	OptionID   int64  `json:"option_id"`
	PollID     int64  `json:"poll_id"`
	OptionText string `json:"option_text"`
}

type PollWithOptions struct {
	Poll    Poll     `json:"poll"`
	Options []Option `json:"options"`
}

type Vote struct {
	VoteID          int64     `json:"vote_id"`
	PollID          int64     `json:"poll_id"`
	OptionID        int64     `json:"option_id"`
	VoterIdentifier string    `json:"-"` // Never expose in JSON
	VotedAt         time.Time `json:"voted_at"`
}

// Tally types

type OptionTally struct {
	OptionID   int64   `json:"option_id"`
	OptionText string  `json:"option_text"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type TallyResult struct {
	PollID     int64         `json:"poll_id"`
	Title      string        `json:"title"`
	Options    []OptionTally `json:"options"`
	TotalVotes int           `json:"total_votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
