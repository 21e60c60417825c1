package repository

import (
	"time"

	"challenge-admin/internal/challenge"
)

// CreateChallengeOptions holds parameters for inserting a new Challenge.
type CreateChallengeOptions struct {
	Title        string
	Description  string
	AuthorID     int64
	StartDate    time.Time
	EndDate      time.Time
	RewardAmount int64
	RewardType   challenge.RewardType
}

// GetOneChallengeOptions holds filter parameters for fetching a single Challenge.
type GetOneChallengeOptions struct {
	ID int64
}

// ListChallengesOptions holds filter and pagination parameters for listing Challenges.
type ListChallengesOptions struct {
	Status  challenge.Status
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateChallengeOptions holds the full set of mutable columns.
type UpdateChallengeOptions struct {
	ID           int64
	Title        string
	Description  string
	Status       challenge.Status
	StartDate    time.Time
	EndDate      time.Time
	RewardAmount int64
	RewardType   challenge.RewardType
}
