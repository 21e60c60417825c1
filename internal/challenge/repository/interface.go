package repository

import (
	"context"

	"challenge-admin/internal/challenge"
)

// Repository is the composed interface for the challenge domain data store.
type Repository interface {
	ChallengeRepository
	ParticipantRepository
}

// ChallengeRepository defines all data access methods for the Challenge entity.
// Returned challenges carry their ParticipantIDs.
type ChallengeRepository interface {
	CreateChallenge(ctx context.Context, opt CreateChallengeOptions) (challenge.Challenge, error)
	GetOneChallenge(ctx context.Context, opt GetOneChallengeOptions) (challenge.Challenge, error)
	ListChallenges(ctx context.Context, opt ListChallengesOptions) ([]challenge.Challenge, int, error)
	UpdateChallenge(ctx context.Context, opt UpdateChallengeOptions) (challenge.Challenge, error)
	DeleteChallenge(ctx context.Context, id int64) error
}

// ParticipantRepository manages challenge membership.
type ParticipantRepository interface {
	// AddParticipant returns ErrDuplicate if the user already joined.
	AddParticipant(ctx context.Context, challengeID, userID int64) error
	// RemoveParticipant reports whether a row was removed.
	RemoveParticipant(ctx context.Context, challengeID, userID int64) (bool, error)
}
