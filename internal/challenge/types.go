package challenge

import (
	"slices"
	"time"
)

// Status is the lifecycle state of a Challenge.
type Status string

const (
	StatusRecruiting Status = "RECRUITING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// transitions lists the statuses each status may move to.
var transitions = map[Status][]Status{
	StatusRecruiting: {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusRecruiting, StatusCancelled},
	StatusCompleted:  {StatusRecruiting},
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRecruiting, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a challenge in s may move to target.
func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(transitions[s], target)
}

type RewardType string

const (
	RewardCash  RewardType = "CASH"
	RewardPoint RewardType = "POINT"
	RewardItem  RewardType = "ITEM"
)

// --- Challenge Domain Model ---

type Challenge struct {
	ID             int64
	Title          string
	Description    string
	AuthorID       int64
	Status         Status
	StartDate      time.Time
	EndDate        time.Time
	RewardAmount   int64
	RewardType     RewardType
	ParticipantIDs []int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasParticipant reports whether userID joined the challenge.
func (c Challenge) HasParticipant(userID int64) bool {
	return slices.Contains(c.ParticipantIDs, userID)
}

// --- UseCase Inputs ---

type CreateInput struct {
	Title        string
	Description  string
	StartDate    time.Time
	EndDate      time.Time
	RewardAmount int64
	RewardType   RewardType
}

type ListInput struct {
	Status Status
	Limit  int
	Offset int
}

// UpdateInput is a partial update; zero fields keep the stored value.
type UpdateInput struct {
	ID           int64
	Title        string
	Description  string
	StartDate    *time.Time
	EndDate      *time.Time
	RewardAmount *int64
	RewardType   RewardType
}

type ChangeStatusInput struct {
	ID     int64
	Target Status
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Challenge Challenge
}

type ListOutput struct {
	Challenges []Challenge
	Total      int
	Limit      int
	Offset     int
}

type DetailOutput struct {
	Challenge Challenge
}

type UpdateOutput struct {
	Challenge Challenge
}

type ParticipateOutput struct {
	Challenge Challenge
}

type ChangeStatusOutput struct {
	Challenge Challenge
}
