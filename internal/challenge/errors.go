package challenge

import "errors"

var (
	ErrChallengeNotFound       = errors.New("challenge not found")
	ErrNotAuthor               = errors.New("caller is neither the author nor an admin")
	ErrInvalidDateRange        = errors.New("end date before start date")
	ErrInvalidStatus           = errors.New("unknown challenge status")
	ErrInvalidTransition       = errors.New("invalid status transition")
	ErrNotRecruiting           = errors.New("challenge is not recruiting")
	ErrAlreadyParticipating    = errors.New("already participating")
	ErrNotParticipating        = errors.New("not participating")
	ErrAuthorCannotParticipate = errors.New("author cannot participate")
)
