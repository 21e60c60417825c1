package usecase

import (
	"context"

	"challenge-admin/internal/challenge"
	repo "challenge-admin/internal/challenge/repository"
	"challenge-admin/internal/model"
)

// coalesce returns newVal when set, otherwise existing. Used for partial updates.
func coalesce[T comparable](newVal, existing T) T {
	var zero T
	if newVal != zero {
		return newVal
	}
	return existing
}

// getChallenge loads a challenge or returns ErrChallengeNotFound.
func (uc *implUseCase) getChallenge(ctx context.Context, method string, id int64) (challenge.Challenge, error) {
	ch, err := uc.repo.GetOneChallenge(ctx, repo.GetOneChallengeOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s GetOneChallenge: %v", method, err)
		return challenge.Challenge{}, err
	}
	if ch.ID == 0 {
		return challenge.Challenge{}, challenge.ErrChallengeNotFound
	}
	return ch, nil
}

// canManage reports whether sc may modify ch.
func canManage(sc model.Scope, ch challenge.Challenge) bool {
	return sc.IsAdmin() || ch.AuthorID == sc.UserID
}
