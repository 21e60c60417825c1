package usecase

import (
	"context"
	"errors"

	"challenge-admin/internal/challenge"
	repo "challenge-admin/internal/challenge/repository"
	"challenge-admin/internal/model"
)

// Participate joins the caller to a RECRUITING challenge they did not author.
func (uc *implUseCase) Participate(ctx context.Context, sc model.Scope, id int64) (challenge.ParticipateOutput, error) {
	ch, err := uc.getChallenge(ctx, "Participate", id)
	if err != nil {
		return challenge.ParticipateOutput{}, err
	}
	switch {
	case ch.AuthorID == sc.UserID:
		return challenge.ParticipateOutput{}, challenge.ErrAuthorCannotParticipate
	case ch.Status != challenge.StatusRecruiting:
		return challenge.ParticipateOutput{}, challenge.ErrNotRecruiting
	case ch.HasParticipant(sc.UserID):
		return challenge.ParticipateOutput{}, challenge.ErrAlreadyParticipating
	}

	if err := uc.repo.AddParticipant(ctx, id, sc.UserID); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return challenge.ParticipateOutput{}, challenge.ErrAlreadyParticipating
		}
		uc.l.Errorf(ctx, "uc.Participate AddParticipant: %v", err)
		return challenge.ParticipateOutput{}, err
	}

	ch, err = uc.getChallenge(ctx, "Participate", id)
	if err != nil {
		return challenge.ParticipateOutput{}, err
	}
	return challenge.ParticipateOutput{Challenge: ch}, nil
}

// Leave removes the caller from a challenge that has not finished.
func (uc *implUseCase) Leave(ctx context.Context, sc model.Scope, id int64) (challenge.ParticipateOutput, error) {
	ch, err := uc.getChallenge(ctx, "Leave", id)
	if err != nil {
		return challenge.ParticipateOutput{}, err
	}
	if !ch.HasParticipant(sc.UserID) {
		return challenge.ParticipateOutput{}, challenge.ErrNotParticipating
	}
	if ch.Status == challenge.StatusCompleted || ch.Status == challenge.StatusCancelled {
		return challenge.ParticipateOutput{}, challenge.ErrInvalidTransition
	}

	removed, err := uc.repo.RemoveParticipant(ctx, id, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Leave RemoveParticipant: %v", err)
		return challenge.ParticipateOutput{}, err
	}
	if !removed {
		return challenge.ParticipateOutput{}, challenge.ErrNotParticipating
	}

	ch, err = uc.getChallenge(ctx, "Leave", id)
	if err != nil {
		return challenge.ParticipateOutput{}, err
	}
	return challenge.ParticipateOutput{Challenge: ch}, nil
}
