package usecase

import (
	"context"

	"challenge-admin/internal/challenge"
	repo "challenge-admin/internal/challenge/repository"
	"challenge-admin/internal/model"
)

// ChangeStatus moves a challenge to input.Target if the lifecycle allows it.
func (uc *implUseCase) ChangeStatus(ctx context.Context, sc model.Scope, input challenge.ChangeStatusInput) (challenge.ChangeStatusOutput, error) {
	if !input.Target.IsValid() {
		return challenge.ChangeStatusOutput{}, challenge.ErrInvalidStatus
	}

	existing, err := uc.getChallenge(ctx, "ChangeStatus", input.ID)
	if err != nil {
		return challenge.ChangeStatusOutput{}, err
	}
	if !canManage(sc, existing) {
		return challenge.ChangeStatusOutput{}, challenge.ErrNotAuthor
	}
	if !existing.Status.CanTransitionTo(input.Target) {
		uc.l.Warnf(ctx, "uc.ChangeStatus: challenge %d %s -> %s rejected", existing.ID, existing.Status, input.Target)
		return challenge.ChangeStatusOutput{}, challenge.ErrInvalidTransition
	}

	ch, err := uc.repo.UpdateChallenge(ctx, repo.UpdateChallengeOptions{
		ID:           existing.ID,
		Title:        existing.Title,
		Description:  existing.Description,
		Status:       input.Target,
		StartDate:    existing.StartDate,
		EndDate:      existing.EndDate,
		RewardAmount: existing.RewardAmount,
		RewardType:   existing.RewardType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ChangeStatus UpdateChallenge: %v", err)
		return challenge.ChangeStatusOutput{}, err
	}
	if ch.ID == 0 {
		return challenge.ChangeStatusOutput{}, challenge.ErrChallengeNotFound
	}

	uc.l.Infof(ctx, "uc.ChangeStatus: challenge %d %s -> %s", ch.ID, existing.Status, ch.Status)
	return challenge.ChangeStatusOutput{Challenge: ch}, nil
}
