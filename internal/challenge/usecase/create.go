package usecase

import (
	"context"

	"challenge-admin/internal/challenge"
	repo "challenge-admin/internal/challenge/repository"
	"challenge-admin/internal/model"
)

// Create opens a RECRUITING challenge authored by the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input challenge.CreateInput) (challenge.CreateOutput, error) {
	if input.EndDate.Before(input.StartDate) {
		return challenge.CreateOutput{}, challenge.ErrInvalidDateRange
	}

	ch, err := uc.repo.CreateChallenge(ctx, repo.CreateChallengeOptions{
		Title:        input.Title,
		Description:  input.Description,
		AuthorID:     sc.UserID,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		RewardAmount: input.RewardAmount,
		RewardType:   input.RewardType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateChallenge: %v", err)
		return challenge.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: challenge %d created by user %d", ch.ID, sc.UserID)
	return challenge.CreateOutput{Challenge: ch}, nil
}
