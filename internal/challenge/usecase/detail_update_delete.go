package usecase

import (
	"context"

	"challenge-admin/internal/challenge"
	repo "challenge-admin/internal/challenge/repository"
	"challenge-admin/internal/model"
)

// Detail retrieves a single Challenge by ID. Returns ErrChallengeNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (challenge.DetailOutput, error) {
	ch, err := uc.getChallenge(ctx, "Detail", id)
	if err != nil {
		return challenge.DetailOutput{}, err
	}
	return challenge.DetailOutput{Challenge: ch}, nil
}

// Update edits a RECRUITING challenge. Author or ADMIN only.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input challenge.UpdateInput) (challenge.UpdateOutput, error) {
	existing, err := uc.getChallenge(ctx, "Update", input.ID)
	if err != nil {
		return challenge.UpdateOutput{}, err
	}
	if !canManage(sc, existing) {
		return challenge.UpdateOutput{}, challenge.ErrNotAuthor
	}
	if existing.Status != challenge.StatusRecruiting {
		return challenge.UpdateOutput{}, challenge.ErrNotRecruiting
	}

	start, end := existing.StartDate, existing.EndDate
	if input.StartDate != nil {
		start = *input.StartDate
	}
	if input.EndDate != nil {
		end = *input.EndDate
	}
	if end.Before(start) {
		return challenge.UpdateOutput{}, challenge.ErrInvalidDateRange
	}

	rewardAmount := existing.RewardAmount
	if input.RewardAmount != nil {
		rewardAmount = *input.RewardAmount
	}

	ch, err := uc.repo.UpdateChallenge(ctx, repo.UpdateChallengeOptions{
		ID:           existing.ID,
		Title:        coalesce(input.Title, existing.Title),
		Description:  coalesce(input.Description, existing.Description),
		Status:       existing.Status,
		StartDate:    start,
		EndDate:      end,
		RewardAmount: rewardAmount,
		RewardType:   coalesce(input.RewardType, existing.RewardType),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateChallenge: %v", err)
		return challenge.UpdateOutput{}, err
	}
	if ch.ID == 0 {
		return challenge.UpdateOutput{}, challenge.ErrChallengeNotFound
	}
	return challenge.UpdateOutput{Challenge: ch}, nil
}

// Delete removes a Challenge. Author or ADMIN only.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	existing, err := uc.getChallenge(ctx, "Delete", id)
	if err != nil {
		return err
	}
	if !canManage(sc, existing) {
		return challenge.ErrNotAuthor
	}
	if err := uc.repo.DeleteChallenge(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteChallenge: %v", err)
		return err
	}
	uc.l.Infof(ctx, "uc.Delete: challenge %d deleted by user %d", id, sc.UserID)
	return nil
}
