package usecase

import (
	"context"

	"challenge-admin/internal/challenge"
	repo "challenge-admin/internal/challenge/repository"
)

// List returns a paginated list of Challenges, optionally filtered by status.
func (uc *implUseCase) List(ctx context.Context, input challenge.ListInput) (challenge.ListOutput, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return challenge.ListOutput{}, challenge.ErrInvalidStatus
	}

	challenges, total, err := uc.repo.ListChallenges(ctx, repo.ListChallengesOptions{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListChallenges: %v", err)
		return challenge.ListOutput{}, err
	}

	return challenge.ListOutput{
		Challenges: challenges,
		Total:      total,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}, nil
}
