package usecase

import (
	"context"

	"challenge-admin/internal/auth"
	repo "challenge-admin/internal/auth/repository"
	"challenge-admin/internal/model"
)

// Me returns the caller's account. ErrUserNotFound means the token outlived the user.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return auth.MeOutput{}, err
	}
	if user.ID == 0 {
		return auth.MeOutput{}, auth.ErrUserNotFound
	}
	return auth.MeOutput{User: user}, nil
}

// ListUsers returns a paginated list of accounts.
func (uc *implUseCase) ListUsers(ctx context.Context, input auth.ListUsersInput) (auth.ListUsersOutput, error) {
	users, total, err := uc.repo.ListUsers(ctx, repo.ListUsersOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListUsers ListUsers: %v", err)
		return auth.ListUsersOutput{}, err
	}
	return auth.ListUsersOutput{
		Users:  users,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
