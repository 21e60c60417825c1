package auth

import (
	"context"

	"challenge-admin/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)
	Logout(ctx context.Context, sc model.Scope) error
	ListUsers(ctx context.Context, input ListUsersInput) (ListUsersOutput, error)

	// EnsureAdmin creates the bootstrap admin account if its email is unused.
	EnsureAdmin(ctx context.Context, input EnsureAdminInput) error
}
