package repository

import (
	"context"

	"challenge-admin/internal/auth"
)

// Repository is the composed interface for the auth domain data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (auth.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (auth.User, error)
	ListUsers(ctx context.Context, opt ListUsersOptions) ([]auth.User, int, error)
}
