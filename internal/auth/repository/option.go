package repository

import "challenge-admin/internal/model"

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Username     string
	Email        string
	PasswordHash string
	Role         model.Role
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    int64
	Email string
}

// ListUsersOptions holds pagination parameters for listing Users.
type ListUsersOptions struct {
	Limit  int
	Offset int
}
