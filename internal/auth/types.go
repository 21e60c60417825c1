package auth

import (
	"time"

	"challenge-admin/internal/model"
)

// User is an account that can log in.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         model.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// --- UseCase Inputs ---

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
	ClientIP string
}

type ListUsersInput struct {
	Limit  int
	Offset int
}

type EnsureAdminInput struct {
	Username string
	Email    string
	Password string
}

// --- UseCase Outputs ---

type RegisterOutput struct {
	User User
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      User
}

type MeOutput struct {
	User User
}

type ListUsersOutput struct {
	Users  []User
	Total  int
	Limit  int
	Offset int
}
