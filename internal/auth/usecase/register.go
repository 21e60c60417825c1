package usecase

import (
	"context"
	"errors"

	"challenge-admin/internal/auth"
	repo "challenge-admin/internal/auth/repository"
	"challenge-admin/internal/model"
)

// Register creates a USER account. Returns ErrEmailTaken when the email is in use.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.RegisterOutput, error) {
	user, err := uc.createUser(ctx, input.Username, input.Email, input.Password, model.RoleUser)
	if err != nil {
		return auth.RegisterOutput{}, err
	}
	uc.l.Infof(ctx, "uc.Register: user %d registered", user.ID)
	return auth.RegisterOutput{User: user}, nil
}

// EnsureAdmin creates the bootstrap ADMIN account unless its email already exists.
func (uc *implUseCase) EnsureAdmin(ctx context.Context, input auth.EnsureAdminInput) error {
	_, err := uc.createUser(ctx, input.Username, input.Email, input.Password, model.RoleAdmin)
	if errors.Is(err, auth.ErrEmailTaken) {
		return nil
	}
	if err != nil {
		return err
	}
	uc.l.Infof(ctx, "uc.EnsureAdmin: admin account %s created", normalizeEmail(input.Email))
	return nil
}

func (uc *implUseCase) createUser(ctx context.Context, username, email, password string, role model.Role) (auth.User, error) {
	email = normalizeEmail(email)

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.createUser GetOneUser: %v", err)
		return auth.User{}, err
	}
	if existing.ID != 0 {
		return auth.User{}, auth.ErrEmailTaken
	}

	hash, err := uc.encrypter.HashPassword(password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.createUser HashPassword: %v", err)
		return auth.User{}, err
	}

	user, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		// A concurrent registration won the unique index.
		if errors.Is(err, repo.ErrDuplicate) {
			return auth.User{}, auth.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "uc.createUser CreateUser: %v", err)
		return auth.User{}, err
	}
	return user, nil
}
