package usecase

import (
	"context"
	"errors"

	"challenge-admin/internal/auth"
	repo "challenge-admin/internal/auth/repository"
	"challenge-admin/internal/model"
	"challenge-admin/pkg/encrypter"
	"challenge-admin/pkg/scope"
)

// Login checks the credentials and issues an access token.
// Unknown email and wrong password both return ErrInvalidCredentials.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	if !uc.limiter.Allow(input.ClientIP) {
		uc.l.Warnf(ctx, "uc.Login: rate limit exceeded for %s", input.ClientIP)
		return auth.LoginOutput{}, auth.ErrTooManyAttempts
	}

	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: normalizeEmail(input.Email)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return auth.LoginOutput{}, err
	}
	if user.ID == 0 {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	if err := uc.encrypter.ComparePassword(user.PasswordHash, input.Password); err != nil {
		if errors.Is(err, encrypter.ErrMismatch) {
			return auth.LoginOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "uc.Login ComparePassword: %v", err)
		return auth.LoginOutput{}, err
	}

	token, expiresAt, err := uc.jwtManager.CreateToken(scope.Payload{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login CreateToken: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Logout revokes the token the caller authenticated with.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	uc.jwtManager.Revoke(sc.TokenID)
	uc.l.Infof(ctx, "uc.Logout: user %d logged out", sc.UserID)
	return nil
}
