package usecase

import (
	"challenge-admin/internal/auth"
	"challenge-admin/internal/auth/repository"
	"challenge-admin/pkg/encrypter"
	"challenge-admin/pkg/log"
	"challenge-admin/pkg/ratelimit"
	"challenge-admin/pkg/scope"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	encrypter  encrypter.Encrypter
	jwtManager scope.Manager
	limiter    *ratelimit.Limiter
}

// New creates a new auth UseCase implementation.
// limiter throttles login attempts per client IP.
func New(
	repo repository.Repository,
	l log.Logger,
	enc encrypter.Encrypter,
	jwtManager scope.Manager,
	limiter *ratelimit.Limiter,
) auth.UseCase {
	return &implUseCase{
		repo:       repo,
		l:          l,
		encrypter:  enc,
		jwtManager: jwtManager,
		limiter:    limiter,
	}
}
