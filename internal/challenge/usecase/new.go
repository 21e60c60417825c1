package usecase

import (
	"challenge-admin/internal/challenge"
	"challenge-admin/internal/challenge/repository"
	"challenge-admin/pkg/log"
)

// implUseCase is the private implementation of challenge.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new challenge UseCase implementation.
func New(repo repository.Repository, l log.Logger) challenge.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
