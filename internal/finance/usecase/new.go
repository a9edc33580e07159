package usecase

import (
	"expense-tracker/internal/finance/repository"
	"expense-tracker/pkg/log"
)

// implUseCase is the private implementation of finance.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new finance UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
