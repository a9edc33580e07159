package http

import (
	"expense-tracker/internal/finance"
	"expense-tracker/pkg/log"
)

type handler struct {
	l  log.Logger
	uc finance.UseCase
}

// New creates a new HTTP handler for the finance domain.
func New(l log.Logger, uc finance.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
