package usecase

import (
	"expense-tracker/pkg/gemini"
	"expense-tracker/pkg/log"
)

// implUseCase is the private implementation of analytics.UseCase.
// llm may be nil, in which case every call uses the deterministic fallback.
type implUseCase struct {
	llm gemini.IGemini
	l   log.Logger
}

// New creates a new analytics UseCase implementation.
func New(llm gemini.IGemini, l log.Logger) *implUseCase {
	return &implUseCase{
		llm: llm,
		l:   l,
	}
}
