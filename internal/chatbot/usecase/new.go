package usecase

import (
	"expense-tracker/internal/analytics"
	"expense-tracker/internal/chatbot/repository"
	"expense-tracker/internal/finance"
	"expense-tracker/pkg/deepgram"
	"expense-tracker/pkg/gemini"
	"expense-tracker/pkg/log"
)

// implUseCase is the private implementation of chatbot.UseCase.
// llm and speech may be nil when the corresponding service is not
// configured; the pipeline degrades per collaborator.
type implUseCase struct {
	l         log.Logger
	llm       gemini.IGemini
	speech    deepgram.IDeepgram
	finance   finance.UseCase
	analytics analytics.UseCase
	sessions  repository.SessionRepository
}

// New creates a new chatbot UseCase implementation.
func New(
	l log.Logger,
	llm gemini.IGemini,
	speech deepgram.IDeepgram,
	financeUC finance.UseCase,
	analyticsUC analytics.UseCase,
	sessions repository.SessionRepository,
) *implUseCase {
	return &implUseCase{
		l:         l,
		llm:       llm,
		speech:    speech,
		finance:   financeUC,
		analytics: analyticsUC,
		sessions:  sessions,
	}
}
