package usecase

import (
	"context"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/chatbot/repository"
	"expense-tracker/internal/model"
)

// History returns the principal's recent turns, oldest first. Action payloads
// are stripped; callers get the action type only.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, limit int) (chatbot.HistoryOutput, error) {
	if limit <= 0 {
		limit = repository.DefaultListLimit
	}

	turns, total, err := uc.sessions.ListTurns(ctx, sc.UserID, limit)
	if err != nil {
		uc.l.Errorf(ctx, "uc.History ListTurns: %v", err)
		return chatbot.HistoryOutput{}, err
	}

	for i := range turns {
		if turns[i].Action != nil {
			turns[i].Action = &chatbot.Action{Type: turns[i].Action.Type}
		}
	}

	return chatbot.HistoryOutput{Turns: turns, TotalMessages: total}, nil
}

// ClearHistory removes every recorded turn for the principal.
func (uc *implUseCase) ClearHistory(ctx context.Context, sc model.Scope) error {
	if err := uc.sessions.ClearTurns(ctx, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "uc.ClearHistory ClearTurns: %v", err)
		return err
	}
	return nil
}
