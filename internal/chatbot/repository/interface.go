package repository

import (
	"context"

	"expense-tracker/internal/chatbot"
)

// MaxTurns caps every principal's conversation history. Appends beyond the
// cap drop the oldest turns.
const MaxTurns = 50

// DefaultListLimit applies when a history read does not specify a limit.
const DefaultListLimit = 20

// SessionRepository stores per-principal conversation history. The orchestrator
// is the only writer; implementations must partition strictly by user ID.
type SessionRepository interface {
	AppendTurn(ctx context.Context, userID string, turn chatbot.Turn) error
	ListTurns(ctx context.Context, userID string, limit int) ([]chatbot.Turn, int, error)
	ClearTurns(ctx context.Context, userID string) error
}
