package memory

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/chatbot/repository"
)

// maxPrincipals bounds how many users can hold history at once. Least
// recently active users are evicted wholesale.
const maxPrincipals = 10000

type history struct {
	mu    sync.Mutex
	turns []chatbot.Turn
}

type implRepository struct {
	principals *lru.Cache[string, *history]
}

// New creates an in-memory SessionRepository. History is lost on restart.
func New() repository.SessionRepository {
	principals, _ := lru.New[string, *history](maxPrincipals)
	return &implRepository{principals: principals}
}

func (r *implRepository) forPrincipal(userID string) *history {
	if h, ok := r.principals.Get(userID); ok {
		return h
	}
	h := &history{}
	if existing, ok, _ := r.principals.PeekOrAdd(userID, h); ok {
		return existing
	}
	return h
}

// AppendTurn records a turn and trims the principal's list to MaxTurns,
// dropping the oldest entries.
func (r *implRepository) AppendTurn(ctx context.Context, userID string, turn chatbot.Turn) error {
	h := r.forPrincipal(userID)
	h.mu.Lock()
	defer h.mu.Unlock()

	h.turns = append(h.turns, turn)
	if len(h.turns) > repository.MaxTurns {
		h.turns = h.turns[len(h.turns)-repository.MaxTurns:]
	}
	return nil
}

// ListTurns returns the most recent limit turns, oldest first, plus the
// total number of stored turns.
func (r *implRepository) ListTurns(ctx context.Context, userID string, limit int) ([]chatbot.Turn, int, error) {
	if limit <= 0 {
		limit = repository.DefaultListLimit
	}

	h, ok := r.principals.Get(userID)
	if !ok {
		return nil, 0, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	total := len(h.turns)
	start := total - limit
	if start < 0 {
		start = 0
	}
	out := make([]chatbot.Turn, total-start)
	copy(out, h.turns[start:])
	return out, total, nil
}

// ClearTurns removes all history for the principal.
func (r *implRepository) ClearTurns(ctx context.Context, userID string) error {
	r.principals.Remove(userID)
	return nil
}
