package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/chatbot/repository"
	"expense-tracker/pkg/log"
)

type implRepository struct {
	client *redis.Client
	l      log.Logger
}

// New creates a Redis-backed SessionRepository for multi-instance deployments.
func New(client *redis.Client, l log.Logger) repository.SessionRepository {
	if client == nil {
		panic("chatbot/repository/redis: client is required")
	}
	return &implRepository{client: client, l: l}
}

func historyKey(userID string) string {
	return fmt.Sprintf("chat:history:%s", userID)
}

// AppendTurn pushes the turn and trims the list to MaxTurns. Newest turns
// live at the head of the list.
func (r *implRepository) AppendTurn(ctx context.Context, userID string, turn chatbot.Turn) error {
	raw, err := json.Marshal(turn)
	if err != nil {
		r.l.Errorf(ctx, "chatbot/repository/redis.AppendTurn marshal: %v", err)
		return repository.ErrFailedToAppend
	}

	key := historyKey(userID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, raw)
	pipe.LTrim(ctx, key, 0, repository.MaxTurns-1)
	if _, err := pipe.Exec(ctx); err != nil {
		r.l.Errorf(ctx, "chatbot/repository/redis.AppendTurn: %v", err)
		return repository.ErrFailedToAppend
	}
	return nil
}

// ListTurns returns the most recent limit turns, oldest first, plus the
// total number of stored turns.
func (r *implRepository) ListTurns(ctx context.Context, userID string, limit int) ([]chatbot.Turn, int, error) {
	if limit <= 0 {
		limit = repository.DefaultListLimit
	}

	key := historyKey(userID)
	total, err := r.client.LLen(ctx, key).Result()
	if err != nil {
		r.l.Errorf(ctx, "chatbot/repository/redis.ListTurns llen: %v", err)
		return nil, 0, repository.ErrFailedToList
	}

	raws, err := r.client.LRange(ctx, key, 0, int64(limit)-1).Result()
	if err != nil {
		r.l.Errorf(ctx, "chatbot/repository/redis.ListTurns lrange: %v", err)
		return nil, 0, repository.ErrFailedToList
	}

	// LRange returns newest first; reverse to oldest first.
	turns := make([]chatbot.Turn, 0, len(raws))
	for i := len(raws) - 1; i >= 0; i-- {
		var turn chatbot.Turn
		if err := json.Unmarshal([]byte(raws[i]), &turn); err != nil {
			r.l.Errorf(ctx, "chatbot/repository/redis.ListTurns unmarshal: %v", err)
			return nil, 0, repository.ErrFailedToList
		}
		turns = append(turns, turn)
	}
	return turns, int(total), nil
}

// ClearTurns removes all history for the principal.
func (r *implRepository) ClearTurns(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, historyKey(userID)).Err(); err != nil {
		r.l.Errorf(ctx, "chatbot/repository/redis.ClearTurns: %v", err)
		return repository.ErrFailedToClear
	}
	return nil
}
