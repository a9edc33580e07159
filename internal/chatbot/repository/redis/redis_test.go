package redis

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/chatbot/repository"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestRepo(t *testing.T) repository.SessionRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, noopLogger{})
}

func TestAppendAndList(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		turn := chatbot.Turn{ID: fmt.Sprintf("t-%d", i), UserMessage: fmt.Sprintf("msg %d", i), Success: true}
		if err := r.AppendTurn(ctx, "user-1", turn); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	turns, total, err := r.ListTurns(ctx, "user-1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(turns) != 3 {
		t.Fatalf("expected 3 turns, got total=%d len=%d", total, len(turns))
	}
	// Oldest first.
	if turns[0].ID != "t-0" || turns[2].ID != "t-2" {
		t.Errorf("unexpected ordering: %s .. %s", turns[0].ID, turns[2].ID)
	}
	if turns[0].UserMessage != "msg 0" || !turns[0].Success {
		t.Errorf("turn fields not preserved: %+v", turns[0])
	}
}

func TestTrimToCap(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < repository.MaxTurns+5; i++ {
		if err := r.AppendTurn(ctx, "user-1", chatbot.Turn{ID: fmt.Sprintf("t-%d", i)}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	turns, total, err := r.ListTurns(ctx, "user-1", repository.MaxTurns+5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != repository.MaxTurns {
		t.Errorf("expected cap %d, got %d", repository.MaxTurns, total)
	}
	if turns[0].ID != "t-5" {
		t.Errorf("expected oldest surviving turn t-5, got %s", turns[0].ID)
	}
}

func TestClear(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	r.AppendTurn(ctx, "user-1", chatbot.Turn{ID: "a"})
	r.AppendTurn(ctx, "user-2", chatbot.Turn{ID: "b"})

	if err := r.ClearTurns(ctx, "user-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	_, total, _ := r.ListTurns(ctx, "user-1", 10)
	if total != 0 {
		t.Errorf("expected empty history, got %d", total)
	}
	_, total, _ = r.ListTurns(ctx, "user-2", 10)
	if total != 1 {
		t.Errorf("user-2 history lost")
	}
}
