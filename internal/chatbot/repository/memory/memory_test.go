package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/chatbot/repository"
)

func TestAppendTrimsToCap(t *testing.T) {
	r := New()
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		turn := chatbot.Turn{ID: fmt.Sprintf("t-%d", i), UserMessage: fmt.Sprintf("msg %d", i)}
		if err := r.AppendTurn(ctx, "user-1", turn); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	turns, total, err := r.ListTurns(ctx, "user-1", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != repository.MaxTurns {
		t.Errorf("expected total %d, got %d", repository.MaxTurns, total)
	}
	if len(turns) != repository.MaxTurns {
		t.Fatalf("expected %d turns, got %d", repository.MaxTurns, len(turns))
	}
	// Oldest 10 must have been dropped.
	if turns[0].ID != "t-10" {
		t.Errorf("expected oldest surviving turn t-10, got %s", turns[0].ID)
	}
	if turns[len(turns)-1].ID != "t-59" {
		t.Errorf("expected newest turn t-59, got %s", turns[len(turns)-1].ID)
	}
}

func TestListDefaultLimit(t *testing.T) {
	r := New()
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		r.AppendTurn(ctx, "user-1", chatbot.Turn{ID: fmt.Sprintf("t-%d", i)})
	}

	turns, total, err := r.ListTurns(ctx, "user-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 30 {
		t.Errorf("expected total 30, got %d", total)
	}
	if len(turns) != repository.DefaultListLimit {
		t.Errorf("expected default limit %d, got %d", repository.DefaultListLimit, len(turns))
	}
	if turns[0].ID != "t-10" {
		t.Errorf("expected window to start at t-10, got %s", turns[0].ID)
	}
}

func TestPrincipalIsolation(t *testing.T) {
	r := New()
	ctx := context.Background()

	r.AppendTurn(ctx, "user-1", chatbot.Turn{ID: "a"})
	r.AppendTurn(ctx, "user-2", chatbot.Turn{ID: "b"})

	turns, total, _ := r.ListTurns(ctx, "user-1", 10)
	if total != 1 || turns[0].ID != "a" {
		t.Errorf("user-1 history polluted: %+v", turns)
	}

	if err := r.ClearTurns(ctx, "user-1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	_, total, _ = r.ListTurns(ctx, "user-1", 10)
	if total != 0 {
		t.Errorf("expected cleared history, got %d", total)
	}
	_, total, _ = r.ListTurns(ctx, "user-2", 10)
	if total != 1 {
		t.Errorf("user-2 history lost on user-1 clear")
	}
}

func TestConcurrentAppends(t *testing.T) {
	r := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.AppendTurn(ctx, "user-1", chatbot.Turn{ID: fmt.Sprintf("t-%d", i)})
		}(i)
	}
	wg.Wait()

	_, total, err := r.ListTurns(ctx, "user-1", repository.MaxTurns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != repository.MaxTurns {
		t.Errorf("expected cap %d after concurrent appends, got %d", repository.MaxTurns, total)
	}
}
