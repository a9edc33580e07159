package usecase

import (
	"context"
	"fmt"
	"testing"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/model"
)

func TestHistoryStripsActionPayloads(t *testing.T) {
	p := newPipeline(&mockGemini{})
	ctx := context.Background()

	p.sessions.turns["user-1"] = []chatbot.Turn{
		{
			ID:          "t1",
			UserMessage: "I spent $20 on lunch",
			BotResponse: "Got it!",
			Action:      &chatbot.Action{Type: "ADD_EXPENSE", Data: model.Expense{ID: "e1"}},
			Success:     true,
		},
		{ID: "t2", UserMessage: "hello", BotResponse: "hi"},
	}

	out, err := p.uc.History(ctx, testScope(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.TotalMessages != 2 || len(out.Turns) != 2 {
		t.Fatalf("unexpected output: %+v", out)
	}
	if out.Turns[0].Action == nil || out.Turns[0].Action.Type != "ADD_EXPENSE" {
		t.Errorf("action type must survive, got %+v", out.Turns[0].Action)
	}
	if out.Turns[0].Action.Data != nil {
		t.Errorf("action payload must be stripped, got %+v", out.Turns[0].Action.Data)
	}
	if out.Turns[1].Action != nil {
		t.Errorf("turns without actions stay bare")
	}
}

func TestHistoryDefaultLimit(t *testing.T) {
	p := newPipeline(&mockGemini{})
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		p.sessions.turns["user-1"] = append(p.sessions.turns["user-1"], chatbot.Turn{ID: fmt.Sprintf("t%d", i)})
	}

	out, err := p.uc.History(ctx, testScope(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Turns) != 20 {
		t.Errorf("expected default limit of 20 turns, got %d", len(out.Turns))
	}
	if out.TotalMessages != 30 {
		t.Errorf("expected total 30, got %d", out.TotalMessages)
	}
}

func TestClearHistory(t *testing.T) {
	p := newPipeline(&mockGemini{})
	ctx := context.Background()

	p.sessions.turns["user-1"] = []chatbot.Turn{{ID: "t1"}}
	if err := p.uc.ClearHistory(ctx, testScope()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := p.uc.History(ctx, testScope(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TotalMessages != 0 {
		t.Errorf("expected empty history, got %+v", out)
	}
}

func TestCapabilities(t *testing.T) {
	p := newPipeline(&mockGemini{})

	caps := p.uc.Capabilities()
	if len(caps.Intents) != 7 {
		t.Errorf("expected 7 intents, got %d", len(caps.Intents))
	}
	if len(caps.Categories) != 8 {
		t.Errorf("expected 8 categories, got %d", len(caps.Categories))
	}
	if len(caps.Sources) != 5 {
		t.Errorf("expected 5 sources, got %d", len(caps.Sources))
	}
	for _, d := range caps.Intents {
		if d.Description == "" || len(d.Examples) == 0 {
			t.Errorf("intent %q missing description or examples", d.Intent)
		}
	}
}
