package usecase

import (
	"context"
	"testing"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/model"
)

func TestClassifyParsesModelOutput(t *testing.T) {
	llm := &mockGemini{generateFn: classifierJSON("```json\n" +
		`{"intent": "add_expense", "confidence": 0.9, "entities": {"amount": 20, "category": "food", "payment_method": "cash"}}` +
		"\n```")}
	p := newPipeline(llm)
	uc := p.uc.(*implUseCase)

	intent, err := uc.classify(context.Background(), "I spent $20 on lunch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if intent.Kind != chatbot.IntentAddExpense {
		t.Errorf("expected ADD_EXPENSE, got %q", intent.Kind)
	}
	if intent.Confidence != 0.9 {
		t.Errorf("expected confidence 0.9, got %v", intent.Confidence)
	}
	if intent.Fields.PaymentMethod != model.PaymentMethodCash {
		t.Errorf("expected cash, got %q", intent.Fields.PaymentMethod)
	}
	if len(intent.MissingFields) != 0 {
		t.Errorf("expected complete intent, got missing %v", intent.MissingFields)
	}
}

func TestClassifyDefaultsConfidence(t *testing.T) {
	llm := &mockGemini{generateFn: classifierJSON(
		`{"intent": "VIEW_EXPENSES", "entities": {}}`,
	)}
	p := newPipeline(llm)
	uc := p.uc.(*implUseCase)

	intent, err := uc.classify(context.Background(), "show my expenses")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Confidence != defaultModelConfidence {
		t.Errorf("expected default confidence %v, got %v", defaultModelConfidence, intent.Confidence)
	}
}

func TestClassifyClampsConfidence(t *testing.T) {
	llm := &mockGemini{generateFn: classifierJSON(
		`{"intent": "VIEW_EXPENSES", "confidence": 3.5, "entities": {}}`,
	)}
	p := newPipeline(llm)
	uc := p.uc.(*implUseCase)

	intent, err := uc.classify(context.Background(), "show my expenses")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Confidence != 1 {
		t.Errorf("expected confidence clamped to 1, got %v", intent.Confidence)
	}
}

func TestClassifyDropsUnknownTaxonomyValues(t *testing.T) {
	llm := &mockGemini{generateFn: classifierJSON(
		`{"intent": "ADD_EXPENSE", "confidence": 0.9, "entities": {"amount": 20, "category": "groceries"}}`,
	)}
	p := newPipeline(llm)
	uc := p.uc.(*implUseCase)

	intent, err := uc.classify(context.Background(), "spent $20 on groceries")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Fields.Category != "" {
		t.Errorf("unknown category must be dropped, got %q", intent.Fields.Category)
	}
	if len(intent.MissingFields) != 1 || intent.MissingFields[0] != "category" {
		t.Errorf("expected missing category, got %v", intent.MissingFields)
	}
}

func TestClassifyUnknownIntentFallsBack(t *testing.T) {
	llm := &mockGemini{generateFn: classifierJSON(
		`{"intent": "TRANSFER_FUNDS", "confidence": 0.9, "entities": {}}`,
	)}
	p := newPipeline(llm)
	uc := p.uc.(*implUseCase)

	intent, err := uc.classify(context.Background(), "I spent $20 on lunch")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intent.Kind != chatbot.IntentAddExpense {
		t.Errorf("expected heuristic ADD_EXPENSE, got %q", intent.Kind)
	}
	if intent.Confidence != heuristicConfidenceAmount {
		t.Errorf("expected heuristic confidence, got %v", intent.Confidence)
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "fenced json",
			in:   "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "bare fence",
			in:   "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "prose around object",
			in:   `Sure! Here you go: {"a": 1} Hope that helps.`,
			want: `{"a": 1}`,
		},
		{
			name: "plain json",
			in:   `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "no json at all",
			in:   "sorry, no idea",
			want: "sorry, no idea",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
