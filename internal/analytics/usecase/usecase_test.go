package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/analytics"
	"expense-tracker/internal/model"
	"expense-tracker/pkg/gemini"
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

// mockGemini is a hand-written test double for gemini.IGemini.
type mockGemini struct {
	generateFn func(ctx context.Context, req *gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}

func (m *mockGemini) GenerateContent(ctx context.Context, req *gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	return m.generateFn(ctx, req)
}

func (m *mockGemini) Model() string { return "mock" }

func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: text}}}},
		},
	}
}

func sampleInput() analytics.AnalysisInput {
	return analytics.AnalysisInput{
		Expenses: []model.Expense{
			{ID: "e1", Category: model.CategoryFood, Amount: decimal.NewFromInt(75)},
			{ID: "e2", Category: model.CategoryBills, Amount: decimal.NewFromInt(25)},
		},
		Incomes: []model.Income{
			{ID: "i1", Source: model.SourceSalary, Amount: decimal.NewFromInt(1000)},
		},
	}
}

func TestSpendingAnalysisUsesModel(t *testing.T) {
	llm := &mockGemini{
		generateFn: func(ctx context.Context, req *gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
			return textResponse("Your food spending dominates. Consider meal planning."), nil
		},
	}
	uc := New(llm, noopLogger{})

	out, err := uc.SpendingAnalysis(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.FromModel {
		t.Error("expected model-generated analysis")
	}
	if !strings.Contains(out.Text, "meal planning") {
		t.Errorf("unexpected text %q", out.Text)
	}
}

func TestSpendingAnalysisFallsBackOnModelError(t *testing.T) {
	llm := &mockGemini{
		generateFn: func(ctx context.Context, req *gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
			return nil, errors.New("upstream timeout")
		},
	}
	uc := New(llm, noopLogger{})

	out, err := uc.SpendingAnalysis(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FromModel {
		t.Error("expected fallback analysis")
	}
	if !strings.Contains(out.Text, "$100.00") {
		t.Errorf("expected total spend in fallback text, got %q", out.Text)
	}
	if !strings.Contains(out.Text, "Food & Dining") {
		t.Errorf("expected top category in fallback text, got %q", out.Text)
	}
}

func TestSpendingAnalysisNoLLM(t *testing.T) {
	uc := New(nil, noopLogger{})

	out, err := uc.SpendingAnalysis(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FromModel {
		t.Error("expected fallback when no model is configured")
	}
}

func TestSpendingAnalysisNoExpenses(t *testing.T) {
	uc := New(nil, noopLogger{})

	out, err := uc.SpendingAnalysis(context.Background(), analytics.AnalysisInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.Text, "haven't recorded any expenses") {
		t.Errorf("unexpected text %q", out.Text)
	}
}

func TestBudgetRecommendationFallbackRatios(t *testing.T) {
	uc := New(nil, noopLogger{})

	out, err := uc.BudgetRecommendation(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.TotalBudget.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected budget 800, got %s", out.TotalBudget)
	}
	if !out.Savings.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected savings 200, got %s", out.Savings)
	}

	want := map[model.Category]int64{
		model.CategoryFood:          150,
		model.CategoryTransport:     150,
		model.CategoryEntertainment: 50,
		model.CategoryBills:         250,
		model.CategoryShopping:      100,
		model.CategoryHealth:        50,
		model.CategoryEducation:     30,
		model.CategoryOther:         70,
	}
	for _, cb := range out.Categories {
		expected, ok := want[cb.Category]
		if !ok {
			t.Errorf("unexpected category %q", cb.Category)
			continue
		}
		if !cb.Amount.Equal(decimal.NewFromInt(expected)) {
			t.Errorf("category %q: expected %d, got %s", cb.Category, expected, cb.Amount)
		}
	}
}

func TestBudgetRecommendationZeroIncomeSkipsModel(t *testing.T) {
	called := false
	llm := &mockGemini{
		generateFn: func(ctx context.Context, req *gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
			called = true
			return textResponse("irrelevant"), nil
		},
	}
	uc := New(llm, noopLogger{})

	out, err := uc.BudgetRecommendation(context.Background(), analytics.AnalysisInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Error("model must not be called with zero income")
	}
	if !out.TotalBudget.IsZero() || !out.Savings.IsZero() {
		t.Errorf("expected zero plan, got %+v", out)
	}
}
