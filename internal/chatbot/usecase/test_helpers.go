package usecase

import (
	"context"

	"expense-tracker/internal/analytics"
	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/finance"
	"expense-tracker/internal/model"
	"expense-tracker/pkg/deepgram"
	"expense-tracker/pkg/gemini"
)

// Hand-written collaborator mocks for the pipeline tests. Each method
// delegates to an optional fn field; unset methods return zero values.

type mockGemini struct {
	generateFn func(ctx context.Context, req *gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	calls      int
}

func (m *mockGemini) GenerateContent(ctx context.Context, req *gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.calls++
	if m.generateFn != nil {
		return m.generateFn(ctx, req)
	}
	return &gemini.GenerateResponse{}, nil
}

func (m *mockGemini) Model() string { return "gemini-test" }

// textResponse wraps raw text in the response shape GenerateContent returns.
func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: text}}}},
		},
	}
}

type mockSpeech struct {
	transcribeFn func(ctx context.Context, audio []byte, opts deepgram.TranscribeOptions) (*deepgram.TranscribeResult, error)
}

func (m *mockSpeech) Transcribe(ctx context.Context, audio []byte, opts deepgram.TranscribeOptions) (*deepgram.TranscribeResult, error) {
	if m.transcribeFn != nil {
		return m.transcribeFn(ctx, audio, opts)
	}
	return &deepgram.TranscribeResult{}, nil
}

func (m *mockSpeech) Model() string { return "nova-test" }

type mockFinance struct {
	createExpenseFn func(ctx context.Context, sc model.Scope, input finance.CreateExpenseInput) (finance.CreateExpenseOutput, error)
	deleteExpenseFn func(ctx context.Context, sc model.Scope, id string) error
	createIncomeFn  func(ctx context.Context, sc model.Scope, input finance.CreateIncomeInput) (finance.CreateIncomeOutput, error)

	createExpenseCalls int
	createIncomeCalls  int
	deleteExpenseCalls int
}

func (m *mockFinance) CreateExpense(ctx context.Context, sc model.Scope, input finance.CreateExpenseInput) (finance.CreateExpenseOutput, error) {
	m.createExpenseCalls++
	if m.createExpenseFn != nil {
		return m.createExpenseFn(ctx, sc, input)
	}
	return finance.CreateExpenseOutput{}, nil
}

func (m *mockFinance) ListExpenses(ctx context.Context, sc model.Scope, input finance.ListExpensesInput) (finance.ListExpensesOutput, error) {
	return finance.ListExpensesOutput{}, nil
}

func (m *mockFinance) DetailExpense(ctx context.Context, sc model.Scope, id string) (finance.DetailExpenseOutput, error) {
	return finance.DetailExpenseOutput{}, nil
}

func (m *mockFinance) UpdateExpense(ctx context.Context, sc model.Scope, input finance.UpdateExpenseInput) (finance.UpdateExpenseOutput, error) {
	return finance.UpdateExpenseOutput{}, nil
}

func (m *mockFinance) DeleteExpense(ctx context.Context, sc model.Scope, id string) error {
	m.deleteExpenseCalls++
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(ctx, sc, id)
	}
	return nil
}

func (m *mockFinance) CategoryDistribution(ctx context.Context, sc model.Scope) (finance.CategoryDistributionOutput, error) {
	return finance.CategoryDistributionOutput{}, nil
}

func (m *mockFinance) CreateIncome(ctx context.Context, sc model.Scope, input finance.CreateIncomeInput) (finance.CreateIncomeOutput, error) {
	m.createIncomeCalls++
	if m.createIncomeFn != nil {
		return m.createIncomeFn(ctx, sc, input)
	}
	return finance.CreateIncomeOutput{}, nil
}

func (m *mockFinance) ListIncomes(ctx context.Context, sc model.Scope, input finance.ListIncomesInput) (finance.ListIncomesOutput, error) {
	return finance.ListIncomesOutput{}, nil
}

func (m *mockFinance) DeleteIncome(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func (m *mockFinance) TotalIncome(ctx context.Context, sc model.Scope) (finance.TotalIncomeOutput, error) {
	return finance.TotalIncomeOutput{}, nil
}

type mockAnalytics struct {
	spendingFn func(ctx context.Context, input analytics.AnalysisInput) (analytics.AnalysisOutput, error)
	budgetFn   func(ctx context.Context, input analytics.AnalysisInput) (analytics.BudgetOutput, error)
}

func (m *mockAnalytics) SpendingAnalysis(ctx context.Context, input analytics.AnalysisInput) (analytics.AnalysisOutput, error) {
	if m.spendingFn != nil {
		return m.spendingFn(ctx, input)
	}
	return analytics.AnalysisOutput{}, nil
}

func (m *mockAnalytics) BudgetRecommendation(ctx context.Context, input analytics.AnalysisInput) (analytics.BudgetOutput, error) {
	if m.budgetFn != nil {
		return m.budgetFn(ctx, input)
	}
	return analytics.BudgetOutput{}, nil
}

// mockSessions records turns in memory.
type mockSessions struct {
	appendErr error
	turns     map[string][]chatbot.Turn
}

func newMockSessions() *mockSessions {
	return &mockSessions{turns: map[string][]chatbot.Turn{}}
}

func (m *mockSessions) AppendTurn(ctx context.Context, userID string, turn chatbot.Turn) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.turns[userID] = append(m.turns[userID], turn)
	return nil
}

func (m *mockSessions) ListTurns(ctx context.Context, userID string, limit int) ([]chatbot.Turn, int, error) {
	all := m.turns[userID]
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, len(m.turns[userID]), nil
}

func (m *mockSessions) ClearTurns(ctx context.Context, userID string) error {
	delete(m.turns, userID)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any)                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, args ...any)                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, args ...any)                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {
}
func (noopLogger) Panic(ctx context.Context, args ...any)                 {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any) {}
