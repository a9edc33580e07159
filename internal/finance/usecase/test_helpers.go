package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	repo "expense-tracker/internal/finance/repository"
	"expense-tracker/internal/model"
)

// mockRepository is a hand-written test double for repository.Repository.
// Each method delegates to an optional func field.
type mockRepository struct {
	createExpenseFn func(ctx context.Context, sc model.Scope, opt repo.CreateExpenseOptions) (model.Expense, error)
	getOneExpenseFn func(ctx context.Context, sc model.Scope, opt repo.GetOneExpenseOptions) (model.Expense, error)
	listExpensesFn  func(ctx context.Context, sc model.Scope, opt repo.ListExpensesOptions) ([]model.Expense, int, error)
	updateExpenseFn func(ctx context.Context, sc model.Scope, opt repo.UpdateExpenseOptions) (model.Expense, error)
	deleteExpenseFn func(ctx context.Context, sc model.Scope, id string) error
	sumByCategoryFn func(ctx context.Context, sc model.Scope) ([]repo.CategoryTotal, error)

	createIncomeFn func(ctx context.Context, sc model.Scope, opt repo.CreateIncomeOptions) (model.Income, error)
	getOneIncomeFn func(ctx context.Context, sc model.Scope, opt repo.GetOneIncomeOptions) (model.Income, error)
	listIncomesFn  func(ctx context.Context, sc model.Scope, opt repo.ListIncomesOptions) ([]model.Income, int, error)
	deleteIncomeFn func(ctx context.Context, sc model.Scope, id string) error
	sumIncomesFn   func(ctx context.Context, sc model.Scope) (decimal.Decimal, error)
}

func (m *mockRepository) CreateExpense(ctx context.Context, sc model.Scope, opt repo.CreateExpenseOptions) (model.Expense, error) {
	if m.createExpenseFn == nil {
		return model.Expense{}, nil
	}
	return m.createExpenseFn(ctx, sc, opt)
}

func (m *mockRepository) GetOneExpense(ctx context.Context, sc model.Scope, opt repo.GetOneExpenseOptions) (model.Expense, error) {
	if m.getOneExpenseFn == nil {
		return model.Expense{}, nil
	}
	return m.getOneExpenseFn(ctx, sc, opt)
}

func (m *mockRepository) ListExpenses(ctx context.Context, sc model.Scope, opt repo.ListExpensesOptions) ([]model.Expense, int, error) {
	if m.listExpensesFn == nil {
		return nil, 0, nil
	}
	return m.listExpensesFn(ctx, sc, opt)
}

func (m *mockRepository) UpdateExpense(ctx context.Context, sc model.Scope, opt repo.UpdateExpenseOptions) (model.Expense, error) {
	if m.updateExpenseFn == nil {
		return model.Expense{}, nil
	}
	return m.updateExpenseFn(ctx, sc, opt)
}

func (m *mockRepository) DeleteExpense(ctx context.Context, sc model.Scope, id string) error {
	if m.deleteExpenseFn == nil {
		return nil
	}
	return m.deleteExpenseFn(ctx, sc, id)
}

func (m *mockRepository) SumExpensesByCategory(ctx context.Context, sc model.Scope) ([]repo.CategoryTotal, error) {
	if m.sumByCategoryFn == nil {
		return nil, nil
	}
	return m.sumByCategoryFn(ctx, sc)
}

func (m *mockRepository) CreateIncome(ctx context.Context, sc model.Scope, opt repo.CreateIncomeOptions) (model.Income, error) {
	if m.createIncomeFn == nil {
		return model.Income{}, nil
	}
	return m.createIncomeFn(ctx, sc, opt)
}

func (m *mockRepository) GetOneIncome(ctx context.Context, sc model.Scope, opt repo.GetOneIncomeOptions) (model.Income, error) {
	if m.getOneIncomeFn == nil {
		return model.Income{}, nil
	}
	return m.getOneIncomeFn(ctx, sc, opt)
}

func (m *mockRepository) ListIncomes(ctx context.Context, sc model.Scope, opt repo.ListIncomesOptions) ([]model.Income, int, error) {
	if m.listIncomesFn == nil {
		return nil, 0, nil
	}
	return m.listIncomesFn(ctx, sc, opt)
}

func (m *mockRepository) DeleteIncome(ctx context.Context, sc model.Scope, id string) error {
	if m.deleteIncomeFn == nil {
		return nil
	}
	return m.deleteIncomeFn(ctx, sc, id)
}

func (m *mockRepository) SumIncomes(ctx context.Context, sc model.Scope) (decimal.Decimal, error) {
	if m.sumIncomesFn == nil {
		return decimal.Zero, nil
	}
	return m.sumIncomesFn(ctx, sc)
}

// noopLogger satisfies log.Logger for tests.
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
