package finance

import (
	"context"

	"expense-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Expense CRUD
	CreateExpense(ctx context.Context, sc model.Scope, input CreateExpenseInput) (CreateExpenseOutput, error)
	ListExpenses(ctx context.Context, sc model.Scope, input ListExpensesInput) (ListExpensesOutput, error)
	DetailExpense(ctx context.Context, sc model.Scope, id string) (DetailExpenseOutput, error)
	UpdateExpense(ctx context.Context, sc model.Scope, input UpdateExpenseInput) (UpdateExpenseOutput, error)
	DeleteExpense(ctx context.Context, sc model.Scope, id string) error

	// CategoryDistribution aggregates expense totals per category.
	CategoryDistribution(ctx context.Context, sc model.Scope) (CategoryDistributionOutput, error)

	// Income
	CreateIncome(ctx context.Context, sc model.Scope, input CreateIncomeInput) (CreateIncomeOutput, error)
	ListIncomes(ctx context.Context, sc model.Scope, input ListIncomesInput) (ListIncomesOutput, error)
	DeleteIncome(ctx context.Context, sc model.Scope, id string) error

	// TotalIncome sums all income amounts for the scoped user.
	TotalIncome(ctx context.Context, sc model.Scope) (TotalIncomeOutput, error)
}
