package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/model"
)

// Repository is the composed interface for the finance domain data store.
type Repository interface {
	ExpenseRepository
	IncomeRepository
}

// ExpenseRepository defines all data access methods for the Expense entity.
// Every method is scoped to a single user.
type ExpenseRepository interface {
	CreateExpense(ctx context.Context, sc model.Scope, opt CreateExpenseOptions) (model.Expense, error)
	GetOneExpense(ctx context.Context, sc model.Scope, opt GetOneExpenseOptions) (model.Expense, error)
	ListExpenses(ctx context.Context, sc model.Scope, opt ListExpensesOptions) ([]model.Expense, int, error)
	UpdateExpense(ctx context.Context, sc model.Scope, opt UpdateExpenseOptions) (model.Expense, error)
	DeleteExpense(ctx context.Context, sc model.Scope, id string) error
	SumExpensesByCategory(ctx context.Context, sc model.Scope) ([]CategoryTotal, error)
}

// IncomeRepository defines all data access methods for the Income entity.
type IncomeRepository interface {
	CreateIncome(ctx context.Context, sc model.Scope, opt CreateIncomeOptions) (model.Income, error)
	GetOneIncome(ctx context.Context, sc model.Scope, opt GetOneIncomeOptions) (model.Income, error)
	ListIncomes(ctx context.Context, sc model.Scope, opt ListIncomesOptions) ([]model.Income, int, error)
	DeleteIncome(ctx context.Context, sc model.Scope, id string) error
	SumIncomes(ctx context.Context, sc model.Scope) (decimal.Decimal, error)
}
