package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/model"
)

// CreateExpenseOptions holds parameters for inserting a new Expense.
type CreateExpenseOptions struct {
	Category      model.Category
	Amount        decimal.Decimal
	Comments      string
	PaymentMethod model.PaymentMethod
	Date          time.Time
}

// GetOneExpenseOptions holds filter parameters for fetching a single Expense.
type GetOneExpenseOptions struct {
	ID string
}

// ListExpensesOptions holds filter and pagination parameters for listing Expenses.
type ListExpensesOptions struct {
	Category model.Category
	From     time.Time
	To       time.Time
	Limit    int
	Offset   int
	OrderBy  string
}

// UpdateExpenseOptions holds parameters for updating an existing Expense.
type UpdateExpenseOptions struct {
	ID            string
	Category      model.Category
	Amount        decimal.Decimal
	Comments      string
	PaymentMethod model.PaymentMethod
	Date          time.Time
}

// CategoryTotal is one row of the per-category aggregation.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal
	Count    int
}

// CreateIncomeOptions holds parameters for inserting a new Income.
type CreateIncomeOptions struct {
	Source      model.Source
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	IsRecurring bool
	Frequency   model.Frequency
}

// GetOneIncomeOptions holds filter parameters for fetching a single Income.
type GetOneIncomeOptions struct {
	ID string
}

// ListIncomesOptions holds filter and pagination parameters for listing Incomes.
type ListIncomesOptions struct {
	Source  model.Source
	Limit   int
	Offset  int
	OrderBy string
}
