package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/model"
)

// --- UseCase Inputs ---

type CreateExpenseInput struct {
	Category      model.Category
	Amount        decimal.Decimal
	Comments      string
	PaymentMethod model.PaymentMethod
	Date          time.Time
}

type ListExpensesInput struct {
	Category model.Category
	From     time.Time
	To       time.Time
	Limit    int
	Offset   int
}

type UpdateExpenseInput struct {
	ID            string
	Category      model.Category
	Amount        decimal.Decimal
	Comments      string
	PaymentMethod model.PaymentMethod
	Date          time.Time
}

type CreateIncomeInput struct {
	Source      model.Source
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	IsRecurring bool
	Frequency   model.Frequency
}

type ListIncomesInput struct {
	Source model.Source
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type CreateExpenseOutput struct {
	Expense model.Expense
}

type ListExpensesOutput struct {
	Expenses []model.Expense
	Total    int
	Limit    int
	Offset   int
}

type DetailExpenseOutput struct {
	Expense model.Expense
}

type UpdateExpenseOutput struct {
	Expense model.Expense
}

// CategorySlice is one category's share of total spend.
type CategorySlice struct {
	Category model.Category
	Total    decimal.Decimal
	Count    int
	Percent  float64
}

type CategoryDistributionOutput struct {
	Slices []CategorySlice
	Total  decimal.Decimal
}

type CreateIncomeOutput struct {
	Income model.Income
}

type ListIncomesOutput struct {
	Incomes []model.Income
	Total   int
	Limit   int
	Offset  int
}

type TotalIncomeOutput struct {
	Total decimal.Decimal
}
