package analytics

import (
	"github.com/shopspring/decimal"

	"expense-tracker/internal/model"
)

// AnalysisInput carries the financial snapshot the analysis runs over.
type AnalysisInput struct {
	Expenses []model.Expense
	Incomes  []model.Income
	Currency *model.Currency
}

// AnalysisOutput is a narrative spending analysis. FromModel reports whether
// the text came from the language model or the deterministic fallback.
type AnalysisOutput struct {
	Text      string
	FromModel bool
}

// CategoryBudget is one category's recommended monthly allocation.
type CategoryBudget struct {
	Category model.Category
	Amount   decimal.Decimal
}

// BudgetOutput is a budget recommendation derived from total income.
type BudgetOutput struct {
	Text        string
	TotalIncome decimal.Decimal
	TotalBudget decimal.Decimal
	Savings     decimal.Decimal
	Categories  []CategoryBudget
	FromModel   bool
}
