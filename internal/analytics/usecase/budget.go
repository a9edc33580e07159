package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/analytics"
	"expense-tracker/internal/model"
)

// Allocation ratios applied to total income when the model is unavailable.
// 80% of income is budgeted, 20% goes to savings.
var (
	budgetRatio  = decimal.NewFromFloat(0.8)
	savingsRatio = decimal.NewFromFloat(0.2)

	categoryRatios = []struct {
		category model.Category
		ratio    decimal.Decimal
	}{
		{model.CategoryFood, decimal.NewFromFloat(0.15)},
		{model.CategoryTransport, decimal.NewFromFloat(0.15)},
		{model.CategoryEntertainment, decimal.NewFromFloat(0.05)},
		{model.CategoryBills, decimal.NewFromFloat(0.25)},
		{model.CategoryShopping, decimal.NewFromFloat(0.10)},
		{model.CategoryHealth, decimal.NewFromFloat(0.05)},
		{model.CategoryEducation, decimal.NewFromFloat(0.03)},
		{model.CategoryOther, decimal.NewFromFloat(0.07)},
	}
)

// BudgetRecommendation produces a budget plan from the user's income.
func (uc *implUseCase) BudgetRecommendation(ctx context.Context, input analytics.AnalysisInput) (analytics.BudgetOutput, error) {
	s := buildSnapshot(input)

	out := analytics.BudgetOutput{
		TotalIncome: s.totalIncome,
		TotalBudget: s.totalIncome.Mul(budgetRatio).Round(2),
		Savings:     s.totalIncome.Mul(savingsRatio).Round(2),
	}
	for _, cr := range categoryRatios {
		out.Categories = append(out.Categories, analytics.CategoryBudget{
			Category: cr.category,
			Amount:   s.totalIncome.Mul(cr.ratio).Round(2),
		})
	}

	if uc.llm != nil && s.totalIncome.IsPositive() {
		text, err := uc.generate(ctx, buildBudgetPrompt(s))
		if err == nil && text != "" {
			out.Text = text
			out.FromModel = true
			return out, nil
		}
		if err != nil {
			uc.l.Warnf(ctx, "uc.BudgetRecommendation generate: %v", err)
		}
	}

	out.Text = uc.fallbackBudget(s, out)
	return out, nil
}

// fallbackBudget renders the fixed allocation plan as text.
func (uc *implUseCase) fallbackBudget(s snapshot, out analytics.BudgetOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on your income of %s, here's a suggested monthly budget: spend up to %s and save %s.",
		s.format(out.TotalIncome), s.format(out.TotalBudget), s.format(out.Savings))

	var parts []string
	for _, cb := range out.Categories {
		parts = append(parts, fmt.Sprintf("%s %s", displayCategory(cb.Category), s.format(cb.Amount)))
	}
	b.WriteString(" Suggested allocations: ")
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(".")
	return b.String()
}
