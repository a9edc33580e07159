package usecase

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/analytics"
	"expense-tracker/internal/model"
	"expense-tracker/pkg/currency"
)

// snapshot holds the aggregates both the prompts and the fallbacks work from.
type snapshot struct {
	totalSpent  decimal.Decimal
	totalIncome decimal.Decimal
	byCategory  map[model.Category]decimal.Decimal
	topCategory model.Category
	topAmount   decimal.Decimal
	cur         *model.Currency
}

func buildSnapshot(input analytics.AnalysisInput) snapshot {
	s := snapshot{
		byCategory: make(map[model.Category]decimal.Decimal),
		cur:        input.Currency,
	}
	for _, e := range input.Expenses {
		s.totalSpent = s.totalSpent.Add(e.Amount)
		s.byCategory[e.Category] = s.byCategory[e.Category].Add(e.Amount)
	}
	for _, in := range input.Incomes {
		s.totalIncome = s.totalIncome.Add(in.Amount)
	}
	for cat, amount := range s.byCategory {
		if amount.GreaterThan(s.topAmount) {
			s.topCategory = cat
			s.topAmount = amount
		}
	}
	return s
}

func (s snapshot) format(amount decimal.Decimal) string {
	return currency.Format(amount, s.cur)
}

// categoryLines renders per-category totals in a stable order for prompts.
func (s snapshot) categoryLines() string {
	var lines []string
	for _, cat := range model.Categories() {
		if amount, ok := s.byCategory[cat]; ok {
			lines = append(lines, fmt.Sprintf("- %s: %s", cat, s.format(amount)))
		}
	}
	return strings.Join(lines, "\n")
}

func buildAnalysisPrompt(s snapshot, expenseCount int) string {
	var b strings.Builder
	b.WriteString("You are a personal finance assistant. Analyze this user's spending and give practical, encouraging advice in 3-4 short sentences. Do not use markdown formatting.\n\n")
	fmt.Fprintf(&b, "Total spent: %s across %d expenses.\n", s.format(s.totalSpent), expenseCount)
	if s.totalIncome.IsPositive() {
		fmt.Fprintf(&b, "Total income: %s.\n", s.format(s.totalIncome))
	}
	if lines := s.categoryLines(); lines != "" {
		b.WriteString("Spending by category:\n")
		b.WriteString(lines)
		b.WriteString("\n")
	}
	return b.String()
}

func buildBudgetPrompt(s snapshot) string {
	var b strings.Builder
	b.WriteString("You are a personal finance assistant. Suggest a realistic monthly budget for this user in 3-4 short sentences. Do not use markdown formatting.\n\n")
	fmt.Fprintf(&b, "Total monthly income: %s.\n", s.format(s.totalIncome))
	if s.totalSpent.IsPositive() {
		fmt.Fprintf(&b, "Current total spending: %s.\n", s.format(s.totalSpent))
	}
	if lines := s.categoryLines(); lines != "" {
		b.WriteString("Spending by category:\n")
		b.WriteString(lines)
		b.WriteString("\n")
	}
	b.WriteString("\nRecommend allocations per category and a savings target of around 20%.")
	return b.String()
}
