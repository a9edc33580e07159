package usecase

import (
	"context"
	"fmt"
	"strings"

	"expense-tracker/internal/analytics"
	"expense-tracker/internal/model"
	"expense-tracker/pkg/gemini"
)

// SpendingAnalysis produces a narrative analysis of the user's spending.
func (uc *implUseCase) SpendingAnalysis(ctx context.Context, input analytics.AnalysisInput) (analytics.AnalysisOutput, error) {
	s := buildSnapshot(input)

	if len(input.Expenses) == 0 {
		return analytics.AnalysisOutput{
			Text: "You haven't recorded any expenses yet. Add a few and I'll break down where your money goes.",
		}, nil
	}

	if uc.llm != nil {
		text, err := uc.generate(ctx, buildAnalysisPrompt(s, len(input.Expenses)))
		if err == nil && text != "" {
			return analytics.AnalysisOutput{Text: text, FromModel: true}, nil
		}
		if err != nil {
			uc.l.Warnf(ctx, "uc.SpendingAnalysis generate: %v", err)
		}
	}

	return analytics.AnalysisOutput{Text: uc.fallbackAnalysis(s, len(input.Expenses))}, nil
}

// fallbackAnalysis builds a deterministic summary when the model is unavailable.
func (uc *implUseCase) fallbackAnalysis(s snapshot, expenseCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You've spent %s across %d expenses.", s.format(s.totalSpent), expenseCount)
	if s.topCategory != "" {
		fmt.Fprintf(&b, " Your top spending category is %s at %s.", displayCategory(s.topCategory), s.format(s.topAmount))
	}
	if s.totalIncome.IsPositive() {
		remaining := s.totalIncome.Sub(s.totalSpent)
		if remaining.IsPositive() {
			fmt.Fprintf(&b, " You have %s of your income left.", s.format(remaining))
		} else {
			b.WriteString(" You're spending more than your recorded income. Consider trimming your biggest category.")
		}
	}
	return b.String()
}

// generate calls the model and returns the trimmed reply text.
func (uc *implUseCase) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, &gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 512,
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

func displayCategory(cat model.Category) string {
	names := model.CategoryDisplayNames()
	for i, c := range model.Categories() {
		if c == cat && i < len(names) {
			return names[i]
		}
	}
	return string(cat)
}
