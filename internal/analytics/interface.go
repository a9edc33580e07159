package analytics

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// SpendingAnalysis produces a narrative analysis of the user's spending.
	// Falls back to a deterministic summary when the model is unavailable.
	SpendingAnalysis(ctx context.Context, input AnalysisInput) (AnalysisOutput, error)

	// BudgetRecommendation produces a budget plan from the user's income.
	// Falls back to fixed allocation ratios when the model is unavailable.
	BudgetRecommendation(ctx context.Context, input AnalysisInput) (BudgetOutput, error)
}
