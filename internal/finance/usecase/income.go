package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/finance"
	repo "expense-tracker/internal/finance/repository"
	"expense-tracker/internal/model"
)

var decimalHundred = decimal.NewFromInt(100)

// CreateIncome validates and persists a new Income.
func (uc *implUseCase) CreateIncome(ctx context.Context, sc model.Scope, input finance.CreateIncomeInput) (finance.CreateIncomeOutput, error) {
	if input.Source == "" {
		input.Source = model.SourceOther
	}
	if !model.ValidSource(input.Source) {
		return finance.CreateIncomeOutput{}, finance.ErrInvalidSource
	}
	if !input.Amount.IsPositive() {
		return finance.CreateIncomeOutput{}, finance.ErrInvalidAmount
	}
	if input.IsRecurring {
		if input.Frequency == "" {
			input.Frequency = model.FrequencyMonthly
		}
		if !model.ValidFrequency(input.Frequency) {
			return finance.CreateIncomeOutput{}, finance.ErrInvalidFrequency
		}
	} else {
		input.Frequency = ""
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	income, err := uc.repo.CreateIncome(ctx, sc, repo.CreateIncomeOptions{
		Source:      input.Source,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        input.Date,
		IsRecurring: input.IsRecurring,
		Frequency:   input.Frequency,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateIncome CreateIncome: %v", err)
		return finance.CreateIncomeOutput{}, err
	}

	return finance.CreateIncomeOutput{Income: income}, nil
}

// ListIncomes returns a paginated list of the user's Incomes.
func (uc *implUseCase) ListIncomes(ctx context.Context, sc model.Scope, input finance.ListIncomesInput) (finance.ListIncomesOutput, error) {
	incomes, total, err := uc.repo.ListIncomes(ctx, sc, repo.ListIncomesOptions{
		Source: input.Source,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListIncomes ListIncomes: %v", err)
		return finance.ListIncomesOutput{}, err
	}

	return finance.ListIncomesOutput{
		Incomes: incomes,
		Total:   total,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}, nil
}

// DeleteIncome removes an Income by ID. Returns ErrIncomeNotFound when missing.
func (uc *implUseCase) DeleteIncome(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneIncome(ctx, sc, repo.GetOneIncomeOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteIncome GetOneIncome: %v", err)
		return err
	}
	if existing.ID == "" {
		return finance.ErrIncomeNotFound
	}
	if err := uc.repo.DeleteIncome(ctx, sc, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteIncome DeleteIncome: %v", err)
		return err
	}
	return nil
}

// TotalIncome sums all income amounts for the scoped user.
func (uc *implUseCase) TotalIncome(ctx context.Context, sc model.Scope) (finance.TotalIncomeOutput, error) {
	total, err := uc.repo.SumIncomes(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.TotalIncome SumIncomes: %v", err)
		return finance.TotalIncomeOutput{}, err
	}
	return finance.TotalIncomeOutput{Total: total}, nil
}
