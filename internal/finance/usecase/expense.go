package usecase

import (
	"context"
	"time"

	"expense-tracker/internal/finance"
	repo "expense-tracker/internal/finance/repository"
	"expense-tracker/internal/model"
)

// CreateExpense validates and persists a new Expense.
func (uc *implUseCase) CreateExpense(ctx context.Context, sc model.Scope, input finance.CreateExpenseInput) (finance.CreateExpenseOutput, error) {
	if input.Category == "" {
		input.Category = model.CategoryOther
	}
	if !model.ValidCategory(input.Category) {
		return finance.CreateExpenseOutput{}, finance.ErrInvalidCategory
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = model.PaymentMethodCard
	}
	if !model.ValidPaymentMethod(input.PaymentMethod) {
		return finance.CreateExpenseOutput{}, finance.ErrInvalidPaymentMethod
	}
	if !input.Amount.IsPositive() {
		return finance.CreateExpenseOutput{}, finance.ErrInvalidAmount
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	expense, err := uc.repo.CreateExpense(ctx, sc, repo.CreateExpenseOptions{
		Category:      input.Category,
		Amount:        input.Amount,
		Comments:      input.Comments,
		PaymentMethod: input.PaymentMethod,
		Date:          input.Date,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateExpense CreateExpense: %v", err)
		return finance.CreateExpenseOutput{}, err
	}

	return finance.CreateExpenseOutput{Expense: expense}, nil
}

// ListExpenses returns a paginated list of the user's Expenses.
func (uc *implUseCase) ListExpenses(ctx context.Context, sc model.Scope, input finance.ListExpensesInput) (finance.ListExpensesOutput, error) {
	expenses, total, err := uc.repo.ListExpenses(ctx, sc, repo.ListExpensesOptions{
		Category: input.Category,
		From:     input.From,
		To:       input.To,
		Limit:    input.Limit,
		Offset:   input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListExpenses ListExpenses: %v", err)
		return finance.ListExpensesOutput{}, err
	}

	return finance.ListExpensesOutput{
		Expenses: expenses,
		Total:    total,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}, nil
}

// DetailExpense retrieves a single Expense. Returns ErrExpenseNotFound when missing.
func (uc *implUseCase) DetailExpense(ctx context.Context, sc model.Scope, id string) (finance.DetailExpenseOutput, error) {
	expense, err := uc.repo.GetOneExpense(ctx, sc, repo.GetOneExpenseOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailExpense GetOneExpense: %v", err)
		return finance.DetailExpenseOutput{}, err
	}
	if expense.ID == "" {
		return finance.DetailExpenseOutput{}, finance.ErrExpenseNotFound
	}
	return finance.DetailExpenseOutput{Expense: expense}, nil
}

// UpdateExpense modifies an existing Expense. Unset fields keep their current values.
func (uc *implUseCase) UpdateExpense(ctx context.Context, sc model.Scope, input finance.UpdateExpenseInput) (finance.UpdateExpenseOutput, error) {
	existing, err := uc.repo.GetOneExpense(ctx, sc, repo.GetOneExpenseOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateExpense GetOneExpense: %v", err)
		return finance.UpdateExpenseOutput{}, err
	}
	if existing.ID == "" {
		return finance.UpdateExpenseOutput{}, finance.ErrExpenseNotFound
	}

	if input.Category == "" {
		input.Category = existing.Category
	}
	if !model.ValidCategory(input.Category) {
		return finance.UpdateExpenseOutput{}, finance.ErrInvalidCategory
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = existing.PaymentMethod
	}
	if !model.ValidPaymentMethod(input.PaymentMethod) {
		return finance.UpdateExpenseOutput{}, finance.ErrInvalidPaymentMethod
	}
	if input.Amount.IsZero() {
		input.Amount = existing.Amount
	}
	if !input.Amount.IsPositive() {
		return finance.UpdateExpenseOutput{}, finance.ErrInvalidAmount
	}
	if input.Comments == "" {
		input.Comments = existing.Comments
	}
	if input.Date.IsZero() {
		input.Date = existing.Date
	}

	expense, err := uc.repo.UpdateExpense(ctx, sc, repo.UpdateExpenseOptions{
		ID:            input.ID,
		Category:      input.Category,
		Amount:        input.Amount,
		Comments:      input.Comments,
		PaymentMethod: input.PaymentMethod,
		Date:          input.Date,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateExpense UpdateExpense: %v", err)
		return finance.UpdateExpenseOutput{}, err
	}
	return finance.UpdateExpenseOutput{Expense: expense}, nil
}

// DeleteExpense removes an Expense by ID. Returns ErrExpenseNotFound when missing.
func (uc *implUseCase) DeleteExpense(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneExpense(ctx, sc, repo.GetOneExpenseOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteExpense GetOneExpense: %v", err)
		return err
	}
	if existing.ID == "" {
		return finance.ErrExpenseNotFound
	}
	if err := uc.repo.DeleteExpense(ctx, sc, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteExpense DeleteExpense: %v", err)
		return err
	}
	return nil
}

// CategoryDistribution aggregates the user's spend per category with percentages.
func (uc *implUseCase) CategoryDistribution(ctx context.Context, sc model.Scope) (finance.CategoryDistributionOutput, error) {
	totals, err := uc.repo.SumExpensesByCategory(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CategoryDistribution SumExpensesByCategory: %v", err)
		return finance.CategoryDistributionOutput{}, err
	}

	out := finance.CategoryDistributionOutput{}
	for _, t := range totals {
		out.Total = out.Total.Add(t.Total)
	}
	for _, t := range totals {
		slice := finance.CategorySlice{
			Category: t.Category,
			Total:    t.Total,
			Count:    t.Count,
		}
		if out.Total.IsPositive() {
			pct, _ := t.Total.Div(out.Total).Mul(decimalHundred).Round(1).Float64()
			slice.Percent = pct
		}
		out.Slices = append(out.Slices, slice)
	}
	return out, nil
}
