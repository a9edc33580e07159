package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/finance"
	repo "expense-tracker/internal/finance/repository"
	"expense-tracker/internal/model"
)

func TestCreateExpenseDefaults(t *testing.T) {
	var captured repo.CreateExpenseOptions
	mock := &mockRepository{
		createExpenseFn: func(ctx context.Context, sc model.Scope, opt repo.CreateExpenseOptions) (model.Expense, error) {
			captured = opt
			return model.Expense{ID: "exp-1", UserID: sc.UserID, Category: opt.Category, Amount: opt.Amount}, nil
		},
	}
	uc := New(mock, noopLogger{})

	out, err := uc.CreateExpense(context.Background(), model.Scope{UserID: "user-1"}, finance.CreateExpenseInput{
		Amount: decimal.NewFromFloat(9.99),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.Category != model.CategoryOther {
		t.Errorf("expected default category %q, got %q", model.CategoryOther, captured.Category)
	}
	if captured.PaymentMethod != model.PaymentMethodCard {
		t.Errorf("expected default payment method %q, got %q", model.PaymentMethodCard, captured.PaymentMethod)
	}
	if captured.Date.IsZero() {
		t.Error("expected date to default to now")
	}
	if out.Expense.ID != "exp-1" {
		t.Errorf("unexpected expense %+v", out.Expense)
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	uc := New(&mockRepository{}, noopLogger{})
	sc := model.Scope{UserID: "user-1"}

	tests := []struct {
		name    string
		input   finance.CreateExpenseInput
		wantErr error
	}{
		{
			name:    "zero amount",
			input:   finance.CreateExpenseInput{Category: model.CategoryFood},
			wantErr: finance.ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			input:   finance.CreateExpenseInput{Category: model.CategoryFood, Amount: decimal.NewFromInt(-5)},
			wantErr: finance.ErrInvalidAmount,
		},
		{
			name:    "unknown category",
			input:   finance.CreateExpenseInput{Category: "gadgets", Amount: decimal.NewFromInt(5)},
			wantErr: finance.ErrInvalidCategory,
		},
		{
			name:    "unknown payment method",
			input:   finance.CreateExpenseInput{Category: model.CategoryFood, PaymentMethod: "crypto", Amount: decimal.NewFromInt(5)},
			wantErr: finance.ErrInvalidPaymentMethod,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateExpense(context.Background(), sc, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDeleteExpenseNotFound(t *testing.T) {
	uc := New(&mockRepository{}, noopLogger{})

	err := uc.DeleteExpense(context.Background(), model.Scope{UserID: "user-1"}, "missing")
	if !errors.Is(err, finance.ErrExpenseNotFound) {
		t.Errorf("expected ErrExpenseNotFound, got %v", err)
	}
}

func TestUpdateExpensePartial(t *testing.T) {
	existing := model.Expense{
		ID:            "exp-1",
		UserID:        "user-1",
		Category:      model.CategoryFood,
		Amount:        decimal.NewFromInt(20),
		Comments:      "dinner",
		PaymentMethod: model.PaymentMethodCash,
	}
	var captured repo.UpdateExpenseOptions
	mock := &mockRepository{
		getOneExpenseFn: func(ctx context.Context, sc model.Scope, opt repo.GetOneExpenseOptions) (model.Expense, error) {
			return existing, nil
		},
		updateExpenseFn: func(ctx context.Context, sc model.Scope, opt repo.UpdateExpenseOptions) (model.Expense, error) {
			captured = opt
			return existing, nil
		},
	}
	uc := New(mock, noopLogger{})

	_, err := uc.UpdateExpense(context.Background(), model.Scope{UserID: "user-1"}, finance.UpdateExpenseInput{
		ID:     "exp-1",
		Amount: decimal.NewFromInt(25),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !captured.Amount.Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected updated amount 25, got %s", captured.Amount)
	}
	if captured.Category != model.CategoryFood || captured.Comments != "dinner" {
		t.Errorf("expected unset fields to keep existing values, got %+v", captured)
	}
}

func TestCategoryDistributionPercentages(t *testing.T) {
	mock := &mockRepository{
		sumByCategoryFn: func(ctx context.Context, sc model.Scope) ([]repo.CategoryTotal, error) {
			return []repo.CategoryTotal{
				{Category: model.CategoryFood, Total: decimal.NewFromInt(75), Count: 3},
				{Category: model.CategoryBills, Total: decimal.NewFromInt(25), Count: 1},
			}, nil
		},
	}
	uc := New(mock, noopLogger{})

	out, err := uc.CategoryDistribution(context.Background(), model.Scope{UserID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("unexpected total %s", out.Total)
	}
	if out.Slices[0].Percent != 75.0 {
		t.Errorf("expected 75%% for food, got %v", out.Slices[0].Percent)
	}
	if out.Slices[1].Percent != 25.0 {
		t.Errorf("expected 25%% for bills, got %v", out.Slices[1].Percent)
	}
}

func TestCategoryDistributionEmpty(t *testing.T) {
	uc := New(&mockRepository{}, noopLogger{})

	out, err := uc.CategoryDistribution(context.Background(), model.Scope{UserID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Slices) != 0 || !out.Total.IsZero() {
		t.Errorf("expected empty distribution, got %+v", out)
	}
}
