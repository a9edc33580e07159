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

func TestCreateIncomeRecurringDefaults(t *testing.T) {
	var captured repo.CreateIncomeOptions
	mock := &mockRepository{
		createIncomeFn: func(ctx context.Context, sc model.Scope, opt repo.CreateIncomeOptions) (model.Income, error) {
			captured = opt
			return model.Income{ID: "inc-1", Source: opt.Source, Amount: opt.Amount}, nil
		},
	}
	uc := New(mock, noopLogger{})

	_, err := uc.CreateIncome(context.Background(), model.Scope{UserID: "user-1"}, finance.CreateIncomeInput{
		Amount:      decimal.NewFromInt(3000),
		IsRecurring: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.Source != model.SourceOther {
		t.Errorf("expected default source %q, got %q", model.SourceOther, captured.Source)
	}
	if captured.Frequency != model.FrequencyMonthly {
		t.Errorf("expected default frequency %q, got %q", model.FrequencyMonthly, captured.Frequency)
	}
}

func TestCreateIncomeNonRecurringClearsFrequency(t *testing.T) {
	var captured repo.CreateIncomeOptions
	mock := &mockRepository{
		createIncomeFn: func(ctx context.Context, sc model.Scope, opt repo.CreateIncomeOptions) (model.Income, error) {
			captured = opt
			return model.Income{ID: "inc-1"}, nil
		},
	}
	uc := New(mock, noopLogger{})

	_, err := uc.CreateIncome(context.Background(), model.Scope{UserID: "user-1"}, finance.CreateIncomeInput{
		Source:    model.SourceFreelance,
		Amount:    decimal.NewFromInt(500),
		Frequency: model.FrequencyWeekly,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.Frequency != "" {
		t.Errorf("expected frequency cleared for one-off income, got %q", captured.Frequency)
	}
}

func TestCreateIncomeValidation(t *testing.T) {
	uc := New(&mockRepository{}, noopLogger{})
	sc := model.Scope{UserID: "user-1"}

	if _, err := uc.CreateIncome(context.Background(), sc, finance.CreateIncomeInput{Source: "lottery", Amount: decimal.NewFromInt(10)}); !errors.Is(err, finance.ErrInvalidSource) {
		t.Errorf("expected ErrInvalidSource, got %v", err)
	}
	if _, err := uc.CreateIncome(context.Background(), sc, finance.CreateIncomeInput{Source: model.SourceSalary}); !errors.Is(err, finance.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestDeleteIncomeNotFound(t *testing.T) {
	uc := New(&mockRepository{}, noopLogger{})

	err := uc.DeleteIncome(context.Background(), model.Scope{UserID: "user-1"}, "missing")
	if !errors.Is(err, finance.ErrIncomeNotFound) {
		t.Errorf("expected ErrIncomeNotFound, got %v", err)
	}
}

func TestTotalIncome(t *testing.T) {
	mock := &mockRepository{
		sumIncomesFn: func(ctx context.Context, sc model.Scope) (decimal.Decimal, error) {
			return decimal.NewFromInt(4200), nil
		},
	}
	uc := New(mock, noopLogger{})

	out, err := uc.TotalIncome(context.Background(), model.Scope{UserID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Total.Equal(decimal.NewFromInt(4200)) {
		t.Errorf("unexpected total %s", out.Total)
	}
}
