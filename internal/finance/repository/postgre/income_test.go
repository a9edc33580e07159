package postgre

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"

	repo "expense-tracker/internal/finance/repository"
	"expense-tracker/internal/model"
)

var incomeCols = []string{"id", "user_id", "source", "amount", "description", "date", "is_recurring", "frequency", "created_at", "updated_at"}

func TestCreateIncome(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	r := New(db, noopLogger{})
	now := time.Now()

	mock.ExpectQuery("INSERT INTO incomes").
		WillReturnRows(sqlmock.NewRows(incomeCols).
			AddRow("inc-1", "user-1", "salary", "3000.00", "August salary", now, true, "monthly", now, now))

	in, err := r.CreateIncome(context.Background(), model.Scope{UserID: "user-1"}, repo.CreateIncomeOptions{
		Source:      model.SourceSalary,
		Amount:      decimal.NewFromInt(3000),
		Description: "August salary",
		Date:        now,
		IsRecurring: true,
		Frequency:   model.FrequencyMonthly,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ID != "inc-1" || in.Source != model.SourceSalary {
		t.Errorf("unexpected income %+v", in)
	}
	if !in.IsRecurring || in.Frequency != model.FrequencyMonthly {
		t.Errorf("recurring fields not preserved: %+v", in)
	}
}

func TestSumIncomes(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	r := New(db, noopLogger{})

	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM incomes").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("4500.00"))

	total, err := r.SumIncomes(context.Background(), model.Scope{UserID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(4500)) {
		t.Errorf("unexpected total %s", total)
	}
}

func TestDeleteIncome(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	r := New(db, noopLogger{})

	mock.ExpectExec("DELETE FROM incomes").
		WithArgs("user-1", "inc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := r.DeleteIncome(context.Background(), model.Scope{UserID: "user-1"}, "inc-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
