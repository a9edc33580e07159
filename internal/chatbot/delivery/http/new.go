package http

import (
	"context"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/finance"
	"expense-tracker/internal/model"
	"expense-tracker/pkg/log"
)

// snapshotLimit caps how many records feed the conversational snapshot.
const snapshotLimit = 500

type handler struct {
	l       log.Logger
	uc      chatbot.UseCase
	finance finance.UseCase
}

// New creates a new HTTP handler for the chatbot domain. The finance use case
// supplies the expense/income snapshot the pipeline works from.
func New(l log.Logger, uc chatbot.UseCase, financeUC finance.UseCase) *handler {
	return &handler{
		l:       l,
		uc:      uc,
		finance: financeUC,
	}
}

// snapshot loads the user's recent expenses and incomes for the pipeline.
func (h *handler) snapshot(ctx context.Context, sc model.Scope) ([]model.Expense, []model.Income, error) {
	expenses, err := h.finance.ListExpenses(ctx, sc, finance.ListExpensesInput{Limit: snapshotLimit})
	if err != nil {
		return nil, nil, err
	}
	incomes, err := h.finance.ListIncomes(ctx, sc, finance.ListIncomesInput{Limit: snapshotLimit})
	if err != nil {
		return nil, nil, err
	}
	return expenses.Expenses, incomes.Incomes, nil
}
