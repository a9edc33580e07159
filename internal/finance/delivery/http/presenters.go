package http

import (
	"time"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/finance"
	"expense-tracker/internal/model"
)

// --- Request DTOs ---

type createExpenseReq struct {
	Category      string          `json:"category"       binding:"omitempty,max=50"`
	Amount        decimal.Decimal `json:"amount"         binding:"required"`
	Comments      string          `json:"comments"       binding:"max=500"`
	PaymentMethod string          `json:"payment_method" binding:"omitempty,max=20"`
	Date          *time.Time      `json:"date"`
}

func (r createExpenseReq) toInput() finance.CreateExpenseInput {
	input := finance.CreateExpenseInput{
		Category:      model.Category(r.Category),
		Amount:        r.Amount,
		Comments:      r.Comments,
		PaymentMethod: model.PaymentMethod(r.PaymentMethod),
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

type listExpensesReq struct {
	Category string `form:"category"`
	From     string `form:"from"`
	To       string `form:"to"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listExpensesReq) toInput() (finance.ListExpensesInput, error) {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}

	input := finance.ListExpensesInput{
		Category: model.Category(r.Category),
		Limit:    limit,
		Offset:   offset,
	}
	if r.From != "" {
		from, err := time.Parse("2006-01-02", r.From)
		if err != nil {
			return input, err
		}
		input.From = from
	}
	if r.To != "" {
		to, err := time.Parse("2006-01-02", r.To)
		if err != nil {
			return input, err
		}
		input.To = to
	}
	return input, nil
}

type updateExpenseReq struct {
	ID            string          `json:"-"` // populated from URI param
	Category      string          `json:"category"       binding:"omitempty,max=50"`
	Amount        decimal.Decimal `json:"amount"`
	Comments      string          `json:"comments"       binding:"max=500"`
	PaymentMethod string          `json:"payment_method" binding:"omitempty,max=20"`
	Date          *time.Time      `json:"date"`
}

func (r updateExpenseReq) toInput() finance.UpdateExpenseInput {
	input := finance.UpdateExpenseInput{
		ID:            r.ID,
		Category:      model.Category(r.Category),
		Amount:        r.Amount,
		Comments:      r.Comments,
		PaymentMethod: model.PaymentMethod(r.PaymentMethod),
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

type createIncomeReq struct {
	Source      string          `json:"source"       binding:"omitempty,max=50"`
	Amount      decimal.Decimal `json:"amount"       binding:"required"`
	Description string          `json:"description"  binding:"max=500"`
	Date        *time.Time      `json:"date"`
	IsRecurring bool            `json:"is_recurring"`
	Frequency   string          `json:"frequency"    binding:"omitempty,max=20"`
}

func (r createIncomeReq) toInput() finance.CreateIncomeInput {
	input := finance.CreateIncomeInput{
		Source:      model.Source(r.Source),
		Amount:      r.Amount,
		Description: r.Description,
		IsRecurring: r.IsRecurring,
		Frequency:   model.Frequency(r.Frequency),
	}
	if r.Date != nil {
		input.Date = *r.Date
	}
	return input
}

type listIncomesReq struct {
	Source string `form:"source"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listIncomesReq) toInput() finance.ListIncomesInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return finance.ListIncomesInput{
		Source: model.Source(r.Source),
		Limit:  limit,
		Offset: offset,
	}
}

// --- Response DTOs ---

type expenseResp struct {
	ID            string          `json:"id"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Comments      string          `json:"comments"`
	PaymentMethod string          `json:"payment_method"`
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func newExpenseResp(e model.Expense) expenseResp {
	return expenseResp{
		ID:            e.ID,
		Category:      string(e.Category),
		Amount:        e.Amount,
		Comments:      e.Comments,
		PaymentMethod: string(e.PaymentMethod),
		Date:          e.Date,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

type listExpensesResp struct {
	Expenses []expenseResp `json:"expenses"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

func (h *handler) newListExpensesResp(out finance.ListExpensesOutput) listExpensesResp {
	expenses := make([]expenseResp, len(out.Expenses))
	for i, e := range out.Expenses {
		expenses[i] = newExpenseResp(e)
	}
	return listExpensesResp{
		Expenses: expenses,
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}

type categorySliceResp struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
	Percent  float64         `json:"percent"`
}

type distributionResp struct {
	Slices []categorySliceResp `json:"slices"`
	Total  decimal.Decimal     `json:"total"`
}

func (h *handler) newDistributionResp(out finance.CategoryDistributionOutput) distributionResp {
	slices := make([]categorySliceResp, len(out.Slices))
	for i, s := range out.Slices {
		slices[i] = categorySliceResp{
			Category: string(s.Category),
			Total:    s.Total,
			Count:    s.Count,
			Percent:  s.Percent,
		}
	}
	return distributionResp{Slices: slices, Total: out.Total}
}

type incomeResp struct {
	ID          string          `json:"id"`
	Source      string          `json:"source"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	IsRecurring bool            `json:"is_recurring"`
	Frequency   string          `json:"frequency,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func newIncomeResp(in model.Income) incomeResp {
	return incomeResp{
		ID:          in.ID,
		Source:      string(in.Source),
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
		IsRecurring: in.IsRecurring,
		Frequency:   string(in.Frequency),
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
}

type listIncomesResp struct {
	Incomes []incomeResp `json:"incomes"`
	Total   int          `json:"total"`
	Limit   int          `json:"limit"`
	Offset  int          `json:"offset"`
}

func (h *handler) newListIncomesResp(out finance.ListIncomesOutput) listIncomesResp {
	incomes := make([]incomeResp, len(out.Incomes))
	for i, in := range out.Incomes {
		incomes[i] = newIncomeResp(in)
	}
	return listIncomesResp{
		Incomes: incomes,
		Total:   out.Total,
		Limit:   out.Limit,
		Offset:  out.Offset,
	}
}

type totalIncomeResp struct {
	Total decimal.Decimal `json:"total"`
}
