package postgre

import (
	"fmt"
	"strings"

	repo "expense-tracker/internal/finance/repository"
	"expense-tracker/internal/model"
)

// buildExpenseWhere builds the WHERE clause + args for listing Expenses.
// The user scope is always the first condition.
func (r *implRepository) buildExpenseWhere(sc model.Scope, opt repo.ListExpensesOptions) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{sc.UserID}
	idx := 2

	if opt.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", idx))
		args = append(args, opt.Category)
		idx++
	}
	if !opt.From.IsZero() {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", idx))
		args = append(args, opt.From)
		idx++
	}
	if !opt.To.IsZero() {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", idx))
		args = append(args, opt.To)
	}

	return strings.Join(conditions, " AND "), args
}

// buildIncomeWhere builds the WHERE clause + args for listing Incomes.
func (r *implRepository) buildIncomeWhere(sc model.Scope, opt repo.ListIncomesOptions) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{sc.UserID}

	if opt.Source != "" {
		conditions = append(conditions, "source = $2")
		args = append(args, opt.Source)
	}

	return strings.Join(conditions, " AND "), args
}

// buildPageClause builds ORDER BY + LIMIT + OFFSET starting after argOffset
// existing placeholders.
func (r *implRepository) buildPageClause(orderBy, defaultOrder string, limit, offset, argOffset int) (string, []any) {
	if orderBy == "" {
		orderBy = defaultOrder
	}
	parts := []string{fmt.Sprintf("ORDER BY %s", orderBy)}
	var args []any
	idx := argOffset + 1

	if limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, limit)
		idx++
	}
	if offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, offset)
	}

	return strings.Join(parts, " "), args
}
