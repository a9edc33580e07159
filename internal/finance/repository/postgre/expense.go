package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	repo "expense-tracker/internal/finance/repository"
	"expense-tracker/internal/model"
)

const expenseColumns = `id, user_id, category, amount, comments, payment_method, date, created_at, updated_at`

func scanExpense(row interface{ Scan(...any) error }) (model.Expense, error) {
	var e model.Expense
	err := row.Scan(
		&e.ID, &e.UserID, &e.Category, &e.Amount, &e.Comments, &e.PaymentMethod,
		&e.Date, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// CreateExpense inserts a new Expense row and returns the created entity.
func (r *implRepository) CreateExpense(ctx context.Context, sc model.Scope, opt repo.CreateExpenseOptions) (model.Expense, error) {
	query := fmt.Sprintf(`
		INSERT INTO expenses (id, user_id, category, amount, comments, payment_method, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s`, expenseColumns)

	e, err := scanExpense(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), sc.UserID, opt.Category, opt.Amount, opt.Comments, opt.PaymentMethod, opt.Date,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateExpense"), err)
		return model.Expense{}, repo.ErrFailedToInsert
	}
	return e, nil
}

// GetOneExpense retrieves a single Expense owned by the scoped user.
// Returns zero-value Expense (ID == "") when not found, not an error.
func (r *implRepository) GetOneExpense(ctx context.Context, sc model.Scope, opt repo.GetOneExpenseOptions) (model.Expense, error) {
	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE user_id = $1 AND id = $2 LIMIT 1`, expenseColumns)

	e, err := scanExpense(r.db.QueryRowContext(ctx, query, sc.UserID, opt.ID))
	if err == sql.ErrNoRows {
		return model.Expense{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneExpense"), err)
		return model.Expense{}, repo.ErrFailedToGet
	}
	return e, nil
}

// ListExpenses returns a paginated list of Expenses and the total count.
func (r *implRepository) ListExpenses(ctx context.Context, sc model.Scope, opt repo.ListExpensesOptions) ([]model.Expense, int, error) {
	where, args := r.buildExpenseWhere(sc, opt)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM expenses WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListExpenses"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, pageArgs := r.buildPageClause(opt.OrderBy, "date DESC", opt.Limit, opt.Offset, len(args))
	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE %s %s`, expenseColumns, where, mods)

	rows, err := r.db.QueryContext(ctx, query, append(args, pageArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListExpenses"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		expenses = append(expenses, e)
	}
	return expenses, total, nil
}

// UpdateExpense updates an Expense by ID within the user scope.
func (r *implRepository) UpdateExpense(ctx context.Context, sc model.Scope, opt repo.UpdateExpenseOptions) (model.Expense, error) {
	query := fmt.Sprintf(`
		UPDATE expenses
		SET category = $1, amount = $2, comments = $3, payment_method = $4, date = $5, updated_at = NOW()
		WHERE user_id = $6 AND id = $7
		RETURNING %s`, expenseColumns)

	e, err := scanExpense(r.db.QueryRowContext(ctx, query,
		opt.Category, opt.Amount, opt.Comments, opt.PaymentMethod, opt.Date, sc.UserID, opt.ID,
	))
	if err == sql.ErrNoRows {
		return model.Expense{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateExpense"), err)
		return model.Expense{}, repo.ErrFailedToUpdate
	}
	return e, nil
}

// DeleteExpense removes an Expense by ID within the user scope.
func (r *implRepository) DeleteExpense(ctx context.Context, sc model.Scope, id string) error {
	const query = `DELETE FROM expenses WHERE user_id = $1 AND id = $2`
	if _, err := r.db.ExecContext(ctx, query, sc.UserID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteExpense"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// SumExpensesByCategory aggregates spend per category for the scoped user.
func (r *implRepository) SumExpensesByCategory(ctx context.Context, sc model.Scope) ([]repo.CategoryTotal, error) {
	const query = `
		SELECT category, COALESCE(SUM(amount), 0), COUNT(*)
		FROM expenses
		WHERE user_id = $1
		GROUP BY category
		ORDER BY SUM(amount) DESC`

	rows, err := r.db.QueryContext(ctx, query, sc.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SumExpensesByCategory"), err)
		return nil, repo.ErrFailedToSum
	}
	defer rows.Close()

	var totals []repo.CategoryTotal
	for rows.Next() {
		var t repo.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total, &t.Count); err != nil {
			return nil, repo.ErrFailedToSum
		}
		totals = append(totals, t)
	}
	return totals, nil
}
