package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	repo "expense-tracker/internal/finance/repository"
	"expense-tracker/internal/model"
)

const incomeColumns = `id, user_id, source, amount, description, date, is_recurring, frequency, created_at, updated_at`

func scanIncome(row interface{ Scan(...any) error }) (model.Income, error) {
	var in model.Income
	err := row.Scan(
		&in.ID, &in.UserID, &in.Source, &in.Amount, &in.Description,
		&in.Date, &in.IsRecurring, &in.Frequency, &in.CreatedAt, &in.UpdatedAt,
	)
	return in, err
}

// CreateIncome inserts a new Income row and returns the created entity.
func (r *implRepository) CreateIncome(ctx context.Context, sc model.Scope, opt repo.CreateIncomeOptions) (model.Income, error) {
	query := fmt.Sprintf(`
		INSERT INTO incomes (id, user_id, source, amount, description, date, is_recurring, frequency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s`, incomeColumns)

	in, err := scanIncome(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), sc.UserID, opt.Source, opt.Amount, opt.Description, opt.Date, opt.IsRecurring, opt.Frequency,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateIncome"), err)
		return model.Income{}, repo.ErrFailedToInsert
	}
	return in, nil
}

// GetOneIncome retrieves a single Income owned by the scoped user.
// Returns zero-value Income (ID == "") when not found, not an error.
func (r *implRepository) GetOneIncome(ctx context.Context, sc model.Scope, opt repo.GetOneIncomeOptions) (model.Income, error) {
	query := fmt.Sprintf(`SELECT %s FROM incomes WHERE user_id = $1 AND id = $2 LIMIT 1`, incomeColumns)

	in, err := scanIncome(r.db.QueryRowContext(ctx, query, sc.UserID, opt.ID))
	if err == sql.ErrNoRows {
		return model.Income{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneIncome"), err)
		return model.Income{}, repo.ErrFailedToGet
	}
	return in, nil
}

// ListIncomes returns a paginated list of Incomes and the total count.
func (r *implRepository) ListIncomes(ctx context.Context, sc model.Scope, opt repo.ListIncomesOptions) ([]model.Income, int, error) {
	where, args := r.buildIncomeWhere(sc, opt)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM incomes WHERE %s", where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListIncomes"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, pageArgs := r.buildPageClause(opt.OrderBy, "date DESC", opt.Limit, opt.Offset, len(args))
	query := fmt.Sprintf(`SELECT %s FROM incomes WHERE %s %s`, incomeColumns, where, mods)

	rows, err := r.db.QueryContext(ctx, query, append(args, pageArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListIncomes"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var incomes []model.Income
	for rows.Next() {
		in, err := scanIncome(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		incomes = append(incomes, in)
	}
	return incomes, total, nil
}

// DeleteIncome removes an Income by ID within the user scope.
func (r *implRepository) DeleteIncome(ctx context.Context, sc model.Scope, id string) error {
	const query = `DELETE FROM incomes WHERE user_id = $1 AND id = $2`
	if _, err := r.db.ExecContext(ctx, query, sc.UserID, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteIncome"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// SumIncomes sums all income amounts for the scoped user.
func (r *implRepository) SumIncomes(ctx context.Context, sc model.Scope) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM incomes WHERE user_id = $1`

	var total decimal.Decimal
	if err := r.db.QueryRowContext(ctx, query, sc.UserID).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SumIncomes"), err)
		return decimal.Zero, repo.ErrFailedToSum
	}
	return total, nil
}
