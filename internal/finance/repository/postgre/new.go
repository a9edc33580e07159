package postgre

import (
	"database/sql"
	"fmt"

	"expense-tracker/internal/finance/repository"
	"expense-tracker/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the finance domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("finance/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("finance/repository/postgre.%s", method)
}
