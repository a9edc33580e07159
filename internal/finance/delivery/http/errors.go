package http

import (
	"expense-tracker/internal/finance"
	pkgErrors "expense-tracker/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case finance.ErrExpenseNotFound:
		return pkgErrors.NewHTTPError(404, "expense not found")
	case finance.ErrIncomeNotFound:
		return pkgErrors.NewHTTPError(404, "income not found")
	case finance.ErrInvalidCategory:
		return pkgErrors.NewHTTPError(400, "invalid expense category")
	case finance.ErrInvalidSource:
		return pkgErrors.NewHTTPError(400, "invalid income source")
	case finance.ErrInvalidPaymentMethod:
		return pkgErrors.NewHTTPError(400, "invalid payment method")
	case finance.ErrInvalidFrequency:
		return pkgErrors.NewHTTPError(400, "invalid recurring frequency")
	case finance.ErrInvalidAmount:
		return pkgErrors.NewHTTPError(400, "amount must be greater than zero")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
