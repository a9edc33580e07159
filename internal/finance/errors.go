package finance

import "errors"

var (
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrIncomeNotFound       = errors.New("income not found")
	ErrInvalidCategory      = errors.New("invalid expense category")
	ErrInvalidSource        = errors.New("invalid income source")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidFrequency     = errors.New("invalid recurring frequency")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
)
