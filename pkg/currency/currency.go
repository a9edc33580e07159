// Package currency renders monetary amounts according to a user's
// currency preference.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/model"
)

// Format renders amount with two decimal places. A nil currency falls back
// to a leading dollar sign.
func Format(amount decimal.Decimal, cur *model.Currency) string {
	fixed := amount.StringFixed(2)

	if cur == nil || cur.Symbol == "" {
		return "$" + fixed
	}

	if cur.Position == "after" {
		return fmt.Sprintf("%s %s", fixed, cur.Symbol)
	}
	return cur.Symbol + fixed
}
