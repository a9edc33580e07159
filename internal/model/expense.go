package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the expense category taxonomy. It is the single source of
// truth consumed by the classifier prompt, the clarification tables, the
// finance validation layer, and the capabilities descriptor.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryBills         Category = "bills"
	CategoryShopping      Category = "shopping"
	CategoryHealth        Category = "health"
	CategoryEducation     Category = "education"
	CategoryOther         Category = "other"
)

// Categories lists all valid expense categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFood, CategoryTransport, CategoryEntertainment, CategoryBills,
		CategoryShopping, CategoryHealth, CategoryEducation, CategoryOther,
	}
}

// CategoryDisplayNames returns the human-readable category labels, in the
// same order as Categories.
func CategoryDisplayNames() []string {
	return []string{
		"Food & Dining", "Transportation", "Entertainment", "Bills & Utilities",
		"Shopping", "Health", "Education", "Other",
	}
}

// ValidCategory reports whether c names a known category.
func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if known == c {
			return true
		}
	}
	return false
}

// PaymentMethod is how an expense was paid.
type PaymentMethod string

const (
	PaymentMethodCard    PaymentMethod = "card"
	PaymentMethodCash    PaymentMethod = "cash"
	PaymentMethodAccount PaymentMethod = "account"
	PaymentMethodDigital PaymentMethod = "digital"
)

// PaymentMethods lists all valid payment methods.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentMethodCard, PaymentMethodCash, PaymentMethodAccount, PaymentMethodDigital}
}

// ValidPaymentMethod reports whether p names a known payment method.
func ValidPaymentMethod(p PaymentMethod) bool {
	for _, known := range PaymentMethods() {
		if known == p {
			return true
		}
	}
	return false
}

// Expense is a single spending record owned by a user.
type Expense struct {
	ID            string
	UserID        string
	Category      Category
	Amount        decimal.Decimal
	Comments      string
	PaymentMethod PaymentMethod
	Date          time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
