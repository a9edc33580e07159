package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source is the income source taxonomy.
type Source string

const (
	SourceSalary     Source = "salary"
	SourceFreelance  Source = "freelance"
	SourceInvestment Source = "investment"
	SourceBusiness   Source = "business"
	SourceOther      Source = "other"
)

// Sources lists all valid income sources in display order.
func Sources() []Source {
	return []Source{SourceSalary, SourceFreelance, SourceInvestment, SourceBusiness, SourceOther}
}

// SourceDisplayNames returns the human-readable source labels, in the same
// order as Sources.
func SourceDisplayNames() []string {
	return []string{"Salary", "Freelance Work", "Investment Returns", "Business Income", "Other"}
}

// ValidSource reports whether s names a known income source.
func ValidSource(s Source) bool {
	for _, known := range Sources() {
		if known == s {
			return true
		}
	}
	return false
}

// Frequency is how often a recurring income repeats.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// ValidFrequency reports whether f names a known frequency.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Income is a single income record owned by a user.
type Income struct {
	ID          string
	UserID      string
	Source      Source
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	IsRecurring bool
	Frequency   Frequency
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
