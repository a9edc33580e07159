package usecase

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/model"
	"expense-tracker/pkg/currency"
)

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	// Remove ```json ... ``` or ``` ... ``` blocks
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	// No code block: find first [ or { and last ] or }
	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// formatAmount renders an amount with the user's currency preference.
func formatAmount(amount decimal.Decimal, cur *model.Currency) string {
	return currency.Format(amount, cur)
}

// displayCategory maps a category value to its display name.
func displayCategory(cat model.Category) string {
	names := model.CategoryDisplayNames()
	for i, c := range model.Categories() {
		if c == cat && i < len(names) {
			return names[i]
		}
	}
	return string(cat)
}

// displaySource maps a source value to its display name.
func displaySource(src model.Source) string {
	names := model.SourceDisplayNames()
	for i, s := range model.Sources() {
		if s == src && i < len(names) {
			return names[i]
		}
	}
	return string(src)
}
