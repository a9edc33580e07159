package usecase

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/model"
)

// amountPattern matches a leading currency amount like "$20" or "12.50".
var amountPattern = regexp.MustCompile(`\$?(\d+(?:\.\d{2})?)`)

// Heuristic confidence levels. An extracted amount is strong evidence the
// user means a money operation; bare keywords are weak.
const (
	heuristicConfidenceAmount  = 0.8
	heuristicConfidenceKeyword = 0.3
	heuristicConfidenceView    = 0.7
)

// heuristicClassify is the deterministic fallback classifier. Pure function
// of the message text; used when the model's output cannot be parsed.
func heuristicClassify(message string) chatbot.Intent {
	lower := strings.ToLower(message)

	var amount *decimal.Decimal
	if m := amountPattern.FindStringSubmatch(message); m != nil {
		if d, err := decimal.NewFromString(m[1]); err == nil {
			amount = &d
		}
	}

	confidence := heuristicConfidenceKeyword
	if amount != nil {
		confidence = heuristicConfidenceAmount
	}

	intent := chatbot.Intent{
		Fields: chatbot.IntentFields{
			Amount:        amount,
			PaymentMethod: model.PaymentMethodCard,
		},
	}

	switch {
	case containsAny(lower, "spent", "expense", "bought", "paid"):
		intent.Kind = chatbot.IntentAddExpense
		intent.Confidence = confidence
	case containsAny(lower, "income", "salary", "earned"):
		intent.Kind = chatbot.IntentAddIncome
		intent.Confidence = confidence
	case containsAny(lower, "show", "view", "expenses"):
		intent.Kind = chatbot.IntentViewExpenses
		intent.Confidence = heuristicConfidenceView
	default:
		intent.Kind = chatbot.IntentGeneralChat
		intent.Confidence = heuristicConfidenceKeyword
	}

	intent.MissingFields = computeMissingFields(intent.Kind, intent.Fields)
	return intent
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// computeMissingFields lists the required fields an intent still lacks.
// An intent with a non-empty result must never reach the executor.
func computeMissingFields(kind chatbot.IntentKind, fields chatbot.IntentFields) []string {
	var missing []string
	switch kind {
	case chatbot.IntentAddExpense:
		if fields.Amount == nil || !fields.Amount.IsPositive() {
			missing = append(missing, "amount")
		}
		if fields.Category == "" {
			missing = append(missing, "category")
		}
	case chatbot.IntentAddIncome:
		if fields.Amount == nil || !fields.Amount.IsPositive() {
			missing = append(missing, "amount")
		}
		if fields.Source == "" {
			missing = append(missing, "source")
		}
	}
	return missing
}
