package usecase

import (
	"fmt"
	"strings"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/model"
)

// clarification is a follow-up question plus quick-reply suggestions.
type clarification struct {
	message     string
	suggestions []string
}

// Quick-reply suggestion sets for amount clarification, conditioned on the
// expense category when one was extracted.
var (
	foodAmountSuggestions          = []string{"$5-10 for coffee/snacks", "$15-25 for lunch", "$30-50 for dinner"}
	transportAmountSuggestions     = []string{"$3-5 for bus/train", "$10-20 for taxi", "$30-50 for gas"}
	entertainmentAmountSuggestions = []string{"$10-15 for streaming", "$25-35 for movies", "$50+ for events"}
	genericAmountSuggestions       = []string{"Under $10", "$10-50", "$50-100", "Over $100"}
	incomeAmountSuggestions        = []string{"Under $500", "$500-1000", "$1000-3000", "$3000+"}
)

// buildClarification produces the follow-up question for an incomplete
// intent. Pure function; never performs a side effect.
func buildClarification(intent chatbot.Intent, cur *model.Currency) clarification {
	var c clarification

	missing := ""
	if len(intent.MissingFields) > 0 {
		missing = intent.MissingFields[0]
	}

	switch intent.Kind {
	case chatbot.IntentAddExpense:
		switch missing {
		case "amount":
			subject := intent.Fields.Description
			if subject == "" && intent.Fields.Category != "" {
				subject = string(intent.Fields.Category)
			}
			if subject == "" {
				subject = "that"
			}
			c.message = fmt.Sprintf("I understand you want to add an expense for %s, but I need to know the amount. How much did you spend?", subject)
			c.suggestions = amountSuggestionsFor(intent.Fields.Category)
		case "category":
			c.message = fmt.Sprintf("I see you spent %s, but what category should this go under?", formatAmount(*intent.Fields.Amount, cur))
			c.suggestions = model.CategoryDisplayNames()
		}
	case chatbot.IntentAddIncome:
		switch missing {
		case "amount":
			c.message = "I understand you want to record income, but I need to know the amount. How much did you receive?"
			c.suggestions = incomeAmountSuggestions
		case "source":
			c.message = fmt.Sprintf("I see you received %s. What type of income is this?", formatAmount(*intent.Fields.Amount, cur))
			c.suggestions = model.SourceDisplayNames()
		}
	}

	if len(intent.Hints.SuggestedQuestions) > 0 {
		c.message = strings.TrimSpace(c.message + " " + strings.Join(intent.Hints.SuggestedQuestions, " "))
	}
	return c
}

func amountSuggestionsFor(cat model.Category) []string {
	switch cat {
	case model.CategoryFood:
		return foodAmountSuggestions
	case model.CategoryTransport:
		return transportAmountSuggestions
	case model.CategoryEntertainment:
		return entertainmentAmountSuggestions
	default:
		return genericAmountSuggestions
	}
}
