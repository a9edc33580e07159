package usecase

import (
	"fmt"
	"strings"

	"expense-tracker/internal/model"
)

// classifyResult is the JSON shape the classifier prompt demands.
type classifyResult struct {
	Intent     string   `json:"intent"`
	Confidence *float64 `json:"confidence"`
	Entities   struct {
		Amount        *float64 `json:"amount"`
		Category      string   `json:"category"`
		Source        string   `json:"source"`
		Description   string   `json:"description"`
		PaymentMethod string   `json:"payment_method"`
		IsRecurring   bool     `json:"is_recurring"`
		Frequency     string   `json:"frequency"`
	} `json:"entities"`
	Brand              string   `json:"brand"`
	SuggestedQuestions []string `json:"suggested_questions"`
}

// buildClassifyPrompt renders the fixed instruction template for intent
// extraction. The model must answer with a single JSON object.
func buildClassifyPrompt(message string) string {
	var b strings.Builder
	b.WriteString(`You are an intent classifier for a personal expense tracker. Classify the user's message into exactly one intent and extract entities.

Intents:
- ADD_EXPENSE: user reports spending money
- ADD_INCOME: user reports receiving money
- VIEW_EXPENSES: user wants to see their expenses
- VIEW_ANALYTICS: user wants a spending analysis
- BUDGET_HELP: user wants budgeting advice
- DELETE_EXPENSE: user wants to remove an expense
- GENERAL_CHAT: anything else

Extraction rules:
- amount: numeric value without currency symbols, null when not stated
- category: one of `)
	b.WriteString(joinCategories())
	b.WriteString(`; null when unclear
- source: one of `)
	b.WriteString(joinSources())
	b.WriteString(`; null when unclear
- description: short phrase describing what the money was for
- payment_method: one of card, cash, account, digital; default "card"
- is_recurring and frequency (weekly, monthly, yearly) for income only
- brand: a brand or merchant name if mentioned, else null

Respond with ONLY a JSON object, no prose:
{"intent": "...", "confidence": 0.0, "entities": {"amount": null, "category": null, "source": null, "description": null, "payment_method": "card", "is_recurring": false, "frequency": null}, "brand": null, "suggested_questions": []}

`)
	fmt.Fprintf(&b, "Message: %q\n", message)
	return b.String()
}

// buildChatPrompt renders the general-chat prompt.
func buildChatPrompt(message string) string {
	return fmt.Sprintf(`You are a friendly personal finance assistant for an expense tracker app. Answer the user's message helpfully in 1-3 short sentences. You can help with adding expenses and income, viewing expenses, spending analysis, and budgets. Do not use markdown formatting.

Message: %q`, message)
}

func joinCategories() string {
	cats := model.Categories()
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = string(c)
	}
	return strings.Join(out, ", ")
}

func joinSources() string {
	srcs := model.Sources()
	out := make([]string, len(srcs))
	for i, s := range srcs {
		out[i] = string(s)
	}
	return strings.Join(out, ", ")
}
