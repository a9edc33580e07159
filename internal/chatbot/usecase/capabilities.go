package usecase

import (
	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/model"
)

// Capabilities returns the static descriptor of supported intents and
// taxonomies.
func (uc *implUseCase) Capabilities() chatbot.Capabilities {
	return chatbot.Capabilities{
		Intents: []chatbot.IntentDescriptor{
			{
				Intent:      string(chatbot.IntentAddExpense),
				Description: "Record a new expense",
				Examples:    []string{"I spent $20 on lunch", "Bought groceries for $45.50", "Paid $12 for a taxi"},
			},
			{
				Intent:      string(chatbot.IntentAddIncome),
				Description: "Record income",
				Examples:    []string{"I received my $3000 salary", "Earned $500 from freelance work"},
			},
			{
				Intent:      string(chatbot.IntentViewExpenses),
				Description: "Show recent expenses and totals",
				Examples:    []string{"Show my expenses", "What did I spend this month?"},
			},
			{
				Intent:      string(chatbot.IntentViewAnalytics),
				Description: "Analyze spending patterns",
				Examples:    []string{"Analyze my spending", "Where does my money go?"},
			},
			{
				Intent:      string(chatbot.IntentBudgetHelp),
				Description: "Build a budget from your income",
				Examples:    []string{"Help me budget", "How much should I save?"},
			},
			{
				Intent:      string(chatbot.IntentDeleteExpense),
				Description: "Delete a recorded expense",
				Examples:    []string{"Delete my last expense", "Remove the coffee expense"},
			},
			{
				Intent:      string(chatbot.IntentGeneralChat),
				Description: "General questions about the assistant",
				Examples:    []string{"What can you do?", "Hello"},
			},
		},
		Categories:     model.CategoryDisplayNames(),
		Sources:        model.SourceDisplayNames(),
		PaymentMethods: paymentMethodNames(),
	}
}

func paymentMethodNames() []string {
	methods := model.PaymentMethods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}
	return names
}
