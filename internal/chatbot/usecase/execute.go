package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/analytics"
	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/finance"
	"expense-tracker/internal/model"
)

const defaultExpenseComment = "Added via chatbot"

// execute performs the domain action for a fully-specified intent. Business
// rule violations come back as failed ActionResults; only storage failures
// return an error.
func (uc *implUseCase) execute(ctx context.Context, sc model.Scope, intent chatbot.Intent, input chatbot.ProcessMessageInput) (chatbot.ActionResult, *chatbot.Action, error) {
	switch intent.Kind {
	case chatbot.IntentAddExpense:
		return uc.executeAddExpense(ctx, sc, intent, input.Currency)
	case chatbot.IntentAddIncome:
		return uc.executeAddIncome(ctx, sc, intent, input.Currency)
	case chatbot.IntentDeleteExpense:
		return uc.executeDeleteExpense(ctx, sc, intent, input)
	case chatbot.IntentViewExpenses:
		return uc.executeViewExpenses(intent, input)
	case chatbot.IntentViewAnalytics:
		return uc.executeViewAnalytics(ctx, intent, input)
	case chatbot.IntentBudgetHelp:
		return uc.executeBudgetHelp(ctx, intent, input)
	default:
		return uc.executeGeneralChat(ctx, input.Message)
	}
}

func (uc *implUseCase) executeAddExpense(ctx context.Context, sc model.Scope, intent chatbot.Intent, cur *model.Currency) (chatbot.ActionResult, *chatbot.Action, error) {
	category := intent.Fields.Category
	if category == "" {
		// Defensive default: the completeness gate should have caught this.
		category = model.CategoryOther
	}
	comments := intent.Fields.Description
	if comments == "" {
		comments = defaultExpenseComment
	}

	createInput := finance.CreateExpenseInput{
		Category:      category,
		Amount:        *intent.Fields.Amount,
		Comments:      comments,
		PaymentMethod: intent.Fields.PaymentMethod,
	}
	if intent.Fields.Date != nil {
		createInput.Date = *intent.Fields.Date
	}

	out, err := uc.finance.CreateExpense(ctx, sc, createInput)
	if err != nil {
		uc.l.Errorf(ctx, "uc.execute CreateExpense: %v", err)
		return chatbot.ActionResult{}, nil, err
	}

	expense := out.Expense
	return chatbot.ActionResult{
			Kind:      chatbot.IntentAddExpense,
			Succeeded: true,
			Payload:   expense,
			Message:   fmt.Sprintf("Got it! I've added %s for %s to your expenses.", formatAmount(expense.Amount, cur), displayCategory(expense.Category)),
		}, &chatbot.Action{
			Type: string(chatbot.IntentAddExpense),
			Data: expense,
		}, nil
}

func (uc *implUseCase) executeAddIncome(ctx context.Context, sc model.Scope, intent chatbot.Intent, cur *model.Currency) (chatbot.ActionResult, *chatbot.Action, error) {
	source := intent.Fields.Source
	if source == "" {
		source = model.SourceOther
	}
	frequency := intent.Fields.Frequency
	if intent.Fields.IsRecurring && frequency == "" {
		frequency = model.FrequencyMonthly
	}

	createInput := finance.CreateIncomeInput{
		Source:      source,
		Amount:      *intent.Fields.Amount,
		Description: intent.Fields.Description,
		IsRecurring: intent.Fields.IsRecurring,
		Frequency:   frequency,
	}
	if intent.Fields.Date != nil {
		createInput.Date = *intent.Fields.Date
	}

	out, err := uc.finance.CreateIncome(ctx, sc, createInput)
	if err != nil {
		uc.l.Errorf(ctx, "uc.execute CreateIncome: %v", err)
		return chatbot.ActionResult{}, nil, err
	}

	income := out.Income
	return chatbot.ActionResult{
			Kind:      chatbot.IntentAddIncome,
			Succeeded: true,
			Payload:   income,
			Message:   fmt.Sprintf("Great! I've recorded %s income from %s.", formatAmount(income.Amount, cur), displaySource(income.Source)),
		}, &chatbot.Action{
			Type: string(chatbot.IntentAddIncome),
			Data: income,
		}, nil
}

func (uc *implUseCase) executeDeleteExpense(ctx context.Context, sc model.Scope, intent chatbot.Intent, input chatbot.ProcessMessageInput) (chatbot.ActionResult, *chatbot.Action, error) {
	if len(input.Expenses) == 0 {
		return chatbot.ActionResult{
			Kind:      chatbot.IntentDeleteExpense,
			Succeeded: false,
			Message:   "You don't have any expenses to delete.",
		}, nil, nil
	}

	target := resolveDeleteTarget(input.Expenses, intent.Fields.Description)

	if err := uc.finance.DeleteExpense(ctx, sc, target.ID); err != nil {
		uc.l.Errorf(ctx, "uc.execute DeleteExpense: %v", err)
		return chatbot.ActionResult{}, nil, err
	}

	return chatbot.ActionResult{
			Kind:      chatbot.IntentDeleteExpense,
			Succeeded: true,
			Payload:   target,
			Message:   fmt.Sprintf("Done! I've deleted your %s expense of %s.", target.Comments, formatAmount(target.Amount, input.Currency)),
		}, &chatbot.Action{
			Type: string(chatbot.IntentDeleteExpense),
			Data: target,
		}, nil
}

// resolveDeleteTarget picks the expense a delete request refers to. A
// description hint matches the most recent expense whose comment or category
// contains it; without a hint the most recent expense wins.
func resolveDeleteTarget(expenses []model.Expense, hint string) model.Expense {
	sorted := make([]model.Expense, len(expenses))
	copy(sorted, expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if hint != "" {
		needle := strings.ToLower(hint)
		for _, e := range sorted {
			if strings.Contains(strings.ToLower(e.Comments), needle) ||
				strings.Contains(strings.ToLower(string(e.Category)), needle) {
				return e
			}
		}
	}
	return sorted[0]
}

// expenseSummary is the read-only payload for ViewExpenses.
type expenseSummary struct {
	TotalSpent decimal.Decimal `json:"total_spent"`
	Count      int             `json:"count"`
	Recent     []model.Expense `json:"recent"`
}

func (uc *implUseCase) executeViewExpenses(intent chatbot.Intent, input chatbot.ProcessMessageInput) (chatbot.ActionResult, *chatbot.Action, error) {
	if len(input.Expenses) == 0 {
		return chatbot.ActionResult{
			Kind:      chatbot.IntentViewExpenses,
			Succeeded: true,
			Message:   "You haven't recorded any expenses yet. Tell me something like \"I spent $20 on lunch\" to get started.",
		}, nil, nil
	}

	sorted := make([]model.Expense, len(input.Expenses))
	copy(sorted, input.Expenses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	summary := expenseSummary{Count: len(sorted)}
	for _, e := range sorted {
		summary.TotalSpent = summary.TotalSpent.Add(e.Amount)
	}
	recent := sorted
	if len(recent) > 5 {
		recent = recent[:5]
	}
	summary.Recent = recent

	var b strings.Builder
	fmt.Fprintf(&b, "You've spent %s across %d expenses. Here are your most recent:", formatAmount(summary.TotalSpent, input.Currency), summary.Count)
	for _, e := range recent {
		fmt.Fprintf(&b, "\n- %s for %s (%s)", formatAmount(e.Amount, input.Currency), e.Comments, displayCategory(e.Category))
	}

	return chatbot.ActionResult{
			Kind:      chatbot.IntentViewExpenses,
			Succeeded: true,
			Payload:   summary,
			Message:   b.String(),
		}, &chatbot.Action{
			Type: string(chatbot.IntentViewExpenses),
			Data: summary,
		}, nil
}

func (uc *implUseCase) executeViewAnalytics(ctx context.Context, intent chatbot.Intent, input chatbot.ProcessMessageInput) (chatbot.ActionResult, *chatbot.Action, error) {
	out, err := uc.analytics.SpendingAnalysis(ctx, analytics.AnalysisInput{
		Expenses: input.Expenses,
		Incomes:  input.Incomes,
		Currency: input.Currency,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.execute SpendingAnalysis: %v", err)
		return chatbot.ActionResult{}, nil, err
	}

	return chatbot.ActionResult{
		Kind:      chatbot.IntentViewAnalytics,
		Succeeded: true,
		Message:   out.Text,
	}, nil, nil
}

func (uc *implUseCase) executeBudgetHelp(ctx context.Context, intent chatbot.Intent, input chatbot.ProcessMessageInput) (chatbot.ActionResult, *chatbot.Action, error) {
	totalIncome := decimal.Zero
	for _, in := range input.Incomes {
		totalIncome = totalIncome.Add(in.Amount)
	}
	if !totalIncome.IsPositive() {
		return chatbot.ActionResult{
			Kind:      chatbot.IntentBudgetHelp,
			Succeeded: false,
			Message:   "I need your income information first. Add your income and I'll help you build a budget.",
		}, nil, nil
	}

	out, err := uc.analytics.BudgetRecommendation(ctx, analytics.AnalysisInput{
		Expenses: input.Expenses,
		Incomes:  input.Incomes,
		Currency: input.Currency,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.execute BudgetRecommendation: %v", err)
		return chatbot.ActionResult{}, nil, err
	}

	return chatbot.ActionResult{
		Kind:      chatbot.IntentBudgetHelp,
		Succeeded: true,
		Payload:   out,
		Message:   out.Text,
	}, nil, nil
}

func (uc *implUseCase) executeGeneralChat(ctx context.Context, message string) (chatbot.ActionResult, *chatbot.Action, error) {
	text := uc.chatReply(ctx, message)
	return chatbot.ActionResult{
		Kind:      chatbot.IntentGeneralChat,
		Succeeded: true,
		Message:   text,
	}, nil, nil
}

// chatReply asks the model for a conversational answer; any failure falls
// back to the canned help text.
func (uc *implUseCase) chatReply(ctx context.Context, message string) string {
	if uc.llm != nil {
		text, err := uc.generateText(ctx, buildChatPrompt(message))
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			uc.l.Warnf(ctx, "uc.chatReply generate: %v", err)
		}
	}
	return helpText
}

const helpText = "I can help you track your money. Try telling me things like \"I spent $20 on lunch\", \"I received my $3000 salary\", \"show my expenses\", or ask for a spending analysis or budget help."
