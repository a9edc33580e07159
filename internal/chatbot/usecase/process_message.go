package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/model"
	"expense-tracker/pkg/metrics"
)

// Intents below this confidence never reach the executor.
const confidenceThreshold = 0.5

const (
	apologyText       = "I'm sorry, the AI service is not available right now. Please try again later."
	lowConfidenceText = "I'm not sure what you want to do. Here are some things I can help you with:"
)

// genericSuggestions accompany the low-confidence guidance reply.
var genericSuggestions = []string{
	"Add an expense",
	"View expenses",
	"Get spending analysis",
	"Budget help",
}

// Thresholds for spending tips.
var (
	tipFoodThreshold          = decimal.NewFromInt(50)
	tipEntertainmentThreshold = decimal.NewFromInt(100)
)

// ProcessMessage runs one message through the pipeline: classify, confidence
// gate, completeness gate, dispatch, compose, record. Only storage failures
// return an error; every conversational branch returns an envelope.
func (uc *implUseCase) ProcessMessage(ctx context.Context, sc model.Scope, input chatbot.ProcessMessageInput) (chatbot.Envelope, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chatbot.Envelope{}, chatbot.ErrEmptyMessage
	}
	input.Message = message

	start := time.Now()

	intent, err := uc.classify(ctx, message)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ProcessMessage classify: %v", err)
		env := chatbot.Envelope{Response: apologyText, Success: false}
		uc.record(ctx, sc, message, env)
		uc.observe(chatbot.IntentGeneralChat, false, start)
		return env, nil
	}

	if intent.Confidence < confidenceThreshold {
		env := chatbot.Envelope{
			Response:    lowConfidenceText,
			Suggestions: genericSuggestions,
			Success:     false,
		}
		uc.record(ctx, sc, message, env)
		uc.observe(intent.Kind, false, start)
		return env, nil
	}

	if len(intent.MissingFields) > 0 {
		c := buildClarification(intent, input.Currency)
		env := chatbot.Envelope{
			Response:     c.message,
			Suggestions:  c.suggestions,
			AwaitingInfo: intent.MissingFields,
			Success:      false,
		}
		uc.record(ctx, sc, message, env)
		uc.observe(intent.Kind, false, start)
		return env, nil
	}

	result, action, err := uc.execute(ctx, sc, intent, input)
	if err != nil {
		// Storage failure is the one fatal branch; it surfaces to the
		// transport layer as a 5xx instead of a conversational reply.
		return chatbot.Envelope{}, err
	}

	env := chatbot.Envelope{
		Response:     composeReply(intent, result),
		Action:       action,
		ActionResult: &result,
		Success:      result.Succeeded,
	}
	uc.record(ctx, sc, message, env)
	uc.observe(intent.Kind, result.Succeeded, start)
	return env, nil
}

// composeReply enriches the action result message with category-conditioned
// tips and a brand acknowledgement.
func composeReply(intent chatbot.Intent, result chatbot.ActionResult) string {
	reply := result.Message

	if intent.Hints.Brand != "" && result.Succeeded {
		reply = fmt.Sprintf("%s I noticed you mentioned %s.", reply, intent.Hints.Brand)
	}

	if tip := spendingTip(intent); tip != "" && result.Succeeded {
		reply = reply + " " + tip
	}
	return reply
}

// spendingTip returns the advice attached to notable expense patterns.
func spendingTip(intent chatbot.Intent) string {
	if intent.Kind != chatbot.IntentAddExpense || intent.Fields.Amount == nil {
		return ""
	}
	amount := *intent.Fields.Amount

	switch {
	case intent.Fields.Category == model.CategoryFood && amount.GreaterThan(tipFoodThreshold):
		return "Tip: that's a sizable food expense. Meal planning can help keep dining costs down."
	case intent.Fields.Category == model.CategoryEntertainment && amount.GreaterThan(tipEntertainmentThreshold):
		return "Tip: you're spending quite a bit on entertainment. Setting a monthly entertainment budget might help."
	case intent.Fields.Category == model.CategoryTransport && intent.Fields.PaymentMethod == model.PaymentMethodCash:
		return "Tip: cash transport payments are easy to lose track of. Paying by card makes them easier to follow."
	}
	return ""
}

// record appends the exchange to the principal's history. Best effort; a
// failed append never fails the message.
func (uc *implUseCase) record(ctx context.Context, sc model.Scope, message string, env chatbot.Envelope) {
	turn := chatbot.Turn{
		ID:          fmt.Sprintf("%s_%d", sc.UserID, time.Now().UnixMilli()),
		UserMessage: message,
		BotResponse: env.Response,
		Action:      env.Action,
		Success:     env.Success,
		CreatedAt:   time.Now(),
	}
	if err := uc.sessions.AppendTurn(ctx, sc.UserID, turn); err != nil {
		uc.l.Errorf(ctx, "uc.record AppendTurn: %v", err)
	}
}

func (uc *implUseCase) observe(kind chatbot.IntentKind, success bool, start time.Time) {
	metrics.ChatMessagesProcessed.WithLabelValues(string(kind), strconv.FormatBool(success)).Inc()
	metrics.ChatProcessingDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
}
