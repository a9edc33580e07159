package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/model"
	"expense-tracker/pkg/gemini"
	"expense-tracker/pkg/metrics"
)

// errClassifierUnavailable marks the classifier as never configured. The
// orchestrator turns it, like any transport failure, into the apology reply.
var errClassifierUnavailable = errors.New("intent classifier is not configured")

// Confidence assumed when the model's JSON omits the confidence field.
const defaultModelConfidence = 0.5

// classify runs the message through the language model and parses the
// structured intent. Malformed model output degrades to the heuristic
// classifier; only transport-level failures surface as errors.
func (uc *implUseCase) classify(ctx context.Context, message string) (chatbot.Intent, error) {
	if uc.llm == nil {
		return chatbot.Intent{}, errClassifierUnavailable
	}

	resp, err := uc.llm.GenerateContent(ctx, &gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: buildClassifyPrompt(message)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2,
			MaxOutputTokens: 1024,
		},
	})
	if err != nil {
		return chatbot.Intent{}, err
	}

	var result classifyResult
	cleaned := sanitizeJSONResponse(resp.Text())
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		uc.l.Warnf(ctx, "uc.classify: malformed model output, using heuristic: %v", err)
		metrics.ChatClassifierFallbacks.Inc()
		return heuristicClassify(message), nil
	}

	intent, ok := intentFromResult(result)
	if !ok {
		uc.l.Warnf(ctx, "uc.classify: unknown intent %q, using heuristic", result.Intent)
		metrics.ChatClassifierFallbacks.Inc()
		return heuristicClassify(message), nil
	}
	return intent, nil
}

// generateText runs a free-form prompt through the model and returns the
// trimmed reply.
func (uc *implUseCase) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, &gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 512,
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

// intentFromResult converts the model's parsed JSON into a validated Intent.
func intentFromResult(result classifyResult) (chatbot.Intent, bool) {
	kind := chatbot.IntentKind(strings.ToUpper(strings.TrimSpace(result.Intent)))
	switch kind {
	case chatbot.IntentAddExpense, chatbot.IntentAddIncome, chatbot.IntentViewExpenses,
		chatbot.IntentViewAnalytics, chatbot.IntentBudgetHelp, chatbot.IntentDeleteExpense,
		chatbot.IntentGeneralChat:
	default:
		return chatbot.Intent{}, false
	}

	confidence := defaultModelConfidence
	if result.Confidence != nil {
		confidence = *result.Confidence
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	fields := chatbot.IntentFields{
		Description: strings.TrimSpace(result.Entities.Description),
		IsRecurring: result.Entities.IsRecurring,
	}
	if result.Entities.Amount != nil {
		amount := decimal.NewFromFloat(*result.Entities.Amount)
		fields.Amount = &amount
	}
	// Out-of-taxonomy values from the model are treated as absent.
	if cat := model.Category(strings.ToLower(result.Entities.Category)); model.ValidCategory(cat) {
		fields.Category = cat
	}
	if src := model.Source(strings.ToLower(result.Entities.Source)); model.ValidSource(src) {
		fields.Source = src
	}
	if pm := model.PaymentMethod(strings.ToLower(result.Entities.PaymentMethod)); model.ValidPaymentMethod(pm) {
		fields.PaymentMethod = pm
	} else {
		fields.PaymentMethod = model.PaymentMethodCard
	}
	if freq := model.Frequency(strings.ToLower(result.Entities.Frequency)); model.ValidFrequency(freq) {
		fields.Frequency = freq
	}

	return chatbot.Intent{
		Kind:          kind,
		Confidence:    confidence,
		Fields:        fields,
		MissingFields: computeMissingFields(kind, fields),
		Hints: chatbot.ContextualHints{
			Brand:              strings.TrimSpace(result.Brand),
			SuggestedQuestions: result.SuggestedQuestions,
		},
	}, true
}
