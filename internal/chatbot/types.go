package chatbot

import (
	"time"

	"github.com/shopspring/decimal"

	"expense-tracker/internal/model"
)

// IntentKind discriminates the closed set of things a message can ask for.
type IntentKind string

const (
	IntentAddExpense    IntentKind = "ADD_EXPENSE"
	IntentAddIncome     IntentKind = "ADD_INCOME"
	IntentViewExpenses  IntentKind = "VIEW_EXPENSES"
	IntentViewAnalytics IntentKind = "VIEW_ANALYTICS"
	IntentBudgetHelp    IntentKind = "BUDGET_HELP"
	IntentDeleteExpense IntentKind = "DELETE_EXPENSE"
	IntentGeneralChat   IntentKind = "GENERAL_CHAT"
)

// Intent is the structured interpretation of one message. Transient, never
// persisted.
type Intent struct {
	Kind          IntentKind
	Confidence    float64
	Fields        IntentFields
	MissingFields []string
	Hints         ContextualHints
}

// IntentFields carries the values extracted from the message. Pointers mark
// fields where "absent" and "zero" must be distinguished.
type IntentFields struct {
	Amount        *decimal.Decimal
	Category      model.Category
	Source        model.Source
	Description   string
	PaymentMethod model.PaymentMethod
	Date          *time.Time
	IsRecurring   bool
	Frequency     model.Frequency
}

// ContextualHints are free-form extras used only to enrich reply text.
type ContextualHints struct {
	Brand              string
	SuggestedQuestions []string
}

// Action describes the domain operation a message resolved to.
type Action struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// ActionResult is the outcome of executing a fully-specified intent.
// Business-rule violations set Succeeded=false with an explanatory Message;
// they are never surfaced as errors.
type ActionResult struct {
	Kind      IntentKind `json:"kind"`
	Succeeded bool       `json:"succeeded"`
	Payload   any        `json:"payload,omitempty"`
	Message   string     `json:"message,omitempty"`
}

// Turn is one recorded user-message/bot-response exchange.
type Turn struct {
	ID          string    `json:"id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	Action      *Action   `json:"action,omitempty"`
	Success     bool      `json:"success"`
	CreatedAt   time.Time `json:"created_at"`
}

// SpeechInfo carries transcription metadata on voice-initiated envelopes.
type SpeechInfo struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	Duration   float64 `json:"duration,omitempty"`
	Language   string  `json:"language,omitempty"`
}

// Envelope is the response contract for one processed message.
type Envelope struct {
	Response     string        `json:"response"`
	Action       *Action       `json:"action,omitempty"`
	ActionResult *ActionResult `json:"action_result,omitempty"`
	Success      bool          `json:"success"`
	Suggestions  []string      `json:"suggestions,omitempty"`
	AwaitingInfo []string      `json:"awaiting_info,omitempty"`
	Speech       *SpeechInfo   `json:"speech,omitempty"`
}

// --- UseCase Inputs ---

// ProcessMessageInput carries one typed message plus the financial snapshot
// the read-only intents and delete resolution work from.
type ProcessMessageInput struct {
	Message  string
	Expenses []model.Expense
	Incomes  []model.Income
	Currency *model.Currency
}

// ProcessVoiceInput carries a validated audio attachment.
type ProcessVoiceInput struct {
	Audio    []byte
	MimeType string
	Language string
	Expenses []model.Expense
	Incomes  []model.Income
	Currency *model.Currency
}

// TranscribeInput carries audio for transcription without orchestration.
type TranscribeInput struct {
	Audio    []byte
	MimeType string
	Language string
}

// --- UseCase Outputs ---

type TranscribeOutput struct {
	Success    bool
	Transcript string
	Confidence float64
	Duration   float64
	Message    string
	Model      string
	Language   string
}

type HistoryOutput struct {
	Turns         []Turn
	TotalMessages int
}

// VoiceStatus reports whether transcription is configured.
type VoiceStatus struct {
	Available bool   `json:"available"`
	Model     string `json:"model,omitempty"`
}

// IntentDescriptor documents one supported intent for the capabilities probe.
type IntentDescriptor struct {
	Intent      string   `json:"intent"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

// Capabilities is the static descriptor of what the chatbot understands.
type Capabilities struct {
	Intents        []IntentDescriptor `json:"intents"`
	Categories     []string           `json:"categories"`
	Sources        []string           `json:"sources"`
	PaymentMethods []string           `json:"payment_methods"`
}
