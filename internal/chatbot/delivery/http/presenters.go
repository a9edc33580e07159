package http

import (
	"time"

	"expense-tracker/internal/chatbot"
	"expense-tracker/pkg/deepgram"
)

// --- Response DTOs ---

type actionResp struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type actionResultResp struct {
	Kind      string `json:"kind"`
	Succeeded bool   `json:"succeeded"`
	Payload   any    `json:"payload,omitempty"`
}

type speechResp struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	Duration   float64 `json:"duration,omitempty"`
	Language   string  `json:"language,omitempty"`
}

type envelopeResp struct {
	Response     string            `json:"response"`
	Action       *actionResp       `json:"action,omitempty"`
	ActionResult *actionResultResp `json:"action_result,omitempty"`
	Success      bool              `json:"success"`
	Suggestions  []string          `json:"suggestions,omitempty"`
	AwaitingInfo []string          `json:"awaiting_info,omitempty"`
	Speech       *speechResp       `json:"speech,omitempty"`
}

func newEnvelopeResp(env chatbot.Envelope) envelopeResp {
	resp := envelopeResp{
		Response:     env.Response,
		Success:      env.Success,
		Suggestions:  env.Suggestions,
		AwaitingInfo: env.AwaitingInfo,
	}
	if env.Action != nil {
		resp.Action = &actionResp{Type: env.Action.Type, Data: env.Action.Data}
	}
	if env.ActionResult != nil {
		resp.ActionResult = &actionResultResp{
			Kind:      string(env.ActionResult.Kind),
			Succeeded: env.ActionResult.Succeeded,
			Payload:   env.ActionResult.Payload,
		}
	}
	if env.Speech != nil {
		resp.Speech = &speechResp{
			Transcript: env.Speech.Transcript,
			Confidence: env.Speech.Confidence,
			Duration:   env.Speech.Duration,
			Language:   env.Speech.Language,
		}
	}
	return resp
}

type turnResp struct {
	ID          string      `json:"id"`
	UserMessage string      `json:"user_message"`
	BotResponse string      `json:"bot_response"`
	Action      *actionResp `json:"action,omitempty"`
	Success     bool        `json:"success"`
	CreatedAt   time.Time   `json:"created_at"`
}

type historyResp struct {
	Turns         []turnResp `json:"turns"`
	TotalMessages int        `json:"total_messages"`
}

func newHistoryResp(out chatbot.HistoryOutput) historyResp {
	turns := make([]turnResp, len(out.Turns))
	for i, t := range out.Turns {
		turns[i] = turnResp{
			ID:          t.ID,
			UserMessage: t.UserMessage,
			BotResponse: t.BotResponse,
			Success:     t.Success,
			CreatedAt:   t.CreatedAt,
		}
		if t.Action != nil {
			turns[i].Action = &actionResp{Type: t.Action.Type}
		}
	}
	return historyResp{Turns: turns, TotalMessages: out.TotalMessages}
}

type transcriptionResp struct {
	Success    bool    `json:"success"`
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	Duration   float64 `json:"duration,omitempty"`
	Message    string  `json:"message,omitempty"`
	Model      string  `json:"model,omitempty"`
	Language   string  `json:"language,omitempty"`
}

func newTranscriptionResp(out chatbot.TranscribeOutput) transcriptionResp {
	return transcriptionResp{
		Success:    out.Success,
		Transcript: out.Transcript,
		Confidence: out.Confidence,
		Duration:   out.Duration,
		Message:    out.Message,
		Model:      out.Model,
		Language:   out.Language,
	}
}

type languagesResp struct {
	Languages []deepgram.Language `json:"languages"`
}
