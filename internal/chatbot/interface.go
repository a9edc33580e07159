package chatbot

import (
	"context"

	"expense-tracker/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessMessage runs one typed message through the conversational
	// pipeline: classify, gate, dispatch, compose, record.
	ProcessMessage(ctx context.Context, sc model.Scope, input ProcessMessageInput) (Envelope, error)

	// ProcessVoice transcribes audio and feeds the transcript through
	// ProcessMessage. The envelope carries the transcription under Speech.
	ProcessVoice(ctx context.Context, sc model.Scope, input ProcessVoiceInput) (Envelope, error)

	// Transcribe converts audio to text without orchestration.
	Transcribe(ctx context.Context, input TranscribeInput) (TranscribeOutput, error)

	// History returns the principal's most recent conversation turns.
	History(ctx context.Context, sc model.Scope, limit int) (HistoryOutput, error)

	// ClearHistory removes all recorded turns for the principal.
	ClearHistory(ctx context.Context, sc model.Scope) error

	// VoiceStatus reports whether the transcription collaborator is configured.
	VoiceStatus() VoiceStatus

	// Capabilities returns the static intent/taxonomy descriptor.
	Capabilities() Capabilities
}
