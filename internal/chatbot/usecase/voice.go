package usecase

import (
	"context"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/model"
	"expense-tracker/pkg/deepgram"
	"expense-tracker/pkg/metrics"
)

// Transcribe converts audio to text without running the message pipeline.
func (uc *implUseCase) Transcribe(ctx context.Context, input chatbot.TranscribeInput) (chatbot.TranscribeOutput, error) {
	if uc.speech == nil {
		return chatbot.TranscribeOutput{}, chatbot.ErrSpeechUnavailable
	}

	result, err := uc.speech.Transcribe(ctx, input.Audio, transcribeOptions(input.MimeType, input.Language))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Transcribe: %v", err)
		metrics.SpeechTranscriptions.WithLabelValues("error").Inc()
		return chatbot.TranscribeOutput{}, err
	}

	outcome := "success"
	if !result.Success {
		outcome = "no_speech"
	}
	metrics.SpeechTranscriptions.WithLabelValues(outcome).Inc()

	return chatbot.TranscribeOutput{
		Success:    result.Success,
		Transcript: result.Transcript,
		Confidence: result.Confidence,
		Duration:   result.Duration,
		Message:    result.Message,
		Model:      result.Model,
		Language:   result.Language,
	}, nil
}

// ProcessVoice transcribes the audio and, when speech was recognized, feeds
// the transcript through the text pipeline. Transcription failures come back
// as a failed envelope; the pipeline never runs on an empty transcript.
func (uc *implUseCase) ProcessVoice(ctx context.Context, sc model.Scope, input chatbot.ProcessVoiceInput) (chatbot.Envelope, error) {
	if uc.speech == nil {
		return chatbot.Envelope{}, chatbot.ErrSpeechUnavailable
	}

	result, err := uc.speech.Transcribe(ctx, input.Audio, transcribeOptions(input.MimeType, input.Language))
	if err != nil {
		uc.l.Errorf(ctx, "uc.ProcessVoice transcribe: %v", err)
		metrics.SpeechTranscriptions.WithLabelValues("error").Inc()
		return chatbot.Envelope{}, err
	}

	if !result.Success {
		metrics.SpeechTranscriptions.WithLabelValues("no_speech").Inc()
		return chatbot.Envelope{
			Response: result.Message,
			Success:  false,
			Speech: &chatbot.SpeechInfo{
				Transcript: result.Transcript,
				Confidence: result.Confidence,
				Duration:   result.Duration,
				Language:   result.Language,
			},
		}, nil
	}
	metrics.SpeechTranscriptions.WithLabelValues("success").Inc()

	env, err := uc.ProcessMessage(ctx, sc, chatbot.ProcessMessageInput{
		Message:  result.Transcript,
		Expenses: input.Expenses,
		Incomes:  input.Incomes,
		Currency: input.Currency,
	})
	if err != nil {
		return chatbot.Envelope{}, err
	}

	env.Speech = &chatbot.SpeechInfo{
		Transcript: result.Transcript,
		Confidence: result.Confidence,
		Duration:   result.Duration,
		Language:   result.Language,
	}
	return env, nil
}

// VoiceStatus reports whether speech-to-text is configured.
func (uc *implUseCase) VoiceStatus() chatbot.VoiceStatus {
	if uc.speech == nil {
		return chatbot.VoiceStatus{Available: false}
	}
	return chatbot.VoiceStatus{Available: true, Model: uc.speech.Model()}
}

func transcribeOptions(mimeType, language string) deepgram.TranscribeOptions {
	return deepgram.TranscribeOptions{
		MimeType: mimeType,
		Language: language,
	}
}
