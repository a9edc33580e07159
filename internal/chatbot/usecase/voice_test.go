package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"expense-tracker/internal/chatbot"
	"expense-tracker/internal/finance"
	"expense-tracker/internal/model"
	"expense-tracker/pkg/deepgram"
)

func newVoicePipeline(speech *mockSpeech, llm *mockGemini) pipeline {
	fin := &mockFinance{}
	an := &mockAnalytics{}
	sessions := newMockSessions()

	return pipeline{
		uc:        New(noopLogger{}, llm, speech, fin, an, sessions),
		llm:       llm,
		finance:   fin,
		analytics: an,
		sessions:  sessions,
	}
}

func TestTranscribeUnavailable(t *testing.T) {
	p := newPipeline(&mockGemini{})

	_, err := p.uc.Transcribe(context.Background(), chatbot.TranscribeInput{Audio: []byte("x")})
	if !errors.Is(err, chatbot.ErrSpeechUnavailable) {
		t.Fatalf("expected ErrSpeechUnavailable, got %v", err)
	}
}

func TestTranscribe(t *testing.T) {
	speech := &mockSpeech{transcribeFn: func(ctx context.Context, audio []byte, opts deepgram.TranscribeOptions) (*deepgram.TranscribeResult, error) {
		if opts.Language != "en-GB" {
			t.Errorf("expected language passthrough, got %q", opts.Language)
		}
		return &deepgram.TranscribeResult{
			Success:    true,
			Transcript: "I spent twenty dollars on lunch",
			Confidence: 0.92,
			Duration:   2.4,
		}, nil
	}}
	p := newVoicePipeline(speech, &mockGemini{})

	out, err := p.uc.Transcribe(context.Background(), chatbot.TranscribeInput{
		Audio:    []byte("audio"),
		MimeType: "audio/webm",
		Language: "en-GB",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success || out.Transcript != "I spent twenty dollars on lunch" {
		t.Errorf("unexpected output: %+v", out)
	}
}

func TestProcessVoiceNoSpeechSkipsPipeline(t *testing.T) {
	speech := &mockSpeech{transcribeFn: func(ctx context.Context, audio []byte, opts deepgram.TranscribeOptions) (*deepgram.TranscribeResult, error) {
		return &deepgram.TranscribeResult{Success: false, Message: "No speech detected in audio"}, nil
	}}
	llm := &mockGemini{}
	p := newVoicePipeline(speech, llm)

	env, err := p.uc.ProcessVoice(context.Background(), testScope(), chatbot.ProcessVoiceInput{Audio: []byte("static")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if env.Success {
		t.Errorf("expected success=false")
	}
	if env.Response != "No speech detected in audio" {
		t.Errorf("unexpected reply: %q", env.Response)
	}
	if llm.calls != 0 {
		t.Errorf("pipeline must not run on a failed transcription")
	}
	if len(p.sessions.turns["user-1"]) != 0 {
		t.Errorf("failed transcription must not be recorded")
	}
}

func TestProcessVoiceRunsPipeline(t *testing.T) {
	speech := &mockSpeech{transcribeFn: func(ctx context.Context, audio []byte, opts deepgram.TranscribeOptions) (*deepgram.TranscribeResult, error) {
		return &deepgram.TranscribeResult{
			Success:    true,
			Transcript: "I spent $20 on lunch",
			Confidence: 0.95,
			Duration:   1.8,
			Language:   "en-US",
		}, nil
	}}
	llm := &mockGemini{generateFn: classifierJSON(
		`{"intent": "ADD_EXPENSE", "confidence": 0.95, "entities": {"amount": 20, "category": "food", "description": "lunch"}}`,
	)}
	p := newVoicePipeline(speech, llm)
	p.finance.createExpenseFn = func(ctx context.Context, sc model.Scope, input finance.CreateExpenseInput) (finance.CreateExpenseOutput, error) {
		return finance.CreateExpenseOutput{Expense: model.Expense{ID: "e1", Category: input.Category, Amount: input.Amount}}, nil
	}

	env, err := p.uc.ProcessVoice(context.Background(), testScope(), chatbot.ProcessVoiceInput{Audio: []byte("audio")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !env.Success {
		t.Errorf("expected success envelope, got %+v", env)
	}
	if !strings.Contains(env.Response, "Got it!") {
		t.Errorf("expected confirmation, got %q", env.Response)
	}
	if env.Speech == nil || env.Speech.Transcript != "I spent $20 on lunch" || env.Speech.Confidence != 0.95 {
		t.Errorf("expected transcription metadata, got %+v", env.Speech)
	}
	if p.finance.createExpenseCalls != 1 {
		t.Errorf("expected one expense created, got %d", p.finance.createExpenseCalls)
	}
	turns := p.sessions.turns["user-1"]
	if len(turns) != 1 || turns[0].UserMessage != "I spent $20 on lunch" {
		t.Errorf("expected transcript recorded as the user message, got %+v", turns)
	}
}

func TestProcessVoiceUnavailable(t *testing.T) {
	p := newPipeline(&mockGemini{})

	_, err := p.uc.ProcessVoice(context.Background(), testScope(), chatbot.ProcessVoiceInput{Audio: []byte("x")})
	if !errors.Is(err, chatbot.ErrSpeechUnavailable) {
		t.Fatalf("expected ErrSpeechUnavailable, got %v", err)
	}
}

func TestVoiceStatus(t *testing.T) {
	p := newPipeline(&mockGemini{})
	if status := p.uc.VoiceStatus(); status.Available {
		t.Errorf("expected unavailable without a speech client")
	}

	vp := newVoicePipeline(&mockSpeech{}, &mockGemini{})
	status := vp.uc.VoiceStatus()
	if !status.Available || status.Model != "nova-test" {
		t.Errorf("unexpected status: %+v", status)
	}
}
