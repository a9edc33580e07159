package deepgram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTranscribe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"metadata": {"duration": 2.5},
			"results": {"channels": [{"alternatives": [
				{"transcript": "I spent twenty dollars on lunch ", "confidence": 0.97},
				{"transcript": "I spend twenty dollars on lunch", "confidence": 0.61}
			]}]}
		}`))
	}))
	defer ts.Close()

	client, err := New(Config{APIKey: "test-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := client.Transcribe(context.Background(), []byte("audio"), TranscribeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected success, got message %q", res.Message)
	}
	if res.Transcript != "I spent twenty dollars on lunch" {
		t.Errorf("unexpected transcript %q", res.Transcript)
	}
	if res.Confidence != 0.97 {
		t.Errorf("unexpected confidence %v", res.Confidence)
	}
	if len(res.Alternatives) != 2 {
		t.Errorf("expected 2 alternatives, got %d", len(res.Alternatives))
	}
	if res.Duration != 2.5 {
		t.Errorf("unexpected duration %v", res.Duration)
	}
}

func TestTranscribeNoSpeech(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": {"channels": []}}`))
	}))
	defer ts.Close()

	client, _ := New(Config{APIKey: "k", APIURL: ts.URL})
	res, err := client.Transcribe(context.Background(), []byte("audio"), TranscribeOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Success {
		t.Error("expected failure for empty channels")
	}
	if res.Message != "No speech detected in audio" {
		t.Errorf("unexpected message %q", res.Message)
	}
}

func TestTranscribeRejections(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantError bool
	}{
		{"unauthorized is recoverable", http.StatusUnauthorized, false},
		{"payment required is recoverable", http.StatusPaymentRequired, false},
		{"rate limited is recoverable", http.StatusTooManyRequests, false},
		{"server error is fatal", http.StatusInternalServerError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer ts.Close()

			client, _ := New(Config{APIKey: "k", APIURL: ts.URL})
			res, err := client.Transcribe(context.Background(), []byte("a"), TranscribeOptions{})
			if tt.wantError {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Success {
				t.Error("expected Success=false")
			}
			if res.Message == "" {
				t.Error("expected a rejection message")
			}
		})
	}
}

func TestValidateAudio(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		mime     string
		size     int64
		wantErr  bool
	}{
		{"valid webm by mime", "clip", "audio/webm", 1024, false},
		{"valid by extension only", "clip.wav", "application/octet-stream", 1024, false},
		{"too large", "clip.mp3", "audio/mp3", MaxAudioBytes + 1, true},
		{"empty", "clip.mp3", "audio/mp3", 0, true},
		{"bad format", "notes.txt", "text/plain", 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAudio(tt.filename, tt.mime, tt.size)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAudio() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
