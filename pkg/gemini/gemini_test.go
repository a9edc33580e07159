package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing API key")
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		cfg := Config{APIKey: "k"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("expected default model, got %q", cfg.Model)
		}
		if cfg.APIURL != DefaultAPIURL {
			t.Errorf("expected default API URL, got %q", cfg.APIURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("expected default HTTP client")
		}
	})
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`))
	}))
	defer ts.Close()

	client, err := New(Config{APIKey: "test-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &GenerateRequest{
		Contents: []Content{{Parts: []Part{{Text: "hi"}}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "hello" {
		t.Errorf("expected %q, got %q", "hello", resp.Text())
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client, _ := New(Config{APIKey: "k", APIURL: ts.URL})
	if _, err := client.GenerateContent(context.Background(), &GenerateRequest{}); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestResponseText(t *testing.T) {
	empty := &GenerateResponse{}
	if empty.Text() != "" {
		t.Errorf("expected empty text, got %q", empty.Text())
	}
}
