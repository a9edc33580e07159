package deepgram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type deepgramImpl struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// newDeepgramImpl creates a new Deepgram implementation
func newDeepgramImpl(cfg Config) *deepgramImpl {
	return &deepgramImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     cfg.APIURL,
		httpClient: cfg.HTTPClient,
	}
}

// Transcribe sends prerecorded audio to the listen endpoint.
func (d *deepgramImpl) Transcribe(ctx context.Context, audio []byte, opts TranscribeOptions) (*TranscribeResult, error) {
	model := opts.Model
	if model == "" {
		model = d.model
	}
	language := opts.Language
	if language == "" {
		language = DefaultLanguage
	}

	q := url.Values{}
	q.Set("model", model)
	q.Set("language", language)
	q.Set("smart_format", "true")
	q.Set("punctuate", "true")

	endpoint := fmt.Sprintf("%s/v1/listen?%s", d.apiURL, q.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(audio))
	if err != nil {
		return nil, fmt.Errorf("deepgram: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Token "+d.apiKey)
	if opts.MimeType != "" {
		httpReq.Header.Set("Content-Type", opts.MimeType)
	} else {
		httpReq.Header.Set("Content-Type", "application/octet-stream")
	}

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("deepgram: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		if msg, recoverable := rejectionMessage(resp.StatusCode); recoverable {
			return &TranscribeResult{Success: false, Message: msg}, nil
		}
		return nil, fmt.Errorf("deepgram: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result listenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("deepgram: failed to decode response: %w", err)
	}

	if len(result.Results.Channels) == 0 || len(result.Results.Channels[0].Alternatives) == 0 {
		return &TranscribeResult{Success: false, Message: "No speech detected in audio"}, nil
	}

	alts := result.Results.Channels[0].Alternatives
	primary := alts[0]
	if strings.TrimSpace(primary.Transcript) == "" {
		return &TranscribeResult{Success: false, Message: "No speech detected in audio"}, nil
	}

	capped := alts
	if len(capped) > 3 {
		capped = capped[:3]
	}

	return &TranscribeResult{
		Success:      true,
		Transcript:   strings.TrimSpace(primary.Transcript),
		Confidence:   primary.Confidence,
		Alternatives: capped,
		Duration:     result.Metadata.Duration,
		Model:        model,
		Language:     language,
	}, nil
}

// Model returns the model being used
func (d *deepgramImpl) Model() string {
	return d.model
}

// rejectionMessage maps API rejections the user can act on to friendly
// messages. Anything else is treated as a transport failure.
func rejectionMessage(status int) (string, bool) {
	switch status {
	case http.StatusUnauthorized:
		return "Invalid API key. Please check your Deepgram credentials.", true
	case http.StatusPaymentRequired:
		return "Insufficient credits. Please check your Deepgram account balance.", true
	case http.StatusTooManyRequests:
		return "Rate limit exceeded. Please try again later.", true
	}
	return "", false
}
