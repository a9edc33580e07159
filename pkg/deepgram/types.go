package deepgram

import (
	"errors"
	"net/http"
)

// Config holds the Deepgram client configuration.
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	HTTPClient *http.Client
}

// Validate checks required fields and applies defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("deepgram: API key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// TranscribeOptions tunes a single transcription request.
type TranscribeOptions struct {
	Language string // defaults to DefaultLanguage
	Model    string // defaults to the client model
	MimeType string // Content-Type of the audio payload
}

// Alternative is one candidate transcript.
type Alternative struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}

// TranscribeResult is the outcome of a transcription attempt. Success=false
// with a Message covers both "no speech detected" and recoverable API
// rejections; transport failures are returned as errors instead.
type TranscribeResult struct {
	Success      bool          `json:"success"`
	Transcript   string        `json:"transcript"`
	Confidence   float64       `json:"confidence"`
	Alternatives []Alternative `json:"alternatives,omitempty"`
	Message      string        `json:"message,omitempty"`
	Duration     float64       `json:"duration,omitempty"`
	Model        string        `json:"model,omitempty"`
	Language     string        `json:"language,omitempty"`
}

// Language is a supported transcription language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// --- wire types ---

type listenResponse struct {
	Metadata struct {
		Duration float64 `json:"duration"`
	} `json:"metadata"`
	Results struct {
		Channels []struct {
			Alternatives []Alternative `json:"alternatives"`
		} `json:"channels"`
	} `json:"results"`
}
