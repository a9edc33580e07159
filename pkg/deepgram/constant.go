package deepgram

import "time"

const (
	// DefaultModel is the default transcription model
	DefaultModel = "nova-2"

	// DefaultAPIURL is the default Deepgram API endpoint
	DefaultAPIURL = "https://api.deepgram.com"

	// DefaultLanguage is the default transcription language
	DefaultLanguage = "en-US"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// MaxAudioBytes is the largest accepted audio upload (25 MB).
	MaxAudioBytes = 25 * 1024 * 1024
)
