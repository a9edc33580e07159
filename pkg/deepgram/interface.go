package deepgram

import "context"

// IDeepgram defines the interface for the Deepgram speech-to-text client.
// Implementations are safe for concurrent use.
type IDeepgram interface {
	// Transcribe sends prerecorded audio for transcription.
	Transcribe(ctx context.Context, audio []byte, opts TranscribeOptions) (*TranscribeResult, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Deepgram client with the given configuration
func New(cfg Config) (IDeepgram, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newDeepgramImpl(cfg), nil
}

// SupportedLanguages lists the languages accepted for transcription.
func SupportedLanguages() []Language {
	return []Language{
		{Code: "en-US", Name: "English (US)"},
		{Code: "en-GB", Name: "English (UK)"},
		{Code: "en-AU", Name: "English (Australia)"},
		{Code: "es-ES", Name: "Spanish (Spain)"},
		{Code: "es-MX", Name: "Spanish (Mexico)"},
		{Code: "fr-FR", Name: "French (France)"},
		{Code: "de-DE", Name: "German (Germany)"},
		{Code: "it-IT", Name: "Italian (Italy)"},
		{Code: "pt-BR", Name: "Portuguese (Brazil)"},
		{Code: "ru-RU", Name: "Russian (Russia)"},
		{Code: "ja-JP", Name: "Japanese (Japan)"},
		{Code: "ko-KR", Name: "Korean (South Korea)"},
		{Code: "zh-CN", Name: "Chinese (Mandarin, Simplified)"},
		{Code: "hi-IN", Name: "Hindi (India)"},
		{Code: "nl-NL", Name: "Dutch (Netherlands)"},
		{Code: "sv-SE", Name: "Swedish (Sweden)"},
		{Code: "pl-PL", Name: "Polish (Poland)"},
		{Code: "tr-TR", Name: "Turkish (Turkey)"},
		{Code: "uk-UA", Name: "Ukrainian (Ukraine)"},
	}
}
