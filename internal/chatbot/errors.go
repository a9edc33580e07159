package chatbot

import "errors"

var (
	ErrEmptyMessage      = errors.New("message is required")
	ErrSpeechUnavailable = errors.New("speech service is not configured")
)
