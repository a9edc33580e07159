package http

import (
	"expense-tracker/internal/chatbot"
	pkgErrors "expense-tracker/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case chatbot.ErrEmptyMessage:
		return pkgErrors.NewHTTPError(400, "message is required")
	case chatbot.ErrSpeechUnavailable:
		return pkgErrors.NewHTTPError(503, "speech service is not available")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
