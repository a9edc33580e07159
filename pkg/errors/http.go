package errors

import "fmt"

// HTTPError carries an HTTP status code alongside a user-facing message.
// Delivery-layer mapError funcs translate domain errors into HTTPErrors.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
