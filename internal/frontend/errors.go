package frontend

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyExpression = errors.New("empty expression")
	ErrTransport       = errors.New("transport error")
)

// APIError is a non-2xx answer from the calculator. Message is the response
// body as the server sent it.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return e.Message
}
