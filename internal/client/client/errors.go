package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a response the server rejected with a non-2xx status.
type APIError struct {
	StatusCode int
	// Message is the server's structured message, empty if it sent none.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Is makes 401 and 403 responses match ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// TransportError means no HTTP response was received.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrUnavailable }

// parseErrorMessage extracts "message" from an error body. The server sends
// either a string or a list of validation messages.
func parseErrorMessage(body []byte) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Message) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(payload.Message, &s); err == nil {
		return s
	}

	var list []string
	if err := json.Unmarshal(payload.Message, &list); err == nil {
		return strings.Join(list, "; ")
	}
	return ""
}
