package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Error is returned for any non-2xx response or network-level failure.
// StatusCode is zero when no response was received.
type Error struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// errorBody is the JSON shape the backend uses for failures.
type errorBody struct {
	Error string `json:"error"`
}

// statusError builds an Error for a non-2xx response. The message prefers the
// backend's own error text and falls back to the status text.
func statusError(method, url string, status int, body []byte) *Error {
	msg := http.StatusText(status)
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && strings.TrimSpace(eb.Error) != "" {
		msg = eb.Error
	}
	if msg == "" {
		msg = fmt.Sprintf("unexpected status %d", status)
	}
	return &Error{Method: method, URL: url, StatusCode: status, Message: msg}
}
