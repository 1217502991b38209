package todosdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a failed call: either a non-success HTTP status or an envelope
// with result=false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("todo api: %d %s", e.StatusCode, e.Message)
}

// Is matches errors with the same status code and message, so callers can
// compare against an expected APIError with errors.Is.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.StatusCode == e.StatusCode && t.Message == e.Message
}

// IsUnauthorized reports whether the session token was rejected.
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// Contains is a convenience for matching on the envelope message.
func (e *APIError) Contains(substr string) bool {
	return strings.Contains(e.Message, substr)
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	var env Response[json.RawMessage]
	if err := json.Unmarshal(body, &env); err != nil || env.Message == "" {
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
}
