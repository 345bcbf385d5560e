package client

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
)

// APIError is a failed call: a non-2xx response, or Status 0 when no
// response arrived at all.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("orders api: %d: %s", e.Status, e.Message)
}

// Message returns the text to show the user for err.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

type errorBody struct {
	Message string `json:"message"`
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func plainText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.Join(strings.Fields(html.UnescapeString(textPolicy.Sanitize(raw))), " ")
}

// errorFromResponse builds an APIError out of a failed response body. The
// JSON message field wins; otherwise the body text, otherwise the status.
func errorFromResponse(status int, body []byte) *APIError {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		return &APIError{Status: status, Message: eb.Message}
	}
	if text := plainText(string(body)); text != "" {
		return &APIError{Status: status, Message: text}
	}
	return &APIError{Status: status, Message: http.StatusText(status)}
}
