package httpclient

import (
	"errors"
	"fmt"
	"strings"
)

const maxSnippetBytes = 512

// StatusError indicates that the server answered with a status >= 400.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	// Snippet holds at most the first 512 bytes of the response body.
	Snippet string
}

func newStatusError(method, path string, status int, body []byte) *StatusError {
	return &StatusError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Snippet:    readBodySnippet(body),
	}
}

// Error implements error.
func (e *StatusError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("%s %s: http response status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: http response status %d: %s", e.Method, e.Path, e.StatusCode, e.Snippet)
}

// StatusCodeOf returns the HTTP status carried by err, or 0.
func StatusCodeOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

func readBodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > maxSnippetBytes {
		body = body[:maxSnippetBytes]
	}
	return strings.TrimSpace(string(body))
}
