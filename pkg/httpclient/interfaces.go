package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// ResponseType tells the transport how the caller expects to consume the body.
type ResponseType int

const (
	// ResponseJSON buffers the body so callers can decode it.
	ResponseJSON ResponseType = iota
	// ResponseBlob streams the body untouched; read it through RawBody.
	ResponseBlob
)

// FilePart is a single multipart form file.
type FilePart struct {
	Field    string
	FileName string
	Reader   io.Reader
}

// Request describes one HTTP call relative to the client's base URL.
//
// Query and RawQuery are exclusive: when RawQuery is set it is appended to the
// path verbatim (including the empty string, which yields a trailing "?").
type Request struct {
	Method       string
	Path         string
	Query        url.Values
	RawQuery     *string
	Body         any
	File         *FilePart
	Headers      map[string]string
	ResponseType ResponseType
}

// Response is a minimal HTTP response contract.
type Response interface {
	StatusCode() int
	Header() http.Header
	// Body returns the buffered body. It is nil for blob responses.
	Body() []byte
	// RawBody returns a reader over the body. Callers must close it.
	RawBody() io.ReadCloser
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Do(ctx context.Context, req *Request) (Response, error)
}

// Logger defines the logging surface the transport relies on.
type Logger interface {
	DebugObj(msg, key string, obj interface{})
	WarnObj(msg, key string, obj interface{})
}

type noopLogger struct{}

func (noopLogger) DebugObj(string, string, interface{}) {}
func (noopLogger) WarnObj(string, string, interface{})  {}

// RawQuery is a helper for building the optional raw query of a Request.
func RawQuery(q string) *string { return &q }
