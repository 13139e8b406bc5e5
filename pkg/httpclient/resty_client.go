package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID carries the per-call correlation id.
	HeaderRequestID = "X-Request-ID"

	contentTypeJSON = "application/json"
	acceptBlob      = "*/*"
)

// Options configures a RestyClient.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Headers map[string]string
	Logger  Logger
}

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
	log    Logger
}

// NewRestyClient creates a new RestyClient for the given base URL and options.
func NewRestyClient(opts Options) *RestyClient {
	c := newRestyBaseClient(opts.Timeout)
	if opts.BaseURL != "" {
		c.SetBaseURL(opts.BaseURL)
	}
	if len(opts.Headers) > 0 {
		c.SetHeaders(opts.Headers)
	}
	log := opts.Logger
	if log == nil {
		log = noopLogger{}
	}
	return &RestyClient{client: c, log: log}
}

// NewRestyHTTPClient exposes a configured resty.Client for callers needing custom verbs.
func NewRestyHTTPClient(timeout time.Duration) *resty.Client {
	return newRestyBaseClient(timeout)
}

// newRestyBaseClient creates a new resty.Client with the specified timeout.
func newRestyBaseClient(timeout time.Duration) *resty.Client {
	c := resty.New()
	c.SetTimeout(timeout)
	return c
}

// Do performs the described request. Non-2xx responses are returned together
// with a *StatusError so callers can still inspect the response.
func (r *RestyClient) Do(ctx context.Context, in *Request) (Response, error) {
	if in == nil {
		return nil, fmt.Errorf("http request is nil")
	}
	requestID := uuid.NewString()
	req := r.client.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, requestID)

	if len(in.Headers) > 0 {
		req.SetHeaders(in.Headers)
	}
	if len(in.Query) > 0 && in.RawQuery == nil {
		req.SetQueryParamsFromValues(in.Query)
	}
	switch {
	case in.File != nil:
		req.SetFileReader(in.File.Field, in.File.FileName, in.File.Reader)
	case in.Body != nil:
		req.SetHeader("Content-Type", contentTypeJSON).SetBody(in.Body)
	}
	if in.ResponseType == ResponseBlob {
		req.SetHeader("Accept", acceptBlob).SetDoNotParseResponse(true)
	} else {
		req.SetHeader("Accept", contentTypeJSON)
	}

	target := in.Path
	if in.RawQuery != nil {
		target += "?" + *in.RawQuery
	}

	start := time.Now()
	resp, err := req.Execute(in.Method, target)
	if err != nil {
		r.log.WarnObj("http request failed", "http_call", map[string]any{
			"method":     in.Method,
			"path":       in.Path,
			"request_id": requestID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("http request: %w", err)
	}

	r.log.DebugObj("http request completed", "http_call", map[string]any{
		"method":     in.Method,
		"path":       in.Path,
		"status":     resp.StatusCode(),
		"request_id": requestID,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	adapted := &restyResponseAdapter{resp: resp, blob: in.ResponseType == ResponseBlob}
	if resp.IsError() {
		return adapted, newStatusError(in.Method, in.Path, resp.StatusCode(), adapted.drainSnippet())
	}
	return adapted, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
	blob bool
}

func (r *restyResponseAdapter) StatusCode() int     { return r.resp.StatusCode() }
func (r *restyResponseAdapter) Header() http.Header { return r.resp.Header() }

func (r *restyResponseAdapter) Body() []byte {
	if r.blob {
		return nil
	}
	return r.resp.Body()
}

func (r *restyResponseAdapter) RawBody() io.ReadCloser {
	if r.blob {
		if raw := r.resp.RawBody(); raw != nil {
			return raw
		}
	}
	return io.NopCloser(bytes.NewReader(r.resp.Body()))
}

// drainSnippet reads the head of an error body. Blob bodies are consumed and closed.
func (r *restyResponseAdapter) drainSnippet() []byte {
	if !r.blob {
		return r.resp.Body()
	}
	raw := r.resp.RawBody()
	if raw == nil {
		return nil
	}
	defer raw.Close()
	snippet, _ := io.ReadAll(io.LimitReader(raw, maxSnippetBytes))
	return snippet
}
