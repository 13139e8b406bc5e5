// Package interaction binds the admin console operations of the interaction
// backend to HTTP requests. Every operation issues exactly one request through
// the injected transport and returns its result untouched.
package interaction

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
)

// ErrUnknownOperation is returned by Invoke for names missing from the table.
var ErrUnknownOperation = errors.New("unknown interaction operation")

// Params is an opaque filter or pagination object sent as query parameters.
type Params = url.Values

// Args carries the arguments of any operation. Each Kind reads only the
// fields it needs.
type Args struct {
	ID     string
	SubID  string
	IDs    []string
	Params Params
	Body   any
	Reason string
	File   *httpclient.FilePart
	Fields map[string]string
}

// Client exposes one method per backend operation.
type Client struct {
	transport httpclient.Client
}

// New wires a Client on top of the given transport.
func New(transport httpclient.Client) *Client {
	return &Client{transport: transport}
}

// Invoke issues the request bound to op. The transport's response and error
// are returned as is.
func (c *Client) Invoke(ctx context.Context, op Operation, args Args) (httpclient.Response, error) {
	b, ok := bindings[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	return c.transport.Do(ctx, b.Request(args))
}

// Request builds the transport request for args.
func (b Binding) Request(args Args) *httpclient.Request {
	req := &httpclient.Request{
		Method: b.Method,
		Path:   expandPath(b.Path, args.ID, args.SubID),
	}

	switch b.Kind {
	case KindQuery:
		req.Query = args.Params
	case KindBody, KindIDBody:
		req.Body = args.Body
	case KindDeleteIDs:
		req.RawQuery = httpclient.RawQuery(repeatedIDs(args.IDs))
	case KindApprove:
		req.Body = approveBody{IDs: nonNil(args.IDs), Reason: args.Reason}
	case KindReject:
		req.Body = rejectBody{IDs: nonNil(args.IDs), Reason: args.Reason}
	case KindMultipart:
		req.File = args.File
	case KindBlob:
		req.Query = args.Params
		req.ResponseType = httpclient.ResponseBlob
	case KindOptionalQuery:
		req.Query = presentFields(b.Fields, args.Fields)
	case KindListQuery:
		q := url.Values{}
		for _, key := range b.Fields {
			q.Set(key, args.Fields[key])
		}
		q.Set(b.ListParam, strings.Join(args.IDs, ","))
		req.Query = q
	}
	return req
}

type approveBody struct {
	IDs    []string `json:"ids"`
	Reason string   `json:"reason,omitempty"`
}

type rejectBody struct {
	IDs    []string `json:"ids"`
	Reason string   `json:"reason"`
}

func expandPath(tmpl, id, subID string) string {
	if !strings.Contains(tmpl, "{") {
		return tmpl
	}
	return strings.NewReplacer(
		"{id}", url.PathEscape(id),
		"{subId}", url.PathEscape(subID),
	).Replace(tmpl)
}

// repeatedIDs renders ids as ids=a&ids=b; an empty list yields "".
func repeatedIDs(ids []string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = "ids=" + url.QueryEscape(id)
	}
	return strings.Join(parts, "&")
}

func presentFields(keys []string, fields map[string]string) url.Values {
	q := url.Values{}
	for _, key := range keys {
		if v := fields[key]; v != "" {
			q.Set(key, v)
		}
	}
	return q
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
