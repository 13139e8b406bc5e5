package interaction

import (
	"encoding/json"
	"fmt"

	"github.com/samvad-hq/interaction-admin/pkg/httpclient"
)

// Envelope is the response template the interaction backend wraps payloads in.
type Envelope struct {
	Code      int             `json:"code" yaml:"code"`
	Message   string          `json:"message" yaml:"message"`
	Data      json.RawMessage `json:"data,omitempty" yaml:"-"`
	Timestamp string          `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// DecodeEnvelope parses a buffered JSON response.
func DecodeEnvelope(resp httpclient.Response) (*Envelope, error) {
	if resp == nil {
		return nil, fmt.Errorf("response is nil")
	}
	body := resp.Body()
	if len(body) == 0 {
		return nil, fmt.Errorf("response body is empty")
	}
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	return &env, nil
}
