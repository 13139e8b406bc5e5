package publishers

import (
	"time"

	"github.com/google/uuid"
	"github.com/samvad-hq/interaction-admin/internal/domain"
)

// Event is the audit payload published for each mutating admin operation.
type Event struct {
	ID          string                 `json:"id"`
	Source      string                 `json:"source"`
	Record      domain.OperationRecord `json:"record"`
	PublishedAt time.Time              `json:"published_at"`
}

// NewEvent wraps rec in an audit event emitted by source.
func NewEvent(source string, rec domain.OperationRecord) Event {
	return Event{
		ID:          uuid.NewString(),
		Source:      source,
		Record:      rec,
		PublishedAt: time.Now().UTC(),
	}
}

// attributes are mirrored into broker message attributes for routing.
func (e Event) attributes() map[string]string {
	return map[string]string{
		"operation": e.Record.Operation,
		"method":    e.Record.Method,
		"source":    e.Source,
	}
}
