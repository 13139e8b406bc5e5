package domain

import "time"

// OperationRecord describes one admin operation issued against the backend.
type OperationRecord struct {
	ID         string    `json:"id" yaml:"id"`
	Operation  string    `json:"operation" yaml:"operation"`
	Method     string    `json:"method" yaml:"method"`
	Path       string    `json:"path" yaml:"path"`
	StatusCode int       `json:"status_code" yaml:"status_code"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
	ElapsedMS  int64     `json:"elapsed_ms" yaml:"elapsed_ms"`
	IssuedAt   time.Time `json:"issued_at" yaml:"issued_at"`
}

// Succeeded reports whether the backend accepted the operation.
func (r OperationRecord) Succeeded() bool {
	return r.Error == "" && r.StatusCode > 0 && r.StatusCode < 400
}
