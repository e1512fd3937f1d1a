// internal/gateway/envelope.go
package gateway

import (
	"encoding/json"
	"fmt"
)

// Meta is the pagination block the core API attaches to list responses.
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// Envelope is the uniform response body of the core API. Data stays raw so
// each caller can decode it into its own typed value.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Meta    *Meta           `json:"meta,omitempty"`
}

// Response is what Do returns: the HTTP status plus the decoded envelope.
// Non-2xx statuses are not errors at this layer; callers check Err.
type Response struct {
	StatusCode int
	Envelope
}

// Err returns nil when the upstream reported success, otherwise an
// *UpstreamError carrying the upstream message (or a generic fallback).
func (r *Response) Err() error {
	if r.Success {
		return nil
	}
	msg := r.Message
	if msg == "" {
		msg = "request to the server failed"
	}
	return &UpstreamError{StatusCode: r.StatusCode, Message: msg}
}

// DecodeData unmarshals the envelope's data payload into v. A missing or
// null data field leaves v untouched.
func (r *Response) DecodeData(v any) error {
	if len(r.Data) == 0 || string(r.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// UpstreamError is the normalized error for a core-API call that came back
// with success=false. The message is passed through verbatim so route
// handlers can mirror it to the client.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error (status %d): %s", e.StatusCode, e.Message)
}
