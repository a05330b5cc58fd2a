package webhook

import (
	"encoding/json"
	"time"

	"github.com/feral-file/gateway-console/internal/store/schema"
)

// Config holds the delivery engine settings
type Config struct {
	// DeliveryTimeout bounds a single HTTP delivery
	DeliveryTimeout time.Duration
	// UserAgent is sent unless the record overrides it
	UserAgent string
	// PersistRetries is how many times a failed state save is retried
	PersistRetries uint64
}

// CreateInput describes a webhook record to create
type CreateInput struct {
	AppID      string
	EventName  string
	WebhookURL string
	// Payload must be a JSON document; empty means {}
	Payload json.RawMessage
	Headers map[string]string
}

// DeliveryResult represents the result of a webhook delivery attempt
type DeliveryResult struct {
	// Success indicates whether the delivery was successful
	Success bool
	// StatusCode is the HTTP status code returned by the webhook endpoint (0 when no response was received)
	StatusCode int
	// Body is the response body (limited to 4KB)
	Body string
	// Error contains the transport error if no response was received
	Error string
	// Duration is how long the request took
	Duration time.Duration
}

// TestStatus is the outcome reported by a test send
type TestStatus string

const (
	TestStatusSuccess TestStatus = "success"
	TestStatusError   TestStatus = "error"
)

// TestResult is returned by an interactive test send
type TestResult struct {
	Status         TestStatus `json:"status"`
	Message        string     `json:"message"`
	ResponseStatus int        `json:"response_status"`
	ResponseBody   string     `json:"response_body"`
	ResponseTimeMS float64    `json:"response_time_ms"`
	// Recorded is false when the record was already sent and the outcome was not stored
	Recorded bool `json:"recorded"`
}

// SweepResult reports a bulk retry
type SweepResult struct {
	// Requeued records were moved back to pending
	Requeued []uint64 `json:"requeued"`
	// Skipped records were not eligible for retry or lost a concurrent update
	Skipped []uint64 `json:"skipped"`
}

// MarkSentResult reports a manual mark-as-sent
type MarkSentResult struct {
	Updated []*schema.WebhookRecord `json:"updated"`
	// AlreadySent lists ids that were already in the sent state
	AlreadySent []uint64 `json:"already_sent"`
	// NotFound lists ids without a record
	NotFound []uint64 `json:"not_found"`
}
