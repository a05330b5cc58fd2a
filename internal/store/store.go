package store

import (
	"context"
	"time"

	"github.com/feral-file/gateway-console/internal/store/schema"
)

// ApplicationFilter narrows ListApplications
type ApplicationFilter struct {
	// ActiveOnly restricts the result to applications with is_active = true
	ActiveOnly bool
}

// ApplicationCounts summarises the registry for the dashboard
type ApplicationCounts struct {
	Total  int64
	Active int64
	// ActiveCapacity is the sum of max_connections over active applications with a positive limit
	ActiveCapacity int64
	// LimitedActive is the number of active applications with a positive max_connections
	LimitedActive int64
}

// DeleteApplicationResult reports the dependent rows removed together with an application
type DeleteApplicationResult struct {
	Connections int64 `json:"connections"`
	Webhooks    int64 `json:"webhooks"`
	DebugEvents int64 `json:"debug_events"`
}

// ConnectionFilter narrows ListConnections
type ConnectionFilter struct {
	AppID         string
	ConnectedOnly bool
	Limit         int
	Offset        int
}

// WebhookRecordFilter narrows ListWebhookRecords
type WebhookRecordFilter struct {
	AppID  string
	Status *schema.WebhookStatus
	// ReadyForRetry restricts the result to records eligible for retry at RetryAt
	ReadyForRetry bool
	RetryAt       time.Time
	Limit         int
	Offset        int
}

// DebugEventFilter narrows ListDebugEvents
type DebugEventFilter struct {
	AppID     string
	EventType string
	Limit     int
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// =========================================================================
	// Applications
	// =========================================================================

	// CreateApplication inserts a new application. Returns domain.ErrDuplicateIdentifier
	// when app_id, app_key or app_secret collides with any existing row (soft-deleted included).
	CreateApplication(ctx context.Context, app *schema.Application) error
	// UpdateApplication persists the mutable columns of an existing application
	UpdateApplication(ctx context.Context, app *schema.Application) error
	// GetApplicationByAppID returns nil when no live application has the given app_id
	GetApplicationByAppID(ctx context.Context, appID string) (*schema.Application, error)
	// GetDeletedApplicationByAppID returns nil when no soft-deleted application has the given app_id
	GetDeletedApplicationByAppID(ctx context.Context, appID string) (*schema.Application, error)
	// ListApplications returns live applications ordered by app_id
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]schema.Application, error)
	// IdentifierExists reports whether any row, soft-deleted included, uses the value for the field
	IdentifierExists(ctx context.Context, field schema.IdentifierField, value string) (bool, error)
	// DeleteApplication removes an application and its connections, webhooks and debug events.
	// A soft delete keeps the application row with deleted_at set.
	DeleteApplication(ctx context.Context, appID string, hard bool) (*DeleteApplicationResult, error)
	// RestoreApplication clears deleted_at on a soft-deleted application
	RestoreApplication(ctx context.Context, appID string) (*schema.Application, error)
	// GetApplicationCounts aggregates registry totals
	GetApplicationCounts(ctx context.Context) (*ApplicationCounts, error)

	// =========================================================================
	// Connections
	// =========================================================================

	// CountConnectedByAppID counts connections of an application with is_connected = true
	CountConnectedByAppID(ctx context.Context, appID string) (int64, error)
	// CountConnected counts all connections with is_connected = true
	CountConnected(ctx context.Context) (int64, error)
	// UpsertConnection creates or reconnects a connection keyed by connection_id
	UpsertConnection(ctx context.Context, conn *schema.Connection) error
	// MarkConnectionDisconnected flips a connected row to disconnected. Returns false when
	// no connected row with the id exists.
	MarkConnectionDisconnected(ctx context.Context, connectionID string, at time.Time) (bool, error)
	// ListConnections returns connections newest first
	ListConnections(ctx context.Context, filter ConnectionFilter) ([]schema.Connection, error)

	// =========================================================================
	// Webhook records
	// =========================================================================

	// CreateWebhookRecord inserts a new pending record
	CreateWebhookRecord(ctx context.Context, rec *schema.WebhookRecord) error
	// GetWebhookRecordByID returns nil when the record does not exist
	GetWebhookRecordByID(ctx context.Context, id uint64) (*schema.WebhookRecord, error)
	// GetWebhookRecordsByIDs returns the existing records among ids, ordered by id
	GetWebhookRecordsByIDs(ctx context.Context, ids []uint64) ([]schema.WebhookRecord, error)
	// ListWebhookRecords returns records newest first with the total matching count
	ListWebhookRecords(ctx context.Context, filter WebhookRecordFilter) ([]schema.WebhookRecord, int64, error)
	// ListPendingWebhookRecords returns pending records oldest first
	ListPendingWebhookRecords(ctx context.Context, limit int) ([]schema.WebhookRecord, error)
	// ListRetryableWebhookRecords returns failed records below the attempt limit whose
	// next_retry_at is unset or not after now, oldest first
	ListRetryableWebhookRecords(ctx context.Context, now time.Time, limit int) ([]schema.WebhookRecord, error)
	// SaveWebhookRecordState persists the delivery state of a record guarded by its version.
	// Returns domain.ErrConcurrentUpdate when the stored version differs.
	SaveWebhookRecordState(ctx context.Context, rec *schema.WebhookRecord) error
	// DeleteWebhookRecordsCreatedBefore removes records created before cutoff regardless of status
	DeleteWebhookRecordsCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	// CountWebhookRecordsByStatus returns per-status record counts
	CountWebhookRecordsByStatus(ctx context.Context) (map[schema.WebhookStatus]int64, error)

	// =========================================================================
	// Debug events
	// =========================================================================

	// CreateDebugEvent appends a debug event
	CreateDebugEvent(ctx context.Context, event *schema.DebugEvent) error
	// ListDebugEvents returns events newest first
	ListDebugEvents(ctx context.Context, filter DebugEventFilter) ([]schema.DebugEvent, error)
}
