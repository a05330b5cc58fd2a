package schema

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IdentifierField names a globally unique application credential column
type IdentifierField string

const (
	IdentifierFieldAppID     IdentifierField = "app_id"
	IdentifierFieldAppKey    IdentifierField = "app_key"
	IdentifierFieldAppSecret IdentifierField = "app_secret"
)

// WebhookTarget is a single configured webhook destination
type WebhookTarget struct {
	URL string `json:"url"`
}

// Application represents the gateway_apps table - one tenant registered against the gateway
type Application struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AppID is the external application id written to the gateway config (e.g. "app-x1y2z3w4")
	AppID string `gorm:"column:app_id;not null;uniqueIndex;type:varchar(64)"`
	// AppKey is the public key clients connect with
	AppKey string `gorm:"column:app_key;not null;uniqueIndex;type:varchar(64)"`
	// AppSecret signs server API calls and webhooks; written once at creation
	AppSecret string `gorm:"column:app_secret;not null;uniqueIndex;type:varchar(128)"`
	// Name is the operator-facing display name
	Name string `gorm:"column:name;not null;type:varchar(255)"`
	// Description is free text
	Description string `gorm:"column:description;type:text"`

	// MaxConnections caps concurrent connections (0 = unlimited)
	MaxConnections int `gorm:"column:max_connections;not null"`
	// MaxBackendEventsPerSec caps server API events per second (0 = unlimited)
	MaxBackendEventsPerSec int `gorm:"column:max_backend_events_per_sec;not null"`
	// MaxClientEventsPerSec caps client events per second (0 = unlimited)
	MaxClientEventsPerSec int `gorm:"column:max_client_events_per_sec;not null"`
	// MaxReadRequestsPerSec caps server API read requests per second (0 = unlimited)
	MaxReadRequestsPerSec int `gorm:"column:max_read_requests_per_sec;not null"`
	// MaxPresenceMembersPerChannel caps presence channel members (0 = unlimited)
	MaxPresenceMembersPerChannel int `gorm:"column:max_presence_members_per_channel;not null"`
	// MaxPresenceMemberSizeKB caps the size of a presence member's user info
	MaxPresenceMemberSizeKB int `gorm:"column:max_presence_member_size_kb;not null"`
	// MaxChannelNameLength caps channel name length
	MaxChannelNameLength int `gorm:"column:max_channel_name_length;not null"`
	// MaxEventPayloadKB caps a single event payload size
	MaxEventPayloadKB int `gorm:"column:max_event_payload_kb;not null"`
	// MaxEventBatchSize caps the number of events in a batch trigger
	MaxEventBatchSize int `gorm:"column:max_event_batch_size;not null"`

	// EnableClientMessages allows client-to-client messaging
	EnableClientMessages bool `gorm:"column:enable_client_messages;not null"`
	// EnableStatistics enables gateway statistics collection
	EnableStatistics bool `gorm:"column:enable_statistics;not null"`
	// EnableUserAuthentication requires user authentication on connect
	EnableUserAuthentication bool `gorm:"column:enable_user_authentication;not null"`
	// EnableWebhooks turns on the webhook block in the gateway config
	EnableWebhooks bool `gorm:"column:enable_webhooks;not null"`

	// WebhookURLs is the ordered list of webhook destinations
	WebhookURLs datatypes.JSONType[[]WebhookTarget] `gorm:"column:webhook_urls;type:jsonb"`
	// WebhookHeaders is sent with every webhook of this application
	WebhookHeaders datatypes.JSONType[map[string]string] `gorm:"column:webhook_headers;type:jsonb"`
	// WebhookEvents is the set of subscribed event names
	WebhookEvents datatypes.JSONType[[]string] `gorm:"column:webhook_events;type:jsonb"`

	// IsActive controls whether the application is written to the gateway config
	IsActive bool `gorm:"column:is_active;not null"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
	// DeletedAt marks a soft-deleted application
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index;type:timestamptz"`
}

// TableName specifies the table name for the Application model
func (Application) TableName() string {
	return "gateway_apps"
}

// Targets returns the configured webhook destinations
func (a *Application) Targets() []WebhookTarget {
	return a.WebhookURLs.Data()
}

// Headers returns the configured webhook headers, never nil
func (a *Application) Headers() map[string]string {
	h := a.WebhookHeaders.Data()
	if h == nil {
		return map[string]string{}
	}
	return h
}

// Events returns the subscribed webhook events
func (a *Application) Events() []string {
	return a.WebhookEvents.Data()
}

// Redacted returns a copy of the application without its secret
func (a *Application) Redacted() *Application {
	c := *a
	c.AppSecret = ""
	return &c
}
