package schema

import (
	"time"

	"gorm.io/datatypes"
)

// WebhookStatus is the delivery state of a webhook record
type WebhookStatus string

const (
	// WebhookStatusPending is waiting for a delivery attempt
	WebhookStatusPending WebhookStatus = "pending"
	// WebhookStatusSent was delivered successfully; terminal
	WebhookStatusSent WebhookStatus = "sent"
	// WebhookStatusFailed failed its last attempt and may be retried
	WebhookStatusFailed WebhookStatus = "failed"
)

// WebhookRecord represents the gateway_webhooks table - one outbound webhook and its delivery state
type WebhookRecord struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AppID is the owning application's external id
	AppID string `gorm:"column:app_id;not null;index;type:varchar(64)"`
	// EventName is the gateway event that produced this webhook
	EventName string `gorm:"column:event_name;not null;type:varchar(255)"`
	// WebhookURL is the delivery target
	WebhookURL string `gorm:"column:webhook_url;not null;type:text"`
	// Payload is the JSON body to deliver
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// Headers are merged over the default delivery headers
	Headers datatypes.JSONType[map[string]string] `gorm:"column:headers;type:jsonb"`
	// Status is one of pending, sent or failed
	Status WebhookStatus `gorm:"column:status;not null;default:pending;type:varchar(16)"`
	// Attempts counts completed delivery attempts; never decreases
	Attempts int `gorm:"column:attempts;not null;default:0"`
	// ResponseStatus is the last HTTP status code (0 when no response was received)
	ResponseStatus *int `gorm:"column:response_status"`
	// ResponseBody is the last response body or transport error message (limited to 4KB)
	ResponseBody *string `gorm:"column:response_body;type:text"`
	// SentAt is when the record reached the sent state
	SentAt *time.Time `gorm:"column:sent_at;type:timestamptz"`
	// NextRetryAt is set only while the record is failed
	NextRetryAt *time.Time `gorm:"column:next_retry_at;type:timestamptz"`
	// Version is the optimistic lock token, bumped on every state save
	Version int `gorm:"column:version;not null;default:0"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WebhookRecord model
func (WebhookRecord) TableName() string {
	return "gateway_webhooks"
}
