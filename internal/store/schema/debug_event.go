package schema

import (
	"time"

	"gorm.io/datatypes"
)

// DebugEvent represents the gateway_debug_events table - an append-only log of inbound gateway callbacks
type DebugEvent struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID is a ULID for time-sortable uniqueness
	EventID string `gorm:"column:event_id;not null;uniqueIndex;type:varchar(26)"`
	// AppID is the application the callback was reported for
	AppID string `gorm:"column:app_id;not null;type:varchar(64)"`
	// EventType is the mapped event type (message, subscription, connection, ...)
	EventType string `gorm:"column:event_type;not null;type:varchar(64)"`
	// Channel is the channel the event happened on
	Channel *string `gorm:"column:channel;type:varchar(255)"`
	// EventName is data.event from the callback
	EventName *string `gorm:"column:event_name;type:varchar(255)"`
	// Payload is the callback data verbatim
	Payload datatypes.JSON `gorm:"column:payload;type:jsonb"`
	// SocketID is the gateway socket id
	SocketID *string `gorm:"column:socket_id;type:varchar(255)"`
	// UserID is data.user_id from the callback
	UserID *string `gorm:"column:user_id;type:varchar(255)"`
	// Timestamp is when the callback was received
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DebugEvent model
func (DebugEvent) TableName() string {
	return "gateway_debug_events"
}
