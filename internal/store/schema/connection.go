package schema

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

// Connection represents the gateway_connections table.
// It mirrors gateway activity and is not authoritative.
type Connection struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ConnectionID uniquely identifies the connection ("<app_id>:<socket_id>")
	ConnectionID string `gorm:"column:connection_id;not null;uniqueIndex;type:varchar(255)"`
	// AppID is the owning application's external id
	AppID string `gorm:"column:app_id;not null;index;type:varchar(64)"`
	// SocketID is the gateway socket id
	SocketID string `gorm:"column:socket_id;not null;type:varchar(255)"`
	// ChannelName is the channel the socket subscribed to, if any
	ChannelName *string `gorm:"column:channel_name;type:varchar(255)"`
	// UserData is the client-supplied user data blob
	UserData datatypes.JSON `gorm:"column:user_data;type:jsonb"`
	// IPAddress is the remote address reported by the gateway
	IPAddress *string `gorm:"column:ip_address;type:varchar(64)"`
	// UserAgent is the client user agent reported by the gateway
	UserAgent *string `gorm:"column:user_agent;type:text"`
	// IsConnected is true while the socket is open
	IsConnected bool `gorm:"column:is_connected;not null"`
	// ConnectedAt is when the socket connected
	ConnectedAt *time.Time `gorm:"column:connected_at;type:timestamptz"`
	// DisconnectedAt is set only when IsConnected transitions to false
	DisconnectedAt *time.Time `gorm:"column:disconnected_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Connection model
func (Connection) TableName() string {
	return "gateway_connections"
}

// Duration returns how long the connection lasted, or has lasted so far.
// The second return value is false when the connection time is unknown.
func (c *Connection) Duration(now time.Time) (time.Duration, bool) {
	if c.ConnectedAt == nil {
		return 0, false
	}
	end := now
	if c.DisconnectedAt != nil {
		end = *c.DisconnectedAt
	}
	return end.Sub(*c.ConnectedAt), true
}

// FormatDuration renders a connection duration as "Ns", "X.Ym" or "X.Yh"
func (c *Connection) FormatDuration(now time.Time) string {
	d, ok := c.Duration(now)
	if !ok {
		return "Unknown"
	}

	seconds := int64(d.Seconds())
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%.1fm", float64(seconds)/60)
	default:
		return fmt.Sprintf("%.1fh", float64(seconds)/3600)
	}
}
