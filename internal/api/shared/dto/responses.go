package dto

import (
	"encoding/json"
	"time"

	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/gatewayconfig"
	"github.com/feral-file/gateway-console/internal/metrics"
	"github.com/feral-file/gateway-console/internal/stats"
	"github.com/feral-file/gateway-console/internal/store"
	"github.com/feral-file/gateway-console/internal/store/schema"
	"github.com/feral-file/gateway-console/internal/webhook"
)

// WebhookSettingsResponse is the webhook block of an application
type WebhookSettingsResponse struct {
	Enabled bool              `json:"enabled"`
	URLs    []string          `json:"urls"`
	Headers map[string]string `json:"headers"`
	Events  []string          `json:"events"`
}

// ApplicationResponse represents an application.
// AppSecret is only populated in the response to a create.
type ApplicationResponse struct {
	ID        uint64 `json:"id"`
	AppID     string `json:"app_id"`
	AppKey    string `json:"app_key"`
	AppSecret string `json:"app_secret,omitempty"`

	Name        string `json:"name"`
	Description string `json:"description"`

	MaxConnections               int `json:"max_connections"`
	MaxBackendEventsPerSec       int `json:"max_backend_events_per_sec"`
	MaxClientEventsPerSec        int `json:"max_client_events_per_sec"`
	MaxReadRequestsPerSec        int `json:"max_read_requests_per_sec"`
	MaxPresenceMembersPerChannel int `json:"max_presence_members_per_channel"`
	MaxPresenceMemberSizeKB      int `json:"max_presence_member_size_kb"`
	MaxChannelNameLength         int `json:"max_channel_name_length"`
	MaxEventPayloadKB            int `json:"max_event_payload_kb"`
	MaxEventBatchSize            int `json:"max_event_batch_size"`

	EnableClientMessages     bool                    `json:"enable_client_messages"`
	EnableStatistics         bool                    `json:"enable_statistics"`
	EnableUserAuthentication bool                    `json:"enable_user_authentication"`
	Webhooks                 WebhookSettingsResponse `json:"webhooks"`

	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplicationDetailResponse is an application with its observed connection state
type ApplicationDetailResponse struct {
	ApplicationResponse
	ConnectionCount int64                    `json:"connection_count"`
	Status          domain.ApplicationStatus `json:"status"`
}

// ApplicationMutationResponse is returned by every application write
type ApplicationMutationResponse struct {
	Application *ApplicationResponse           `json:"application,omitempty"`
	Removed     *store.DeleteApplicationResult `json:"removed,omitempty"`
	Hard        bool                           `json:"hard,omitempty"`
	// ConfigSynced reports whether the gateway config was rewritten after the change
	ConfigSynced bool `json:"config_synced"`
}

// ApplicationListResponse represents a list of applications
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int                   `json:"total"`
}

// AppTestResponse is the outcome of testing the gateway on behalf of one application
type AppTestResponse struct {
	AppID          string    `json:"app_id"`
	AppName        string    `json:"app_name"`
	ServerStatus   string    `json:"server_status"`
	ResponseTimeMS float64   `json:"response_time_ms"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
}

// ConfigSyncResponse reports a gateway config rewrite
type ConfigSyncResponse struct {
	Synced bool   `json:"synced"`
	Path   string `json:"path"`
}

// ConfigImportResponse reports an import from the gateway config
type ConfigImportResponse struct {
	gatewayconfig.ImportResult
	Imported bool   `json:"imported"`
	Path     string `json:"path"`
	// ConfigSynced is true when the follow-up rewrite ran and succeeded
	ConfigSynced bool `json:"config_synced"`
}

// WebhookResponse represents a webhook record
type WebhookResponse struct {
	ID             uint64            `json:"id"`
	AppID          string            `json:"app_id"`
	EventName      string            `json:"event_name"`
	WebhookURL     string            `json:"webhook_url"`
	Payload        json.RawMessage   `json:"payload"`
	Headers        map[string]string `json:"headers"`
	Status         string            `json:"status"`
	Attempts       int               `json:"attempts"`
	ResponseStatus *int              `json:"response_status"`
	ResponseBody   *string           `json:"response_body"`
	SentAt         *time.Time        `json:"sent_at"`
	NextRetryAt    *time.Time        `json:"next_retry_at"`
	CanRetry       bool              `json:"can_retry"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// WebhookListResponse represents a page of webhook records
type WebhookListResponse struct {
	Webhooks []WebhookResponse `json:"webhooks"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// MarkSentResponse reports a manual mark-as-sent
type MarkSentResponse struct {
	Updated     []WebhookResponse `json:"updated"`
	AlreadySent []uint64          `json:"already_sent"`
	NotFound    []uint64          `json:"not_found"`
}

// CleanupResponse reports the retention cleanup
type CleanupResponse struct {
	Deleted int64 `json:"deleted"`
}

// ConnectionResponse represents a mirrored connection
type ConnectionResponse struct {
	ConnectionID   string          `json:"connection_id"`
	AppID          string          `json:"app_id"`
	SocketID       string          `json:"socket_id"`
	ChannelName    *string         `json:"channel_name"`
	UserData       json.RawMessage `json:"user_data,omitempty"`
	IPAddress      *string         `json:"ip_address"`
	UserAgent      *string         `json:"user_agent"`
	IsConnected    bool            `json:"is_connected"`
	ConnectedAt    *time.Time      `json:"connected_at"`
	DisconnectedAt *time.Time      `json:"disconnected_at"`
	Duration       string          `json:"duration"`
}

// ConnectionListResponse represents a page of connections
type ConnectionListResponse struct {
	Connections []ConnectionResponse `json:"connections"`
	Limit       int                  `json:"limit"`
	Offset      int                  `json:"offset"`
}

// DebugEventResponse represents a recorded gateway callback
type DebugEventResponse struct {
	EventID   string          `json:"event_id"`
	AppID     string          `json:"app_id"`
	EventType string          `json:"event_type"`
	Channel   *string         `json:"channel"`
	EventName *string         `json:"event_name"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	SocketID  *string         `json:"socket_id"`
	UserID    *string         `json:"user_id"`
	Timestamp time.Time       `json:"timestamp"`
}

// DebugEventListResponse represents a list of debug events
type DebugEventListResponse struct {
	Events []DebugEventResponse `json:"events"`
}

// DashboardResponse is the cached dashboard summary
type DashboardResponse struct {
	Overview   *stats.Overview     `json:"overview"`
	Throughput *metrics.Throughput `json:"throughput"`
}

// GatewayCallbackResponse is the fixed acknowledgement of a gateway callback
type GatewayCallbackResponse struct {
	Status string `json:"status"`
}

// MapApplicationToDTO maps an application to its response shape. The secret is never included.
func MapApplicationToDTO(app *schema.Application) ApplicationResponse {
	targets := app.Targets()
	urls := make([]string, 0, len(targets))
	for _, t := range targets {
		urls = append(urls, t.URL)
	}
	events := app.Events()
	if events == nil {
		events = []string{}
	}

	return ApplicationResponse{
		ID:                           app.ID,
		AppID:                        app.AppID,
		AppKey:                       app.AppKey,
		Name:                         app.Name,
		Description:                  app.Description,
		MaxConnections:               app.MaxConnections,
		MaxBackendEventsPerSec:       app.MaxBackendEventsPerSec,
		MaxClientEventsPerSec:        app.MaxClientEventsPerSec,
		MaxReadRequestsPerSec:        app.MaxReadRequestsPerSec,
		MaxPresenceMembersPerChannel: app.MaxPresenceMembersPerChannel,
		MaxPresenceMemberSizeKB:      app.MaxPresenceMemberSizeKB,
		MaxChannelNameLength:         app.MaxChannelNameLength,
		MaxEventPayloadKB:            app.MaxEventPayloadKB,
		MaxEventBatchSize:            app.MaxEventBatchSize,
		EnableClientMessages:         app.EnableClientMessages,
		EnableStatistics:             app.EnableStatistics,
		EnableUserAuthentication:     app.EnableUserAuthentication,
		Webhooks: WebhookSettingsResponse{
			Enabled: app.EnableWebhooks,
			URLs:    urls,
			Headers: app.Headers(),
			Events:  events,
		},
		IsActive:  app.IsActive,
		CreatedAt: app.CreatedAt,
		UpdatedAt: app.UpdatedAt,
	}
}

// MapWebhookToDTO maps a webhook record to its response shape, evaluating retry eligibility at now
func MapWebhookToDTO(rec *schema.WebhookRecord, now time.Time) WebhookResponse {
	headers := rec.Headers.Data()
	if headers == nil {
		headers = map[string]string{}
	}

	return WebhookResponse{
		ID:             rec.ID,
		AppID:          rec.AppID,
		EventName:      rec.EventName,
		WebhookURL:     rec.WebhookURL,
		Payload:        json.RawMessage(rec.Payload),
		Headers:        headers,
		Status:         string(rec.Status),
		Attempts:       rec.Attempts,
		ResponseStatus: rec.ResponseStatus,
		ResponseBody:   rec.ResponseBody,
		SentAt:         rec.SentAt,
		NextRetryAt:    rec.NextRetryAt,
		CanRetry:       webhook.ShouldRetry(rec, now),
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

// MapConnectionToDTO maps a connection to its response shape, rendering the duration at now
func MapConnectionToDTO(conn *schema.Connection, now time.Time) ConnectionResponse {
	return ConnectionResponse{
		ConnectionID:   conn.ConnectionID,
		AppID:          conn.AppID,
		SocketID:       conn.SocketID,
		ChannelName:    conn.ChannelName,
		UserData:       json.RawMessage(conn.UserData),
		IPAddress:      conn.IPAddress,
		UserAgent:      conn.UserAgent,
		IsConnected:    conn.IsConnected,
		ConnectedAt:    conn.ConnectedAt,
		DisconnectedAt: conn.DisconnectedAt,
		Duration:       conn.FormatDuration(now),
	}
}

// MapDebugEventToDTO maps a debug event to its response shape
func MapDebugEventToDTO(event *schema.DebugEvent) DebugEventResponse {
	return DebugEventResponse{
		EventID:   event.EventID,
		AppID:     event.AppID,
		EventType: event.EventType,
		Channel:   event.Channel,
		EventName: event.EventName,
		Payload:   json.RawMessage(event.Payload),
		SocketID:  event.SocketID,
		UserID:    event.UserID,
		Timestamp: event.Timestamp,
	}
}
