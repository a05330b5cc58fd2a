package dto

import (
	"encoding/json"

	"github.com/feral-file/gateway-console/internal/registry"
	"github.com/feral-file/gateway-console/internal/webhook"
)

// WebhookSettingsRequest is the webhook block of an application request
type WebhookSettingsRequest struct {
	Enabled bool              `json:"enabled"`
	URLs    []string          `json:"urls"`
	Headers map[string]string `json:"headers"`
	Events  []string          `json:"events"`
}

// CreateApplicationRequest is the body of POST /apps.
// Empty identifiers are generated.
type CreateApplicationRequest struct {
	AppID     string `json:"app_id"`
	AppKey    string `json:"app_key"`
	AppSecret string `json:"app_secret"`

	Name        string `json:"name"`
	Description string `json:"description"`

	MaxConnections               *int `json:"max_connections"`
	MaxBackendEventsPerSec       int  `json:"max_backend_events_per_sec"`
	MaxClientEventsPerSec        int  `json:"max_client_events_per_sec"`
	MaxReadRequestsPerSec        int  `json:"max_read_requests_per_sec"`
	MaxPresenceMembersPerChannel int  `json:"max_presence_members_per_channel"`
	MaxPresenceMemberSizeKB      int  `json:"max_presence_member_size_kb"`
	MaxChannelNameLength         int  `json:"max_channel_name_length"`
	MaxEventPayloadKB            int  `json:"max_event_payload_kb"`
	MaxEventBatchSize            int  `json:"max_event_batch_size"`

	EnableClientMessages     bool                   `json:"enable_client_messages"`
	EnableStatistics         *bool                  `json:"enable_statistics"`
	EnableUserAuthentication bool                   `json:"enable_user_authentication"`
	Webhooks                 WebhookSettingsRequest `json:"webhooks"`

	IsActive *bool `json:"is_active"`
}

// ToSpec converts the request to a registry spec
func (r CreateApplicationRequest) ToSpec() registry.ApplicationSpec {
	return registry.ApplicationSpec{
		AppID:          r.AppID,
		AppKey:         r.AppKey,
		AppSecret:      r.AppSecret,
		Name:           r.Name,
		Description:    r.Description,
		MaxConnections: r.MaxConnections,
		Limits: registry.Limits{
			MaxBackendEventsPerSec:       r.MaxBackendEventsPerSec,
			MaxClientEventsPerSec:        r.MaxClientEventsPerSec,
			MaxReadRequestsPerSec:        r.MaxReadRequestsPerSec,
			MaxPresenceMembersPerChannel: r.MaxPresenceMembersPerChannel,
			MaxPresenceMemberSizeKB:      r.MaxPresenceMemberSizeKB,
			MaxChannelNameLength:         r.MaxChannelNameLength,
			MaxEventPayloadKB:            r.MaxEventPayloadKB,
			MaxEventBatchSize:            r.MaxEventBatchSize,
		},
		EnableClientMessages:     r.EnableClientMessages,
		EnableStatistics:         r.EnableStatistics,
		EnableUserAuthentication: r.EnableUserAuthentication,
		Webhooks: registry.WebhookSettings{
			Enabled: r.Webhooks.Enabled,
			URLs:    r.Webhooks.URLs,
			Headers: r.Webhooks.Headers,
			Events:  r.Webhooks.Events,
		},
		IsActive: r.IsActive,
	}
}

// UpdateApplicationRequest is the body of PATCH /apps/:app_id. Omitted fields are unchanged.
type UpdateApplicationRequest struct {
	AppID     *string `json:"app_id"`
	AppKey    *string `json:"app_key"`
	AppSecret *string `json:"app_secret"`

	Name        *string `json:"name"`
	Description *string `json:"description"`

	MaxConnections               *int `json:"max_connections"`
	MaxBackendEventsPerSec       *int `json:"max_backend_events_per_sec"`
	MaxClientEventsPerSec        *int `json:"max_client_events_per_sec"`
	MaxReadRequestsPerSec        *int `json:"max_read_requests_per_sec"`
	MaxPresenceMembersPerChannel *int `json:"max_presence_members_per_channel"`
	MaxPresenceMemberSizeKB      *int `json:"max_presence_member_size_kb"`
	MaxChannelNameLength         *int `json:"max_channel_name_length"`
	MaxEventPayloadKB            *int `json:"max_event_payload_kb"`
	MaxEventBatchSize            *int `json:"max_event_batch_size"`

	EnableClientMessages     *bool `json:"enable_client_messages"`
	EnableStatistics         *bool `json:"enable_statistics"`
	EnableUserAuthentication *bool `json:"enable_user_authentication"`
	EnableWebhooks           *bool `json:"enable_webhooks"`

	WebhookURLs    *[]string          `json:"webhook_urls"`
	WebhookHeaders *map[string]string `json:"webhook_headers"`
	WebhookEvents  *[]string          `json:"webhook_events"`

	IsActive *bool `json:"is_active"`
}

// ToPatch converts the request to a registry patch
func (r UpdateApplicationRequest) ToPatch() registry.ApplicationPatch {
	return registry.ApplicationPatch{
		AppID:                        r.AppID,
		AppKey:                       r.AppKey,
		AppSecret:                    r.AppSecret,
		Name:                         r.Name,
		Description:                  r.Description,
		MaxConnections:               r.MaxConnections,
		MaxBackendEventsPerSec:       r.MaxBackendEventsPerSec,
		MaxClientEventsPerSec:        r.MaxClientEventsPerSec,
		MaxReadRequestsPerSec:        r.MaxReadRequestsPerSec,
		MaxPresenceMembersPerChannel: r.MaxPresenceMembersPerChannel,
		MaxPresenceMemberSizeKB:      r.MaxPresenceMemberSizeKB,
		MaxChannelNameLength:         r.MaxChannelNameLength,
		MaxEventPayloadKB:            r.MaxEventPayloadKB,
		MaxEventBatchSize:            r.MaxEventBatchSize,
		EnableClientMessages:         r.EnableClientMessages,
		EnableStatistics:             r.EnableStatistics,
		EnableUserAuthentication:     r.EnableUserAuthentication,
		EnableWebhooks:               r.EnableWebhooks,
		WebhookURLs:                  r.WebhookURLs,
		WebhookHeaders:               r.WebhookHeaders,
		WebhookEvents:                r.WebhookEvents,
		IsActive:                     r.IsActive,
	}
}

// CreateWebhookRequest is the body of POST /webhooks
type CreateWebhookRequest struct {
	AppID      string            `json:"app_id"`
	EventName  string            `json:"event_name"`
	WebhookURL string            `json:"webhook_url"`
	Payload    json.RawMessage   `json:"payload"`
	Headers    map[string]string `json:"headers"`
}

// ToInput converts the request to an engine input
func (r CreateWebhookRequest) ToInput() webhook.CreateInput {
	return webhook.CreateInput{
		AppID:      r.AppID,
		EventName:  r.EventName,
		WebhookURL: r.WebhookURL,
		Payload:    r.Payload,
		Headers:    r.Headers,
	}
}

// WebhookIDsRequest selects webhook records by id
type WebhookIDsRequest struct {
	IDs []uint64 `json:"ids"`
}

// GatewayCallbackRequest is the body the gateway posts for every reported event
type GatewayCallbackRequest struct {
	Event    string          `json:"event"`
	Channel  *string         `json:"channel"`
	AppID    string          `json:"app_id"`
	SocketID *string         `json:"socket_id"`
	Data     json.RawMessage `json:"data"`
}

// GatewayCallbackData holds the fields read from GatewayCallbackRequest.Data
type GatewayCallbackData struct {
	UserID    any             `json:"user_id"`
	Event     any             `json:"event"`
	UserData  json.RawMessage `json:"user_data"`
	IPAddress *string         `json:"ip"`
	UserAgent *string         `json:"user_agent"`
}
