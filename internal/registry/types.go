package registry

import (
	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/store"
	"github.com/feral-file/gateway-console/internal/store/schema"
)

// Limits are the per-application gateway limits. 0 means unlimited.
type Limits struct {
	MaxBackendEventsPerSec       int
	MaxClientEventsPerSec        int
	MaxReadRequestsPerSec        int
	MaxPresenceMembersPerChannel int
	MaxPresenceMemberSizeKB      int
	MaxChannelNameLength         int
	MaxEventPayloadKB            int
	MaxEventBatchSize            int
}

// WebhookSettings is the webhook configuration of an application
type WebhookSettings struct {
	Enabled bool
	URLs    []string
	Headers map[string]string
	Events  []string
}

// ApplicationSpec describes an application to create.
// Empty identifiers are generated.
type ApplicationSpec struct {
	AppID     string
	AppKey    string
	AppSecret string

	Name        string
	Description string

	// MaxConnections defaults to 100 when nil
	MaxConnections *int
	Limits         Limits

	EnableClientMessages     bool
	EnableStatistics         *bool // defaults to true
	EnableUserAuthentication bool
	Webhooks                 WebhookSettings

	IsActive *bool // defaults to true
}

// ApplicationPatch describes an update. Nil fields are left unchanged.
type ApplicationPatch struct {
	// AppID, AppKey and AppSecret may only repeat the current value
	AppID     *string
	AppKey    *string
	AppSecret *string

	Name        *string
	Description *string

	MaxConnections               *int
	MaxBackendEventsPerSec       *int
	MaxClientEventsPerSec        *int
	MaxReadRequestsPerSec        *int
	MaxPresenceMembersPerChannel *int
	MaxPresenceMemberSizeKB      *int
	MaxChannelNameLength         *int
	MaxEventPayloadKB            *int
	MaxEventBatchSize            *int

	EnableClientMessages     *bool
	EnableStatistics         *bool
	EnableUserAuthentication *bool
	EnableWebhooks           *bool

	WebhookURLs    *[]string
	WebhookHeaders *map[string]string
	WebhookEvents  *[]string

	IsActive *bool
}

// MutationKind names a registry change
type MutationKind string

const (
	MutationCreated  MutationKind = "created"
	MutationUpdated  MutationKind = "updated"
	MutationDeleted  MutationKind = "deleted"
	MutationRestored MutationKind = "restored"
)

// Mutation is the event returned by every registry write.
// Callers forward it to a Dispatcher; the registry itself has no side effects beyond the store.
type Mutation struct {
	Kind  MutationKind
	AppID string
	// Application is the redacted record after the change; nil for deletes
	Application *schema.Application
	// Removed reports the dependent rows removed by a delete
	Removed *store.DeleteApplicationResult
	Hard    bool
}

// CreateResult carries the created application and, exactly once, its secret
type CreateResult struct {
	Mutation
	Secret string
}

// ApplicationDetails is an application with its observed connection state
type ApplicationDetails struct {
	Application     *schema.Application
	ConnectionCount int64
	Status          domain.ApplicationStatus
}
