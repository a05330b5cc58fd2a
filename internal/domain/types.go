package domain

import "net/url"

// WebhookEvent is a gateway event an application can subscribe webhooks to
type WebhookEvent string

const (
	WebhookEventChannelOccupied WebhookEvent = "channel_occupied"
	WebhookEventChannelVacated  WebhookEvent = "channel_vacated"
	WebhookEventClientEvent     WebhookEvent = "client_event"
	WebhookEventMemberAdded     WebhookEvent = "member_added"
	WebhookEventMemberRemoved   WebhookEvent = "member_removed"
)

// SupportedWebhookEvents is the fixed vocabulary of subscribable events
var SupportedWebhookEvents = []WebhookEvent{
	WebhookEventChannelOccupied,
	WebhookEventChannelVacated,
	WebhookEventClientEvent,
	WebhookEventMemberAdded,
	WebhookEventMemberRemoved,
}

// DefaultWebhookEvents is used when webhooks are enabled without any subscribed event
var DefaultWebhookEvents = []WebhookEvent{
	WebhookEventChannelOccupied,
	WebhookEventChannelVacated,
}

// IsValidWebhookEvent checks if an event name belongs to the supported vocabulary
func IsValidWebhookEvent(event string) bool {
	for _, e := range SupportedWebhookEvents {
		if string(e) == event {
			return true
		}
	}
	return false
}

// ApplicationStatus is the derived status of an application
type ApplicationStatus string

const (
	ApplicationStatusActive   ApplicationStatus = "active"
	ApplicationStatusInactive ApplicationStatus = "inactive"
	ApplicationStatusAtLimit  ApplicationStatus = "at_limit"
)

// Debug event types recorded for inbound gateway callbacks
const (
	DebugEventTypeMessage        = "message"
	DebugEventTypeSubscription   = "subscription"
	DebugEventTypeUnsubscription = "unsubscription"
	DebugEventTypeDisconnection  = "disconnection"
	DebugEventTypeConnection     = "connection"
)

// Gateway callback event names
const (
	GatewayEventClientEvent  = "client_event"
	GatewayEventSubscription = "subscription"
	GatewayEventUnsubscribe  = "unsubscribe"
	GatewayEventDisconnect   = "disconnect"
	GatewayEventConnect      = "connect"
)

var gatewayEventTypes = map[string]string{
	GatewayEventClientEvent:  DebugEventTypeMessage,
	GatewayEventSubscription: DebugEventTypeSubscription,
	GatewayEventUnsubscribe:  DebugEventTypeUnsubscription,
	GatewayEventDisconnect:   DebugEventTypeDisconnection,
	GatewayEventConnect:      DebugEventTypeConnection,
}

// DebugEventType maps a gateway callback event name to the debug event type.
// Unrecognized names pass through verbatim.
func DebugEventType(gatewayEvent string) string {
	if t, ok := gatewayEventTypes[gatewayEvent]; ok {
		return t
	}
	return gatewayEvent
}

// IsHTTPURL reports whether raw is an absolute http or https URL with a host
func IsHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
