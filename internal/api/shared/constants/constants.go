package constants

const (
	MAX_PAGE_SIZE              = 100
	DEFAULT_OFFSET             = 0
	DEFAULT_WEBHOOKS_LIMIT     = 20
	DEFAULT_CONNECTIONS_LIMIT  = 50
	DEFAULT_DEBUG_EVENTS_LIMIT = 50
	MAX_IDS_PER_REQUEST        = 500
)
