package domain

import "time"

const (
	// Gateway config defaults
	DEFAULT_GATEWAY_CONFIG_PATH = "/etc/soketi/config.json"
	DEFAULT_GATEWAY_PORT        = 6001
	DEFAULT_METRICS_PORT        = 9601
	DEFAULT_METRICS_URL         = "http://localhost:9601/metrics"

	// Webhook delivery constants
	MAX_DELIVERY_ATTEMPTS    = 5
	WEBHOOK_RETENTION_WINDOW = 30 * 24 * time.Hour
	DEFAULT_DELIVERY_TIMEOUT = 30 * time.Second
	DEFAULT_METRICS_TIMEOUT  = 5 * time.Second
	DEFAULT_USER_AGENT       = "Gateway-Console/1.0"

	// Application defaults
	DEFAULT_MAX_CONNECTIONS        = 100
	DEFAULT_IMPORT_MAX_CONNECTIONS = 500
)
