package gatewayconfig

import (
	"sort"

	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/store/schema"
)

const (
	appManagerDriver  = "array"
	queueDriver       = "sync"
	rateLimiterDriver = "local"
)

// Options are the top-level gateway settings that do not come from the registry
type Options struct {
	Debug          bool
	Port           int
	MetricsEnabled bool
	MetricsPort    int
}

// Document is the JSON configuration file read by the gateway
type Document struct {
	Debug       bool       `json:"debug"`
	Port        int        `json:"port"`
	Metrics     Metrics    `json:"metrics"`
	AppManager  AppManager `json:"appManager"`
	Queue       Driver     `json:"queue"`
	RateLimiter Driver     `json:"rateLimiter"`
}

// Metrics is the metrics server block
type Metrics struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

// Driver selects a gateway backend by name
type Driver struct {
	Driver string `json:"driver"`
}

// AppManager is the application manager block. Only the array driver is written.
type AppManager struct {
	Driver string     `json:"driver"`
	Array  AppsConfig `json:"array"`
}

// AppsConfig holds the statically configured applications
type AppsConfig struct {
	Apps []App `json:"apps"`
}

// App is a single application entry
type App struct {
	ID                   string             `json:"id"`
	Key                  string             `json:"key"`
	Secret               string             `json:"secret"`
	Name                 string             `json:"name"`
	MaxConnections       int                `json:"maxConnections"`
	EnableClientMessages bool               `json:"enableClientMessages"`
	EnableStats          bool               `json:"enableStats"`
	Webhooks             map[string]Webhook `json:"webhooks"`
}

// Webhook is the destination of one gateway event
type Webhook struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers"`
}

// Build maps registry rows to a gateway configuration document.
// Applications are ordered by app_id so the same registry state always renders the same bytes.
func Build(apps []schema.Application, opts Options) Document {
	sorted := make([]schema.Application, len(apps))
	copy(sorted, apps)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].AppID < sorted[j].AppID
	})

	entries := make([]App, 0, len(sorted))
	for i := range sorted {
		entries = append(entries, buildApp(&sorted[i]))
	}

	return Document{
		Debug: opts.Debug,
		Port:  opts.Port,
		Metrics: Metrics{
			Enabled: opts.MetricsEnabled,
			Port:    opts.MetricsPort,
		},
		AppManager: AppManager{
			Driver: appManagerDriver,
			Array:  AppsConfig{Apps: entries},
		},
		Queue:       Driver{Driver: queueDriver},
		RateLimiter: Driver{Driver: rateLimiterDriver},
	}
}

func buildApp(app *schema.Application) App {
	return App{
		ID:                   app.AppID,
		Key:                  app.AppKey,
		Secret:               app.AppSecret,
		Name:                 app.Name,
		MaxConnections:       app.MaxConnections,
		EnableClientMessages: app.EnableClientMessages,
		EnableStats:          app.EnableStatistics,
		Webhooks:             buildWebhooks(app),
	}
}

// buildWebhooks cross-products every URL with every subscribed event.
// Events are keyed by name, so when several URLs share an event the last URL wins.
func buildWebhooks(app *schema.Application) map[string]Webhook {
	webhooks := map[string]Webhook{}

	targets := app.Targets()
	if !app.EnableWebhooks || len(targets) == 0 {
		return webhooks
	}

	events := app.Events()
	if len(events) == 0 {
		for _, e := range domain.DefaultWebhookEvents {
			events = append(events, string(e))
		}
	}

	headers := app.Headers()
	for _, target := range targets {
		for _, event := range events {
			webhooks[event] = Webhook{
				URL:     target.URL,
				Headers: headers,
			}
		}
	}

	return webhooks
}
