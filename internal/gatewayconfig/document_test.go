package gatewayconfig_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/gateway-console/internal/adapter"
	"github.com/feral-file/gateway-console/internal/gatewayconfig"
	"github.com/feral-file/gateway-console/internal/store/schema"
)

var defaultOptions = gatewayconfig.Options{
	Port:           6001,
	MetricsEnabled: true,
	MetricsPort:    9601,
}

func buildApp(appID string) schema.Application {
	return schema.Application{
		AppID:                appID,
		AppKey:               appID + "-key",
		AppSecret:            appID + "-secret",
		Name:                 "App " + appID,
		MaxConnections:       100,
		EnableClientMessages: true,
		EnableStatistics:     true,
		IsActive:             true,
		WebhookURLs:          datatypes.NewJSONType([]schema.WebhookTarget{}),
		WebhookHeaders:       datatypes.NewJSONType(map[string]string{}),
		WebhookEvents:        datatypes.NewJSONType([]string{}),
	}
}

func withWebhooks(app schema.Application, urls []string, events []string, headers map[string]string) schema.Application {
	targets := make([]schema.WebhookTarget, 0, len(urls))
	for _, u := range urls {
		targets = append(targets, schema.WebhookTarget{URL: u})
	}
	app.EnableWebhooks = true
	app.WebhookURLs = datatypes.NewJSONType(targets)
	app.WebhookEvents = datatypes.NewJSONType(events)
	if headers != nil {
		app.WebhookHeaders = datatypes.NewJSONType(headers)
	}
	return app
}

func TestBuild_FixedKeys(t *testing.T) {
	doc := gatewayconfig.Build(nil, gatewayconfig.Options{Debug: true, Port: 6002, MetricsEnabled: true, MetricsPort: 9700})

	assert.True(t, doc.Debug)
	assert.Equal(t, 6002, doc.Port)
	assert.Equal(t, gatewayconfig.Metrics{Enabled: true, Port: 9700}, doc.Metrics)
	assert.Equal(t, "array", doc.AppManager.Driver)
	assert.Equal(t, "sync", doc.Queue.Driver)
	assert.Equal(t, "local", doc.RateLimiter.Driver)
	assert.NotNil(t, doc.AppManager.Array.Apps)
	assert.Empty(t, doc.AppManager.Array.Apps)
}

func TestBuild_SortsApplications(t *testing.T) {
	apps := []schema.Application{buildApp("app-c"), buildApp("app-a"), buildApp("app-b")}

	doc := gatewayconfig.Build(apps, defaultOptions)

	require.Len(t, doc.AppManager.Array.Apps, 3)
	assert.Equal(t, "app-a", doc.AppManager.Array.Apps[0].ID)
	assert.Equal(t, "app-b", doc.AppManager.Array.Apps[1].ID)
	assert.Equal(t, "app-c", doc.AppManager.Array.Apps[2].ID)
	// input is not reordered
	assert.Equal(t, "app-c", apps[0].AppID)
}

func TestBuild_MapsFields(t *testing.T) {
	app := buildApp("app-1")
	app.MaxConnections = 0
	app.EnableClientMessages = false
	app.EnableStatistics = false

	doc := gatewayconfig.Build([]schema.Application{app}, defaultOptions)

	entry := doc.AppManager.Array.Apps[0]
	assert.Equal(t, gatewayconfig.App{
		ID:                   "app-1",
		Key:                  "app-1-key",
		Secret:               "app-1-secret",
		Name:                 "App app-1",
		MaxConnections:       0,
		EnableClientMessages: false,
		EnableStats:          false,
		Webhooks:             map[string]gatewayconfig.Webhook{},
	}, entry)
}

func TestBuild_Webhooks(t *testing.T) {
	disabled := withWebhooks(buildApp("app-1"), []string{"https://a.example.com"}, []string{"member_added"}, nil)
	disabled.EnableWebhooks = false

	tests := []struct {
		name     string
		app      schema.Application
		expected map[string]gatewayconfig.Webhook
	}{
		{
			name:     "disabled webhooks render empty",
			app:      disabled,
			expected: map[string]gatewayconfig.Webhook{},
		},
		{
			name:     "enabled without urls renders empty",
			app:      withWebhooks(buildApp("app-1"), nil, []string{"member_added"}, nil),
			expected: map[string]gatewayconfig.Webhook{},
		},
		{
			name: "no events defaults to occupied and vacated",
			app:  withWebhooks(buildApp("app-1"), []string{"https://a.example.com"}, nil, nil),
			expected: map[string]gatewayconfig.Webhook{
				"channel_occupied": {URL: "https://a.example.com", Headers: map[string]string{}},
				"channel_vacated":  {URL: "https://a.example.com", Headers: map[string]string{}},
			},
		},
		{
			name: "every event gets the headers",
			app: withWebhooks(buildApp("app-1"), []string{"https://a.example.com"}, []string{"client_event", "member_added"},
				map[string]string{"Authorization": "Bearer x"}),
			expected: map[string]gatewayconfig.Webhook{
				"client_event": {URL: "https://a.example.com", Headers: map[string]string{"Authorization": "Bearer x"}},
				"member_added": {URL: "https://a.example.com", Headers: map[string]string{"Authorization": "Bearer x"}},
			},
		},
		{
			name: "last url wins per event",
			app: withWebhooks(buildApp("app-1"), []string{"https://first.example.com", "https://second.example.com"},
				[]string{"channel_occupied"}, nil),
			expected: map[string]gatewayconfig.Webhook{
				"channel_occupied": {URL: "https://second.example.com", Headers: map[string]string{}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := gatewayconfig.Build([]schema.Application{tt.app}, defaultOptions)
			assert.Equal(t, tt.expected, doc.AppManager.Array.Apps[0].Webhooks)
		})
	}
}

func TestRender(t *testing.T) {
	app := withWebhooks(buildApp("app-1"), []string{"https://hooks.example.com/a?x=1&y=2"}, []string{"channel_occupied"}, nil)
	app.Name = "One"

	data, err := gatewayconfig.Render(adapter.NewJSON(), gatewayconfig.Build([]schema.Application{app}, defaultOptions))
	require.NoError(t, err)

	expected := `{
    "debug": false,
    "port": 6001,
    "metrics": {
        "enabled": true,
        "port": 9601
    },
    "appManager": {
        "driver": "array",
        "array": {
            "apps": [
                {
                    "id": "app-1",
                    "key": "app-1-key",
                    "secret": "app-1-secret",
                    "name": "One",
                    "maxConnections": 100,
                    "enableClientMessages": true,
                    "enableStats": true,
                    "webhooks": {
                        "channel_occupied": {
                            "url": "https://hooks.example.com/a?x=1&y=2",
                            "headers": {}
                        }
                    }
                }
            ]
        }
    },
    "queue": {
        "driver": "sync"
    },
    "rateLimiter": {
        "driver": "local"
    }
}
`
	assert.Equal(t, expected, string(data))
}

func TestRender_EmptyRegistry(t *testing.T) {
	data, err := gatewayconfig.Render(adapter.NewJSON(), gatewayconfig.Build(nil, defaultOptions))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"apps": []`)
}
