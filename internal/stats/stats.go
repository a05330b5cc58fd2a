package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/feral-file/gateway-console/internal/metrics"
	"github.com/feral-file/gateway-console/internal/store"
	"github.com/feral-file/gateway-console/internal/store/schema"
)

const (
	MIN_CACHE_TTL = 10 * time.Second
	MAX_CACHE_TTL = 300 * time.Second

	overviewKey   = "overview"
	throughputKey = "throughput"

	appConnectionsCacheSize = 1024
)

// Capacity levels by usage percentage
const (
	LevelDanger  = "danger"
	LevelWarning = "warning"
	LevelInfo    = "info"
	LevelSuccess = "success"
)

// Config holds the cache TTLs. Values are clamped to [MIN_CACHE_TTL, MAX_CACHE_TTL].
type Config struct {
	OverviewTTL    time.Duration
	ConnectionsTTL time.Duration
	ThroughputTTL  time.Duration
}

// Capacity compares mirrored connections with the configured limits of active applications
type Capacity struct {
	// Total is the sum of max_connections over active applications with a positive limit
	Total int64 `json:"total"`
	// UsagePercent is nil when no active application is limited
	UsagePercent *float64 `json:"usage_percent"`
	Description  string   `json:"description"`
	Level        string   `json:"level"`
}

// Overview is the dashboard summary
type Overview struct {
	TotalApps         int64                `json:"total_apps"`
	ActiveApps        int64                `json:"active_apps"`
	ActiveConnections int64                `json:"active_connections"`
	Webhooks          map[string]int64     `json:"webhooks"`
	Capacity          Capacity             `json:"capacity"`
	Server            *metrics.ServerStats `json:"server"`
	GeneratedAt       time.Time            `json:"generated_at"`
}

// AppConnections reports the connection count of one application from both sources
type AppConnections struct {
	AppID string `json:"app_id"`
	// Mirrored counts connection rows ingested from gateway callbacks
	Mirrored int64 `json:"mirrored"`
	// Gateway is the gateway's own gauge
	Gateway float64 `json:"gateway"`
}

// Service serves cached dashboard aggregates. Entries expire by TTL only.
//
//go:generate mockgen -source=stats.go -destination=../mocks/stats.go -package=mocks -mock_names=Service=MockStatsService
type Service interface {
	Overview(ctx context.Context) (*Overview, error)
	AppConnections(ctx context.Context, appID string) (*AppConnections, error)
	Throughput(ctx context.Context) *metrics.Throughput
}

type service struct {
	store       store.Store
	probe       metrics.Probe
	overview    *expirable.LRU[string, *Overview]
	connections *expirable.LRU[string, *AppConnections]
	throughput  *expirable.LRU[string, *metrics.Throughput]
	group       singleflight.Group
}

// NewService creates a new dashboard statistics service
func NewService(cfg Config, st store.Store, probe metrics.Probe) Service {
	return &service{
		store:       st,
		probe:       probe,
		overview:    expirable.NewLRU[string, *Overview](1, nil, ClampTTL(cfg.OverviewTTL)),
		connections: expirable.NewLRU[string, *AppConnections](appConnectionsCacheSize, nil, ClampTTL(cfg.ConnectionsTTL)),
		throughput:  expirable.NewLRU[string, *metrics.Throughput](1, nil, ClampTTL(cfg.ThroughputTTL)),
	}
}

// ClampTTL bounds a cache TTL to [MIN_CACHE_TTL, MAX_CACHE_TTL]
func ClampTTL(ttl time.Duration) time.Duration {
	return min(max(ttl, MIN_CACHE_TTL), MAX_CACHE_TTL)
}

// cached returns the cached value or fills it once for all concurrent callers
func cached[V any](g *singleflight.Group, cache *expirable.LRU[string, V], key string, fill func() (V, error)) (V, error) {
	if v, ok := cache.Get(key); ok {
		return v, nil
	}

	v, err, _ := g.Do(key, func() (any, error) {
		if v, ok := cache.Get(key); ok {
			return v, nil
		}
		v, err := fill()
		if err != nil {
			return nil, err
		}
		cache.Add(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Overview returns the dashboard summary
func (s *service) Overview(ctx context.Context) (*Overview, error) {
	return cached(&s.group, s.overview, overviewKey, func() (*Overview, error) {
		return s.buildOverview(ctx)
	})
}

func (s *service) buildOverview(ctx context.Context) (*Overview, error) {
	counts, err := s.store.GetApplicationCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	connected, err := s.store.CountConnected(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count connections: %w", err)
	}

	byStatus, err := s.store.CountWebhookRecordsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count webhook records: %w", err)
	}
	webhooks := map[string]int64{
		string(schema.WebhookStatusPending): 0,
		string(schema.WebhookStatusSent):    0,
		string(schema.WebhookStatusFailed):  0,
	}
	for status, n := range byStatus {
		webhooks[string(status)] = n
	}

	return &Overview{
		TotalApps:         counts.Total,
		ActiveApps:        counts.Active,
		ActiveConnections: connected,
		Webhooks:          webhooks,
		Capacity:          NewCapacity(connected, counts.ActiveCapacity),
		Server:            s.probe.GetServerStats(ctx),
		GeneratedAt:       time.Now().UTC(),
	}, nil
}

// NewCapacity describes connection usage against the summed limits
func NewCapacity(connected, total int64) Capacity {
	if total <= 0 {
		return Capacity{
			Description: "Unlimited capacity",
			Level:       LevelSuccess,
		}
	}

	raw := float64(connected) / float64(total) * 100
	usage := math.Round(raw*10) / 10

	level := LevelSuccess
	switch {
	case raw >= 90:
		level = LevelDanger
	case raw >= 70:
		level = LevelWarning
	case raw >= 50:
		level = LevelInfo
	}

	return Capacity{
		Total:        total,
		UsagePercent: &usage,
		Description:  fmt.Sprintf("Usage: %s%% of capacity", formatPercent(usage)),
		Level:        level,
	}
}

// formatPercent prints a one-decimal percentage without a trailing .0
func formatPercent(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

// AppConnections returns the connection counts of one application
func (s *service) AppConnections(ctx context.Context, appID string) (*AppConnections, error) {
	return cached(&s.group, s.connections, "connections:"+appID, func() (*AppConnections, error) {
		mirrored, err := s.store.CountConnectedByAppID(ctx, appID)
		if err != nil {
			return nil, fmt.Errorf("failed to count connections: %w", err)
		}
		return &AppConnections{
			AppID:    appID,
			Mirrored: mirrored,
			Gateway:  s.probe.AppConnections(ctx, appID),
		}, nil
	})
}

// Throughput returns the gateway message counters
func (s *service) Throughput(ctx context.Context) *metrics.Throughput {
	t, _ := cached(&s.group, s.throughput, throughputKey, func() (*metrics.Throughput, error) {
		return s.probe.MessageThroughput(ctx), nil
	})
	return t
}
