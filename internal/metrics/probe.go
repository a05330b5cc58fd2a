package metrics

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/gateway-console/internal/adapter"
	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/logger"
)

const (
	StatusOnline  = "Online"
	StatusOffline = "Offline"

	uptimeUnknown = "Unknown"
	lastCheckFmt  = "15:04:05"
)

// Metric names read from the gateway exposition
const (
	metricUptime         = "soketi_uptime"
	metricConnections    = "soketi_connections_total"
	metricMessages       = "soketi_messages_total"
	metricMessagesFailed = "soketi_messages_failed_total"
	metricMessagesRate   = "soketi_messages_rate"
	metricMemory         = "process_resident_memory_bytes"
	metricCPU            = "process_cpu_seconds_total"
)

// Config holds the metrics endpoint settings
type Config struct {
	URL     string
	Timeout time.Duration
}

// ServerStats is the dashboard view of the gateway metrics
type ServerStats struct {
	Status              string  `json:"status"`
	LastCheck           string  `json:"last_check"`
	Uptime              string  `json:"uptime"`
	ConnectionsTotal    float64 `json:"connections_total"`
	MessagesTotal       float64 `json:"messages_total"`
	MessagesFailedTotal float64 `json:"messages_failed_total"`
	SuccessRate         float64 `json:"success_rate"`
	MemoryUsage         float64 `json:"memory_usage"`
	CPUUsage            float64 `json:"cpu_usage"`
}

// ConnectionTest is the outcome of an interactive probe
type ConnectionTest struct {
	Success        bool    `json:"success"`
	StatusCode     int     `json:"status_code"`
	ResponseTimeMS float64 `json:"response_time_ms"`
	Message        string  `json:"message"`
}

// Throughput summarizes gateway message counters
type Throughput struct {
	MessagesPerSecond float64 `json:"messages_per_second"`
	TotalMessages     float64 `json:"total_messages"`
	FailedMessages    float64 `json:"failed_messages"`
	SuccessRate       float64 `json:"success_rate"`
}

// Probe reads the gateway metrics endpoint. Failures are folded into the returned shapes.
//
//go:generate mockgen -source=probe.go -destination=../mocks/probe.go -package=mocks -mock_names=Probe=MockProbe
type Probe interface {
	// GetServerStats returns the Online shape, or the Offline shape on any failure
	GetServerStats(ctx context.Context) *ServerStats

	// TestConnection times a single metrics request
	TestConnection(ctx context.Context) *ConnectionTest

	// AppConnections returns the gateway's connection gauge for one application, 0 when unavailable
	AppConnections(ctx context.Context, appID string) float64

	// MessageThroughput returns message counters, zeroed with a 100 success rate when unavailable
	MessageThroughput(ctx context.Context) *Throughput
}

type probe struct {
	cfg   Config
	http  adapter.HTTPClient
	clock adapter.Clock
}

// NewProbe creates a new metrics probe
func NewProbe(cfg Config, httpClient adapter.HTTPClient, clock adapter.Clock) Probe {
	if cfg.URL == "" {
		cfg.URL = domain.DEFAULT_METRICS_URL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = domain.DEFAULT_METRICS_TIMEOUT
	}
	return &probe{
		cfg:   cfg,
		http:  httpClient,
		clock: clock,
	}
}

// fetch performs the bounded GET. A non-2xx response is returned with a nil error.
func (p *probe) fetch(ctx context.Context) (*adapter.HTTPResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	return p.http.GetRaw(ctx, p.cfg.URL, map[string]string{"Accept": "text/plain"})
}

// scrape returns the parsed metrics of a successful response
func (p *probe) scrape(ctx context.Context) (map[string]float64, error) {
	resp, err := p.fetch(ctx)
	if err != nil {
		return nil, err
	}
	if !resp.Successful {
		return nil, fmt.Errorf("metrics endpoint returned status %d", resp.StatusCode)
	}
	return Parse(string(resp.Body)), nil
}

// GetServerStats returns the Online shape, or the Offline shape on any failure
func (p *probe) GetServerStats(ctx context.Context) *ServerStats {
	lastCheck := p.clock.Now().Format(lastCheckFmt)

	m, err := p.scrape(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to fetch gateway metrics", zap.Error(err), zap.String("url", p.cfg.URL))
		return &ServerStats{
			Status:    StatusOffline,
			LastCheck: lastCheck,
			Uptime:    uptimeUnknown,
		}
	}

	return &ServerStats{
		Status:              StatusOnline,
		LastCheck:           lastCheck,
		Uptime:              FormatUptime(m[metricUptime]),
		ConnectionsTotal:    m[metricConnections],
		MessagesTotal:       m[metricMessages],
		MessagesFailedTotal: m[metricMessagesFailed],
		SuccessRate:         SuccessRate(m[metricMessages], m[metricMessagesFailed]),
		MemoryUsage:         m[metricMemory],
		CPUUsage:            m[metricCPU],
	}
}

// TestConnection times a single metrics request
func (p *probe) TestConnection(ctx context.Context) *ConnectionTest {
	start := p.clock.Now()
	resp, err := p.fetch(ctx)
	elapsed := round2(float64(p.clock.Since(start).Microseconds()) / 1000)

	if err != nil {
		return &ConnectionTest{
			ResponseTimeMS: elapsed,
			Message:        "Connection failed: " + err.Error(),
		}
	}

	result := &ConnectionTest{
		Success:        resp.Successful,
		StatusCode:     resp.StatusCode,
		ResponseTimeMS: elapsed,
		Message:        "Connection successful",
	}
	if !resp.Successful {
		result.Message = fmt.Sprintf("Server returned error: %d", resp.StatusCode)
	}
	return result
}

// AppConnections returns the gateway's connection gauge for one application
func (p *probe) AppConnections(ctx context.Context, appID string) float64 {
	m, err := p.scrape(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to fetch app connections", zap.Error(err), zap.String("appID", appID))
		return 0
	}
	return m[fmt.Sprintf(`%s{app_id="%s"}`, metricConnections, appID)]
}

// MessageThroughput returns message counters
func (p *probe) MessageThroughput(ctx context.Context) *Throughput {
	m, err := p.scrape(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to fetch message throughput", zap.Error(err))
		return &Throughput{SuccessRate: 100}
	}

	return &Throughput{
		MessagesPerSecond: m[metricMessagesRate],
		TotalMessages:     m[metricMessages],
		FailedMessages:    m[metricMessagesFailed],
		SuccessRate:       SuccessRate(m[metricMessages], m[metricMessagesFailed]),
	}
}
