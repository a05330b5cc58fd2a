package stats_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/metrics"
	"github.com/feral-file/gateway-console/internal/mocks"
	"github.com/feral-file/gateway-console/internal/stats"
	"github.com/feral-file/gateway-console/internal/store"
	"github.com/feral-file/gateway-console/internal/store/schema"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testStatsMocks struct {
	ctrl    *gomock.Controller
	store   *mocks.MockStore
	probe   *mocks.MockProbe
	service stats.Service
}

func setupTestStats(t *testing.T) *testStatsMocks {
	ctrl := gomock.NewController(t)

	tm := &testStatsMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		probe: mocks.NewMockProbe(ctrl),
	}
	tm.service = stats.NewService(stats.Config{
		OverviewTTL:    30 * time.Second,
		ConnectionsTTL: 10 * time.Second,
		ThroughputTTL:  60 * time.Second,
	}, tm.store, tm.probe)

	return tm
}

func tearDownTestStats(tm *testStatsMocks) {
	tm.ctrl.Finish()
}

func TestService_Overview(t *testing.T) {
	tm := setupTestStats(t)
	defer tearDownTestStats(tm)

	server := &metrics.ServerStats{Status: "Online", Uptime: "5m"}
	tm.store.EXPECT().GetApplicationCounts(gomock.Any()).
		Return(&store.ApplicationCounts{Total: 4, Active: 3, ActiveCapacity: 200, LimitedActive: 2}, nil).Times(1)
	tm.store.EXPECT().CountConnected(gomock.Any()).Return(int64(150), nil).Times(1)
	tm.store.EXPECT().CountWebhookRecordsByStatus(gomock.Any()).
		Return(map[schema.WebhookStatus]int64{schema.WebhookStatusFailed: 2, schema.WebhookStatusSent: 9}, nil).Times(1)
	tm.probe.EXPECT().GetServerStats(gomock.Any()).Return(server).Times(1)

	overview, err := tm.service.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), overview.TotalApps)
	assert.Equal(t, int64(3), overview.ActiveApps)
	assert.Equal(t, int64(150), overview.ActiveConnections)
	assert.Equal(t, map[string]int64{"pending": 0, "sent": 9, "failed": 2}, overview.Webhooks)
	assert.Equal(t, int64(200), overview.Capacity.Total)
	assert.Equal(t, "Usage: 75% of capacity", overview.Capacity.Description)
	assert.Equal(t, stats.LevelWarning, overview.Capacity.Level)
	assert.Same(t, server, overview.Server)

	// served from cache
	again, err := tm.service.Overview(context.Background())
	require.NoError(t, err)
	assert.Same(t, overview, again)
}

func TestService_Overview_ErrorIsNotCached(t *testing.T) {
	tm := setupTestStats(t)
	defer tearDownTestStats(tm)

	gomock.InOrder(
		tm.store.EXPECT().GetApplicationCounts(gomock.Any()).Return(nil, errors.New("db down")),
		tm.store.EXPECT().GetApplicationCounts(gomock.Any()).Return(&store.ApplicationCounts{}, nil),
	)
	tm.store.EXPECT().CountConnected(gomock.Any()).Return(int64(0), nil)
	tm.store.EXPECT().CountWebhookRecordsByStatus(gomock.Any()).Return(map[schema.WebhookStatus]int64{}, nil)
	tm.probe.EXPECT().GetServerStats(gomock.Any()).Return(&metrics.ServerStats{Status: "Offline"})

	_, err := tm.service.Overview(context.Background())
	assert.Error(t, err)

	overview, err := tm.service.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Unlimited capacity", overview.Capacity.Description)
	assert.Nil(t, overview.Capacity.UsagePercent)
}

func TestService_Overview_CoalescesConcurrentFills(t *testing.T) {
	tm := setupTestStats(t)
	defer tearDownTestStats(tm)

	tm.store.EXPECT().GetApplicationCounts(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*store.ApplicationCounts, error) {
			time.Sleep(50 * time.Millisecond)
			return &store.ApplicationCounts{Total: 1}, nil
		}).Times(1)
	tm.store.EXPECT().CountConnected(gomock.Any()).Return(int64(0), nil).Times(1)
	tm.store.EXPECT().CountWebhookRecordsByStatus(gomock.Any()).Return(map[schema.WebhookStatus]int64{}, nil).Times(1)
	tm.probe.EXPECT().GetServerStats(gomock.Any()).Return(&metrics.ServerStats{}).Times(1)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			overview, err := tm.service.Overview(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, int64(1), overview.TotalApps)
		}()
	}
	wg.Wait()
}

func TestService_AppConnections(t *testing.T) {
	tm := setupTestStats(t)
	defer tearDownTestStats(tm)

	tm.store.EXPECT().CountConnectedByAppID(gomock.Any(), "app-1").Return(int64(3), nil).Times(1)
	tm.probe.EXPECT().AppConnections(gomock.Any(), "app-1").Return(4.0).Times(1)
	tm.store.EXPECT().CountConnectedByAppID(gomock.Any(), "app-2").Return(int64(0), nil).Times(1)
	tm.probe.EXPECT().AppConnections(gomock.Any(), "app-2").Return(0.0).Times(1)

	for i := 0; i < 2; i++ {
		got, err := tm.service.AppConnections(context.Background(), "app-1")
		require.NoError(t, err)
		assert.Equal(t, &stats.AppConnections{AppID: "app-1", Mirrored: 3, Gateway: 4}, got)
	}

	got, err := tm.service.AppConnections(context.Background(), "app-2")
	require.NoError(t, err)
	assert.Equal(t, "app-2", got.AppID)
}

func TestService_Throughput(t *testing.T) {
	tm := setupTestStats(t)
	defer tearDownTestStats(tm)

	want := &metrics.Throughput{MessagesPerSecond: 1.5, TotalMessages: 10, SuccessRate: 100}
	tm.probe.EXPECT().MessageThroughput(gomock.Any()).Return(want).Times(1)

	assert.Same(t, want, tm.service.Throughput(context.Background()))
	assert.Same(t, want, tm.service.Throughput(context.Background()))
}

func TestClampTTL(t *testing.T) {
	assert.Equal(t, 10*time.Second, stats.ClampTTL(0))
	assert.Equal(t, 10*time.Second, stats.ClampTTL(time.Second))
	assert.Equal(t, 45*time.Second, stats.ClampTTL(45*time.Second))
	assert.Equal(t, 300*time.Second, stats.ClampTTL(time.Hour))
}

func TestNewCapacity(t *testing.T) {
	tests := []struct {
		name        string
		connected   int64
		total       int64
		description string
		level       string
	}{
		{"unlimited", 40, 0, "Unlimited capacity", stats.LevelSuccess},
		{"low usage", 45, 100, "Usage: 45% of capacity", stats.LevelSuccess},
		{"half", 50, 100, "Usage: 50% of capacity", stats.LevelInfo},
		{"high", 70, 100, "Usage: 70% of capacity", stats.LevelWarning},
		{"critical", 95, 100, "Usage: 95% of capacity", stats.LevelDanger},
		{"fractional", 1, 3, "Usage: 33.3% of capacity", stats.LevelSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := stats.NewCapacity(tt.connected, tt.total)
			assert.Equal(t, tt.description, c.Description)
			assert.Equal(t, tt.level, c.Level)
		})
	}
}
