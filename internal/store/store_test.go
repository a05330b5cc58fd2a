package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestApplication creates a test application with unique credentials
func buildTestApplication(suffix string) *schema.Application {
	return &schema.Application{
		AppID:            fmt.Sprintf("app-%s", suffix),
		AppKey:           fmt.Sprintf("key-%s", suffix),
		AppSecret:        fmt.Sprintf("secret-%s", suffix),
		Name:             fmt.Sprintf("Test App %s", suffix),
		MaxConnections:   100,
		EnableStatistics: true,
		IsActive:         true,
		WebhookURLs:      datatypes.NewJSONType([]schema.WebhookTarget{}),
		WebhookHeaders:   datatypes.NewJSONType(map[string]string{}),
		WebhookEvents:    datatypes.NewJSONType([]string{}),
	}
}

// buildTestWebhookRecord creates a pending webhook record for an application
func buildTestWebhookRecord(appID string) *schema.WebhookRecord {
	return &schema.WebhookRecord{
		AppID:      appID,
		EventName:  "channel_occupied",
		WebhookURL: "https://example.com/hook",
		Payload:    datatypes.JSON(`{"channel":"presence-room"}`),
		Headers:    datatypes.NewJSONType(map[string]string{"X-Test": "1"}),
		Status:     schema.WebhookStatusPending,
	}
}

// buildTestConnection creates a connected connection row for an application
func buildTestConnection(appID, socketID string) *schema.Connection {
	now := time.Now().UTC()
	return &schema.Connection{
		ConnectionID: appID + ":" + socketID,
		AppID:        appID,
		SocketID:     socketID,
		IsConnected:  true,
		ConnectedAt:  &now,
	}
}

func mustCreateApplication(t *testing.T, store Store, suffix string) *schema.Application {
	t.Helper()
	app := buildTestApplication(suffix)
	require.NoError(t, store.CreateApplication(context.Background(), app))
	return app
}

// =============================================================================
// Test: Applications
// =============================================================================

func testApplications(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get application", func(t *testing.T) {
		app := buildTestApplication("create1")
		app.WebhookURLs = datatypes.NewJSONType([]schema.WebhookTarget{{URL: "https://a.example.com/h"}})
		app.WebhookEvents = datatypes.NewJSONType([]string{"channel_occupied"})

		err := store.CreateApplication(ctx, app)
		require.NoError(t, err)
		assert.NotZero(t, app.ID)

		got, err := store.GetApplicationByAppID(ctx, "app-create1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "key-create1", got.AppKey)
		assert.Equal(t, "secret-create1", got.AppSecret)
		assert.Equal(t, 100, got.MaxConnections)
		assert.True(t, got.IsActive)
		assert.Equal(t, []schema.WebhookTarget{{URL: "https://a.example.com/h"}}, got.Targets())
		assert.Equal(t, []string{"channel_occupied"}, got.Events())
	})

	t.Run("zero values are persisted", func(t *testing.T) {
		app := buildTestApplication("zero1")
		app.MaxConnections = 0
		app.IsActive = false
		app.EnableStatistics = false

		require.NoError(t, store.CreateApplication(ctx, app))

		got, err := store.GetApplicationByAppID(ctx, "app-zero1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, 0, got.MaxConnections)
		assert.False(t, got.IsActive)
		assert.False(t, got.EnableStatistics)
	})

	t.Run("get missing application returns nil", func(t *testing.T) {
		got, err := store.GetApplicationByAppID(ctx, "app-missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate identifiers are rejected", func(t *testing.T) {
		mustCreateApplication(t, store, "dup1")

		tests := []struct {
			name   string
			mutate func(app *schema.Application)
		}{
			{"duplicate app_id", func(app *schema.Application) { app.AppID = "app-dup1" }},
			{"duplicate app_key", func(app *schema.Application) { app.AppKey = "key-dup1" }},
			{"duplicate app_secret", func(app *schema.Application) { app.AppSecret = "secret-dup1" }},
		}

		for i, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				app := buildTestApplication(fmt.Sprintf("dup-other%d", i))
				tt.mutate(app)

				err := store.CreateApplication(ctx, app)
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrDuplicateIdentifier)
			})
		}

		// The surrounding transaction stays usable after a violation
		got, err := store.GetApplicationByAppID(ctx, "app-dup1")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("update writes mutable columns only", func(t *testing.T) {
		app := mustCreateApplication(t, store, "upd1")

		app.Name = "Renamed"
		app.MaxConnections = 0
		app.EnableWebhooks = true
		app.IsActive = false
		app.AppSecret = "should-not-change"
		app.WebhookHeaders = datatypes.NewJSONType(map[string]string{"Authorization": "Bearer x"})

		require.NoError(t, store.UpdateApplication(ctx, app))

		got, err := store.GetApplicationByAppID(ctx, "app-upd1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, 0, got.MaxConnections)
		assert.True(t, got.EnableWebhooks)
		assert.False(t, got.IsActive)
		assert.Equal(t, "secret-upd1", got.AppSecret)
		assert.Equal(t, map[string]string{"Authorization": "Bearer x"}, got.Headers())
	})

	t.Run("update missing application", func(t *testing.T) {
		app := buildTestApplication("upd-missing")
		err := store.UpdateApplication(ctx, app)
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})

	t.Run("list applications ordered and filtered", func(t *testing.T) {
		mustCreateApplication(t, store, "list-c")
		mustCreateApplication(t, store, "list-a")
		inactive := buildTestApplication("list-b")
		inactive.IsActive = false
		require.NoError(t, store.CreateApplication(ctx, inactive))

		all, err := store.ListApplications(ctx, ApplicationFilter{})
		require.NoError(t, err)
		var ids []string
		for _, app := range all {
			if strings.HasPrefix(app.AppID, "app-list-") {
				ids = append(ids, app.AppID)
			}
		}
		assert.Equal(t, []string{"app-list-a", "app-list-b", "app-list-c"}, ids)

		active, err := store.ListApplications(ctx, ApplicationFilter{ActiveOnly: true})
		require.NoError(t, err)
		for _, app := range active {
			assert.True(t, app.IsActive)
			assert.NotEqual(t, "app-list-b", app.AppID)
		}
	})

	t.Run("identifier exists includes soft-deleted rows", func(t *testing.T) {
		mustCreateApplication(t, store, "ident1")

		exists, err := store.IdentifierExists(ctx, schema.IdentifierFieldAppKey, "key-ident1")
		require.NoError(t, err)
		assert.True(t, exists)

		_, err = store.DeleteApplication(ctx, "app-ident1", false)
		require.NoError(t, err)

		exists, err = store.IdentifierExists(ctx, schema.IdentifierFieldAppID, "app-ident1")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = store.IdentifierExists(ctx, schema.IdentifierFieldAppSecret, "nope")
		require.NoError(t, err)
		assert.False(t, exists)

		_, err = store.IdentifierExists(ctx, schema.IdentifierField("name"), "x")
		assert.Error(t, err)
	})

	t.Run("application counts", func(t *testing.T) {
		before, err := store.GetApplicationCounts(ctx)
		require.NoError(t, err)

		limited := buildTestApplication("cnt1")
		limited.MaxConnections = 50
		require.NoError(t, store.CreateApplication(ctx, limited))

		unlimited := buildTestApplication("cnt2")
		unlimited.MaxConnections = 0
		require.NoError(t, store.CreateApplication(ctx, unlimited))

		inactive := buildTestApplication("cnt3")
		inactive.IsActive = false
		require.NoError(t, store.CreateApplication(ctx, inactive))

		after, err := store.GetApplicationCounts(ctx)
		require.NoError(t, err)
		assert.Equal(t, before.Total+3, after.Total)
		assert.Equal(t, before.Active+2, after.Active)
		assert.Equal(t, before.ActiveCapacity+50, after.ActiveCapacity)
		assert.Equal(t, before.LimitedActive+1, after.LimitedActive)
	})
}

// =============================================================================
// Test: Delete / Restore
// =============================================================================

func testDeleteApplication(t *testing.T, store Store) {
	ctx := context.Background()

	seed := func(t *testing.T, suffix string) *schema.Application {
		app := mustCreateApplication(t, store, suffix)
		for i := 0; i < 3; i++ {
			require.NoError(t, store.UpsertConnection(ctx, buildTestConnection(app.AppID, fmt.Sprintf("1.%d", i))))
		}
		for i := 0; i < 2; i++ {
			require.NoError(t, store.CreateWebhookRecord(ctx, buildTestWebhookRecord(app.AppID)))
		}
		require.NoError(t, store.CreateDebugEvent(ctx, &schema.DebugEvent{
			EventID:   "01HZX0000000000000000" + suffix[len(suffix)-5:],
			AppID:     app.AppID,
			EventType: domain.DebugEventTypeConnection,
			Timestamp: time.Now().UTC(),
		}))
		return app
	}

	t.Run("soft delete cascades dependents", func(t *testing.T) {
		app := seed(t, "del-soft")

		result, err := store.DeleteApplication(ctx, app.AppID, false)
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.Connections)
		assert.Equal(t, int64(2), result.Webhooks)
		assert.Equal(t, int64(1), result.DebugEvents)

		got, err := store.GetApplicationByAppID(ctx, app.AppID)
		require.NoError(t, err)
		assert.Nil(t, got)

		deleted, err := store.GetDeletedApplicationByAppID(ctx, app.AppID)
		require.NoError(t, err)
		require.NotNil(t, deleted)

		count, err := store.CountConnectedByAppID(ctx, app.AppID)
		require.NoError(t, err)
		assert.Zero(t, count)

		recs, total, err := store.ListWebhookRecords(ctx, WebhookRecordFilter{AppID: app.AppID})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, recs)

		active, err := store.ListApplications(ctx, ApplicationFilter{ActiveOnly: true})
		require.NoError(t, err)
		for _, a := range active {
			assert.NotEqual(t, app.AppID, a.AppID)
		}
	})

	t.Run("restore soft-deleted application", func(t *testing.T) {
		app := mustCreateApplication(t, store, "restore1")
		_, err := store.DeleteApplication(ctx, app.AppID, false)
		require.NoError(t, err)

		restored, err := store.RestoreApplication(ctx, app.AppID)
		require.NoError(t, err)
		require.NotNil(t, restored)
		assert.Equal(t, app.AppKey, restored.AppKey)

		_, err = store.RestoreApplication(ctx, app.AppID)
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})

	t.Run("hard delete removes the row", func(t *testing.T) {
		app := seed(t, "del-hard")

		_, err := store.DeleteApplication(ctx, app.AppID, true)
		require.NoError(t, err)

		deleted, err := store.GetDeletedApplicationByAppID(ctx, app.AppID)
		require.NoError(t, err)
		assert.Nil(t, deleted)

		exists, err := store.IdentifierExists(ctx, schema.IdentifierFieldAppID, app.AppID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("hard delete purges a soft-deleted application", func(t *testing.T) {
		app := mustCreateApplication(t, store, "del-both")
		_, err := store.DeleteApplication(ctx, app.AppID, false)
		require.NoError(t, err)

		_, err = store.DeleteApplication(ctx, app.AppID, true)
		require.NoError(t, err)

		exists, err := store.IdentifierExists(ctx, schema.IdentifierFieldAppID, app.AppID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("delete missing application", func(t *testing.T) {
		_, err := store.DeleteApplication(ctx, "app-nothere", false)
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})
}

// =============================================================================
// Test: Connections
// =============================================================================

func testConnections(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("upsert, count and disconnect", func(t *testing.T) {
		app := mustCreateApplication(t, store, "conn1")

		before, err := store.CountConnected(ctx)
		require.NoError(t, err)

		require.NoError(t, store.UpsertConnection(ctx, buildTestConnection(app.AppID, "10.1")))
		require.NoError(t, store.UpsertConnection(ctx, buildTestConnection(app.AppID, "10.2")))
		// Reconnect of the same socket does not create a second row
		require.NoError(t, store.UpsertConnection(ctx, buildTestConnection(app.AppID, "10.2")))

		count, err := store.CountConnectedByAppID(ctx, app.AppID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		now := time.Now().UTC()
		ok, err := store.MarkConnectionDisconnected(ctx, app.AppID+":10.1", now)
		require.NoError(t, err)
		assert.True(t, ok)

		// Already disconnected
		ok, err = store.MarkConnectionDisconnected(ctx, app.AppID+":10.1", now)
		require.NoError(t, err)
		assert.False(t, ok)

		count, err = store.CountConnectedByAppID(ctx, app.AppID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		after, err := store.CountConnected(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+1, after)

		conns, err := store.ListConnections(ctx, ConnectionFilter{AppID: app.AppID})
		require.NoError(t, err)
		require.Len(t, conns, 2)
		for _, c := range conns {
			if c.SocketID == "10.1" {
				assert.False(t, c.IsConnected)
				assert.NotNil(t, c.DisconnectedAt)
			} else {
				assert.True(t, c.IsConnected)
				assert.Nil(t, c.DisconnectedAt)
			}
		}

		connected, err := store.ListConnections(ctx, ConnectionFilter{AppID: app.AppID, ConnectedOnly: true})
		require.NoError(t, err)
		require.Len(t, connected, 1)
		assert.Equal(t, "10.2", connected[0].SocketID)
	})
}

// =============================================================================
// Test: Webhook records
// =============================================================================

func testWebhookRecords(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		rec := buildTestWebhookRecord("app-wh1")
		require.NoError(t, store.CreateWebhookRecord(ctx, rec))
		assert.NotZero(t, rec.ID)

		got, err := store.GetWebhookRecordByID(ctx, rec.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, schema.WebhookStatusPending, got.Status)
		assert.Equal(t, 0, got.Attempts)
		assert.Equal(t, 0, got.Version)
		assert.Equal(t, map[string]string{"X-Test": "1"}, got.Headers.Data())
		assert.JSONEq(t, `{"channel":"presence-room"}`, string(got.Payload))

		missing, err := store.GetWebhookRecordByID(ctx, rec.ID+1000)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("versioned save", func(t *testing.T) {
		rec := buildTestWebhookRecord("app-wh2")
		require.NoError(t, store.CreateWebhookRecord(ctx, rec))

		status := 500
		body := "oops"
		next := time.Now().UTC().Add(2 * time.Minute)
		rec.Status = schema.WebhookStatusFailed
		rec.Attempts = 1
		rec.ResponseStatus = &status
		rec.ResponseBody = &body
		rec.NextRetryAt = &next

		require.NoError(t, store.SaveWebhookRecordState(ctx, rec))
		assert.Equal(t, 1, rec.Version)

		got, err := store.GetWebhookRecordByID(ctx, rec.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, schema.WebhookStatusFailed, got.Status)
		assert.Equal(t, 1, got.Attempts)
		assert.Equal(t, 1, got.Version)
		require.NotNil(t, got.ResponseStatus)
		assert.Equal(t, 500, *got.ResponseStatus)

		// A stale copy loses the race
		stale := *got
		stale.Version = 0
		err = store.SaveWebhookRecordState(ctx, &stale)
		assert.ErrorIs(t, err, domain.ErrConcurrentUpdate)
	})

	t.Run("retryable and pending selection", func(t *testing.T) {
		appID := "app-wh-retry"
		now := time.Now().UTC()
		past := now.Add(-time.Minute)
		future := now.Add(time.Hour)

		mk := func(status schema.WebhookStatus, attempts int, next *time.Time) uint64 {
			rec := buildTestWebhookRecord(appID)
			require.NoError(t, store.CreateWebhookRecord(ctx, rec))
			rec.Status = status
			rec.Attempts = attempts
			rec.NextRetryAt = next
			if status == schema.WebhookStatusSent {
				code := 200
				rec.ResponseStatus = &code
				rec.SentAt = &now
			}
			require.NoError(t, store.SaveWebhookRecordState(ctx, rec))
			return rec.ID
		}

		due := mk(schema.WebhookStatusFailed, 2, &past)
		noNext := mk(schema.WebhookStatusFailed, 1, nil)
		notYet := mk(schema.WebhookStatusFailed, 1, &future)
		exhausted := mk(schema.WebhookStatusFailed, 5, &past)
		sent := mk(schema.WebhookStatusSent, 0, nil)
		pending := mk(schema.WebhookStatusPending, 0, nil)

		retryable, err := store.ListRetryableWebhookRecords(ctx, now, 0)
		require.NoError(t, err)
		ids := map[uint64]bool{}
		for _, r := range retryable {
			ids[r.ID] = true
		}
		assert.True(t, ids[due])
		assert.True(t, ids[noNext])
		assert.False(t, ids[notYet])
		assert.False(t, ids[exhausted])
		assert.False(t, ids[sent])
		assert.False(t, ids[pending])

		pendingRecs, err := store.ListPendingWebhookRecords(ctx, 0)
		require.NoError(t, err)
		found := false
		for _, r := range pendingRecs {
			assert.Equal(t, schema.WebhookStatusPending, r.Status)
			if r.ID == pending {
				found = true
			}
		}
		assert.True(t, found)

		byIDs, err := store.GetWebhookRecordsByIDs(ctx, []uint64{sent, due, 999999})
		require.NoError(t, err)
		require.Len(t, byIDs, 2)
		assert.Equal(t, due, byIDs[0].ID)
		assert.Equal(t, sent, byIDs[1].ID)

		failed := schema.WebhookStatusFailed
		list, total, err := store.ListWebhookRecords(ctx, WebhookRecordFilter{AppID: appID, Status: &failed, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		assert.Len(t, list, 2)
		assert.Greater(t, list[0].ID, list[1].ID)

		ready, readyTotal, err := store.ListWebhookRecords(ctx, WebhookRecordFilter{AppID: appID, ReadyForRetry: true, RetryAt: now})
		require.NoError(t, err)
		assert.Equal(t, int64(2), readyTotal)
		readyIDs := []uint64{}
		for _, r := range ready {
			readyIDs = append(readyIDs, r.ID)
		}
		assert.ElementsMatch(t, []uint64{due, noNext}, readyIDs)
	})

	t.Run("cleanup and counts", func(t *testing.T) {
		old := buildTestWebhookRecord("app-wh-old")
		old.CreatedAt = time.Now().UTC().Add(-31 * 24 * time.Hour)
		require.NoError(t, store.CreateWebhookRecord(ctx, old))

		fresh := buildTestWebhookRecord("app-wh-old")
		require.NoError(t, store.CreateWebhookRecord(ctx, fresh))

		counts, err := store.CountWebhookRecordsByStatus(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, counts[schema.WebhookStatusPending], int64(2))
		assert.Contains(t, counts, schema.WebhookStatusSent)
		assert.Contains(t, counts, schema.WebhookStatusFailed)

		deleted, err := store.DeleteWebhookRecordsCreatedBefore(ctx, time.Now().UTC().Add(-domain.WEBHOOK_RETENTION_WINDOW))
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		got, err := store.GetWebhookRecordByID(ctx, old.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = store.GetWebhookRecordByID(ctx, fresh.ID)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})
}

// =============================================================================
// Test: Debug events
// =============================================================================

func testDebugEvents(t *testing.T, store Store) {
	ctx := context.Background()

	channel := "private-a"
	base := time.Now().UTC()
	events := []schema.DebugEvent{
		{EventID: "01J00000000000000000000001", AppID: "app-dbg", EventType: domain.DebugEventTypeConnection, Timestamp: base},
		{EventID: "01J00000000000000000000002", AppID: "app-dbg", EventType: domain.DebugEventTypeMessage, Channel: &channel, Payload: datatypes.JSON(`{"event":"client-typing"}`), Timestamp: base.Add(time.Second)},
		{EventID: "01J00000000000000000000003", AppID: "app-dbg", EventType: domain.DebugEventTypeMessage, Timestamp: base.Add(2 * time.Second)},
		{EventID: "01J00000000000000000000004", AppID: "app-other", EventType: domain.DebugEventTypeMessage, Timestamp: base},
	}
	for i := range events {
		require.NoError(t, store.CreateDebugEvent(ctx, &events[i]))
	}

	got, err := store.ListDebugEvents(ctx, DebugEventFilter{AppID: "app-dbg", EventType: domain.DebugEventTypeMessage})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "01J00000000000000000000003", got[0].EventID)
	assert.Equal(t, "01J00000000000000000000002", got[1].EventID)

	limited, err := store.ListDebugEvents(ctx, DebugEventFilter{AppID: "app-dbg", Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

// =============================================================================
// Test: Connection pool settings
// =============================================================================

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	tests := []struct {
		name         string
		open         int
		idle         int
		life         time.Duration
		idleTime     time.Duration
		wantOpen     int
		wantIdle     int
		wantLife     time.Duration
		wantIdleTime time.Duration
	}{
		{"defaults", 0, 0, 0, 0, 20, 5, 5 * time.Minute, 10 * time.Minute},
		{"idle clamped to open", 3, 10, time.Minute, time.Minute, 3, 3, time.Minute, time.Minute},
		{"explicit values kept", 50, 10, time.Hour, 2 * time.Minute, 50, 10, time.Hour, 2 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, idle, life, idleTime := NormalizeConnectionPoolSettings(tt.open, tt.idle, tt.life, tt.idleTime)
			assert.Equal(t, tt.wantOpen, open)
			assert.Equal(t, tt.wantIdle, idle)
			assert.Equal(t, tt.wantLife, life)
			assert.Equal(t, tt.wantIdleTime, idleTime)
		})
	}
}

// RunStoreTests runs all store tests against a Store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Applications", testApplications},
		{"DeleteApplication", testDeleteApplication},
		{"Connections", testConnections},
		{"WebhookRecords", testWebhookRecords},
		{"DebugEvents", testDebugEvents},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
