package gatewayconfig_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/gateway-console/internal/adapter"
	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/gatewayconfig"
	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/mocks"
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

type testSyncMocks struct {
	ctrl  *gomock.Controller
	store *mocks.MockStore
	path  string
	sync  gatewayconfig.Synchronizer
}

// setupTestSynchronizer wires a synchronizer to a mock store and a real file system rooted in a temp dir
func setupTestSynchronizer(t *testing.T) *testSyncMocks {
	ctrl := gomock.NewController(t)
	tm := &testSyncMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		path:  filepath.Join(t.TempDir(), "soketi", "config.json"),
	}
	tm.sync = gatewayconfig.NewSynchronizer(
		gatewayconfig.Config{Path: tm.path, Options: defaultOptions},
		tm.store,
		adapter.NewFileSystem(),
		adapter.NewJSON(),
	)
	return tm
}

func activeFilter() store.ApplicationFilter {
	return store.ApplicationFilter{ActiveOnly: true}
}

func TestSyncToGateway_WritesConfig(t *testing.T) {
	tm := setupTestSynchronizer(t)
	defer tm.ctrl.Finish()

	apps := []schema.Application{buildApp("app-b"), buildApp("app-a")}
	tm.store.EXPECT().ListApplications(gomock.Any(), activeFilter()).Return(apps, nil)

	require.True(t, tm.sync.SyncToGateway(context.Background()))

	data, err := os.ReadFile(tm.path)
	require.NoError(t, err)
	expected, err := gatewayconfig.Render(adapter.NewJSON(), gatewayconfig.Build(apps, defaultOptions))
	require.NoError(t, err)
	assert.Equal(t, expected, data)

	info, err := os.Stat(tm.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	// first write has nothing to back up
	_, err = os.Stat(tm.path + ".backup")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// no temp files are left behind
	entries, err := os.ReadDir(filepath.Dir(tm.path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSyncToGateway_Idempotent(t *testing.T) {
	tm := setupTestSynchronizer(t)
	defer tm.ctrl.Finish()

	apps := []schema.Application{buildApp("app-2"), buildApp("app-1")}
	tm.store.EXPECT().ListApplications(gomock.Any(), activeFilter()).Return(apps, nil).Times(2)

	require.True(t, tm.sync.SyncToGateway(context.Background()))
	first, err := os.ReadFile(tm.path)
	require.NoError(t, err)

	require.True(t, tm.sync.SyncToGateway(context.Background()))
	second, err := os.ReadFile(tm.path)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	backup, err := os.ReadFile(tm.path + ".backup")
	require.NoError(t, err)
	assert.Equal(t, first, backup)
}

func TestSyncToGateway_BacksUpPreviousContent(t *testing.T) {
	tm := setupTestSynchronizer(t)
	defer tm.ctrl.Finish()

	require.NoError(t, os.MkdirAll(filepath.Dir(tm.path), 0755))
	require.NoError(t, os.WriteFile(tm.path, []byte(`{"previous":true}`), 0600))
	require.NoError(t, os.WriteFile(tm.path+".backup", []byte(`{"older":true}`), 0600))

	tm.store.EXPECT().ListApplications(gomock.Any(), activeFilter()).Return(nil, nil)

	require.True(t, tm.sync.SyncToGateway(context.Background()))

	backup, err := os.ReadFile(tm.path + ".backup")
	require.NoError(t, err)
	assert.Equal(t, `{"previous":true}`, string(backup))

	current, err := os.ReadFile(tm.path)
	require.NoError(t, err)
	assert.Contains(t, string(current), `"apps": []`)
}

func TestSyncToGateway_OmitsDeletedApplication(t *testing.T) {
	tm := setupTestSynchronizer(t)
	defer tm.ctrl.Finish()

	gomock.InOrder(
		tm.store.EXPECT().ListApplications(gomock.Any(), activeFilter()).
			Return([]schema.Application{buildApp("app-a"), buildApp("app-b")}, nil),
		tm.store.EXPECT().ListApplications(gomock.Any(), activeFilter()).
			Return([]schema.Application{buildApp("app-b")}, nil),
	)

	require.True(t, tm.sync.SyncToGateway(context.Background()))
	require.True(t, tm.sync.SyncToGateway(context.Background()))

	data, err := os.ReadFile(tm.path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"app-a"`)
	assert.Contains(t, string(data), `"app-b"`)
}

func TestSyncToGateway_Failures(t *testing.T) {
	t.Run("store error", func(t *testing.T) {
		tm := setupTestSynchronizer(t)
		defer tm.ctrl.Finish()

		tm.store.EXPECT().ListApplications(gomock.Any(), activeFilter()).Return(nil, errors.New("db down"))

		assert.False(t, tm.sync.SyncToGateway(context.Background()))
		_, err := os.Stat(tm.path)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("unwritable directory", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockFS := mocks.NewMockFileSystem(ctrl)
		s := gatewayconfig.NewSynchronizer(
			gatewayconfig.Config{Path: "/etc/soketi/config.json", Options: defaultOptions},
			mockStore, mockFS, adapter.NewJSON(),
		)

		mockStore.EXPECT().ListApplications(gomock.Any(), activeFilter()).Return(nil, nil)
		mockFS.EXPECT().ReadFile("/etc/soketi/config.json").Return(nil, os.ErrNotExist)
		mockFS.EXPECT().MkdirAll("/etc/soketi", os.FileMode(0755)).Return(os.ErrPermission)

		assert.False(t, s.SyncToGateway(context.Background()))
	})

	t.Run("unreadable current config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockFS := mocks.NewMockFileSystem(ctrl)
		s := gatewayconfig.NewSynchronizer(
			gatewayconfig.Config{Path: "/etc/soketi/config.json", Options: defaultOptions},
			mockStore, mockFS, adapter.NewJSON(),
		)

		mockStore.EXPECT().ListApplications(gomock.Any(), activeFilter()).Return(nil, nil)
		mockFS.EXPECT().ReadFile("/etc/soketi/config.json").Return(nil, os.ErrPermission)

		assert.False(t, s.SyncToGateway(context.Background()))
	})

	t.Run("render error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockStore(ctrl)
		mockJSON := mocks.NewMockJSON(ctrl)
		s := gatewayconfig.NewSynchronizer(
			gatewayconfig.Config{Path: filepath.Join(t.TempDir(), "config.json"), Options: defaultOptions},
			mockStore, adapter.NewFileSystem(), mockJSON,
		)

		mockStore.EXPECT().ListApplications(gomock.Any(), activeFilter()).Return(nil, nil)
		mockJSON.EXPECT().MarshalIndent(gomock.Any(), "    ").Return(nil, errors.New("encode failed"))

		assert.False(t, s.SyncToGateway(context.Background()))
	})
}

func TestSyncFromConfig_MissingFile(t *testing.T) {
	tm := setupTestSynchronizer(t)
	defer tm.ctrl.Finish()

	result, ok := tm.sync.SyncFromConfig(context.Background())
	require.True(t, ok)
	assert.Equal(t, &gatewayconfig.ImportResult{}, result)
}

func TestSyncFromConfig_InvalidJSON(t *testing.T) {
	tm := setupTestSynchronizer(t)
	defer tm.ctrl.Finish()

	require.NoError(t, os.MkdirAll(filepath.Dir(tm.path), 0755))
	require.NoError(t, os.WriteFile(tm.path, []byte(`{"appManager":`), 0600))

	result, ok := tm.sync.SyncFromConfig(context.Background())
	assert.False(t, ok)
	assert.Equal(t, &gatewayconfig.ImportResult{}, result)
}

func TestSyncFromConfig_UpsertsRows(t *testing.T) {
	tm := setupTestSynchronizer(t)
	defer tm.ctrl.Finish()

	content := `{
  "appManager": {"driver": "array", "array": {"apps": [
    {"id": "app-new", "key": "new-key", "secret": "new-secret"},
    {"id": "app-old", "key": "old-key", "secret": "old-secret", "name": "Renamed", "maxConnections": 0,
     "enableClientMessages": false, "enableStats": false,
     "webhooks": {
       "member_added": {"url": "https://hooks.example.com/a", "headers": {"X-Token": "t"}},
       "channel_occupied": {"url": "https://hooks.example.com/a", "headers": {"X-Token": "t"}},
       "channel_created": {"url": "https://hooks.example.com/ignored", "headers": {}}
     }},
    {"id": "", "key": "k", "secret": "s"},
    {"id": "app-nokey"},
    {"id": "app-dup", "key": "dup-key", "secret": "dup-secret"}
  ]}}
}`
	require.NoError(t, os.MkdirAll(filepath.Dir(tm.path), 0755))
	require.NoError(t, os.WriteFile(tm.path, []byte(content), 0600))

	old := buildApp("app-old")
	old.AppKey = "old-key"
	old.AppSecret = "old-secret"
	old.MaxClientEventsPerSec = 50
	old.IsActive = false

	tm.store.EXPECT().GetApplicationByAppID(gomock.Any(), "app-new").Return(nil, nil)
	tm.store.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, app *schema.Application) error {
			assert.Equal(t, "app-new", app.AppID)
			assert.Equal(t, "new-key", app.AppKey)
			assert.Equal(t, "new-secret", app.AppSecret)
			assert.Equal(t, "App app-new", app.Name)
			assert.Equal(t, domain.DEFAULT_IMPORT_MAX_CONNECTIONS, app.MaxConnections)
			assert.True(t, app.EnableClientMessages)
			assert.True(t, app.EnableStatistics)
			assert.True(t, app.IsActive)
			assert.False(t, app.EnableWebhooks)
			return nil
		})

	tm.store.EXPECT().GetApplicationByAppID(gomock.Any(), "app-old").Return(&old, nil)
	tm.store.EXPECT().UpdateApplication(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, app *schema.Application) error {
			assert.Equal(t, "Renamed", app.Name)
			assert.Equal(t, 0, app.MaxConnections)
			assert.Equal(t, 50, app.MaxClientEventsPerSec)
			assert.False(t, app.EnableClientMessages)
			assert.False(t, app.EnableStatistics)
			assert.True(t, app.IsActive)
			assert.True(t, app.EnableWebhooks)
			assert.Equal(t, []schema.WebhookTarget{{URL: "https://hooks.example.com/a"}}, app.Targets())
			assert.Equal(t, []string{"channel_occupied", "member_added"}, app.Events())
			assert.Equal(t, map[string]string{"X-Token": "t"}, app.Headers())
			return nil
		})

	tm.store.EXPECT().GetApplicationByAppID(gomock.Any(), "app-nokey").Return(nil, nil)

	tm.store.EXPECT().GetApplicationByAppID(gomock.Any(), "app-dup").Return(nil, nil)
	tm.store.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateIdentifier)

	result, ok := tm.sync.SyncFromConfig(context.Background())
	require.True(t, ok)
	assert.Equal(t, &gatewayconfig.ImportResult{Created: 1, Updated: 1, Failed: 3}, result)
}

func TestSyncFromConfig_RejectsNegativeMaxConnections(t *testing.T) {
	tm := setupTestSynchronizer(t)
	defer tm.ctrl.Finish()

	content := `{"appManager": {"driver": "array", "array": {"apps": [
    {"id": "app-neg", "key": "neg-key", "secret": "neg-secret", "maxConnections": -5},
    {"id": "app-ok", "key": "ok-key", "secret": "ok-secret", "maxConnections": 10}
  ]}}}`
	require.NoError(t, os.MkdirAll(filepath.Dir(tm.path), 0755))
	require.NoError(t, os.WriteFile(tm.path, []byte(content), 0600))

	// app-neg never reaches the store
	tm.store.EXPECT().GetApplicationByAppID(gomock.Any(), "app-ok").Return(nil, nil)
	tm.store.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, app *schema.Application) error {
			assert.Equal(t, "app-ok", app.AppID)
			assert.Equal(t, 10, app.MaxConnections)
			return nil
		})

	result, ok := tm.sync.SyncFromConfig(context.Background())
	require.True(t, ok)
	assert.Equal(t, &gatewayconfig.ImportResult{Created: 1, Failed: 1}, result)
}

func TestSync_RoundTrip(t *testing.T) {
	tm := setupTestSynchronizer(t)
	defer tm.ctrl.Finish()

	limited := buildApp("app-limited")
	limited.MaxConnections = 25
	limited.EnableClientMessages = false
	unlimited := buildApp("app-unlimited")
	unlimited.MaxConnections = 0
	unlimited.EnableStatistics = false
	hooked := withWebhooks(buildApp("app-hooked"), []string{"https://hooks.example.com/x"}, []string{"member_removed", "client_event"},
		map[string]string{"Authorization": "Bearer abc"})
	apps := []schema.Application{limited, unlimited, hooked}

	tm.store.EXPECT().ListApplications(gomock.Any(), activeFilter()).Return(apps, nil)
	require.True(t, tm.sync.SyncToGateway(context.Background()))

	imported := map[string]*schema.Application{}
	tm.store.EXPECT().GetApplicationByAppID(gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)
	tm.store.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, app *schema.Application) error {
			imported[app.AppID] = app
			return nil
		}).Times(3)

	result, ok := tm.sync.SyncFromConfig(context.Background())
	require.True(t, ok)
	assert.Equal(t, 3, result.Created)

	require.Len(t, imported, len(apps))
	for _, want := range apps {
		got := imported[want.AppID]
		require.NotNil(t, got, want.AppID)
		assert.Equal(t, want.AppKey, got.AppKey)
		assert.Equal(t, want.AppSecret, got.AppSecret)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.MaxConnections, got.MaxConnections)
		assert.Equal(t, want.EnableClientMessages, got.EnableClientMessages)
		assert.Equal(t, want.EnableStatistics, got.EnableStatistics)
		assert.Equal(t, want.EnableWebhooks, got.EnableWebhooks)
	}

	got := imported["app-hooked"]
	assert.Equal(t, []schema.WebhookTarget{{URL: "https://hooks.example.com/x"}}, got.Targets())
	assert.ElementsMatch(t, []string{"member_removed", "client_event"}, got.Events())
	assert.Equal(t, map[string]string{"Authorization": "Bearer abc"}, got.Headers())
}

func TestSynchronizer_Path(t *testing.T) {
	tm := setupTestSynchronizer(t)
	defer tm.ctrl.Finish()

	assert.Equal(t, tm.path, tm.sync.Path())
}
