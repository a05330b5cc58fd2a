package rest_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/gateway-console/internal/api/middleware"
	"github.com/feral-file/gateway-console/internal/api/rest"
	"github.com/feral-file/gateway-console/internal/api/shared/dto"
	apierrors "github.com/feral-file/gateway-console/internal/api/shared/errors"
	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/metrics"
	"github.com/feral-file/gateway-console/internal/mocks"
	"github.com/feral-file/gateway-console/internal/store/schema"
	"github.com/feral-file/gateway-console/internal/webhook"
)

const (
	testAPIKey       = "test-key"
	testGatewayToken = "gw-secret"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

// testHandlerMocks contains all the mocks needed for testing the handlers
type testHandlerMocks struct {
	ctrl     *gomock.Controller
	executor *mocks.MockAPIExecutor
	router   *gin.Engine
}

func setupTestHandler(t *testing.T) *testHandlerMocks {
	ctrl := gomock.NewController(t)

	tm := &testHandlerMocks{
		ctrl:     ctrl,
		executor: mocks.NewMockAPIExecutor(ctrl),
		router:   gin.New(),
	}
	rest.SetupRoutes(tm.router, rest.NewHandler(tm.executor), rest.RouteConfig{
		Auth:         middleware.AuthConfig{APIKeys: []string{testAPIKey}},
		GatewayToken: testGatewayToken,
	})

	return tm
}

func tearDownTestHandler(tm *testHandlerMocks) {
	tm.ctrl.Finish()
}

// do sends an operator request authenticated with the test API key
func (tm *testHandlerMocks) do(method, path, body string) *httptest.ResponseRecorder {
	return tm.doWithAuth(method, path, body, "ApiKey "+testAPIKey)
}

func (tm *testHandlerMocks) doWithAuth(method, path, body, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)
	return w
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthCheck(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := tm.doWithAuth(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"gateway-console"}`, w.Body.String())
}

func TestOperatorRoutesRequireAuth(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := tm.doWithAuth(http.MethodGet, "/api/v1/apps", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = tm.doWithAuth(http.MethodGet, "/api/v1/apps", "", "Bearer "+testGatewayToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateApplication(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*testHandlerMocks)
		wantStatus int
		wantCode   apierrors.ErrorCode
	}{
		{
			name: "created",
			body: `{"name":"Chat","max_connections":0,"webhooks":{"enabled":true,"urls":["https://hooks.example.com"]}}`,
			setupMocks: func(tm *testHandlerMocks) {
				tm.executor.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, req dto.CreateApplicationRequest) (*dto.ApplicationMutationResponse, error) {
						assert.Equal(t, "Chat", req.Name)
						require.NotNil(t, req.MaxConnections)
						assert.Equal(t, 0, *req.MaxConnections)
						assert.True(t, req.Webhooks.Enabled)
						return &dto.ApplicationMutationResponse{
							Application:  &dto.ApplicationResponse{AppID: "app-1", AppSecret: "secret-1"},
							ConfigSynced: true,
						}, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			setupMocks: func(tm *testHandlerMocks) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apierrors.ErrCodeValidationFailed,
		},
		{
			name: "invalid application",
			body: `{"name":""}`,
			setupMocks: func(tm *testHandlerMocks) {
				tm.executor.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: name is required", domain.ErrInvalidApplication))
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   apierrors.ErrCodeValidationFailed,
		},
		{
			name: "duplicate identifier",
			body: `{"name":"Chat","app_id":"app-1"}`,
			setupMocks: func(tm *testHandlerMocks) {
				tm.executor.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateIdentifier)
			},
			wantStatus: http.StatusConflict,
			wantCode:   apierrors.ErrCodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestHandler(t)
			defer tearDownTestHandler(tm)
			tt.setupMocks(tm)

			w := tm.do(http.MethodPost, "/api/v1/apps", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, w).Code)
				return
			}
			var resp dto.ApplicationMutationResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "secret-1", resp.Application.AppSecret)
			assert.True(t, resp.ConfigSynced)
		})
	}
}

func TestApplicationErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   apierrors.ErrorCode
	}{
		{name: "not found", err: domain.ErrApplicationNotFound, wantStatus: http.StatusNotFound, wantCode: apierrors.ErrCodeNotFound},
		{name: "immutable field", err: fmt.Errorf("%w: app_key", domain.ErrImmutableField), wantStatus: http.StatusUnprocessableEntity, wantCode: apierrors.ErrCodeValidationFailed},
		{name: "duplicate", err: domain.ErrDuplicateIdentifier, wantStatus: http.StatusConflict, wantCode: apierrors.ErrCodeConflict},
		{name: "store failure", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError, wantCode: apierrors.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestHandler(t)
			defer tearDownTestHandler(tm)

			tm.executor.EXPECT().UpdateApplication(gomock.Any(), "app-1", gomock.Any()).Return(nil, tt.err)

			w := tm.do(http.MethodPatch, "/api/v1/apps/app-1", `{"name":"Renamed"}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			apiErr := decodeAPIError(t, w)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Empty(t, apiErr.Details)
			}
		})
	}
}

func TestUpdateApplication_PartialBody(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().UpdateApplication(gomock.Any(), "app-1", gomock.Any()).
		DoAndReturn(func(_ any, _ string, req dto.UpdateApplicationRequest) (*dto.ApplicationMutationResponse, error) {
			assert.Nil(t, req.Name)
			require.NotNil(t, req.WebhookURLs)
			assert.Empty(t, *req.WebhookURLs)
			require.NotNil(t, req.IsActive)
			assert.False(t, *req.IsActive)
			return &dto.ApplicationMutationResponse{ConfigSynced: true}, nil
		})

	w := tm.do(http.MethodPatch, "/api/v1/apps/app-1", `{"webhook_urls":[],"is_active":false}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteApplication(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().DeleteApplication(gomock.Any(), "app-1", true).
		Return(&dto.ApplicationMutationResponse{Hard: true, ConfigSynced: false}, nil)

	w := tm.do(http.MethodDelete, "/api/v1/apps/app-1?hard=true", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"hard":true,"config_synced":false}`, w.Body.String())
}

func TestListApplications(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().ListApplications(gomock.Any(), true).
		Return(&dto.ApplicationListResponse{Applications: []dto.ApplicationResponse{}, Total: 0}, nil)

	w := tm.do(http.MethodGet, "/api/v1/apps?active=true", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = tm.do(http.MethodGet, "/api/v1/apps?active=maybe", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGatewayConfigRoutes(t *testing.T) {
	t.Run("sync failure is a server error", func(t *testing.T) {
		tm := setupTestHandler(t)
		defer tearDownTestHandler(tm)

		tm.executor.EXPECT().SyncGatewayConfig(gomock.Any()).Return(&dto.ConfigSyncResponse{Synced: false, Path: "/etc/soketi/config.json"})

		w := tm.do(http.MethodPost, "/api/v1/gateway/config/sync", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"synced":false,"path":"/etc/soketi/config.json"}`, w.Body.String())
	})

	t.Run("import", func(t *testing.T) {
		tm := setupTestHandler(t)
		defer tearDownTestHandler(tm)

		resp := &dto.ConfigImportResponse{Imported: true, ConfigSynced: true, Path: "/etc/soketi/config.json"}
		resp.Created = 2
		tm.executor.EXPECT().ImportGatewayConfig(gomock.Any()).Return(resp)

		w := tm.do(http.MethodPost, "/api/v1/gateway/config/import", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"created":2,"updated":0,"failed":0,"imported":true,"path":"/etc/soketi/config.json","config_synced":true}`, w.Body.String())
	})
}

func TestListWebhooks(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMocks func(*testHandlerMocks)
		wantStatus int
	}{
		{
			name:  "filters and caps the limit",
			query: "?app_id=app-1&status=failed&ready_for_retry=true&limit=1000&offset=20",
			setupMocks: func(tm *testHandlerMocks) {
				failed := schema.WebhookStatusFailed
				limit, offset := 100, 20
				tm.executor.EXPECT().ListWebhooks(gomock.Any(), "app-1", &failed, true, &limit, &offset).
					Return(&dto.WebhookListResponse{Webhooks: []dto.WebhookResponse{}, Limit: 100, Offset: 20}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "defaults",
			query: "",
			setupMocks: func(tm *testHandlerMocks) {
				limit, offset := 20, 0
				tm.executor.EXPECT().ListWebhooks(gomock.Any(), "", nil, false, &limit, &offset).
					Return(&dto.WebhookListResponse{Webhooks: []dto.WebhookResponse{}, Limit: 20}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown status",
			query:      "?status=lost",
			setupMocks: func(tm *testHandlerMocks) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "negative offset",
			query:      "?offset=-1",
			setupMocks: func(tm *testHandlerMocks) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestHandler(t)
			defer tearDownTestHandler(tm)
			tt.setupMocks(tm)

			w := tm.do(http.MethodGet, "/api/v1/webhooks"+tt.query, "")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestWebhookRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setupMocks func(*testHandlerMocks)
		wantStatus int
	}{
		{
			name:       "invalid id",
			method:     http.MethodGet,
			path:       "/api/v1/webhooks/abc",
			setupMocks: func(tm *testHandlerMocks) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "missing record",
			method: http.MethodGet,
			path:   "/api/v1/webhooks/9",
			setupMocks: func(tm *testHandlerMocks) {
				tm.executor.EXPECT().GetWebhook(gomock.Any(), uint64(9)).Return(nil, domain.ErrWebhookNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "retry of an ineligible record",
			method: http.MethodPost,
			path:   "/api/v1/webhooks/9/retry",
			setupMocks: func(tm *testHandlerMocks) {
				tm.executor.EXPECT().RetryWebhook(gomock.Any(), uint64(9)).Return(nil, domain.ErrNotRetryable)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "test send of a sent record",
			method: http.MethodPost,
			path:   "/api/v1/webhooks/9/test",
			setupMocks: func(tm *testHandlerMocks) {
				tm.executor.EXPECT().TestWebhook(gomock.Any(), uint64(9)).
					Return(&webhook.TestResult{Status: webhook.TestStatusSuccess, ResponseStatus: 200}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "retry sweep without body",
			method: http.MethodPost,
			path:   "/api/v1/webhooks/retry",
			setupMocks: func(tm *testHandlerMocks) {
				tm.executor.EXPECT().RetryWebhooks(gomock.Any(), nil).Return(&webhook.SweepResult{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "retry sweep with ids",
			method: http.MethodPost,
			path:   "/api/v1/webhooks/retry",
			body:   `{"ids":[1,2]}`,
			setupMocks: func(tm *testHandlerMocks) {
				tm.executor.EXPECT().RetryWebhooks(gomock.Any(), []uint64{1, 2}).
					Return(&webhook.SweepResult{Requeued: []uint64{1}, Skipped: []uint64{2}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "mark sent requires a body",
			method:     http.MethodPost,
			path:       "/api/v1/webhooks/mark-sent",
			setupMocks: func(tm *testHandlerMocks) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "duplicate",
			method: http.MethodPost,
			path:   "/api/v1/webhooks/9/duplicate",
			setupMocks: func(tm *testHandlerMocks) {
				tm.executor.EXPECT().DuplicateWebhook(gomock.Any(), uint64(9)).Return(&dto.WebhookResponse{ID: 10}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "create with unknown application",
			method: http.MethodPost,
			path:   "/api/v1/webhooks",
			body:   `{"app_id":"missing","event_name":"channel_occupied","webhook_url":"https://hooks.example.com"}`,
			setupMocks: func(tm *testHandlerMocks) {
				tm.executor.EXPECT().CreateWebhook(gomock.Any(), gomock.Any()).Return(nil, domain.ErrApplicationNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "cleanup",
			method: http.MethodPost,
			path:   "/api/v1/webhooks/cleanup",
			setupMocks: func(tm *testHandlerMocks) {
				tm.executor.EXPECT().CleanupWebhooks(gomock.Any()).Return(&dto.CleanupResponse{Deleted: 3}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestHandler(t)
			defer tearDownTestHandler(tm)
			tt.setupMocks(tm)

			w := tm.do(tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestListConnectionsAndDebugEvents(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	connLimit, connOffset := 50, 0
	tm.executor.EXPECT().ListConnections(gomock.Any(), "app-1", true, &connLimit, &connOffset).
		Return(&dto.ConnectionListResponse{Connections: []dto.ConnectionResponse{}}, nil)
	eventLimit := 10
	tm.executor.EXPECT().ListDebugEvents(gomock.Any(), "app-1", "message", &eventLimit).
		Return(&dto.DebugEventListResponse{Events: []dto.DebugEventResponse{}}, nil)

	w := tm.do(http.MethodGet, "/api/v1/connections?app_id=app-1&connected=true", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = tm.do(http.MethodGet, "/api/v1/debug-events?app_id=app-1&event_type=message&limit=10", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServerRoutes(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().GetServerStats(gomock.Any()).Return(&metrics.ServerStats{Status: metrics.StatusOffline})
	tm.executor.EXPECT().TestServerConnection(gomock.Any()).Return(&metrics.ConnectionTest{Success: false, Message: "timeout"})

	w := tm.do(http.MethodGet, "/api/v1/server/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"`+metrics.StatusOffline+`"`)

	w = tm.do(http.MethodGet, "/api/v1/server/test", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"timeout"`)
}

func TestGatewayCallback(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		authorization string
		setupMocks    func(*testHandlerMocks)
		wantStatus    int
	}{
		{
			name:          "recorded",
			body:          `{"event":"connect","app_id":"app-1","socket_id":"1.1","data":{"user_id":"u1"}}`,
			authorization: "Bearer " + testGatewayToken,
			setupMocks: func(tm *testHandlerMocks) {
				tm.executor.EXPECT().HandleGatewayCallback(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, req dto.GatewayCallbackRequest) error {
						assert.Equal(t, "connect", req.Event)
						assert.Equal(t, "1.1", *req.SocketID)
						assert.JSONEq(t, `{"user_id":"u1"}`, string(req.Data))
						return nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:          "persistence failure is still acknowledged",
			body:          `{"event":"connect","app_id":"app-1"}`,
			authorization: "Bearer " + testGatewayToken,
			setupMocks: func(tm *testHandlerMocks) {
				tm.executor.EXPECT().HandleGatewayCallback(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:          "malformed body is acknowledged",
			body:          `not json`,
			authorization: "Bearer " + testGatewayToken,
			setupMocks:    func(tm *testHandlerMocks) {},
			wantStatus:    http.StatusOK,
		},
		{
			name:          "wrong token",
			body:          `{"event":"connect"}`,
			authorization: "Bearer nope",
			setupMocks:    func(tm *testHandlerMocks) {},
			wantStatus:    http.StatusForbidden,
		},
		{
			name:          "operator api key is not accepted",
			body:          `{"event":"connect"}`,
			authorization: "ApiKey " + testAPIKey,
			setupMocks:    func(tm *testHandlerMocks) {},
			wantStatus:    http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestHandler(t)
			defer tearDownTestHandler(tm)
			tt.setupMocks(tm)

			w := tm.doWithAuth(http.MethodPost, "/api/v1/gateway/webhook", tt.body, tt.authorization)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
			}
		})
	}
}
