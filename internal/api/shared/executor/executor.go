package executor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/gateway-console/internal/adapter"
	"github.com/feral-file/gateway-console/internal/api/shared/constants"
	"github.com/feral-file/gateway-console/internal/api/shared/dto"
	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/gatewayconfig"
	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/metrics"
	"github.com/feral-file/gateway-console/internal/registry"
	"github.com/feral-file/gateway-console/internal/stats"
	"github.com/feral-file/gateway-console/internal/store"
	"github.com/feral-file/gateway-console/internal/store/schema"
	"github.com/feral-file/gateway-console/internal/webhook"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CreateApplication registers an application and returns its secret exactly once
	CreateApplication(ctx context.Context, req dto.CreateApplicationRequest) (*dto.ApplicationMutationResponse, error)

	// ListApplications lists applications, optionally active ones only
	ListApplications(ctx context.Context, activeOnly bool) (*dto.ApplicationListResponse, error)

	// GetApplication retrieves an application with its connection count and status
	GetApplication(ctx context.Context, appID string) (*dto.ApplicationDetailResponse, error)

	// UpdateApplication applies a partial update
	UpdateApplication(ctx context.Context, appID string, req dto.UpdateApplicationRequest) (*dto.ApplicationMutationResponse, error)

	// DeleteApplication soft or hard deletes an application with its dependents
	DeleteApplication(ctx context.Context, appID string, hard bool) (*dto.ApplicationMutationResponse, error)

	// RestoreApplication restores a soft-deleted application
	RestoreApplication(ctx context.Context, appID string) (*dto.ApplicationMutationResponse, error)

	// TestApplication probes the gateway on behalf of an application
	TestApplication(ctx context.Context, appID string) (*dto.AppTestResponse, error)

	// GetApplicationConnections reports the connection count of an application from both sources
	GetApplicationConnections(ctx context.Context, appID string) (*stats.AppConnections, error)

	// SyncGatewayConfig rewrites the gateway config from the registry
	SyncGatewayConfig(ctx context.Context) *dto.ConfigSyncResponse

	// ImportGatewayConfig upserts registry rows from the gateway config
	ImportGatewayConfig(ctx context.Context) *dto.ConfigImportResponse

	// CreateWebhook stores a new pending webhook record
	CreateWebhook(ctx context.Context, req dto.CreateWebhookRequest) (*dto.WebhookResponse, error)

	// ListWebhooks retrieves webhook records with optional filters
	ListWebhooks(ctx context.Context, appID string, status *schema.WebhookStatus, readyForRetry bool, limit *int, offset *int) (*dto.WebhookListResponse, error)

	// GetWebhook retrieves a single webhook record
	GetWebhook(ctx context.Context, id uint64) (*dto.WebhookResponse, error)

	// RetryWebhook requeues a single failed webhook record
	RetryWebhook(ctx context.Context, id uint64) (*dto.WebhookResponse, error)

	// RetryWebhooks requeues every retryable record, or the retryable records among ids
	RetryWebhooks(ctx context.Context, ids []uint64) (*webhook.SweepResult, error)

	// TestWebhook delivers a webhook record synchronously
	TestWebhook(ctx context.Context, id uint64) (*webhook.TestResult, error)

	// DuplicateWebhook copies a webhook record into a new pending record
	DuplicateWebhook(ctx context.Context, id uint64) (*dto.WebhookResponse, error)

	// MarkWebhooksSent marks webhook records as manually delivered
	MarkWebhooksSent(ctx context.Context, ids []uint64) (*dto.MarkSentResponse, error)

	// CleanupWebhooks deletes webhook records past the retention window
	CleanupWebhooks(ctx context.Context) (*dto.CleanupResponse, error)

	// ListConnections retrieves mirrored connections
	ListConnections(ctx context.Context, appID string, connectedOnly bool, limit *int, offset *int) (*dto.ConnectionListResponse, error)

	// ListDebugEvents retrieves recorded gateway callbacks
	ListDebugEvents(ctx context.Context, appID string, eventType string, limit *int) (*dto.DebugEventListResponse, error)

	// HandleGatewayCallback records a gateway callback and mirrors connection state
	HandleGatewayCallback(ctx context.Context, req dto.GatewayCallbackRequest) error

	// GetServerStats returns the gateway metrics summary
	GetServerStats(ctx context.Context) *metrics.ServerStats

	// TestServerConnection times a request to the gateway metrics endpoint
	TestServerConnection(ctx context.Context) *metrics.ConnectionTest

	// GetDashboardStats returns the cached dashboard summary
	GetDashboardStats(ctx context.Context) (*dto.DashboardResponse, error)
}

type executor struct {
	registry     registry.Registry
	dispatcher   registry.Dispatcher
	synchronizer gatewayconfig.Synchronizer
	engine       webhook.Engine
	stats        stats.Service
	probe        metrics.Probe
	store        store.Store
	clock        adapter.Clock
}

// NewExecutor creates a new API executor
func NewExecutor(
	reg registry.Registry,
	dispatcher registry.Dispatcher,
	synchronizer gatewayconfig.Synchronizer,
	engine webhook.Engine,
	statsService stats.Service,
	probe metrics.Probe,
	st store.Store,
	clock adapter.Clock,
) Executor {
	return &executor{
		registry:     reg,
		dispatcher:   dispatcher,
		synchronizer: synchronizer,
		engine:       engine,
		stats:        statsService,
		probe:        probe,
		store:        st,
		clock:        clock,
	}
}

// =============================================================================
// Applications
// =============================================================================

func (e *executor) CreateApplication(ctx context.Context, req dto.CreateApplicationRequest) (*dto.ApplicationMutationResponse, error) {
	result, err := e.registry.Create(ctx, req.ToSpec())
	if err != nil {
		return nil, err
	}

	response := e.dispatch(ctx, &result.Mutation)
	response.Application.AppSecret = result.Secret
	return response, nil
}

func (e *executor) ListApplications(ctx context.Context, activeOnly bool) (*dto.ApplicationListResponse, error) {
	apps, err := e.registry.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ApplicationResponse, len(apps))
	for i, app := range apps {
		items[i] = dto.MapApplicationToDTO(app)
	}

	return &dto.ApplicationListResponse{
		Applications: items,
		Total:        len(items),
	}, nil
}

func (e *executor) GetApplication(ctx context.Context, appID string) (*dto.ApplicationDetailResponse, error) {
	details, err := e.registry.Get(ctx, appID)
	if err != nil {
		return nil, err
	}

	return &dto.ApplicationDetailResponse{
		ApplicationResponse: dto.MapApplicationToDTO(details.Application),
		ConnectionCount:     details.ConnectionCount,
		Status:              details.Status,
	}, nil
}

func (e *executor) UpdateApplication(ctx context.Context, appID string, req dto.UpdateApplicationRequest) (*dto.ApplicationMutationResponse, error) {
	mutation, err := e.registry.Update(ctx, appID, req.ToPatch())
	if err != nil {
		return nil, err
	}
	return e.dispatch(ctx, mutation), nil
}

func (e *executor) DeleteApplication(ctx context.Context, appID string, hard bool) (*dto.ApplicationMutationResponse, error) {
	mutation, err := e.registry.Delete(ctx, appID, hard)
	if err != nil {
		return nil, err
	}
	return e.dispatch(ctx, mutation), nil
}

func (e *executor) RestoreApplication(ctx context.Context, appID string) (*dto.ApplicationMutationResponse, error) {
	mutation, err := e.registry.Restore(ctx, appID)
	if err != nil {
		return nil, err
	}
	return e.dispatch(ctx, mutation), nil
}

// dispatch forwards a persisted mutation and renders the response
func (e *executor) dispatch(ctx context.Context, mutation *registry.Mutation) *dto.ApplicationMutationResponse {
	response := &dto.ApplicationMutationResponse{
		Removed:      mutation.Removed,
		Hard:         mutation.Hard,
		ConfigSynced: e.dispatcher.Dispatch(ctx, *mutation),
	}
	if mutation.Application != nil {
		app := dto.MapApplicationToDTO(mutation.Application)
		response.Application = &app
	}
	return response
}

func (e *executor) TestApplication(ctx context.Context, appID string) (*dto.AppTestResponse, error) {
	details, err := e.registry.Get(ctx, appID)
	if err != nil {
		return nil, err
	}

	test := e.probe.TestConnection(ctx)
	status := metrics.StatusOffline
	if test.Success {
		status = metrics.StatusOnline
	}

	return &dto.AppTestResponse{
		AppID:          details.Application.AppID,
		AppName:        details.Application.Name,
		ServerStatus:   status,
		ResponseTimeMS: test.ResponseTimeMS,
		Message:        test.Message,
		Timestamp:      e.clock.Now(),
	}, nil
}

func (e *executor) GetApplicationConnections(ctx context.Context, appID string) (*stats.AppConnections, error) {
	if _, err := e.registry.Get(ctx, appID); err != nil {
		return nil, err
	}
	return e.stats.AppConnections(ctx, appID)
}

// =============================================================================
// Gateway config
// =============================================================================

func (e *executor) SyncGatewayConfig(ctx context.Context) *dto.ConfigSyncResponse {
	return &dto.ConfigSyncResponse{
		Synced: e.synchronizer.SyncToGateway(ctx),
		Path:   e.synchronizer.Path(),
	}
}

func (e *executor) ImportGatewayConfig(ctx context.Context) *dto.ConfigImportResponse {
	result, ok := e.synchronizer.SyncFromConfig(ctx)
	response := &dto.ConfigImportResponse{
		ImportResult: *result,
		Imported:     ok,
		Path:         e.synchronizer.Path(),
	}

	// Rows applied before a failure are kept, so they are written back as well
	if result.Created+result.Updated > 0 {
		response.ConfigSynced = e.synchronizer.SyncToGateway(ctx)
	}
	return response
}

// =============================================================================
// Webhooks
// =============================================================================

func (e *executor) CreateWebhook(ctx context.Context, req dto.CreateWebhookRequest) (*dto.WebhookResponse, error) {
	rec, err := e.engine.Create(ctx, req.ToInput())
	if err != nil {
		return nil, err
	}
	return e.webhookDTO(rec), nil
}

func (e *executor) ListWebhooks(ctx context.Context, appID string, status *schema.WebhookStatus, readyForRetry bool, limit *int, offset *int) (*dto.WebhookListResponse, error) {
	// Use defaults if not provided
	if limit == nil {
		defaultLimit := constants.DEFAULT_WEBHOOKS_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	now := e.clock.Now()
	recs, total, err := e.store.ListWebhookRecords(ctx, store.WebhookRecordFilter{
		AppID:         appID,
		Status:        status,
		ReadyForRetry: readyForRetry,
		RetryAt:       now,
		Limit:         *limit,
		Offset:        *offset,
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.WebhookResponse, len(recs))
	for i := range recs {
		items[i] = dto.MapWebhookToDTO(&recs[i], now)
	}

	return &dto.WebhookListResponse{
		Webhooks: items,
		Total:    total,
		Limit:    *limit,
		Offset:   *offset,
	}, nil
}

func (e *executor) GetWebhook(ctx context.Context, id uint64) (*dto.WebhookResponse, error) {
	rec, err := e.store.GetWebhookRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrWebhookNotFound
	}
	return e.webhookDTO(rec), nil
}

func (e *executor) RetryWebhook(ctx context.Context, id uint64) (*dto.WebhookResponse, error) {
	rec, err := e.engine.Retry(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.webhookDTO(rec), nil
}

func (e *executor) RetryWebhooks(ctx context.Context, ids []uint64) (*webhook.SweepResult, error) {
	if len(ids) > constants.MAX_IDS_PER_REQUEST {
		return nil, fmt.Errorf("%w: at most %d ids per request", domain.ErrInvalidWebhook, constants.MAX_IDS_PER_REQUEST)
	}
	return e.engine.RetrySweep(ctx, ids)
}

func (e *executor) TestWebhook(ctx context.Context, id uint64) (*webhook.TestResult, error) {
	return e.engine.TestSend(ctx, id)
}

func (e *executor) DuplicateWebhook(ctx context.Context, id uint64) (*dto.WebhookResponse, error) {
	rec, err := e.engine.Duplicate(ctx, id)
	if err != nil {
		return nil, err
	}
	return e.webhookDTO(rec), nil
}

func (e *executor) MarkWebhooksSent(ctx context.Context, ids []uint64) (*dto.MarkSentResponse, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: ids are required", domain.ErrInvalidWebhook)
	}
	if len(ids) > constants.MAX_IDS_PER_REQUEST {
		return nil, fmt.Errorf("%w: at most %d ids per request", domain.ErrInvalidWebhook, constants.MAX_IDS_PER_REQUEST)
	}

	result, err := e.engine.MarkAsSent(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := e.clock.Now()
	updated := make([]dto.WebhookResponse, len(result.Updated))
	for i, rec := range result.Updated {
		updated[i] = dto.MapWebhookToDTO(rec, now)
	}

	return &dto.MarkSentResponse{
		Updated:     updated,
		AlreadySent: emptyIfNil(result.AlreadySent),
		NotFound:    emptyIfNil(result.NotFound),
	}, nil
}

func (e *executor) CleanupWebhooks(ctx context.Context) (*dto.CleanupResponse, error) {
	deleted, err := e.engine.Cleanup(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.CleanupResponse{Deleted: deleted}, nil
}

func (e *executor) webhookDTO(rec *schema.WebhookRecord) *dto.WebhookResponse {
	response := dto.MapWebhookToDTO(rec, e.clock.Now())
	return &response
}

func emptyIfNil(ids []uint64) []uint64 {
	if ids == nil {
		return []uint64{}
	}
	return ids
}

// =============================================================================
// Connections and debug events
// =============================================================================

func (e *executor) ListConnections(ctx context.Context, appID string, connectedOnly bool, limit *int, offset *int) (*dto.ConnectionListResponse, error) {
	if limit == nil {
		defaultLimit := constants.DEFAULT_CONNECTIONS_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	conns, err := e.store.ListConnections(ctx, store.ConnectionFilter{
		AppID:         appID,
		ConnectedOnly: connectedOnly,
		Limit:         *limit,
		Offset:        *offset,
	})
	if err != nil {
		return nil, err
	}

	now := e.clock.Now()
	items := make([]dto.ConnectionResponse, len(conns))
	for i := range conns {
		items[i] = dto.MapConnectionToDTO(&conns[i], now)
	}

	return &dto.ConnectionListResponse{
		Connections: items,
		Limit:       *limit,
		Offset:      *offset,
	}, nil
}

func (e *executor) ListDebugEvents(ctx context.Context, appID string, eventType string, limit *int) (*dto.DebugEventListResponse, error) {
	if limit == nil {
		defaultLimit := constants.DEFAULT_DEBUG_EVENTS_LIMIT
		limit = &defaultLimit
	}

	events, err := e.store.ListDebugEvents(ctx, store.DebugEventFilter{
		AppID:     appID,
		EventType: eventType,
		Limit:     *limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.DebugEventResponse, len(events))
	for i := range events {
		items[i] = dto.MapDebugEventToDTO(&events[i])
	}
	return &dto.DebugEventListResponse{Events: items}, nil
}

// =============================================================================
// Gateway callback
// =============================================================================

func (e *executor) HandleGatewayCallback(ctx context.Context, req dto.GatewayCallbackRequest) error {
	now := e.clock.Now()

	var data dto.GatewayCallbackData
	if len(req.Data) > 0 {
		if err := json.Unmarshal(req.Data, &data); err != nil {
			// data is still stored verbatim when it is not an object
			logger.DebugCtx(ctx, "Gateway callback data is not an object", zap.String("event", req.Event), zap.Error(err))
		}
	}

	event := &schema.DebugEvent{
		EventID:   ulid.Make().String(),
		AppID:     req.AppID,
		EventType: domain.DebugEventType(req.Event),
		Channel:   req.Channel,
		EventName: scalarString(data.Event),
		SocketID:  req.SocketID,
		UserID:    scalarString(data.UserID),
		Timestamp: now,
	}
	if len(req.Data) > 0 && json.Valid(req.Data) {
		event.Payload = datatypes.JSON(req.Data)
	}

	errs := []error{}
	if err := e.store.CreateDebugEvent(ctx, event); err != nil {
		errs = append(errs, fmt.Errorf("failed to record debug event: %w", err))
	}
	if err := e.mirrorConnection(ctx, req, data, now); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// mirrorConnection reflects connect and disconnect callbacks into connection rows
func (e *executor) mirrorConnection(ctx context.Context, req dto.GatewayCallbackRequest, data dto.GatewayCallbackData, now time.Time) error {
	if req.SocketID == nil || *req.SocketID == "" || req.AppID == "" {
		return nil
	}
	connectionID := req.AppID + ":" + *req.SocketID

	switch req.Event {
	case domain.GatewayEventConnect:
		conn := &schema.Connection{
			ConnectionID: connectionID,
			AppID:        req.AppID,
			SocketID:     *req.SocketID,
			ChannelName:  req.Channel,
			IPAddress:    data.IPAddress,
			UserAgent:    data.UserAgent,
			IsConnected:  true,
			ConnectedAt:  &now,
		}
		if len(data.UserData) > 0 && json.Valid(data.UserData) {
			conn.UserData = datatypes.JSON(data.UserData)
		}
		if err := e.store.UpsertConnection(ctx, conn); err != nil {
			return fmt.Errorf("failed to mirror connection: %w", err)
		}
	case domain.GatewayEventDisconnect:
		updated, err := e.store.MarkConnectionDisconnected(ctx, connectionID, now)
		if err != nil {
			return fmt.Errorf("failed to mirror disconnection: %w", err)
		}
		if !updated {
			logger.DebugCtx(ctx, "No connected row to disconnect", zap.String("connectionID", connectionID))
		}
	}
	return nil
}

// scalarString renders a JSON string or number, nil for anything else
func scalarString(v any) *string {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case float64:
		s = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return nil
	}
	return &s
}

// =============================================================================
// Server and dashboard
// =============================================================================

func (e *executor) GetServerStats(ctx context.Context) *metrics.ServerStats {
	return e.probe.GetServerStats(ctx)
}

func (e *executor) TestServerConnection(ctx context.Context) *metrics.ConnectionTest {
	return e.probe.TestConnection(ctx)
}

func (e *executor) GetDashboardStats(ctx context.Context) (*dto.DashboardResponse, error) {
	overview, err := e.stats.Overview(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Overview:   overview,
		Throughput: e.stats.Throughput(ctx),
	}, nil
}
