package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/gateway-console/internal/api/shared/dto"
	"github.com/feral-file/gateway-console/internal/api/shared/executor"
	"github.com/feral-file/gateway-console/internal/logger"
)

const SERVICE_NAME = "gateway-console"

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateApplication registers an application. The response carries the secret exactly once.
	// POST /api/v1/apps
	CreateApplication(c *gin.Context)

	// ListApplications lists applications
	// GET /api/v1/apps?active=<bool>
	ListApplications(c *gin.Context)

	// GetApplication retrieves an application with its connection count and status
	// GET /api/v1/apps/:app_id
	GetApplication(c *gin.Context)

	// UpdateApplication applies a partial update
	// PATCH /api/v1/apps/:app_id
	UpdateApplication(c *gin.Context)

	// DeleteApplication deletes an application with its connections, webhooks and debug events
	// DELETE /api/v1/apps/:app_id?hard=<bool>
	DeleteApplication(c *gin.Context)

	// RestoreApplication restores a soft-deleted application
	// POST /api/v1/apps/:app_id/restore
	RestoreApplication(c *gin.Context)

	// TestApplication probes the gateway on behalf of an application
	// GET /api/v1/apps/:app_id/test
	TestApplication(c *gin.Context)

	// GetApplicationConnections reports the connection count from the database and the gateway
	// GET /api/v1/apps/:app_id/connections
	GetApplicationConnections(c *gin.Context)

	// SyncGatewayConfig rewrites the gateway config from the registry
	// POST /api/v1/gateway/config/sync
	SyncGatewayConfig(c *gin.Context)

	// ImportGatewayConfig upserts registry rows from the gateway config
	// POST /api/v1/gateway/config/import
	ImportGatewayConfig(c *gin.Context)

	// CreateWebhook stores a new pending webhook record
	// POST /api/v1/webhooks
	CreateWebhook(c *gin.Context)

	// ListWebhooks retrieves webhook records
	// GET /api/v1/webhooks?app_id=<id>&status=<status>&ready_for_retry=<bool>&limit=<limit>&offset=<offset>
	ListWebhooks(c *gin.Context)

	// GetWebhook retrieves a webhook record
	// GET /api/v1/webhooks/:id
	GetWebhook(c *gin.Context)

	// RetryWebhook requeues a failed webhook record
	// POST /api/v1/webhooks/:id/retry
	RetryWebhook(c *gin.Context)

	// RetryWebhooks requeues every retryable record, or the retryable records among ids
	// POST /api/v1/webhooks/retry
	RetryWebhooks(c *gin.Context)

	// TestWebhook delivers a webhook record synchronously
	// POST /api/v1/webhooks/:id/test
	TestWebhook(c *gin.Context)

	// DuplicateWebhook copies a webhook record into a new pending record
	// POST /api/v1/webhooks/:id/duplicate
	DuplicateWebhook(c *gin.Context)

	// MarkWebhooksSent marks webhook records as manually delivered
	// POST /api/v1/webhooks/mark-sent
	MarkWebhooksSent(c *gin.Context)

	// CleanupWebhooks deletes webhook records past the retention window
	// POST /api/v1/webhooks/cleanup
	CleanupWebhooks(c *gin.Context)

	// ListConnections retrieves mirrored connections
	// GET /api/v1/connections?app_id=<id>&connected=<bool>&limit=<limit>&offset=<offset>
	ListConnections(c *gin.Context)

	// ListDebugEvents retrieves recorded gateway callbacks
	// GET /api/v1/debug-events?app_id=<id>&event_type=<type>&limit=<limit>
	ListDebugEvents(c *gin.Context)

	// GetServerStats returns the gateway metrics summary
	// GET /api/v1/server/stats
	GetServerStats(c *gin.Context)

	// TestServerConnection times a request to the gateway metrics endpoint
	// GET /api/v1/server/test
	TestServerConnection(c *gin.Context)

	// GetDashboardStats returns the cached dashboard summary
	// GET /api/v1/dashboard/stats
	GetDashboardStats(c *gin.Context)

	// GatewayCallback ingests an event reported by the gateway. Always acknowledges.
	// POST /api/v1/gateway/webhook
	GatewayCallback(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// =============================================================================
// Applications
// =============================================================================

func (h *handler) CreateApplication(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.CreateApplication(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create application")
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *handler) ListApplications(c *gin.Context) {
	var params ListApplicationsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListApplications(c.Request.Context(), params.Active)
	if err != nil {
		respondError(c, err, "Failed to list applications")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetApplication(c *gin.Context) {
	response, err := h.executor.GetApplication(c.Request.Context(), c.Param("app_id"))
	if err != nil {
		respondError(c, err, "Failed to get application")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) UpdateApplication(c *gin.Context) {
	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.UpdateApplication(c.Request.Context(), c.Param("app_id"), req)
	if err != nil {
		respondError(c, err, "Failed to update application")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) DeleteApplication(c *gin.Context) {
	var params DeleteApplicationQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.DeleteApplication(c.Request.Context(), c.Param("app_id"), params.Hard)
	if err != nil {
		respondError(c, err, "Failed to delete application")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) RestoreApplication(c *gin.Context) {
	response, err := h.executor.RestoreApplication(c.Request.Context(), c.Param("app_id"))
	if err != nil {
		respondError(c, err, "Failed to restore application")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) TestApplication(c *gin.Context) {
	response, err := h.executor.TestApplication(c.Request.Context(), c.Param("app_id"))
	if err != nil {
		respondError(c, err, "Failed to test application")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetApplicationConnections(c *gin.Context) {
	response, err := h.executor.GetApplicationConnections(c.Request.Context(), c.Param("app_id"))
	if err != nil {
		respondError(c, err, "Failed to get application connections")
		return
	}

	c.JSON(http.StatusOK, response)
}

// =============================================================================
// Gateway config
// =============================================================================

func (h *handler) SyncGatewayConfig(c *gin.Context) {
	response := h.executor.SyncGatewayConfig(c.Request.Context())
	if !response.Synced {
		c.JSON(http.StatusInternalServerError, response)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *handler) ImportGatewayConfig(c *gin.Context) {
	response := h.executor.ImportGatewayConfig(c.Request.Context())
	if !response.Imported {
		c.JSON(http.StatusInternalServerError, response)
		return
	}
	c.JSON(http.StatusOK, response)
}

// =============================================================================
// Webhooks
// =============================================================================

func (h *handler) CreateWebhook(c *gin.Context) {
	var req dto.CreateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.CreateWebhook(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create webhook")
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *handler) ListWebhooks(c *gin.Context) {
	queryParams, err := ParseListWebhooksQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	status, _ := queryParams.StatusFilter()

	response, err := h.executor.ListWebhooks(
		c.Request.Context(),
		queryParams.AppID,
		status,
		queryParams.ReadyForRetry,
		&queryParams.Limit,
		&queryParams.Offset,
	)
	if err != nil {
		respondError(c, err, "Failed to list webhooks")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetWebhook(c *gin.Context) {
	id, err := parseWebhookID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.GetWebhook(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get webhook")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) RetryWebhook(c *gin.Context) {
	id, err := parseWebhookID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.RetryWebhook(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to retry webhook")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) RetryWebhooks(c *gin.Context) {
	// The body is optional; without ids every retryable record is swept
	var req dto.WebhookIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.RetryWebhooks(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err, "Failed to retry webhooks")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) TestWebhook(c *gin.Context) {
	id, err := parseWebhookID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.TestWebhook(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to test webhook")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) DuplicateWebhook(c *gin.Context) {
	id, err := parseWebhookID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.DuplicateWebhook(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to duplicate webhook")
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *handler) MarkWebhooksSent(c *gin.Context) {
	var req dto.WebhookIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.MarkWebhooksSent(c.Request.Context(), req.IDs)
	if err != nil {
		respondError(c, err, "Failed to mark webhooks as sent")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) CleanupWebhooks(c *gin.Context) {
	response, err := h.executor.CleanupWebhooks(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to clean up webhooks")
		return
	}

	c.JSON(http.StatusOK, response)
}

// =============================================================================
// Connections and debug events
// =============================================================================

func (h *handler) ListConnections(c *gin.Context) {
	queryParams, err := ParseListConnectionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListConnections(
		c.Request.Context(),
		queryParams.AppID,
		queryParams.Connected,
		&queryParams.Limit,
		&queryParams.Offset,
	)
	if err != nil {
		respondError(c, err, "Failed to list connections")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListDebugEvents(c *gin.Context) {
	queryParams, err := ParseListDebugEventsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListDebugEvents(
		c.Request.Context(),
		queryParams.AppID,
		queryParams.EventType,
		&queryParams.Limit,
	)
	if err != nil {
		respondError(c, err, "Failed to list debug events")
		return
	}

	c.JSON(http.StatusOK, response)
}

// =============================================================================
// Server and dashboard
// =============================================================================

func (h *handler) GetServerStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.GetServerStats(c.Request.Context()))
}

func (h *handler) TestServerConnection(c *gin.Context) {
	c.JSON(http.StatusOK, h.executor.TestServerConnection(c.Request.Context()))
}

func (h *handler) GetDashboardStats(c *gin.Context) {
	response, err := h.executor.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get dashboard stats")
		return
	}

	c.JSON(http.StatusOK, response)
}

// =============================================================================
// Gateway callback
// =============================================================================

func (h *handler) GatewayCallback(c *gin.Context) {
	ack := dto.GatewayCallbackResponse{Status: "ok"}

	var req dto.GatewayCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.WarnCtx(c.Request.Context(), "Ignoring malformed gateway callback", zap.Error(err))
		c.JSON(http.StatusOK, ack)
		return
	}

	if err := h.executor.HandleGatewayCallback(c.Request.Context(), req); err != nil {
		logger.ErrorCtx(c.Request.Context(), fmt.Errorf("failed to handle gateway callback: %w", err),
			zap.String("event", req.Event),
			zap.String("appID", req.AppID),
		)
	}

	c.JSON(http.StatusOK, ack)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": SERVICE_NAME,
	})
}
