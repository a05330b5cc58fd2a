package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/gateway-console/internal/api/middleware"
)

// RouteConfig holds the guards mounted in front of the routes
type RouteConfig struct {
	Auth         middleware.AuthConfig
	GatewayToken string
	// CallbackLimiter caps the gateway callback rate; nil disables it
	CallbackLimiter gin.HandlerFunc
}

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, cfg RouteConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")

	// Gateway callback (gateway token only)
	callback := []gin.HandlerFunc{}
	if cfg.CallbackLimiter != nil {
		callback = append(callback, cfg.CallbackLimiter)
	}
	callback = append(callback, middleware.GatewayToken(cfg.GatewayToken), handler.GatewayCallback)
	v1.POST("/gateway/webhook", callback...)

	// Operator endpoints
	operator := v1.Group("", middleware.Auth(cfg.Auth))
	{
		// Applications
		operator.POST("/apps", handler.CreateApplication)
		operator.GET("/apps", handler.ListApplications)
		operator.GET("/apps/:app_id", handler.GetApplication)
		operator.PATCH("/apps/:app_id", handler.UpdateApplication)
		operator.DELETE("/apps/:app_id", handler.DeleteApplication)
		operator.POST("/apps/:app_id/restore", handler.RestoreApplication)
		operator.GET("/apps/:app_id/test", handler.TestApplication)
		operator.GET("/apps/:app_id/connections", handler.GetApplicationConnections)

		// Gateway config
		operator.POST("/gateway/config/sync", handler.SyncGatewayConfig)
		operator.POST("/gateway/config/import", handler.ImportGatewayConfig)

		// Webhooks
		operator.POST("/webhooks", handler.CreateWebhook)
		operator.GET("/webhooks", handler.ListWebhooks)
		operator.POST("/webhooks/retry", handler.RetryWebhooks)
		operator.POST("/webhooks/mark-sent", handler.MarkWebhooksSent)
		operator.POST("/webhooks/cleanup", handler.CleanupWebhooks)
		operator.GET("/webhooks/:id", handler.GetWebhook)
		operator.POST("/webhooks/:id/retry", handler.RetryWebhook)
		operator.POST("/webhooks/:id/test", handler.TestWebhook)
		operator.POST("/webhooks/:id/duplicate", handler.DuplicateWebhook)

		// Connections and debug events
		operator.GET("/connections", handler.ListConnections)
		operator.GET("/debug-events", handler.ListDebugEvents)

		// Server and dashboard
		operator.GET("/server/stats", handler.GetServerStats)
		operator.GET("/server/test", handler.TestServerConnection)
		operator.GET("/dashboard/stats", handler.GetDashboardStats)
	}
}
