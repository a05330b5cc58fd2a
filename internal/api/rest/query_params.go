package rest

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/gateway-console/internal/api/shared/constants"
	"github.com/feral-file/gateway-console/internal/store/schema"
)

// ListApplicationsQueryParams holds query parameters for GET /apps
type ListApplicationsQueryParams struct {
	Active bool `form:"active,default=false"`
}

// DeleteApplicationQueryParams holds query parameters for DELETE /apps/:app_id
type DeleteApplicationQueryParams struct {
	Hard bool `form:"hard,default=false"`
}

// ListWebhooksQueryParams holds query parameters for GET /webhooks
type ListWebhooksQueryParams struct {
	AppID         string `form:"app_id"`
	Status        string `form:"status"`
	ReadyForRetry bool   `form:"ready_for_retry,default=false"`

	// Pagination
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListConnectionsQueryParams holds query parameters for GET /connections
type ListConnectionsQueryParams struct {
	AppID     string `form:"app_id"`
	Connected bool   `form:"connected,default=false"`

	// Pagination
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListDebugEventsQueryParams holds query parameters for GET /debug-events
type ListDebugEventsQueryParams struct {
	AppID     string `form:"app_id"`
	EventType string `form:"event_type"`
	Limit     int    `form:"limit,default=50"`
}

// ParseListWebhooksQuery parses query parameters for GET /webhooks
func ParseListWebhooksQuery(c *gin.Context) (*ListWebhooksQueryParams, error) {
	var params ListWebhooksQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.Limit = capLimit(params.Limit)
	return &params, nil
}

// StatusFilter returns the parsed status filter, nil when absent
func (p *ListWebhooksQueryParams) StatusFilter() (*schema.WebhookStatus, error) {
	if p.Status == "" {
		return nil, nil
	}

	status := schema.WebhookStatus(p.Status)
	switch status {
	case schema.WebhookStatusPending, schema.WebhookStatusSent, schema.WebhookStatusFailed:
		return &status, nil
	default:
		return nil, fmt.Errorf("invalid status: %s", p.Status)
	}
}

// Validate validates the query parameters
func (p *ListWebhooksQueryParams) Validate() error {
	if p.Offset < 0 {
		return fmt.Errorf("offset must be non-negative")
	}
	_, err := p.StatusFilter()
	return err
}

// ParseListConnectionsQuery parses query parameters for GET /connections
func ParseListConnectionsQuery(c *gin.Context) (*ListConnectionsQueryParams, error) {
	var params ListConnectionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Offset < 0 {
		return nil, fmt.Errorf("offset must be non-negative")
	}
	params.Limit = capLimit(params.Limit)
	return &params, nil
}

// ParseListDebugEventsQuery parses query parameters for GET /debug-events
func ParseListDebugEventsQuery(c *gin.Context) (*ListDebugEventsQueryParams, error) {
	var params ListDebugEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.Limit = capLimit(params.Limit)
	return &params, nil
}

// parseWebhookID parses the :id path parameter
func parseWebhookID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid webhook id: %s", c.Param("id"))
	}
	return id, nil
}

// capLimit bounds a page size to [1, MAX_PAGE_SIZE]
func capLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	return min(limit, constants.MAX_PAGE_SIZE)
}
