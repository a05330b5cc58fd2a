package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/gateway-console/internal/api/shared/errors"
	"github.com/feral-file/gateway-console/internal/domain"
	"github.com/feral-file/gateway-console/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, details ...string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(details...))
}

// respondInternalError responds with an internal server error
func respondInternalError(c *gin.Context, err error, message string) {
	logger.ErrorCtx(c.Request.Context(), err,
		zap.String("path", c.Request.URL.Path),
		zap.String("message", message),
	)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// respondError maps a domain error to its status; anything unrecognized is internal
func respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, domain.ErrInvalidApplication),
		errors.Is(err, domain.ErrInvalidWebhook),
		errors.Is(err, domain.ErrImmutableField):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, domain.ErrWebhookNotFound):
		c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, err.Error()))
	case errors.Is(err, domain.ErrDuplicateIdentifier),
		errors.Is(err, domain.ErrNotRetryable),
		errors.Is(err, domain.ErrAlreadySent),
		errors.Is(err, domain.ErrConcurrentUpdate):
		c.JSON(http.StatusConflict, apierrors.NewConflictError(message, err.Error()))
	default:
		respondInternalError(c, err, message)
	}
}
