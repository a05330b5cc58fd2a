package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/gateway-console/internal/api/shared/errors"
	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/ratelimit"
)

// GatewayToken guards the gateway callback with the shared bearer token.
// An empty configured token rejects every request.
func GatewayToken(token string) gin.HandlerFunc {
	expected := []byte(token)

	return func(c *gin.Context) {
		provided, ok := bearerToken(c.GetHeader("Authorization"))
		if len(expected) == 0 || !ok || subtle.ConstantTimeCompare([]byte(provided), expected) != 1 {
			logger.WarnCtx(c.Request.Context(), "Rejected gateway callback",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
				zap.Bool("configured", len(expected) > 0),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, apierrors.NewForbiddenError("Invalid gateway token"))
			return
		}
		c.Next()
	}
}

// RateLimit rejects requests over the per-client rate with 429
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			logger.WarnCtx(c.Request.Context(), "Rate limit exceeded",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.NewRateLimitedError("Too many requests"))
			return
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
		return "", false
	}
	return token, true
}
