package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/gateway-console/internal/api/middleware"
	apierrors "github.com/feral-file/gateway-console/internal/api/shared/errors"
	"github.com/feral-file/gateway-console/internal/logger"
	"github.com/feral-file/gateway-console/internal/mocks"
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

// newRouter mounts the middleware in front of a handler that echoes the auth context
func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(mw...)
	router.GET("/ping", func(c *gin.Context) {
		authType, _ := c.Get(middleware.AUTH_TYPE_KEY)
		subject, _ := c.Get(middleware.AUTH_SUBJECT_KEY)
		c.JSON(http.StatusOK, gin.H{
			"auth_type":  authType,
			"subject":    subject,
			"request_id": middleware.GetRequestID(c),
		})
	})
	return router
}

func serve(router *gin.Engine, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func generateKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuth(t *testing.T) {
	key, publicPEM := generateKey(t)
	otherKey, _ := generateKey(t)
	cfg := middleware.AuthConfig{JWTPublicKey: publicPEM, APIKeys: []string{"k1", ""}}

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "operator-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "operator-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	foreign := signToken(t, otherKey, jwt.RegisteredClaims{Subject: "intruder"})

	tests := []struct {
		name        string
		cfg         middleware.AuthConfig
		header      string
		wantStatus  int
		wantType    string
		wantSubject string
	}{
		{name: "api key", cfg: cfg, header: "ApiKey k1", wantStatus: http.StatusOK, wantType: "apikey"},
		{name: "api key scheme is case insensitive", cfg: cfg, header: "APIKEY k1", wantStatus: http.StatusOK, wantType: "apikey"},
		{name: "unknown api key", cfg: cfg, header: "ApiKey k2", wantStatus: http.StatusUnauthorized},
		{name: "empty api key is never valid", cfg: cfg, header: "ApiKey ", wantStatus: http.StatusUnauthorized},
		{name: "no api keys configured", cfg: middleware.AuthConfig{}, header: "ApiKey k1", wantStatus: http.StatusUnauthorized},
		{name: "valid jwt", cfg: cfg, header: "Bearer " + valid, wantStatus: http.StatusOK, wantType: "jwt", wantSubject: "operator-1"},
		{name: "expired jwt", cfg: cfg, header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "jwt signed by another key", cfg: cfg, header: "Bearer " + foreign, wantStatus: http.StatusUnauthorized},
		{name: "jwt without configured key", cfg: middleware.AuthConfig{APIKeys: []string{"k1"}}, header: "Bearer " + valid, wantStatus: http.StatusUnauthorized},
		{name: "malformed public key", cfg: middleware.AuthConfig{JWTPublicKey: "not a pem"}, header: "Bearer " + valid, wantStatus: http.StatusUnauthorized},
		{name: "missing header", cfg: cfg, header: "", wantStatus: http.StatusUnauthorized},
		{name: "header without credentials", cfg: cfg, header: "ApiKey", wantStatus: http.StatusUnauthorized},
		{name: "unsupported scheme", cfg: cfg, header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}

			w := serve(newRouter(middleware.Auth(tt.cfg)), header)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				apiErr := decodeAPIError(t, w)
				assert.Equal(t, apierrors.ErrCodeUnauthorized, apiErr.Code)
				assert.NotEmpty(t, apiErr.Details)
				return
			}

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantType, body["auth_type"])
			if tt.wantSubject != "" {
				assert.Equal(t, tt.wantSubject, body["subject"])
			}
		})
	}
}

func TestGatewayToken(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		header     string
		wantStatus int
	}{
		{name: "matching token", token: "gw-secret", header: "Bearer gw-secret", wantStatus: http.StatusOK},
		{name: "scheme is case insensitive", token: "gw-secret", header: "bearer gw-secret", wantStatus: http.StatusOK},
		{name: "wrong token", token: "gw-secret", header: "Bearer nope", wantStatus: http.StatusForbidden},
		{name: "token prefix", token: "gw-secret", header: "Bearer gw-", wantStatus: http.StatusForbidden},
		{name: "missing header", token: "gw-secret", header: "", wantStatus: http.StatusForbidden},
		{name: "wrong scheme", token: "gw-secret", header: "ApiKey gw-secret", wantStatus: http.StatusForbidden},
		{name: "unconfigured token rejects everything", token: "", header: "Bearer ", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}

			w := serve(newRouter(middleware.GatewayToken(tt.token)), header)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Equal(t, apierrors.ErrCodeForbidden, decodeAPIError(t, w).Code)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := mocks.NewMockRateLimiter(ctrl)
	gomock.InOrder(
		limiter.EXPECT().Allow("192.0.2.1").Return(true),
		limiter.EXPECT().Allow("192.0.2.1").Return(false),
	)

	router := newRouter(middleware.RateLimit(limiter))

	w := serve(router, http.Header{})
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.Header{})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, apierrors.ErrCodeRateLimited, decodeAPIError(t, w).Code)
}

func TestRequestID(t *testing.T) {
	router := newRouter(middleware.RequestID())

	t.Run("assigns a new id", func(t *testing.T) {
		w := serve(router, http.Header{})
		id := w.Header().Get(middleware.REQUEST_ID_HEADER)
		assert.Len(t, id, 36)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, id, body["request_id"])
	})

	t.Run("propagates the caller id", func(t *testing.T) {
		header := http.Header{}
		header.Set(middleware.REQUEST_ID_HEADER, "trace-123")
		w := serve(router, header)
		assert.Equal(t, "trace-123", w.Header().Get(middleware.REQUEST_ID_HEADER))
	})
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.GET("/ping", func(c *gin.Context) {
		panic("boom")
	})

	w := serve(router, http.Header{})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apierrors.ErrCodeInternalError, decodeAPIError(t, w).Code)
}
