package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/gateway-console/internal/logger"
)

// maxResponseBodySize caps how much of a response body is read into memory
const maxResponseBodySize = 1 << 20

// HTTPResponse is a fully read HTTP response
type HTTPResponse struct {
	StatusCode int
	Body       []byte
	// Successful is true for 2xx status codes
	Successful bool
}

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// GetRaw performs a GET request and returns the response whatever its status.
	// Rate limited (429) responses are retried with exponential backoff bounded by ctx.
	GetRaw(ctx context.Context, url string, headers map[string]string) (*HTTPResponse, error)

	// PostRaw performs a single POST request without retries and returns the response
	// whatever its status. An error is returned only when no response was received.
	PostRaw(ctx context.Context, url string, headers map[string]string, body []byte) (*HTTPResponse, error)
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// do executes a request and reads at most maxResponseBodySize bytes of the body
func (c *RealHTTPClient) do(req *http.Request) (*HTTPResponse, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Warn("failed to close response body", zap.Error(err), zap.String("url", req.URL.String()))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &HTTPResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
		Successful: resp.StatusCode >= 200 && resp.StatusCode < 300,
	}, nil
}

// GetRaw performs a GET request
// Implements exponential backoff retry for rate limiting (429) responses
func (c *RealHTTPClient) GetRaw(ctx context.Context, url string, headers map[string]string) (*HTTPResponse, error) {
	var result *HTTPResponse

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		resp, err := c.do(req)
		if err != nil {
			return backoff.Permanent(err)
		}

		// Handle rate limiting - retry with backoff
		if resp.StatusCode == http.StatusTooManyRequests {
			logger.Warn("rate limited, retrying with backoff", zap.String("url", url))
			result = resp
			return fmt.Errorf("rate limited (429), retrying")
		}

		result = resp
		return nil
	}

	// Configure exponential backoff
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 1 * time.Minute // Total retry duration
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5 // Add jitter to prevent thundering herd

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		if result != nil && result.StatusCode == http.StatusTooManyRequests {
			// Out of retry budget; report the last 429 as a response
			return result, nil
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return result, nil
}

// PostRaw performs a single POST request
func (c *RealHTTPClient) PostRaw(ctx context.Context, url string, headers map[string]string, body []byte) (*HTTPResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.do(req)
}
