package ratelimit

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	// idleLimiterTTL evicts limiters of keys that have stopped sending
	idleLimiterTTL = 10 * time.Minute
	maxTrackedKeys = 4096
)

// Config holds the token bucket settings applied to every key
type Config struct {
	RequestsPerSecond float64
	Burst             int
}

// Limiter decides whether a request for a key may proceed
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one token for key and reports whether one was available
	Allow(key string) bool
}

// keyedLimiter keeps one in-process token bucket per key
type keyedLimiter struct {
	config   Config
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
}

// NewLimiter creates a keyed token bucket limiter.
// A non-positive rate disables limiting.
func NewLimiter(cfg Config) Limiter {
	if cfg.Burst <= 0 {
		cfg.Burst = max(int(cfg.RequestsPerSecond), 1)
	}
	return &keyedLimiter{
		config:   cfg,
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedKeys, nil, idleLimiterTTL),
	}
}

// Allow consumes one token for key
func (l *keyedLimiter) Allow(key string) bool {
	if l.config.RequestsPerSecond <= 0 {
		return true
	}
	return l.limiter(key).Allow()
}

// limiter returns the bucket for key, creating it on first use.
// Re-adding an existing bucket extends its TTL.
func (l *keyedLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters.Get(key)
	if !ok {
		lim = rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.Burst)
	}
	l.limiters.Add(key, lim)
	return lim
}
