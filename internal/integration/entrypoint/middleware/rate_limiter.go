// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/sales-tracker/backend/internal/domain/error"
	"github.com/sales-tracker/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 60
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// RateLimitStore counts attempts per key within a fixed window.
type RateLimitStore interface {
	// Allow records an attempt for key and reports whether it is within the limit.
	Allow(ctx context.Context, key string) (bool, error)
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// MemoryRateLimitStore is a process-local RateLimitStore.
type MemoryRateLimitStore struct {
	mu             sync.Mutex
	entries        map[string]*rateLimitEntry
	maxAttempts    int
	windowDuration time.Duration
	lastSweep      time.Time
	now            func() time.Time
}

// NewMemoryRateLimitStore creates an in-memory store. Non-positive values fall back to defaults.
func NewMemoryRateLimitStore(maxAttempts int, windowDuration time.Duration) *MemoryRateLimitStore {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &MemoryRateLimitStore{
		entries:        make(map[string]*rateLimitEntry),
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
		now:            time.Now,
	}
}

// Allow checks if a request from the given key should be allowed.
func (s *MemoryRateLimitStore) Allow(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.windowDuration {
		s.sweep(now)
		s.lastSweep = now
	}

	entry, exists := s.entries[key]
	if !exists || now.After(entry.resetTime) {
		s.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(s.windowDuration),
		}
		return true, nil
	}

	if entry.attempts < s.maxAttempts {
		entry.attempts++
		return true, nil
	}

	return false, nil
}

// Cleanup removes expired entries. Allow also sweeps once per window.
func (s *MemoryRateLimitStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep(s.now())
}

// sweep must be called with s.mu held.
func (s *MemoryRateLimitStore) sweep(now time.Time) {
	for key, entry := range s.entries {
		if now.After(entry.resetTime) {
			delete(s.entries, key)
		}
	}
}

// RateLimiter provides IP-based rate limiting functionality.
type RateLimiter struct {
	store   RateLimitStore
	scope   string
	enabled bool
}

// NewRateLimiter creates a rate limiter keyed by scope and client IP.
func NewRateLimiter(store RateLimitStore, scope string, enabled bool) *RateLimiter {
	return &RateLimiter{
		store:   store,
		scope:   scope,
		enabled: enabled,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.store.Allow(c.Request.Context(), rl.scope+":"+clientIP)
		if err != nil {
			// Fail open when the store is unavailable.
			slog.Warn("Rate limiter unavailable, allowing request",
				"scope", rl.scope,
				"error", err,
			)
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeWebhookRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
