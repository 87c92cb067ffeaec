package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "ratelimit:"

// RateLimitStore counts attempts per key in fixed Redis windows, shared by every
// API instance.
type RateLimitStore struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

// NewRateLimitStore creates a Redis-backed rate limit store.
func NewRateLimitStore(client *redis.Client, maxAttempts int, window time.Duration) *RateLimitStore {
	if maxAttempts <= 0 {
		maxAttempts = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimitStore{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow increments the key's counter, starting the window on the first attempt.
// A counter left without an expiry by a failed EXPIRE gets one on the next attempt.
func (s *RateLimitStore) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := rateLimitKeyPrefix + key

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		ttl = pipe.TTL(ctx, redisKey)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	count := incr.Val()
	if count == 1 || ttl.Val() < 0 {
		if err := s.client.Expire(ctx, redisKey, s.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count <= int64(s.maxAttempts), nil
}
