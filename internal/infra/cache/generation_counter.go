package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sales-tracker/backend/internal/application/usecase/dashboard"
)

const (
	generationKeyPrefix = "dashboard:generation:"
	generationTTL       = 24 * time.Hour
)

// GenerationCounter keeps dashboard cycle generations in Redis so that a newer
// cycle started on any API instance supersedes older ones.
type GenerationCounter struct {
	client *redis.Client
}

// NewGenerationCounter creates a Redis-backed generation counter.
func NewGenerationCounter(client *redis.Client) *GenerationCounter {
	return &GenerationCounter{client: client}
}

// Next increments and returns the viewer's generation. Views idle for a day
// expire and restart from 1.
func (c *GenerationCounter) Next(ctx context.Context, key dashboard.ViewKey) (int64, error) {
	redisKey := generationKeyPrefix + key.String()

	var incr *redis.IntCmd
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, generationTTL)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to increment generation: %w", err)
	}
	return incr.Val(), nil
}

// Current returns the viewer's latest generation, 0 when none was started.
func (c *GenerationCounter) Current(ctx context.Context, key dashboard.ViewKey) (int64, error) {
	generation, err := c.client.Get(ctx, generationKeyPrefix+key.String()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read generation: %w", err)
	}
	return generation, nil
}
