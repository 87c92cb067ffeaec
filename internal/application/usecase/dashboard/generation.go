// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/sales-tracker/backend/internal/domain/valueobject"
)

// ViewKey identifies one dashboard viewer: a user and one of their open views.
type ViewKey struct {
	UserID uuid.UUID
	ViewID string
}

// NewViewKey builds a ViewKey, defaulting a blank view id.
func NewViewKey(userID uuid.UUID, viewID string) ViewKey {
	viewID = strings.TrimSpace(viewID)
	if viewID == "" {
		viewID = valueobject.DefaultViewID
	}
	return ViewKey{UserID: userID, ViewID: viewID}
}

// String returns the key as "<user>:<view>".
func (k ViewKey) String() string {
	return k.UserID.String() + ":" + k.ViewID
}

// GenerationCounter hands out monotonically increasing fetch cycle tags per viewer.
type GenerationCounter interface {
	// Next starts a new cycle and returns its generation.
	Next(ctx context.Context, key ViewKey) (int64, error)

	// Current returns the latest generation handed out, 0 when none.
	Current(ctx context.Context, key ViewKey) (int64, error)
}

// InMemoryGenerationCounter is a simple in-memory implementation of GenerationCounter.
type InMemoryGenerationCounter struct {
	mu          sync.Mutex
	generations map[ViewKey]int64
}

// NewInMemoryGenerationCounter creates a new in-memory generation counter.
func NewInMemoryGenerationCounter() *InMemoryGenerationCounter {
	return &InMemoryGenerationCounter{
		generations: make(map[ViewKey]int64),
	}
}

// Next increments and returns the viewer's generation.
func (c *InMemoryGenerationCounter) Next(_ context.Context, key ViewKey) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[key]++
	return c.generations[key], nil
}

// Current returns the viewer's latest generation.
func (c *InMemoryGenerationCounter) Current(_ context.Context, key ViewKey) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[key], nil
}
