package cache

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sales-tracker/backend/config"
	"github.com/sales-tracker/backend/internal/application/usecase/dashboard"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestNewRedisConnection(t *testing.T) {
	server := miniredis.RunT(t)

	conn, err := NewRedisConnection(&config.RedisConfig{URL: "redis://" + server.Addr() + "/0"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer conn.Close()

	if !conn.HealthCheck() {
		t.Error("expected health check to pass")
	}

	if _, err := NewRedisConnection(&config.RedisConfig{URL: "not a url"}); err == nil {
		t.Error("expected an error for an invalid url")
	}
}

func TestRateLimitStore_Allow(t *testing.T) {
	server, client := newTestClient(t)
	store := NewRateLimitStore(client, 2, time.Minute)
	ctx := context.Background()

	for i, expected := range []bool{true, true, false} {
		allowed, err := store.Allow(ctx, "webhook:10.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if allowed != expected {
			t.Errorf("attempt %d: expected %v, got %v", i+1, expected, allowed)
		}
	}

	if ttl := server.TTL(rateLimitKeyPrefix + "webhook:10.0.0.1"); ttl != time.Minute {
		t.Errorf("expected 1m ttl, got %s", ttl)
	}

	server.FastForward(2 * time.Minute)

	allowed, err := store.Allow(ctx, "webhook:10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Error("expected a new window to allow the request")
	}
}

func TestRateLimitStore_Unavailable(t *testing.T) {
	server, client := newTestClient(t)
	store := NewRateLimitStore(client, 2, time.Minute)
	server.Close()

	if _, err := store.Allow(context.Background(), "webhook:ip"); err == nil {
		t.Error("expected an error when redis is down")
	}
}

// failFirstExpire fails the first EXPIRE sent outside a pipeline.
type failFirstExpire struct {
	failed bool
}

func (h *failFirstExpire) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

func (h *failFirstExpire) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if cmd.Name() == "expire" && !h.failed {
			h.failed = true
			err := errors.New("connection reset")
			cmd.SetErr(err)
			return err
		}
		return next(ctx, cmd)
	}
}

func (h *failFirstExpire) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestRateLimitStore_RecoversMissingWindow(t *testing.T) {
	server, client := newTestClient(t)
	client.AddHook(&failFirstExpire{})
	store := NewRateLimitStore(client, 2, time.Minute)
	ctx := context.Background()
	key := "webhook:10.0.0.2"

	if _, err := store.Allow(ctx, key); err == nil {
		t.Fatal("expected the failed expire to surface as an error")
	}
	if ttl := server.TTL(rateLimitKeyPrefix + key); ttl != 0 {
		t.Fatalf("expected the counter to be left without expiry, got %s", ttl)
	}

	for i, expected := range []bool{true, false} {
		allowed, err := store.Allow(ctx, key)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if allowed != expected {
			t.Errorf("attempt %d: expected %v, got %v", i+2, expected, allowed)
		}
	}

	if ttl := server.TTL(rateLimitKeyPrefix + key); ttl != time.Minute {
		t.Errorf("expected the window to be restored, got ttl %s", ttl)
	}

	server.FastForward(2 * time.Minute)

	allowed, err := store.Allow(ctx, key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Error("expected the window to reset")
	}
}

func TestGenerationCounter(t *testing.T) {
	server, client := newTestClient(t)
	counter := NewGenerationCounter(client)
	ctx := context.Background()

	key := dashboard.NewViewKey(uuid.New(), "")
	other := dashboard.NewViewKey(key.UserID, "export")

	current, err := counter.Current(ctx, key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if current != 0 {
		t.Errorf("expected 0 before any cycle, got %d", current)
	}

	for want := int64(1); want <= 3; want++ {
		got, err := counter.Next(ctx, key)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("expected generation %d, got %d", want, got)
		}
	}

	if current, _ := counter.Current(ctx, key); current != 3 {
		t.Errorf("expected current 3, got %d", current)
	}
	if current, _ := counter.Current(ctx, other); current != 0 {
		t.Errorf("expected views to be independent, got %d", current)
	}

	if ttl := server.TTL(generationKeyPrefix + key.String()); ttl != generationTTL {
		t.Errorf("expected generation ttl %s, got %s", generationTTL, ttl)
	}

	server.FastForward(generationTTL + time.Minute)

	if current, _ := counter.Current(ctx, key); current != 0 {
		t.Errorf("expected an idle view to expire, got %d", current)
	}
}

var _ dashboard.GenerationCounter = (*GenerationCounter)(nil)
