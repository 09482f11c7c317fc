// Package cache implements the dashboard cache on Redis.
package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/plata-app/backend/internal/application/adapter"
)

func newTestCache(t *testing.T) (adapter.DashboardCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewDashboardCache(client, time.Minute), server
}

type payload struct {
	Total int    `json:"total"`
	Label string `json:"label"`
}

func TestDashboardCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get round-trips the value", func(t *testing.T) {
		c, _ := newTestCache(t)

		if err := c.SetJSON(ctx, "dashboard:summary:user-1", payload{Total: 42, Label: "marzo"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got payload
		if err := c.GetJSON(ctx, "dashboard:summary:user-1", &got); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Total != 42 || got.Label != "marzo" {
			t.Errorf("unexpected payload %+v", got)
		}
	})

	t.Run("missing key reports a cache miss", func(t *testing.T) {
		c, _ := newTestCache(t)

		var got payload
		err := c.GetJSON(ctx, "dashboard:summary:nobody", &got)
		if !errors.Is(err, adapter.ErrCacheMiss) {
			t.Fatalf("expected cache miss, got %v", err)
		}
	})

	t.Run("corrupt entry behaves like a miss", func(t *testing.T) {
		c, server := newTestCache(t)
		server.Set("dashboard:summary:user-1", "{not json")

		var got payload
		err := c.GetJSON(ctx, "dashboard:summary:user-1", &got)
		if !errors.Is(err, adapter.ErrCacheMiss) {
			t.Fatalf("expected cache miss for corrupt entry, got %v", err)
		}
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		c, server := newTestCache(t)

		if err := c.SetJSON(ctx, "dashboard:summary:user-1", payload{Total: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		server.FastForward(2 * time.Minute)

		var got payload
		if err := c.GetJSON(ctx, "dashboard:summary:user-1", &got); !errors.Is(err, adapter.ErrCacheMiss) {
			t.Fatalf("expected cache miss after expiry, got %v", err)
		}
	})

	t.Run("invalidate removes every view for the user only", func(t *testing.T) {
		c, _ := newTestCache(t)

		for _, key := range []string{
			"dashboard:summary:user-1",
			"dashboard:trend:user-1",
			"dashboard:budget:user-1",
			"dashboard:summary:user-2",
		} {
			if err := c.SetJSON(ctx, key, payload{Total: 1}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		if err := c.InvalidateUser(ctx, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got payload
		for _, key := range []string{"dashboard:summary:user-1", "dashboard:trend:user-1", "dashboard:budget:user-1"} {
			if err := c.GetJSON(ctx, key, &got); !errors.Is(err, adapter.ErrCacheMiss) {
				t.Errorf("expected %s to be invalidated, got %v", key, err)
			}
		}
		if err := c.GetJSON(ctx, "dashboard:summary:user-2", &got); err != nil {
			t.Errorf("expected other user's entry to survive, got %v", err)
		}
	})

	t.Run("invalidate with no entries is a no-op", func(t *testing.T) {
		c, _ := newTestCache(t)
		if err := c.InvalidateUser(ctx, "ghost"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
