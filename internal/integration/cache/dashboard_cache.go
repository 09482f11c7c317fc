// Package cache implements the dashboard cache on Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/plata-app/backend/internal/application/adapter"
)

// dashboardCache implements adapter.DashboardCache on Redis.
//
// Every dashboard view is cached as a JSON document under
// "dashboard:<view>:<user_id>" with a short TTL. Writes to transactions
// or budgets invalidate all views for the owning user.
type dashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache creates a Redis-backed dashboard cache.
func NewDashboardCache(client *redis.Client, ttl time.Duration) adapter.DashboardCache {
	return &dashboardCache{
		client: client,
		ttl:    ttl,
	}
}

// GetJSON retrieves the cached value for key and unmarshals it into dest.
func (c *dashboardCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return adapter.ErrCacheMiss
		}
		return fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupt entry behaves like a miss; the caller recomputes.
		return adapter.ErrCacheMiss
	}
	return nil
}

// SetJSON marshals value and stores it under key with the configured TTL.
func (c *dashboardCache) SetJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// InvalidateUser removes all cached dashboard views for a user.
func (c *dashboardCache) InvalidateUser(ctx context.Context, userID string) error {
	pattern := "dashboard:*:" + userID

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan %s: %w", pattern, err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache del: %w", err)
	}
	return nil
}
