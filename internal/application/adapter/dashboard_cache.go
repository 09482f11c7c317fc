// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned when no value exists for the requested key.
var ErrCacheMiss = errors.New("cache miss")

// DashboardCache defines the interface for caching computed dashboard payloads.
//
// Cached values are short-lived JSON documents keyed per user and view.
// A failing cache must never fail a request: callers treat every error
// other than ErrCacheMiss as a miss and recompute.
type DashboardCache interface {
	// GetJSON retrieves the cached value for key and unmarshals it into dest.
	// Returns ErrCacheMiss when the key does not exist.
	GetJSON(ctx context.Context, key string, dest interface{}) error

	// SetJSON marshals value and stores it under key with the configured TTL.
	SetJSON(ctx context.Context, key string, value interface{}) error

	// InvalidateUser removes all cached dashboard views for a user.
	InvalidateUser(ctx context.Context, userID string) error
}
