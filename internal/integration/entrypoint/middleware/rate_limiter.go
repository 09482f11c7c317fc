// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/plata-app/backend/internal/domain/error"
	"github.com/plata-app/backend/internal/integration/entrypoint/dto"
)

const (
	defaultMaxAttempts = 5
	defaultWindow      = time.Minute
)

type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// RateLimiter limits the rate of requests per client IP. It is applied to
// credential endpoints (login, forgot-password) to slow down brute force
// attempts.
type RateLimiter struct {
	mu          sync.Mutex
	entries     map[string]*rateLimitEntry
	maxAttempts int
	window      time.Duration
}

// NewRateLimiter creates a rate limiter with the default attempt budget.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		entries:     make(map[string]*rateLimitEntry),
		maxAttempts: defaultMaxAttempts,
		window:      defaultWindow,
	}
}

// NewRateLimiterWithConfig creates a rate limiter with a custom attempt
// budget and window.
func NewRateLimiterWithConfig(maxAttempts int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		entries:     make(map[string]*rateLimitEntry),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Middleware returns a handler that rejects clients over their attempt budget.
// Disabled under test environments so suites can hammer the auth endpoints.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if os.Getenv("ENV") == "test" || os.Getenv("E2E_MODE") == "true" {
			c.Next()
			return
		}

		if !r.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many attempts, please try again later",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (r *RateLimiter) allow(clientIP string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	entry, exists := r.entries[clientIP]
	if !exists || now.After(entry.resetTime) {
		r.entries[clientIP] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(r.window),
		}
		return true
	}

	if entry.attempts >= r.maxAttempts {
		return false
	}

	entry.attempts++
	return true
}

// Reset clears the attempt counter for a client IP.
func (r *RateLimiter) Reset(clientIP string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, clientIP)
}

// Cleanup removes expired entries. Intended to run periodically.
func (r *RateLimiter) Cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for ip, entry := range r.entries {
		if now.After(entry.resetTime) {
			delete(r.entries, ip)
		}
	}
}
