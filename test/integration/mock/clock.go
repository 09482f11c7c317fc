package mock

import (
	"sync"
	"time"

	"github.com/plata-app/backend/internal/application/adapter"
)

// Clock implements adapter.Clock with a settable current time, so scenarios
// can pin the dashboard reference instant.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a mock clock starting at the real current time.
func NewClock() *Clock {
	return &Clock{now: time.Now().UTC()}
}

// SetCurrentTime pins the clock to the given instant.
func (c *Clock) SetCurrentTime(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Now returns the pinned instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

var _ adapter.Clock = (*Clock)(nil)
