// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time. All time-dependent use cases receive
// the reference instant through this interface so tests can pin it.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time
}
