// Package cache provides result caching for allocation runs.
// Solving is deterministic, so a result keyed by the problem fingerprint
// can be replayed without re-running the engine.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface for cached results.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer generates cache keys for the different cached artifacts.
type Keyer interface {
	// AllocationKey generates a key for a solved allocation,
	// derived from the problem fingerprint.
	AllocationKey(fingerprint string) string

	// GraphKey generates a key for a rendered demand graph,
	// derived from the problem fingerprint and the output format.
	GraphKey(fingerprint, format string) string
}

// DefaultKeyer generates keys with stable, collision-resistant hashing.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// AllocationKey generates a key for a solved allocation.
func (k *DefaultKeyer) AllocationKey(fingerprint string) string {
	return hashKey("alloc", fingerprint)
}

// GraphKey generates a key for a rendered demand graph.
func (k *DefaultKeyer) GraphKey(fingerprint, format string) string {
	return hashKey("graph", fingerprint, format)
}
