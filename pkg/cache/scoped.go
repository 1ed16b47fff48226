package cache

// ScopedKeyer wraps a Keyer with a prefix so that several problem sets
// can share a cache directory without colliding.
//
// Example usage:
//
//	// Keys scoped to one course's allocation runs
//	courseKeyer := NewScopedKeyer(NewDefaultKeyer(), "spring26:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// AllocationKey generates a prefixed key for a solved allocation.
func (k *ScopedKeyer) AllocationKey(fingerprint string) string {
	return k.prefix + k.inner.AllocationKey(fingerprint)
}

// GraphKey generates a prefixed key for a rendered demand graph.
func (k *ScopedKeyer) GraphKey(fingerprint, format string) string {
	return k.prefix + k.inner.GraphKey(fingerprint, format)
}
