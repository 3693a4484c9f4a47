package cache

import "context"

// Cache is an in-memory key/value cache interface with a fixed per-cache
// TTL and an entry-count capacity. All methods are safe for concurrent use
// by multiple goroutines.
//
// Typical complexity for operations is amortized O(1):
// a map lookup plus constant-time list adjustments under the cache lock.
type Cache[K comparable, V any] interface {
	// Get returns the value for k and a boolean flag indicating presence.
	// On hit, the entry is promoted to most-recently-used. A key whose
	// TTL has elapsed is reported as a miss; the stale entry stays
	// resident until the next sweep (reads never remove).
	Get(k K) (V, bool)

	// Put inserts or overwrites k→v. An overwrite removes the old entry
	// and inserts a fresh one, resetting both its TTL deadline and its
	// recency position. After Put returns, Len() <= Capacity.
	Put(k K, v V)

	// Delete removes k if present and returns true on success.
	Delete(k K) bool

	// Len returns the number of resident entries, including entries that
	// are past their deadline but not yet swept.
	Len() int

	// Stats returns a snapshot of hit/miss/eviction counters.
	Stats() Stats

	// Close marks the cache closed. Subsequent writes are ignored and
	// reads miss. Current implementation is a soft close and returns nil.
	Close() error

	// GetOrLoad returns the value for k, loading it via Options.Loader on
	// miss. Concurrent loads for the same key are coalesced (singleflight).
	// If no Loader was configured, returns ErrNoLoader.
	GetOrLoad(ctx context.Context, k K) (V, error)
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}
