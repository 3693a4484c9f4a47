package cache

import (
	"context"
	"time"
)

// EvictReason explains why an entry was removed.
type EvictReason int

const (
	// EvictTTL — reaped by the temporal phase of the sweep (deadline passed).
	EvictTTL EvictReason = iota
	// EvictCapacity — least-recently-used entry removed to make room.
	EvictCapacity
	// EvictReplaced — old entry removed because Put overwrote its key.
	EvictReplaced
)

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	Size(entries int)
}

// Clock provides time in UnixNano; useful for deterministic tests.
type Clock interface{ NowUnixNano() int64 }

// Options configures the cache. Zero values are safe except Capacity,
// which must be positive; sane defaults are applied in New():
//   - nil Metrics => NoopMetrics
//   - nil Clock   => time.Now
//   - TTL <= 0    => entries never expire
type Options[K comparable, V any] struct {
	// Capacity is the maximum number of resident entries (must be > 0).
	// The count includes entries that are expired but not yet swept.
	Capacity int

	// TTL is the fixed lifetime applied to every entry at insertion.
	// It is not refreshed by reads; a Put for the same key starts a new
	// entry with a fresh deadline. Non-positive TTL disables expiration.
	TTL time.Duration

	// Shards is used by NewSharded only: the number of independent
	// single-lock instances to spread keys over. If 0, an automatic value
	// is chosen (≈ 2*GOMAXPROCS) and rounded to the next power of two.
	// New ignores this field.
	Shards int

	// Loader fetches a value on cache miss. Used by GetOrLoad.
	Loader func(ctx context.Context, k K) (V, error)

	// OnEvict is called on eviction under the cache lock; keep callbacks
	// lightweight and never call back into the cache from them.
	OnEvict func(k K, v V, reason EvictReason)
	Metrics Metrics

	// Clock allows overriding the time source (tests). Nil => time.Now().
	Clock Clock
}
