// Package cache provides a generic in-memory cache that bounds memory by
// entry count and bounds staleness by one fixed time-to-live set at
// construction.
//
// # Design
//
//   - Storage: entries live in an arena — a growable slot table addressed
//     by stable integer indices. A map[K]int gives O(1) lookups and is the
//     single source of truth for membership. Two doubly linked lists are
//     threaded through the same slots via per-slot link pairs: a recency
//     list (front = most recently used) driving capacity eviction, and an
//     insertion-order list driving TTL eviction. Under a uniform TTL,
//     insertion order and expiry order coincide, so deadlines are
//     monotonic along the second list and the sweep can stop at the first
//     live tail.
//
//   - Concurrency: one mutex guards the whole structure. Every operation
//     takes it for its full duration, so Get/Put from different goroutines
//     observe a total order. Both lists and the index are always mutated
//     together under that lock; there is no lock-free path. NewSharded
//     wraps several independent instances behind key hashing when lock
//     contention matters more than global LRU order.
//
//   - TTL: a deadline is stamped once at insertion (now + TTL) and never
//     refreshed by reads. An entry past its deadline is reported as a miss
//     but stays resident until the next sweep; reads promote recency and
//     nothing else. Overwriting a key replaces the entry wholesale, which
//     resets both deadline and recency.
//
//   - Sweep: runs inside Put when the cache is full, before the new entry
//     is linked. Expired entries are drained from the old end of the
//     insertion list first; only if the cache is still full does it evict
//     the least-recently-used live entry.
//
//   - GetOrLoad: coalesces concurrent loads for the same key using
//     singleflight. If Loader is nil, GetOrLoad returns ErrNoLoader.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals
//     (NoopMetrics by default; see metrics/prom for a Prometheus adapter),
//     and Options.OnEvict observes individual evictions with a reason.
//
// # Basic usage
//
//	c := cache.New[string, string](cache.Options[string, string]{
//	    Capacity: 10_000,
//	    TTL:      6 * time.Minute,
//	})
//	c.Put("a", "1")
//	if v, ok := c.Get("a"); ok {
//	    _ = v // use value
//	}
//	c.Delete("a")
//
// # Thread-safety & complexity
//
// All methods on Cache are safe for concurrent use. Typical operation cost
// is O(1) expected time: one map access plus a constant number of link
// fixes. Eviction work is O(1) per removed entry.
package cache
