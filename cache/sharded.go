package cache

import (
	"context"
	"sync/atomic"

	"github.com/IvanBrykalov/ttlru/internal/util"
)

// sharded spreads keys over independent single-lock stores to reduce lock
// contention. Each shard is a complete store with its own mutex, index,
// arena, and both orderings, so recency and expiry guarantees hold per
// shard; Capacity is split evenly across shards (ceil).
type sharded[K comparable, V any] struct {
	shards []*store[K, V]
	hash   func(K) uint64
	closed atomic.Bool

	loader func(ctx context.Context, k K) (V, error)
}

// NewSharded constructs a sharded cache with the provided Options.
// Options.Shards <= 0 selects an automatic power-of-two count based on
// GOMAXPROCS; an explicit count is rounded up to the next power of two.
// It panics if Capacity <= 0.
func NewSharded[K comparable, V any](opt Options[K, V]) Cache[K, V] {
	if opt.Capacity <= 0 {
		panic("cache: Capacity must be > 0")
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}

	sh := opt.Shards
	if sh <= 0 {
		sh = util.ReasonableShardCount()
	} else {
		sh = int(util.NextPow2(uint64(sh)))
	}

	perShard := opt
	perShard.Capacity = (opt.Capacity + sh - 1) / sh

	cs := make([]*store[K, V], sh)
	for i := range cs {
		cs[i] = newStore(perShard)
	}
	return &sharded[K, V]{
		shards: cs,
		hash:   util.Fnv64a[K], // fast non-crypto hash for sharding
		loader: opt.Loader,
	}
}

// shardFor picks a shard by hashing the key. len(shards) is a power of two.
func (c *sharded[K, V]) shardFor(k K) *store[K, V] {
	return c.shards[util.ShardIndex(c.hash(k), len(c.shards))]
}

func (c *sharded[K, V]) Get(k K) (V, bool) {
	if c.closed.Load() {
		var zero V
		return zero, false
	}
	return c.shardFor(k).Get(k)
}

func (c *sharded[K, V]) Put(k K, v V) {
	if c.closed.Load() {
		return
	}
	c.shardFor(k).Put(k, v)
}

func (c *sharded[K, V]) Delete(k K) bool {
	if c.closed.Load() {
		return false
	}
	return c.shardFor(k).Delete(k)
}

// Len returns the total number of resident entries across all shards.
func (c *sharded[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		total += s.Len()
	}
	return total
}

// Stats sums counters across all shards.
func (c *sharded[K, V]) Stats() Stats {
	var agg Stats
	for _, s := range c.shards {
		st := s.Stats()
		agg.Hits += st.Hits
		agg.Misses += st.Misses
		agg.Evictions += st.Evictions
	}
	return agg
}

// Close marks the cache and all shards closed.
func (c *sharded[K, V]) Close() error {
	c.closed.Store(true)
	for _, s := range c.shards {
		_ = s.Close()
	}
	return nil
}

// GetOrLoad delegates to the owning shard; a key always maps to the same
// shard, so its singleflight group coalesces concurrent loads.
func (c *sharded[K, V]) GetOrLoad(ctx context.Context, k K) (V, error) {
	if c.loader == nil {
		if v, ok := c.Get(k); ok {
			return v, nil
		}
		var zero V
		return zero, ErrNoLoader
	}
	return c.shardFor(k).GetOrLoad(ctx, k)
}
