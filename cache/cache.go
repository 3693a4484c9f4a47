package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/IvanBrykalov/ttlru/internal/ilist"
	"github.com/IvanBrykalov/ttlru/internal/singleflight"
	"github.com/IvanBrykalov/ttlru/internal/util"
)

// ErrNoLoader is returned by GetOrLoad when no Loader was configured in Options.
var ErrNoLoader = errors.New("cache: no Loader provided")

// store is a single-lock TTL+LRU store.
//
// One mutex guards the whole structure: the key index, the arena, and the
// two orderings over the same entries. The recency list tracks access order
// for capacity eviction; the age list tracks insertion order, which under a
// uniform TTL is also expiry order, for temporal eviction. An entry is
// either in all three structures or in none of them.
type store[K comparable, V any] struct {
	// ---- guarded by mu ----
	mu  sync.Mutex
	idx map[K]int // key -> arena slot; sole authority on membership
	ar  *arena[K, V]
	lru ilist.List // recency order: front = most recently used
	age ilist.List // insertion order: front = newest, back = earliest deadline

	opt Options[K, V]

	closed atomic.Bool

	// singleflight group for coalescing concurrent loads in GetOrLoad.
	sf singleflight.Group[K, V]

	// ---- hot counters (separate cache lines to avoid false sharing) ----
	_      util.CacheLinePad
	hits   util.PaddedAtomicUint64
	misses util.PaddedAtomicUint64
	evicts util.PaddedAtomicUint64
}

// New constructs a single-lock cache with the provided Options.
// It panics if Capacity <= 0: a cache that can hold nothing cannot satisfy
// the post-insert capacity guarantee.
func New[K comparable, V any](opt Options[K, V]) Cache[K, V] {
	if opt.Capacity <= 0 {
		panic("cache: Capacity must be > 0")
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	return newStore(opt)
}

// newStore builds the concrete store. Split out so NewSharded can construct
// shards without re-validating per shard.
func newStore[K comparable, V any](opt Options[K, V]) *store[K, V] {
	ar := newArena[K, V](opt.Capacity)
	return &store[K, V]{
		idx: make(map[K]int, opt.Capacity),
		ar:  ar,
		lru: ilist.New(useLinks[K, V]{a: ar}),
		age: ilist.New(ageLinks[K, V]{a: ar}),
		opt: opt,
	}
}

// Get returns the value for k and a presence flag. On hit, the entry moves
// to the front of the recency list; the age list is never touched by reads.
// An entry past its deadline is a miss but stays resident — removing it is
// the sweep's job, which keeps Get allocation-free.
func (c *store[K, V]) Get(k K) (V, bool) {
	var zero V
	if c.closed.Load() {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.idx[k]
	if !ok {
		c.misses.Add(1)
		c.opt.Metrics.Miss()
		return zero, false
	}
	s := c.ar.at(i)
	if expired(s.exp, c.now()) {
		c.misses.Add(1)
		c.opt.Metrics.Miss()
		return zero, false
	}

	c.lru.MoveToFront(i)
	c.hits.Add(1)
	c.opt.Metrics.Hit()
	return s.val, true
}

// Put inserts or overwrites k→v. The old entry for k (if any) is removed
// first, then the sweep runs, then the new entry is linked at the front of
// both lists with deadline now+TTL. Put cannot fail: after the sweep the
// index is guaranteed to have room.
func (c *store[K, V]) Put(k K, v V) {
	if c.closed.Load() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.idx[k]; ok {
		c.evictLocked(i, EvictReplaced)
	}

	now := c.now()
	c.sweepLocked(now)

	var exp int64
	if c.opt.TTL > 0 {
		exp = now + int64(c.opt.TTL)
	}
	i := c.ar.alloc(k, v, exp)
	c.idx[k] = i
	c.lru.PushFront(i)
	c.age.PushFront(i)
	c.opt.Metrics.Size(len(c.idx))
}

// Delete removes k if present. Explicit deletes are not counted as
// evictions and do not trigger OnEvict.
func (c *store[K, V]) Delete(k K) bool {
	if c.closed.Load() {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.idx[k]
	if !ok {
		return false
	}
	c.lru.Remove(i)
	c.age.Remove(i)
	delete(c.idx, k)
	c.ar.release(i)
	c.opt.Metrics.Size(len(c.idx))
	return true
}

// Len returns the number of resident entries, expired-but-unswept included.
func (c *store[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.idx)
}

// Stats returns a snapshot of the padded counters.
func (c *store[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evicts.Load(),
	}
}

// Close marks the cache as closed. Future operations are ignored.
func (c *store[K, V]) Close() error {
	c.closed.Store(true)
	return nil
}

// GetOrLoad returns the value for k; on miss it loads via Options.Loader,
// coalescing concurrent loads for the same key (singleflight).
// If no Loader is configured, returns ErrNoLoader.
func (c *store[K, V]) GetOrLoad(ctx context.Context, k K) (V, error) {
	// fast path
	if v, ok := c.Get(k); ok {
		return v, nil
	}
	if c.opt.Loader == nil {
		var zero V
		return zero, ErrNoLoader
	}

	// singleflight: exactly one real load for the key
	return c.sf.Do(ctx, k, func() (V, error) {
		// double-check after flight join
		if v, ok := c.Get(k); ok {
			return v, nil
		}
		v, err := c.opt.Loader(ctx, k)
		if err == nil {
			c.Put(k, v)
		}
		return v, err
	})
}

// -------------------- internals (mu held) --------------------

// expired reports whether a deadline has passed. exp == 0 means no TTL.
// The boundary nanosecond counts as expired: an entry is gone once
// now - insertion >= TTL.
func expired(exp, now int64) bool {
	return exp != 0 && now >= exp
}

func (c *store[K, V]) now() int64 {
	if c.opt.Clock != nil {
		return c.opt.Clock.NowUnixNano()
	}
	return time.Now().UnixNano()
}

// sweepLocked makes room before an insert. It runs only when the index is
// already at capacity, in two phases whose order matters: expired entries
// are worthless regardless of recency, so they go first; only if that was
// not enough does the cache give up a live least-recently-used entry.
func (c *store[K, V]) sweepLocked(now int64) {
	if len(c.idx) < c.opt.Capacity {
		return
	}

	// Temporal phase: drain expired entries from the old end of the age
	// list. Deadlines are non-decreasing toward the front (uniform TTL),
	// so the first live tail ends the walk.
	for i := c.age.Back(); i != ilist.None; i = c.age.Back() {
		if !expired(c.ar.at(i).exp, now) {
			break
		}
		c.evictLocked(i, EvictTTL)
	}

	// Capacity phase: evict least-recently-used entries until the insert
	// that follows fits within Capacity.
	for len(c.idx) >= c.opt.Capacity {
		i := c.lru.Back()
		if i == ilist.None {
			break
		}
		c.evictLocked(i, EvictCapacity)
	}
}

// evictLocked fully removes slot i: both lists, the index, and the arena,
// in that order, then reports the eviction. Key and value are copied out
// first because release zeroes the slot.
func (c *store[K, V]) evictLocked(i int, reason EvictReason) {
	s := c.ar.at(i)
	k, v := s.key, s.val

	c.lru.Remove(i)
	c.age.Remove(i)
	delete(c.idx, k)
	c.ar.release(i)

	c.evicts.Add(1)
	c.opt.Metrics.Evict(reason)
	if cb := c.opt.OnEvict; cb != nil {
		// Called under the lock; callbacks must stay cheap and must not
		// re-enter the cache.
		cb(k, v, reason)
	}
}
