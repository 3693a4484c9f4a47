package cache

import "github.com/IvanBrykalov/ttlru/internal/ilist"

// slot is one cache entry inside the arena. It carries the key/value pair,
// the absolute expiry deadline, and one link pair per ordering.
type slot[K comparable, V any] struct {
	key K
	val V

	// Absolute expiration deadline in UnixNano.
	// Zero means "no TTL".
	exp int64

	// use orders slots by access recency (front = most recently used).
	// age orders slots by insertion time (front = newest).
	use ilist.Links
	age ilist.Links
}

// arena is a growable slot table. Lists address entries by stable integer
// indices into it, so growing the table never invalidates a link the way
// reallocating pointer nodes would. Freed indices are recycled via a free
// stack; freed slots are zeroed so key/value payloads become collectable.
type arena[K comparable, V any] struct {
	slots []slot[K, V]
	free  []int
}

func newArena[K comparable, V any](capacity int) *arena[K, V] {
	return &arena[K, V]{slots: make([]slot[K, V], 0, capacity)}
}

// alloc stores a new entry and returns its index, preferring a recycled
// slot over growing the table.
func (a *arena[K, V]) alloc(k K, v V, exp int64) int {
	s := slot[K, V]{key: k, val: v, exp: exp, use: ilist.Unlinked, age: ilist.Unlinked}
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[i] = s
		return i
	}
	a.slots = append(a.slots, s)
	return len(a.slots) - 1
}

// release recycles index i. The slot is zeroed first: callers may retain
// the value they read out of it, but the arena must not.
func (a *arena[K, V]) release(i int) {
	var zero slot[K, V]
	a.slots[i] = zero
	a.free = append(a.free, i)
}

// at returns the slot at index i. The pointer is valid only until the next
// alloc (the table may grow).
func (a *arena[K, V]) at(i int) *slot[K, V] { return &a.slots[i] }

// useLinks and ageLinks adapt the arena to ilist.Store, selecting which
// link pair a list owns. Both lists share the same slots.

type useLinks[K comparable, V any] struct{ a *arena[K, V] }

func (s useLinks[K, V]) Links(i int) *ilist.Links { return &s.a.slots[i].use }

type ageLinks[K comparable, V any] struct{ a *arena[K, V] }

func (s ageLinks[K, V]) Links(i int) *ilist.Links { return &s.a.slots[i].age }
