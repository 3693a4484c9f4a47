// Package singleflight coalesces concurrent calls for the same key so the
// underlying work runs at most once while callers share the result.
package singleflight

import (
	"context"
	"sync"
)

// Group deduplicates concurrent fn invocations per key K.
//
// The first caller for a key becomes the leader and runs fn; followers
// block on the call's done channel. Publishing (val, err) happens-before
// close(done), so followers observe the final values. A follower whose ctx
// is cancelled unblocks alone; the leader keeps running.
type Group[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]*call[V]
}

type call[V any] struct {
	done chan struct{} // closed once val/err are published
	val  V
	err  error
}

// Do runs fn once for key; concurrent calls with the same key wait for the
// shared result. Cancelling ctx does not stop the leader's fn — thread ctx
// into fn if the work itself must be cancellable.
func (g *Group[K, V]) Do(ctx context.Context, key K, fn func() (V, error)) (V, error) {
	g.mu.Lock()
	if g.m == nil {
		g.m = make(map[K]*call[V])
	}
	if c, ok := g.m[key]; ok {
		// In-flight call exists: join it, respecting ctx.
		done := c.done
		g.mu.Unlock()

		select {
		case <-done:
			return c.val, c.err
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
	}

	// Leader path.
	c := &call[V]{done: make(chan struct{})}
	g.m[key] = c
	g.mu.Unlock()

	v, err := fn() // outside the lock

	c.val, c.err = v, err
	close(c.done)

	g.mu.Lock()
	delete(g.m, key)
	g.mu.Unlock()

	return v, err
}
