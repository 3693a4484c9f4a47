//go:build go1.18

package cache

import (
	"strings"
	"testing"
)

// Fuzz basic Put/Get/Delete semantics under arbitrary string inputs.
// Guards against panics and ensures core invariants hold.
// NOTE: We cap key/value lengths to avoid pathological memory usage
// during fuzzing (this does not weaken the invariants we check).
func FuzzCache_PutGetDelete(f *testing.F) {
	// Seed corpus: empty, ASCII, Unicode, long strings.
	f.Add("", "")
	f.Add("a", "1")
	f.Add("b", "2")
	f.Add("αβγ", "δ")
	f.Add("emoji🙂", "🙂🙂")
	f.Add("long", strings.Repeat("x", 1024))

	f.Fuzz(func(t *testing.T, k, v string) {
		// Cap lengths to keep memory bounded during fuzzing.
		const limit = 1 << 12 // 4096
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		c := New[string, string](Options[string, string]{Capacity: 16})
		t.Cleanup(func() { _ = c.Close() })

		// Put -> Get must return the same value.
		c.Put(k, v)
		got, ok := c.Get(k)
		if !ok || got != v {
			t.Fatalf("after Put/Get: want %q, got %q ok=%v", v, got, ok)
		}

		// Overwrite must win and leave exactly one entry.
		c.Put(k, v+"*")
		if got2, ok := c.Get(k); !ok || got2 != v+"*" {
			t.Fatalf("after overwrite: want %q, got %q ok=%v", v+"*", got2, ok)
		}
		if n := c.Len(); n != 1 {
			t.Fatalf("overwrite must not duplicate, Len=%d", n)
		}

		// Delete must remove and report true once.
		if !c.Delete(k) {
			t.Fatalf("Delete must return true")
		}
		if c.Delete(k) {
			t.Fatalf("second Delete must return false")
		}
		if _, ok := c.Get(k); ok {
			t.Fatalf("key must be absent after Delete")
		}

		// After removal, Put should work again.
		c.Put(k, v)
		if got3, ok := c.Get(k); !ok || got3 != v {
			t.Fatalf("Put after Delete: want %q, got %q ok=%v", v, got3, ok)
		}
	})
}
