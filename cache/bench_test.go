package cache

import (
	"math/rand"
	"strconv"
	"sync/atomic"
	"testing"
	"time"
)

// benchmarkMix exercises a read/write mix against a warm cache.
// It uses parallel workers (RunParallel spawns GOMAXPROCS goroutines).
// String keys include strconv/concat costs and often allocate, which is
// fine for an end-to-end benchmark.
func benchmarkMix(b *testing.B, c Cache[string, string], readsPct int) {
	b.Cleanup(func() { _ = c.Close() })

	// Preload half the capacity to get a realistic hit-rate.
	for i := 0; i < 50_000; i++ {
		c.Put("k:"+strconv.Itoa(i), "v")
	}

	// Report per-op allocations for a rough idea where costs go.
	b.ReportAllocs()
	b.ResetTimer()

	var seed int64 = 1
	keyMask := (1 << 16) - 1 // hot keyspace (power of two for fast &-mask)

	b.RunParallel(func(pb *testing.PB) {
		// Independent RNG stream for each worker.
		r := rand.New(rand.NewSource(atomic.AddInt64(&seed, 1)))
		i := 0
		for pb.Next() {
			k := "k:" + strconv.Itoa(i&keyMask)
			if r.Intn(100) < readsPct {
				c.Get(k)
			} else {
				c.Put(k, "v")
			}
			i++
		}
	})
}

func BenchmarkStore_90r10w(b *testing.B) {
	benchmarkMix(b, New[string, string](Options[string, string]{Capacity: 100_000}), 90)
}

func BenchmarkStore_50r50w(b *testing.B) {
	benchmarkMix(b, New[string, string](Options[string, string]{Capacity: 100_000}), 50)
}

func BenchmarkSharded_90r10w(b *testing.B) {
	benchmarkMix(b, NewSharded[string, string](Options[string, string]{Capacity: 100_000}), 90)
}

func BenchmarkSharded_50r50w(b *testing.B) {
	benchmarkMix(b, NewSharded[string, string](Options[string, string]{Capacity: 100_000}), 50)
}

// BenchmarkStore_TTLSweep stresses the insert path while every resident
// entry is expired, so each Put pays for temporal-phase reaping.
func BenchmarkStore_TTLSweep(b *testing.B) {
	clk := &fakeClock{}
	c := New[int, int](Options[int, int]{Capacity: 1024, TTL: time.Millisecond, Clock: clk})
	b.Cleanup(func() { _ = c.Close() })

	for i := 0; i < 1024; i++ {
		c.Put(i, i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		clk.add(2 * time.Millisecond)
		c.Put(i, i)
	}
}
