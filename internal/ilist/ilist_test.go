package ilist

import "testing"

// --- test doubles ---

// tableStore is a slice-backed Store: slot i's link pair lives at links[i].
type tableStore struct {
	links []Links
}

func newTableStore(n int) *tableStore {
	s := &tableStore{links: make([]Links, n)}
	for i := range s.links {
		s.links[i] = Unlinked
	}
	return s
}

func (s *tableStore) Links(i int) *Links { return &s.links[i] }

// frontToBack collects indices by walking Next from the head.
func frontToBack(l *List) []int {
	var out []int
	for i := l.Front(); i != None; i = l.Next(i) {
		out = append(out, i)
	}
	return out
}

// backToFront collects indices by walking Prev from the tail.
func backToFront(l *List) []int {
	var out []int
	for i := l.Back(); i != None; i = l.Prev(i) {
		out = append(out, i)
	}
	return out
}

func assertOrder(t *testing.T, l *List, want []int) {
	t.Helper()

	got := frontToBack(l)
	if len(got) != len(want) {
		t.Fatalf("order: want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order: want %v, got %v", want, got)
		}
	}

	rev := backToFront(l)
	if len(rev) != len(want) {
		t.Fatalf("reverse walk: want %d items, got %v", len(want), rev)
	}
	for i := range want {
		if rev[len(rev)-1-i] != want[i] {
			t.Fatalf("reverse walk asymmetric: fwd=%v bwd=%v", got, rev)
		}
	}
}

// --- tests ---

// PushFront makes the slot the new head with no backward link; the first
// slot becomes both head and tail.
func TestList_PushFront(t *testing.T) {
	t.Parallel()

	s := newTableStore(4)
	l := New(s)

	if l.Front() != None || l.Back() != None {
		t.Fatal("new list must be empty")
	}

	l.PushFront(0)
	if l.Front() != 0 || l.Back() != 0 {
		t.Fatal("single slot must be both head and tail")
	}

	l.PushFront(1)
	l.PushFront(2)
	assertOrder(t, &l, []int{2, 1, 0})

	if s.links[2].Prev != None {
		t.Fatalf("head must have Prev=None, got %d", s.links[2].Prev)
	}
	if s.links[0].Next != None {
		t.Fatalf("tail must have Next=None, got %d", s.links[0].Next)
	}
}

// Remove splices neighbors at the head, in the middle, and at the tail,
// and resets the removed pair to Unlinked.
func TestList_Remove(t *testing.T) {
	t.Parallel()

	s := newTableStore(4)
	l := New(s)
	for i := 0; i < 4; i++ {
		l.PushFront(i)
	}
	assertOrder(t, &l, []int{3, 2, 1, 0})

	l.Remove(2) // middle
	assertOrder(t, &l, []int{3, 1, 0})
	if s.links[2] != Unlinked {
		t.Fatalf("removed slot must be Unlinked, got %+v", s.links[2])
	}

	l.Remove(3) // head
	assertOrder(t, &l, []int{1, 0})

	l.Remove(0) // tail
	assertOrder(t, &l, []int{1})

	l.Remove(1) // last
	if l.Front() != None || l.Back() != None {
		t.Fatal("list must be empty after removing the last slot")
	}
}

// MoveToFront promotes any slot to head; promoting the head is a no-op.
func TestList_MoveToFront(t *testing.T) {
	t.Parallel()

	s := newTableStore(3)
	l := New(s)
	for i := 0; i < 3; i++ {
		l.PushFront(i)
	}
	assertOrder(t, &l, []int{2, 1, 0})

	l.MoveToFront(0) // tail -> head
	assertOrder(t, &l, []int{0, 2, 1})

	l.MoveToFront(2) // middle -> head
	assertOrder(t, &l, []int{2, 0, 1})

	l.MoveToFront(2) // head -> head
	assertOrder(t, &l, []int{2, 0, 1})
}

// Two lists over the same slots stay independent: each owns its own link
// pair, so reordering one must not disturb the other. This is the property
// the cache relies on for its recency and expiry orderings.
func TestList_TwoListsShareSlots(t *testing.T) {
	t.Parallel()

	a := newTableStore(3)
	b := newTableStore(3)
	la := New(a)
	lb := New(b)

	for i := 0; i < 3; i++ {
		la.PushFront(i)
		lb.PushFront(i)
	}

	la.MoveToFront(0)
	la.MoveToFront(1)
	assertOrder(t, &la, []int{1, 0, 2})
	assertOrder(t, &lb, []int{2, 1, 0}) // untouched

	lb.Remove(1)
	assertOrder(t, &lb, []int{2, 0})
	assertOrder(t, &la, []int{1, 0, 2}) // untouched
}
