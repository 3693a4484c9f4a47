// Package ilist implements a doubly linked list over integer slot indices.
//
// The list owns no storage: link pairs live inside the caller's slot table
// (an arena) and are handed out through the Store accessor. Because an
// entry can embed several Links values, one entry can sit in several
// independent orderings at once — each List manipulates only the pair the
// Store resolves for it.
package ilist

// None marks an absent link, an empty list, or "not linked".
const None = -1

// Links is one prev/next pair embedded in a slot. A slot that belongs to
// two lists embeds two Links values, one per ordering.
type Links struct {
	Prev int
	Next int
}

// Unlinked is the state of a Links pair that is in no list.
var Unlinked = Links{Prev: None, Next: None}

// Store resolves the link pair this list owns for a given slot index.
//
// The returned pointer is only valid until the slot table is next mutated
// (a growing arena may reallocate); List never retains it across calls.
type Store interface {
	Links(i int) *Links
}

// List is a doubly linked list of slot indices with O(1) link and unlink.
// The zero value is not usable; construct with New.
//
// Concurrency: List does no locking. Callers serialize all access,
// typically under the lock that also guards the slot table.
type List struct {
	s    Store
	head int
	tail int
}

// New returns an empty list bound to the given link-pair store.
func New(s Store) List {
	return List{s: s, head: None, tail: None}
}

// Front returns the head slot index, or None if the list is empty.
func (l *List) Front() int { return l.head }

// Back returns the tail slot index, or None if the list is empty.
func (l *List) Back() int { return l.tail }

// PushFront links slot i as the new head. i must not currently be linked.
// If the list was empty, i becomes both head and tail. The new head's
// Prev is always None; it never inherits a link from the old tail.
func (l *List) PushFront(i int) {
	ln := l.s.Links(i)
	ln.Prev = None
	ln.Next = l.head
	if l.head != None {
		l.s.Links(l.head).Prev = i
	}
	l.head = i
	if l.tail == None {
		l.tail = i
	}
}

// Remove unlinks slot i. i must currently be linked in this list.
// Pure pointer surgery: neighbors are spliced together and head/tail are
// adjusted when i was at either end. The pair is reset to Unlinked.
func (l *List) Remove(i int) {
	ln := l.s.Links(i)
	if ln.Prev != None {
		l.s.Links(ln.Prev).Next = ln.Next
	}
	if ln.Next != None {
		l.s.Links(ln.Next).Prev = ln.Prev
	}
	if l.head == i {
		l.head = ln.Next
	}
	if l.tail == i {
		l.tail = ln.Prev
	}
	*ln = Unlinked
}

// MoveToFront promotes a linked slot i to head in O(1).
func (l *List) MoveToFront(i int) {
	if l.head == i {
		return
	}
	l.Remove(i)
	l.PushFront(i)
}

// Next returns the slot after i (toward the tail), or None.
func (l *List) Next(i int) int { return l.s.Links(i).Next }

// Prev returns the slot before i (toward the head), or None.
func (l *List) Prev(i int) int { return l.s.Links(i).Prev }
