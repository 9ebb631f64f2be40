package linkq

import "iter"

// Queue is a FIFO queue with set semantics over pointer entries. Membership
// is decided by pointer identity, and an entry already present is rejected by
// Enqueue until it leaves the queue again (via Dequeue, Remove or Clear).
//
// Instead of allocating a list node per element, the queue records each
// member's successor in a per-queue table keyed by the entry pointer. The
// table entry doubles as the membership mark, so the same entry can be held
// by several queues at once, each with its own independent link state. The
// zero value is not ready for use; construct via New or NewWithCapacity.
type Queue[T any] struct {
	head  *T
	tail  *T
	links map[*T]*T // member -> successor; nil successor marks the tail
}

// New creates a new queue.
//
// The queue is not safe for concurrent use; see the package documentation
// for the confinement rules.
func New[T any]() *Queue[T] {
	return &Queue[T]{
		links: make(map[*T]*T),
	}
}

// NewWithCapacity creates a new queue with the given initial capacity.
// Capacity pre-sizes the internal link table; behavior is otherwise
// identical to New.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{
		links: make(map[*T]*T, capacity),
	}
}

// Enqueue appends e to the tail.
//
// Returns true if the entry was added, or false when e is nil or already a
// member of this queue. A rejected call mutates nothing. Complexity: O(1).
func (q *Queue[T]) Enqueue(e *T) bool {
	if e == nil {
		return false
	}
	if _, member := q.links[e]; member {
		return false
	}
	if q.tail == nil {
		q.head = e
	} else {
		q.links[q.tail] = e
	}
	q.links[e] = nil
	q.tail = e
	return true
}

// EnqueueMany enqueues entries and returns the count actually added.
//
// Entries that are nil, already members, or repeated within items are
// skipped without being counted. Complexity: O(k) for k entries.
func (q *Queue[T]) EnqueueMany(items ...*T) int {
	added := 0
	for _, e := range items {
		if q.Enqueue(e) {
			added++
		}
	}
	return added
}

// Dequeue removes and returns the head entry, releasing its link state.
//
// The second result is false when the queue is empty. Complexity: O(1).
func (q *Queue[T]) Dequeue() (*T, bool) {
	if q.head == nil {
		return nil, false
	}
	e := q.head
	q.head = q.links[e]
	delete(q.links, e)
	if q.head == nil {
		q.tail = nil
	}
	return e, true
}

// Peek returns the head entry without removing it.
// The second result is false when the queue is empty. Complexity: O(1).
func (q *Queue[T]) Peek() (*T, bool) {
	if q.head == nil {
		return nil, false
	}
	return q.head, true
}

// Len returns the number of entries currently queued. Complexity: O(1).
func (q *Queue[T]) Len() int {
	return len(q.links)
}

// IsEmpty reports whether the queue is empty.
// Complexity: O(1). Equivalent to Len() == 0.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Contains reports whether e is currently a member of this queue.
// Always false for nil. Complexity: O(1).
func (q *Queue[T]) Contains(e *T) bool {
	if e == nil {
		return false
	}
	_, member := q.links[e]
	return member
}

// Next returns the entry immediately following e in this queue.
//
// The second result is false when e is nil, not a member, or the tail.
// The result reflects live structure, not a snapshot. Complexity: O(1).
func (q *Queue[T]) Next(e *T) (*T, bool) {
	if e == nil {
		return nil, false
	}
	next, member := q.links[e]
	if !member || next == nil {
		return nil, false
	}
	return next, true
}

// Remove deletes e from the queue if it is a member, releasing its link
// state and preserving the order of the remaining entries.
//
// Returns true if removed. Non-members are rejected in O(1); a successful
// removal scans the chain for e's predecessor. Prefer Dequeue when FIFO
// order permits. Complexity: O(n).
func (q *Queue[T]) Remove(e *T) bool {
	if e == nil {
		return false
	}
	next, member := q.links[e]
	if !member {
		return false
	}
	if q.head == e {
		q.head = next
		if next == nil {
			q.tail = nil
		}
	} else {
		prev := q.head
		for q.links[prev] != e {
			prev = q.links[prev]
		}
		q.links[prev] = next
		if q.tail == e {
			q.tail = prev
		}
	}
	delete(q.links, e)
	return true
}

// Clear removes all entries from the queue, releasing every link
// association. Clearing an empty queue is a no-op. Complexity: O(n).
func (q *Queue[T]) Clear() {
	clear(q.links)
	q.head = nil
	q.tail = nil
}

// ToSlice returns the queue's entries in FIFO order.
// The returned slice is freshly allocated and independent of the queue.
// Complexity: O(n).
func (q *Queue[T]) ToSlice() []*T {
	out := make([]*T, 0, len(q.links))
	for e := q.head; e != nil; e = q.links[e] {
		out = append(out, e)
	}
	return out
}

// ToSet returns the queue's entries as a set.
// The returned map is freshly allocated and independent of the queue.
// Complexity: O(n).
func (q *Queue[T]) ToSet() map[*T]struct{} {
	out := make(map[*T]struct{}, len(q.links))
	for e := range q.links {
		out[e] = struct{}{}
	}
	return out
}

// All returns an iterator over the queue's entries in FIFO order.
//
// Each call starts a fresh pass at the then-current head. A pass is a live
// view of the chain, not a snapshot: the entry just yielded may be removed
// during the pass, but any other mutation of the queue mid-pass can skip or
// revisit entries and must be avoided by the caller.
func (q *Queue[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for e := q.head; e != nil; {
			next := q.links[e]
			if !yield(e) {
				return
			}
			e = next
		}
	}
}
