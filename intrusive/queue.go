// Package intrusive provides the allocation-free variant of the linkq set
// queue: the per-queue link slot lives inside the entry type itself, as an
// embedded Hook field, instead of in a queue-side table.
//
// Each queue instance is constructed with an accessor returning the hook
// field it owns. A hook supports membership in one queue at a time; an entry
// type that must sit in several queues concurrently embeds one hook per
// queue, and each queue gets the accessor for its own field. Handing the
// same hook field to two live queues corrupts both.
//
// The entry type is typically a pointer type, whose zero value (nil) is the
// invalid/absent sentinel. Like the base package, queues here perform no
// internal locking and release hooks only on Dequeue, Remove or Clear.
package intrusive

import "iter"

// Hook is the link slot a queue threads its chain through. Embed one in the
// entry type per queue the entry may occupy, and hand each queue an accessor
// for its own field. The zero Hook is ready for use.
type Hook[T comparable] struct {
	next   T
	linked bool
}

// InQueue reports whether the hook is currently threaded into a queue.
func (h *Hook[T]) InQueue() bool {
	return h.linked
}

// Queue is a FIFO queue with set semantics whose successor chain runs
// through hooks embedded in the entries. All operations are allocation-free;
// Enqueue, Dequeue, Contains and Next are O(1) worst case.
//
// Entries are compared by identity (the == of the entry type, in practice a
// pointer). The zero value of the entry type is rejected by every operation.
type Queue[T comparable] struct {
	hook func(T) *Hook[T]
	head T
	tail T
	size int
}

// New creates a queue threading its chain through the hooks returned by the
// given accessor. The accessor must be total over non-zero entries and must
// not be shared with another live queue.
func New[T comparable](hook func(T) *Hook[T]) *Queue[T] {
	return &Queue[T]{hook: hook}
}

// Enqueue appends e to the tail.
//
// Returns true if the entry was added, or false when e is the zero entry,
// its hook is nil, or the hook is already linked. A rejected call mutates
// nothing. Complexity: O(1).
func (q *Queue[T]) Enqueue(e T) bool {
	var zero T
	if e == zero {
		return false
	}
	h := q.hook(e)
	if h == nil || h.linked {
		return false
	}
	h.next = zero
	h.linked = true
	if q.size == 0 {
		q.head = e
	} else {
		q.hook(q.tail).next = e
	}
	q.tail = e
	q.size++
	return true
}

// EnqueueMany enqueues entries and returns the count actually added.
// Rejected entries are skipped without being counted.
func (q *Queue[T]) EnqueueMany(items ...T) int {
	added := 0
	for _, e := range items {
		if q.Enqueue(e) {
			added++
		}
	}
	return added
}

// Dequeue removes and returns the head entry, resetting its hook.
// The second result is false when the queue is empty. Complexity: O(1).
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	e := q.head
	h := q.hook(e)
	q.head = h.next
	h.next = zero
	h.linked = false
	q.size--
	if q.size == 0 {
		q.tail = zero
	}
	return e, true
}

// Peek returns the head entry without removing it.
// The second result is false when the queue is empty. Complexity: O(1).
func (q *Queue[T]) Peek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.head, true
}

// Len returns the number of entries currently queued. Complexity: O(1).
func (q *Queue[T]) Len() int {
	return q.size
}

// IsEmpty reports whether the queue is empty.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Contains reports whether e's hook is linked. Always false for the zero
// entry. Complexity: O(1).
func (q *Queue[T]) Contains(e T) bool {
	var zero T
	if e == zero {
		return false
	}
	h := q.hook(e)
	return h != nil && h.linked
}

// Next returns the entry immediately following e in this queue.
//
// The second result is false when e is invalid, not linked, or the tail.
// The result reflects live structure, not a snapshot. Complexity: O(1).
func (q *Queue[T]) Next(e T) (T, bool) {
	var zero T
	if e == zero {
		return zero, false
	}
	h := q.hook(e)
	if h == nil || !h.linked || h.next == zero {
		return zero, false
	}
	return h.next, true
}

// Remove deletes e from the queue if linked, resetting its hook and
// preserving the order of the remaining entries.
//
// Returns true if removed. Non-members are rejected in O(1); a successful
// removal scans the chain for e's predecessor. Prefer Dequeue when FIFO
// order permits. Complexity: O(n).
func (q *Queue[T]) Remove(e T) bool {
	var zero T
	if e == zero {
		return false
	}
	h := q.hook(e)
	if h == nil || !h.linked {
		return false
	}
	if q.head == e {
		q.head = h.next
		if q.head == zero {
			q.tail = zero
		}
	} else {
		prev := q.head
		for q.hook(prev).next != e {
			prev = q.hook(prev).next
		}
		q.hook(prev).next = h.next
		if q.tail == e {
			q.tail = prev
		}
	}
	h.next = zero
	h.linked = false
	q.size--
	return true
}

// Clear walks the chain resetting every hook, then empties the queue.
// Clearing an empty queue is a no-op. Complexity: O(n).
func (q *Queue[T]) Clear() {
	var zero T
	for e := q.head; e != zero; {
		h := q.hook(e)
		e = h.next
		h.next = zero
		h.linked = false
	}
	q.head = zero
	q.tail = zero
	q.size = 0
}

// ToSlice returns the queue's entries in FIFO order.
// The returned slice is freshly allocated and independent of the queue.
// Complexity: O(n).
func (q *Queue[T]) ToSlice() []T {
	var zero T
	out := make([]T, 0, q.size)
	for e := q.head; e != zero; e = q.hook(e).next {
		out = append(out, e)
	}
	return out
}

// ToSet returns the queue's entries as a set.
// The returned map is freshly allocated and independent of the queue.
// Complexity: O(n).
func (q *Queue[T]) ToSet() map[T]struct{} {
	var zero T
	out := make(map[T]struct{}, q.size)
	for e := q.head; e != zero; e = q.hook(e).next {
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
func (q *Queue[T]) All() iter.Seq[T] {
	var zero T
	return func(yield func(T) bool) {
		for e := q.head; e != zero; {
			next := q.hook(e).next
			if !yield(e) {
				return
			}
			e = next
		}
	}
}
