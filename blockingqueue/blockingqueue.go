package blockingqueue

import (
	"context"
	"errors"
	"sync"

	"github.com/xyhelper/linkq"
)

// Queue is a blocking, concurrency-safe wrapper around linkq.Queue. It keeps
// the base queue's set semantics (an entry already present is rejected by
// Put until it leaves the queue) and adds waiting consumers: Take blocks
// until an entry is available or the context is done.
//
// All methods are safe for concurrent use by multiple goroutines.
type Queue[T any] struct {
	mu sync.Mutex
	cv *sync.Cond
	q  *linkq.Queue[T]
}

// New creates a new blocking queue.
func New[T any]() *Queue[T] {
	b := &Queue[T]{q: linkq.New[T]()}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// NewWithCapacity creates a new blocking queue with initial capacity.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	b := &Queue[T]{q: linkq.NewWithCapacity[T](capacity)}
	b.cv = sync.NewCond(&b.mu)
	return b
}

// Put appends e to the tail. Returns true if the entry was added, or false
// when e is nil or already present. Wakes waiters only when an entry is
// actually added.
func (b *Queue[T]) Put(e *T) bool {
	b.mu.Lock()
	added := b.q.Enqueue(e)
	if added {
		b.cv.Broadcast()
	}
	b.mu.Unlock()
	return added
}

// PutMany enqueues entries and returns the count actually added.
// Broadcasts once if any entry is added.
func (b *Queue[T]) PutMany(items ...*T) int {
	b.mu.Lock()
	n := b.q.EnqueueMany(items...)
	if n > 0 {
		b.cv.Broadcast()
	}
	b.mu.Unlock()
	return n
}

// TryTake removes and returns the head entry without blocking.
// ok is false if the queue is empty.
func (b *Queue[T]) TryTake() (v *T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.Dequeue()
	b.mu.Unlock()
	return
}

// Take blocks until an entry is available or ctx is done. On success returns
// (entry, nil). On cancellation returns nil and ctx.Err().
func (b *Queue[T]) Take(ctx context.Context) (*T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	b.mu.Lock()
	// Fast path
	if v, ok := b.q.Dequeue(); ok {
		b.mu.Unlock()
		return v, nil
	}
	// Wait with context cancellation. We spawn a short-lived watcher that
	// broadcasts on cancellation to wake Wait.
	for {
		done := make(chan struct{})
		go func() {
			select {
			case <-ctx.Done():
				b.mu.Lock()
				b.cv.Broadcast()
				b.mu.Unlock()
			case <-done:
			}
		}()

		b.cv.Wait() // releases and re-acquires b.mu
		close(done)

		if v, ok := b.q.Dequeue(); ok {
			b.mu.Unlock()
			return v, nil
		}
		if err := ctx.Err(); err != nil {
			b.mu.Unlock()
			return nil, err
		}
	}
}

// Peek returns the head entry without removing it. ok is false when empty.
func (b *Queue[T]) Peek() (v *T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.Peek()
	b.mu.Unlock()
	return
}

// Len returns the number of entries currently queued.
func (b *Queue[T]) Len() int {
	b.mu.Lock()
	n := b.q.Len()
	b.mu.Unlock()
	return n
}

// IsEmpty reports whether the queue is empty.
func (b *Queue[T]) IsEmpty() bool { return b.Len() == 0 }

// Contains reports whether e is currently present in the queue.
func (b *Queue[T]) Contains(e *T) bool {
	b.mu.Lock()
	ok := b.q.Contains(e)
	b.mu.Unlock()
	return ok
}

// Next returns the entry immediately following e, as of the time of the
// call. ok is false when e is nil, not a member, or the tail.
func (b *Queue[T]) Next(e *T) (v *T, ok bool) {
	b.mu.Lock()
	v, ok = b.q.Next(e)
	b.mu.Unlock()
	return
}

// Remove deletes e from the queue if present. Returns true if removed.
func (b *Queue[T]) Remove(e *T) bool {
	b.mu.Lock()
	removed := b.q.Remove(e)
	b.mu.Unlock()
	return removed
}

// Clear removes all entries from the queue.
func (b *Queue[T]) Clear() {
	b.mu.Lock()
	b.q.Clear()
	b.mu.Unlock()
}

// ToSlice returns a copy of the queue's entries in FIFO order.
func (b *Queue[T]) ToSlice() []*T {
	b.mu.Lock()
	out := b.q.ToSlice()
	b.mu.Unlock()
	return out
}

// ErrCanceled is returned by Take when the context is canceled.
var ErrCanceled = context.Canceled

// ErrDeadlineExceeded is returned by Take when the context deadline expires.
var ErrDeadlineExceeded = context.DeadlineExceeded

// IsContextError reports whether err equals context.Canceled or context.DeadlineExceeded.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
