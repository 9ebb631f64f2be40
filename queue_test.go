package linkq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type task struct {
	id int
}

func tasks(n int) []*task {
	out := make([]*task, n)
	for i := range out {
		out[i] = &task{id: i}
	}
	return out
}

func TestEmptyQueue(t *testing.T) {
	q := New[task]()
	require.True(t, q.IsEmpty())
	require.Zero(t, q.Len())

	v, ok := q.Dequeue()
	require.False(t, ok)
	require.Nil(t, v)

	v, ok = q.Peek()
	require.False(t, ok)
	require.Nil(t, v)

	require.Empty(t, q.ToSlice())
	require.Empty(t, q.ToSet())

	// Clearing an empty queue is a no-op.
	q.Clear()
	require.True(t, q.IsEmpty())
}

func TestFIFO(t *testing.T) {
	q := New[task]()
	ts := tasks(3)
	for _, e := range ts {
		require.True(t, q.Enqueue(e))
	}
	require.Equal(t, 3, q.Len())

	head, ok := q.Peek()
	require.True(t, ok)
	require.Same(t, ts[0], head)

	for _, want := range ts {
		v, ok := q.Dequeue()
		require.True(t, ok)
		require.Same(t, want, v)
	}
	v, ok := q.Dequeue()
	require.False(t, ok)
	require.Nil(t, v)
	require.True(t, q.IsEmpty())
}

func TestEnqueueRejectsNil(t *testing.T) {
	q := New[task]()
	require.False(t, q.Enqueue(nil))
	require.Zero(t, q.Len())
	require.False(t, q.Contains(nil))
	require.False(t, q.Remove(nil))

	_, ok := q.Next(nil)
	require.False(t, ok)
}

func TestEnqueueRejectsDuplicate(t *testing.T) {
	q := New[task]()
	e := &task{id: 1}
	require.True(t, q.Enqueue(e))
	require.False(t, q.Enqueue(e))
	require.Equal(t, 1, q.Len())

	// Identity, not value: a distinct object with equal contents is new.
	require.True(t, q.Enqueue(&task{id: 1}))
	require.Equal(t, 2, q.Len())
}

func TestReEnqueueAfterRemoval(t *testing.T) {
	q := New[task]()
	e := &task{}
	require.True(t, q.Enqueue(e))
	_, ok := q.Dequeue()
	require.True(t, ok)
	require.True(t, q.Enqueue(e))
	require.True(t, q.Remove(e))
	require.True(t, q.Enqueue(e))
}

func TestNextChain(t *testing.T) {
	q := New[task]()
	a, b, c := &task{id: 0}, &task{id: 1}, &task{id: 2}
	outsider := &task{id: 3}
	q.EnqueueMany(a, b, c)

	next, ok := q.Next(a)
	require.True(t, ok)
	require.Same(t, b, next)

	next, ok = q.Next(b)
	require.True(t, ok)
	require.Same(t, c, next)

	// Tail and non-member both have no successor.
	_, ok = q.Next(c)
	require.False(t, ok)
	_, ok = q.Next(outsider)
	require.False(t, ok)
}

func TestRemovePreservesOrder(t *testing.T) {
	ts := tasks(5)
	a, b, c, d, e := ts[0], ts[1], ts[2], ts[3], ts[4]

	q := New[task]()
	q.EnqueueMany(a, b, c, d, e)

	require.True(t, q.Remove(c))
	require.Equal(t, []*task{a, b, d, e}, q.ToSlice())
	require.False(t, q.Contains(c))
	require.Equal(t, 4, q.Len())

	// Removing the head advances it.
	require.True(t, q.Remove(a))
	head, ok := q.Peek()
	require.True(t, ok)
	require.Same(t, b, head)

	// Removing the tail repairs the successor chain.
	require.True(t, q.Remove(e))
	require.Equal(t, []*task{b, d}, q.ToSlice())
	_, ok = q.Next(d)
	require.False(t, ok)

	// New enqueues append after the repaired tail.
	f := &task{id: 5}
	require.True(t, q.Enqueue(f))
	require.Equal(t, []*task{b, d, f}, q.ToSlice())
}

func TestRemoveLastEntryEmptiesQueue(t *testing.T) {
	q := New[task]()
	e := &task{}
	q.Enqueue(e)
	require.True(t, q.Remove(e))
	require.True(t, q.IsEmpty())

	_, ok := q.Dequeue()
	require.False(t, ok)

	// head and tail are reset, so the queue is reusable.
	require.True(t, q.Enqueue(e))
	v, ok := q.Dequeue()
	require.True(t, ok)
	require.Same(t, e, v)
}

func TestRemoveNonMember(t *testing.T) {
	q := New[task]()
	q.Enqueue(&task{id: 1})
	require.False(t, q.Remove(&task{id: 1}))
	require.Equal(t, 1, q.Len())
}

func TestDequeueReleasesLinkState(t *testing.T) {
	q := New[task]()
	a, b := &task{id: 0}, &task{id: 1}
	q.EnqueueMany(a, b)

	v, ok := q.Dequeue()
	require.True(t, ok)
	require.Same(t, a, v)
	require.False(t, q.Contains(a))
	_, ok = q.Next(a)
	require.False(t, ok)

	require.Equal(t, []*task{b}, q.ToSlice())
	require.Equal(t, 1, q.Len())
}

func TestClear(t *testing.T) {
	q := New[task]()
	ts := tasks(4)
	q.EnqueueMany(ts...)

	q.Clear()
	require.Zero(t, q.Len())
	for _, e := range ts {
		require.False(t, q.Contains(e))
		_, ok := q.Next(e)
		require.False(t, ok)
	}
	_, ok := q.Dequeue()
	require.False(t, ok)

	// Cleared entries can be enqueued again.
	require.True(t, q.Enqueue(ts[2]))
	require.Equal(t, 1, q.Len())
}

func TestMultiQueueIndependence(t *testing.T) {
	x := &task{id: 7}
	qa := New[task]()
	qb := New[task]()

	require.True(t, qa.Enqueue(x))
	require.True(t, qb.Enqueue(x))

	v, ok := qa.Dequeue()
	require.True(t, ok)
	require.Same(t, x, v)
	require.False(t, qa.Contains(x))
	require.True(t, qb.Contains(x))

	// Successors are per queue as well.
	y := &task{id: 8}
	require.True(t, qb.Enqueue(y))
	next, ok := qb.Next(x)
	require.True(t, ok)
	require.Same(t, y, next)
}

func TestContainsMatchesToSlice(t *testing.T) {
	q := New[task]()
	ts := tasks(6)
	q.EnqueueMany(ts...)
	q.Remove(ts[1])
	q.Remove(ts[4])

	snapshot := q.ToSlice()
	inSnapshot := make(map[*task]bool, len(snapshot))
	for _, e := range snapshot {
		inSnapshot[e] = true
	}
	for _, e := range ts {
		require.Equal(t, inSnapshot[e], q.Contains(e))
	}
}

func TestToSet(t *testing.T) {
	q := New[task]()
	ts := tasks(3)
	q.EnqueueMany(ts...)

	set := q.ToSet()
	require.Len(t, set, 3)
	for _, e := range ts {
		require.Contains(t, set, e)
	}

	// The set is a copy; mutating it leaves the queue intact.
	delete(set, ts[0])
	require.True(t, q.Contains(ts[0]))
}

func TestEnqueueMany(t *testing.T) {
	q := New[task]()
	a, b, c := &task{id: 0}, &task{id: 1}, &task{id: 2}

	require.True(t, q.Enqueue(a))

	// a is already a member; the second a in the input is a duplicate too.
	added := q.EnqueueMany(a, b, a, c)
	require.Equal(t, 2, added)
	require.Equal(t, []*task{a, b, c}, q.ToSlice())

	require.Zero(t, q.EnqueueMany(nil, a))
	require.Equal(t, 3, q.Len())
}

func TestAllIteratesInOrder(t *testing.T) {
	q := New[task]()
	ts := tasks(5)
	q.EnqueueMany(ts...)

	var got []*task
	for e := range q.All() {
		got = append(got, e)
	}
	require.Equal(t, ts, got)

	// A fresh pass restarts at the current head.
	q.Dequeue()
	got = got[:0]
	for e := range q.All() {
		got = append(got, e)
	}
	require.Equal(t, ts[1:], got)
}

func TestAllEarlyBreak(t *testing.T) {
	q := New[task]()
	ts := tasks(4)
	q.EnqueueMany(ts...)

	seen := 0
	for e := range q.All() {
		require.Same(t, ts[seen], e)
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
	require.Equal(t, 4, q.Len())
}

func TestAllRemoveCurrent(t *testing.T) {
	q := New[task]()
	ts := tasks(4)
	q.EnqueueMany(ts...)

	var got []*task
	for e := range q.All() {
		got = append(got, e)
		require.True(t, q.Remove(e))
	}
	require.Equal(t, ts, got)
	require.True(t, q.IsEmpty())
}
