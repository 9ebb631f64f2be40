// Package linkq provides a FIFO queue with set semantics over pointer
// entries, backed by a per-queue successor chain instead of separately
// allocated list nodes.
//
// Entries are compared by identity: two pointers denote the same entry only
// when they point at the same object. Each queue keeps its own link state for
// its members, so the same entry may sit in any number of distinct queues at
// once without conflict. Enqueue, Dequeue, Contains and Next are O(1);
// Remove, Clear and the snapshot operations are O(n). Construct a queue with
// New or NewWithCapacity; the zero value is not ready for use.
//
// The queue performs no internal locking. Confine a queue instance to one
// goroutine, or serialize all access (reads included) externally; package
// blockingqueue provides a ready-made synchronized wrapper. Mutating the
// queue while an All iteration pass is in progress is likewise the caller's
// responsibility to avoid: the iterator is a live view of the chain, not a
// snapshot.
//
// A queue only releases an entry's link association when the entry leaves it
// via Dequeue, Remove or Clear. Callers discarding a still-populated queue
// whose entries outlive it should Clear it first.
package linkq
