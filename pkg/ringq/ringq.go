// Package ringq provides a fixed-capacity FIFO queue over inline storage,
// generic over the element type. Capacity is set once at construction and the
// backing array is never resized, so after New the queue performs no
// allocation; push and pop are O(1) and non-blocking.
//
// A Queue does no internal locking. It is meant for one logical owner; callers
// sharing an instance across goroutines must synchronize externally.
package ringq

// Queue is a bounded FIFO. Full versus empty is resolved by an explicit
// element count rather than sacrificing a storage slot, so all cap slots are
// usable.
type Queue[T any] struct {
	buf   []T
	head  int // next slot to write
	tail  int // next slot to read
	count int
}

// New returns an empty queue holding at most capacity elements. The storage
// is allocated here, once. Panics when capacity is not positive, since such a
// queue could never hold an element.
func New[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		panic("ringq: capacity must be positive")
	}
	return &Queue[T]{buf: make([]T, capacity)}
}

// Push inserts v at the back of the queue. Returns false, without mutating
// anything, when the queue is full; whether to drop v or first evict the
// oldest element via Pop is the caller's policy.
func (q *Queue[T]) Push(v T) bool {
	if q.count == len(q.buf) {
		return false
	}
	q.buf[q.head] = v
	q.head = (q.head + 1) % len(q.buf)
	q.count++
	return true
}

// Pop removes and returns the oldest element. The second result is false,
// and the queue is left untouched, when the queue is empty. The vacated slot
// is zeroed so the queue never pins popped elements' referenced memory.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.count == 0 {
		return zero, false
	}
	v := q.buf[q.tail]
	q.buf[q.tail] = zero
	q.tail = (q.tail + 1) % len(q.buf)
	q.count--
	return v, true
}

// Len returns the number of elements currently queued.
func (q *Queue[T]) Len() int { return q.count }

// Cap returns the fixed capacity set at construction.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Empty reports whether no elements are queued.
func (q *Queue[T]) Empty() bool { return q.count == 0 }

// Full reports whether the queue has reached capacity.
func (q *Queue[T]) Full() bool { return q.count == len(q.buf) }

// Clear empties the queue. Live slots are zeroed for the same reason Pop
// zeroes them; indices reset so the next Push starts at slot 0.
func (q *Queue[T]) Clear() {
	var zero T
	for i := 0; i < q.count; i++ {
		q.buf[(q.tail+i)%len(q.buf)] = zero
	}
	q.head, q.tail, q.count = 0, 0, 0
}
