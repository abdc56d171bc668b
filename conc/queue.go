package conc

import "sync"

// Queue is a bounded blocking FIFO queue safe for any number of producers
// and consumers.
//
// Push blocks while the queue is full; Pop blocks while it is empty. A
// capacity of 0 means unbounded (Push never blocks). Close wakes all
// waiters: subsequent Push calls are rejected, while Pop keeps draining
// buffered items and then reports closure.
type Queue[T any] struct {
	mu       sync.Mutex
	notFull  sync.Cond
	notEmpty sync.Cond
	items    []T
	head     int
	capacity int
	closed   bool
}

// NewQueue creates a queue holding up to capacity items; 0 means unbounded.
func NewQueue[T any](capacity int) *Queue[T] {
	q := &Queue[T]{capacity: capacity}
	q.notFull.L = &q.mu
	q.notEmpty.L = &q.mu

	return q
}

// Push appends item, blocking while the queue is full.
// Returns false if the queue is (or becomes) closed.
func (q *Queue[T]) Push(item T) bool {
	q.mu.Lock()
	for !q.closed && q.capacity > 0 && q.size() >= q.capacity {
		q.notFull.Wait()
	}
	if q.closed {
		q.mu.Unlock()
		return false
	}

	q.items = append(q.items, item)
	q.mu.Unlock()
	q.notEmpty.Signal()

	return true
}

// Pop removes and returns the oldest item, blocking while the queue is
// empty. Returns ok=false once the queue is closed and drained.
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	for q.size() == 0 && !q.closed {
		q.notEmpty.Wait()
	}
	if q.size() == 0 {
		// Closed and drained.
		q.mu.Unlock()
		var zero T

		return zero, false
	}

	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero // release the reference
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head >= 64 && q.head*2 >= len(q.items) {
		// Compact so the backing slice does not grow without bound.
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	q.mu.Unlock()
	q.notFull.Signal()

	return item, true
}

// Len returns the number of buffered items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.size()
}

// Close marks the queue closed and wakes all blocked producers and
// consumers. Closing an already closed queue is a no-op.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
}

func (q *Queue[T]) size() int {
	return len(q.items) - q.head
}
