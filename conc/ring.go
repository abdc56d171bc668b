package conc

import "sync/atomic"

// RingBuffer is a fixed-capacity lock-free FIFO valid for exactly one
// producer goroutine and one consumer goroutine (SPSC).
//
// Push and Pop never block: they return false when the buffer is full or
// empty, so callers poll or back off. The head index is owned by the
// consumer and the tail index by the producer; each side publishes its
// progress with an atomic store that the other side observes with an atomic
// load, which gives the required acquire/release ordering.
//
// Using more than one producer or more than one consumer is a data race.
type RingBuffer[T any] struct {
	buf  []T
	head atomic.Uint64 // next slot to pop, owned by the consumer
	tail atomic.Uint64 // next slot to push, owned by the producer
}

// NewRingBuffer creates a ring buffer holding up to capacity items.
// A non-positive capacity is treated as 1.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}

	// One slot stays unused to distinguish full from empty.
	return &RingBuffer[T]{buf: make([]T, capacity+1)}
}

// Cap returns the number of items the buffer can hold.
func (r *RingBuffer[T]) Cap() int {
	return len(r.buf) - 1
}

// Len returns the number of buffered items. The value is a snapshot and may
// be stale by the time it is observed.
func (r *RingBuffer[T]) Len() int {
	head := r.head.Load()
	tail := r.tail.Load()

	return int((tail + uint64(len(r.buf)) - head) % uint64(len(r.buf)))
}

// Push appends item; returns false when the buffer is full.
// Must only be called from the single producer goroutine.
func (r *RingBuffer[T]) Push(item T) bool {
	tail := r.tail.Load()
	next := (tail + 1) % uint64(len(r.buf))
	if next == r.head.Load() {
		return false // full
	}

	r.buf[tail] = item
	r.tail.Store(next)

	return true
}

// Pop removes and returns the oldest item; returns ok=false when the buffer
// is empty. Must only be called from the single consumer goroutine.
func (r *RingBuffer[T]) Pop() (T, bool) {
	head := r.head.Load()
	if head == r.tail.Load() {
		var zero T
		return zero, false // empty
	}

	item := r.buf[head]
	var zero T
	r.buf[head] = zero // release the reference
	r.head.Store((head + 1) % uint64(len(r.buf)))

	return item, true
}

// Peek returns the oldest item without removing it; ok=false when empty.
// Must only be called from the single consumer goroutine.
func (r *RingBuffer[T]) Peek() (T, bool) {
	head := r.head.Load()
	if head == r.tail.Load() {
		var zero T
		return zero, false
	}

	return r.buf[head], true
}
