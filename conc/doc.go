// Package conc provides small concurrency building blocks for pipelining
// producers against consumers: a bounded blocking Queue and a lock-free
// single-producer/single-consumer RingBuffer.
//
// The parser uses Queue for its optional pipelined mode, where a tokenizing
// goroutine feeds a parsing goroutine. Both primitives stand on their own
// and carry their own tests; RingBuffer is the non-blocking alternative for
// callers that prefer polling or backoff over blocking.
package conc
