package conc

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue[int](10)
	for i := 0; i < 5; i++ {
		require.True(t, q.Push(i))
	}
	require.Equal(t, 5, q.Len())

	for i := 0; i < 5; i++ {
		v, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.Equal(t, 0, q.Len())
}

func TestQueuePushBlocksWhenFull(t *testing.T) {
	q := NewQueue[int](1)
	require.True(t, q.Push(1))

	pushed := make(chan bool)
	go func() {
		pushed <- q.Push(2)
	}()

	// The second push must not complete while the queue is full.
	select {
	case <-pushed:
		t.Fatal("push completed on a full queue")
	case <-time.After(50 * time.Millisecond):
	}

	v, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, 1, v)

	select {
	case ok := <-pushed:
		require.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("push did not resume after a pop freed space")
	}

	v, ok = q.Pop()
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestQueuePopBlocksWhenEmpty(t *testing.T) {
	q := NewQueue[string](4)

	got := make(chan string)
	go func() {
		v, ok := q.Pop()
		require.True(t, ok)
		got <- v
	}()

	select {
	case <-got:
		t.Fatal("pop completed on an empty queue")
	case <-time.After(50 * time.Millisecond):
	}

	require.True(t, q.Push("item"))

	select {
	case v := <-got:
		require.Equal(t, "item", v)
	case <-time.After(time.Second):
		t.Fatal("pop did not resume after a push")
	}
}

func TestQueueUnbounded(t *testing.T) {
	q := NewQueue[int](0)
	for i := 0; i < 10000; i++ {
		require.True(t, q.Push(i))
	}
	require.Equal(t, 10000, q.Len())

	for i := 0; i < 10000; i++ {
		v, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestQueueClose(t *testing.T) {
	q := NewQueue[int](4)
	require.True(t, q.Push(1))
	require.True(t, q.Push(2))

	q.Close()

	// Push is rejected after close.
	require.False(t, q.Push(3))

	// Pop drains buffered items before reporting closure.
	v, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = q.Pop()
	require.True(t, ok)
	require.Equal(t, 2, v)

	_, ok = q.Pop()
	require.False(t, ok)

	// Closing again is a no-op.
	q.Close()
}

func TestQueueCloseWakesWaiters(t *testing.T) {
	q := NewQueue[int](1)
	require.True(t, q.Push(1))

	var wg sync.WaitGroup
	wg.Add(2)

	// A producer blocked on a full queue.
	go func() {
		defer wg.Done()
		require.False(t, q.Push(2))
	}()

	empty := NewQueue[int](1)
	// A consumer blocked on an empty queue.
	go func() {
		defer wg.Done()
		_, ok := empty.Pop()
		require.False(t, ok)
	}()

	time.Sleep(50 * time.Millisecond)
	q.Close()
	empty.Close()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("close did not wake blocked goroutines")
	}
}

func TestQueueConcurrentProducersConsumers(t *testing.T) {
	const (
		producers = 4
		consumers = 4
		perProd   = 2500
	)

	q := NewQueue[int](64)

	var prodWG sync.WaitGroup
	for p := 0; p < producers; p++ {
		prodWG.Add(1)
		go func(base int) {
			defer prodWG.Done()
			for i := 0; i < perProd; i++ {
				require.True(t, q.Push(base*perProd+i))
			}
		}(p)
	}

	var mu sync.Mutex
	seen := make(map[int]bool, producers*perProd)
	var consWG sync.WaitGroup
	for c := 0; c < consumers; c++ {
		consWG.Add(1)
		go func() {
			defer consWG.Done()
			for {
				v, ok := q.Pop()
				if !ok {
					return
				}
				mu.Lock()
				require.False(t, seen[v], "duplicate item %d", v)
				seen[v] = true
				mu.Unlock()
			}
		}()
	}

	prodWG.Wait()
	q.Close()
	consWG.Wait()

	require.Len(t, seen, producers*perProd)
}
