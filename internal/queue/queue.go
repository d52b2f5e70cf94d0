package queue

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Enqueue once the queue has been closed. Producers
// must treat it as a signal that their item was rejected and will never run.
var ErrClosed = errors.New("queue is closed")

// Queue is a FIFO hand-off buffer between producers and a set of consumers.
// It is unbounded by default; when constructed with a capacity greater than
// zero, Enqueue blocks while the queue is full.
//
// All synchronization is internal. Any number of goroutines may call
// Enqueue, Dequeue, Close and Len concurrently.
type Queue[T any] struct {

	// mu protects items, closed and both condition variables.
	mu sync.Mutex

	// notEmpty is signalled whenever an item is appended or the queue is
	// closed, waking consumers blocked in Dequeue.
	notEmpty *sync.Cond

	// notFull is signalled whenever an item is removed from a bounded queue
	// or the queue is closed, waking producers blocked in Enqueue.
	notFull *sync.Cond

	// items holds the queued values in submission order.
	items []T

	// capacity is the maximum number of queued items. Zero means unbounded.
	capacity int

	// closed is set exactly once by Close. After that, Enqueue fails fast
	// and Dequeue drains the remaining items before reporting closure.
	closed bool
}

// New creates a Queue. A capacity of zero (or less) yields an unbounded
// queue; a positive capacity yields a bounded one.
func New[T any](capacity int) *Queue[T] {
	q := &Queue[T]{}
	if capacity > 0 {
		q.capacity = capacity
	}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q
}

// Enqueue appends an item and wakes one waiting consumer. On an unbounded
// queue it returns immediately. On a bounded queue it blocks until space is
// available. It returns ErrClosed if the queue has been closed, including
// for producers that were blocked waiting for space when Close was called:
// once shutdown begins, no further work is accepted regardless of space.
func (q *Queue[T]) Enqueue(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		if q.closed {
			return ErrClosed
		}
		if q.capacity == 0 || len(q.items) < q.capacity {
			break
		}
		q.notFull.Wait()
	}

	q.items = append(q.items, item)
	q.notEmpty.Signal()
	return nil
}

// Dequeue removes and returns the oldest item. It blocks until an item is
// available or the queue is closed with nothing left to drain, in which
// case it returns the zero value and false. Exactly one consumer receives
// any given item.
func (q *Queue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		if q.closed {
			var zero T
			return zero, false
		}
		q.notEmpty.Wait()
	}

	item := q.items[0]
	q.items = q.items[1:]
	if q.capacity > 0 {
		q.notFull.Signal()
	}
	return item, true
}

// Close marks the queue as closed and wakes every blocked producer and
// consumer. It is idempotent. Items already queued remain available to
// Dequeue until drained.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true

	q.notEmpty.Broadcast()
	q.notFull.Broadcast()
}

// Len returns the number of items currently queued.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
