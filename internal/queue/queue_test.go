package queue

import (
	"sync"
	"testing"
	"time"
)

// TestFIFOOrder verifies items come out in the order a single producer put
// them in.
func TestFIFOOrder(t *testing.T) {
	q := New[int](0)

	for i := 0; i < 100; i++ {
		if err := q.Enqueue(i); err != nil {
			t.Fatalf("unexpected enqueue error: %v", err)
		}
	}

	for i := 0; i < 100; i++ {
		item, ok := q.Dequeue()
		if !ok {
			t.Fatalf("queue reported closed after %d items", i)
		}
		if item != i {
			t.Fatalf("expected item %d, got %d", i, item)
		}
	}
}

// TestDequeueBlocksUntilEnqueue verifies a consumer blocks on an empty queue
// and wakes when an item arrives.
func TestDequeueBlocksUntilEnqueue(t *testing.T) {
	q := New[string](0)

	got := make(chan string, 1)
	go func() {
		item, ok := q.Dequeue()
		if ok {
			got <- item
		}
	}()

	// Give the consumer time to block.
	time.Sleep(20 * time.Millisecond)

	if err := q.Enqueue("wake up"); err != nil {
		t.Fatalf("unexpected enqueue error: %v", err)
	}

	select {
	case item := <-got:
		if item != "wake up" {
			t.Fatalf("expected %q, got %q", "wake up", item)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for blocked Dequeue to wake")
	}
}

// TestCloseDrainsBeforeReportingClosed verifies queued items remain
// available after Close and closure is only reported once drained.
func TestCloseDrainsBeforeReportingClosed(t *testing.T) {
	q := New[int](0)

	for i := 0; i < 3; i++ {
		if err := q.Enqueue(i); err != nil {
			t.Fatalf("unexpected enqueue error: %v", err)
		}
	}

	q.Close()

	for i := 0; i < 3; i++ {
		item, ok := q.Dequeue()
		if !ok {
			t.Fatalf("queue reported closed with %d items left", 3-i)
		}
		if item != i {
			t.Fatalf("expected item %d, got %d", i, item)
		}
	}

	if _, ok := q.Dequeue(); ok {
		t.Fatal("expected closed after draining, got an item")
	}
}

// TestEnqueueAfterCloseFails verifies rejected work is detectable.
func TestEnqueueAfterCloseFails(t *testing.T) {
	q := New[int](0)
	q.Close()

	if err := q.Enqueue(1); err != ErrClosed {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

// TestCloseIsIdempotent verifies calling Close twice is harmless.
func TestCloseIsIdempotent(t *testing.T) {
	q := New[int](0)
	q.Close()
	q.Close()

	if _, ok := q.Dequeue(); ok {
		t.Fatal("expected closed queue")
	}
}

// TestCloseWakesBlockedConsumers verifies every consumer blocked in Dequeue
// returns once the queue closes.
func TestCloseWakesBlockedConsumers(t *testing.T) {
	q := New[int](0)

	wg := &sync.WaitGroup{}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := q.Dequeue(); ok {
				t.Error("expected closed, got an item")
			}
		}()
	}

	// Give the consumers time to block.
	time.Sleep(20 * time.Millisecond)
	q.Close()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for blocked consumers to wake")
	}
}

// TestBoundedEnqueueBlocksWhenFull verifies a bounded queue applies
// backpressure and frees producers as space opens up.
func TestBoundedEnqueueBlocksWhenFull(t *testing.T) {
	q := New[int](1)

	if err := q.Enqueue(1); err != nil {
		t.Fatalf("unexpected enqueue error: %v", err)
	}

	enqueued := make(chan error, 1)
	go func() {
		enqueued <- q.Enqueue(2)
	}()

	// The producer must still be blocked; the queue is full.
	select {
	case <-enqueued:
		t.Fatal("Enqueue returned while the queue was full")
	case <-time.After(50 * time.Millisecond):
	}

	// Free one slot and expect the producer to complete.
	if item, ok := q.Dequeue(); !ok || item != 1 {
		t.Fatalf("expected item 1, got %d (ok=%v)", item, ok)
	}

	select {
	case err := <-enqueued:
		if err != nil {
			t.Fatalf("unexpected enqueue error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for blocked Enqueue to complete")
	}
}

// TestCloseRejectsBlockedProducers verifies a producer blocked on a full
// queue fails with ErrClosed when the queue closes, regardless of space.
func TestCloseRejectsBlockedProducers(t *testing.T) {
	q := New[int](1)

	if err := q.Enqueue(1); err != nil {
		t.Fatalf("unexpected enqueue error: %v", err)
	}

	enqueued := make(chan error, 1)
	go func() {
		enqueued <- q.Enqueue(2)
	}()

	// Give the producer time to block, then close.
	time.Sleep(20 * time.Millisecond)
	q.Close()

	select {
	case err := <-enqueued:
		if err != ErrClosed {
			t.Fatalf("expected ErrClosed, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for blocked Enqueue to fail")
	}

	// The item enqueued before Close must still drain.
	if item, ok := q.Dequeue(); !ok || item != 1 {
		t.Fatalf("expected item 1, got %d (ok=%v)", item, ok)
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatal("expected closed after draining, got an item")
	}
}

// TestLen verifies the depth observation tracks enqueues and dequeues.
func TestLen(t *testing.T) {
	q := New[int](0)

	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", q.Len())
	}

	for i := 0; i < 5; i++ {
		if err := q.Enqueue(i); err != nil {
			t.Fatalf("unexpected enqueue error: %v", err)
		}
	}
	if q.Len() != 5 {
		t.Fatalf("expected 5 queued items, got %d", q.Len())
	}

	q.Dequeue()
	if q.Len() != 4 {
		t.Fatalf("expected 4 queued items, got %d", q.Len())
	}
}
