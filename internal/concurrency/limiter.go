package concurrency

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/pgvanniekerk/taskpool/pkg/concurrency"
)

// Limiter is a permit-based admission controller built on a weighted
// semaphore. It enforces a fixed maximum number of concurrently in-flight
// operations, independent of how many goroutines compete for them.
type Limiter struct {

	// sem holds the permits. Each Acquire takes weight 1, so the semaphore
	// weight equals the number of in-flight operations.
	sem *semaphore.Weighted

	// permits is the total permit count fixed at construction.
	permits int64

	// avail tracks the permits not currently held. It exists for
	// observability and over-release detection; sem remains the source of
	// truth for blocking.
	avail atomic.Int64

	// closed is an atomic flag that indicates whether the limiter has been
	// closed. Once closed, the limiter cannot be reused.
	closed *atomic.Bool

	// closeMutex ensures thread-safe closure of the limiter.
	closeMutex *sync.Mutex

	// closeCtx is canceled by Close to fail every pending Acquire.
	closeCtx  context.Context
	closeFunc context.CancelFunc
}

//region Implementation

// Acquire takes one permit, blocking until a permit is free, ctx is done,
// or the limiter is closed.
func (l *Limiter) Acquire(ctx context.Context) error {

	if l.isClosed() {
		return concurrency.ErrLimiterClosed
	}

	// Derive a context that is canceled either by the caller or by Close,
	// so a Close while blocked inside the semaphore wakes us up.
	acquireCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(l.closeCtx, cancel)
	defer stop()

	if err := l.sem.Acquire(acquireCtx, 1); err != nil {
		if l.isClosed() {
			return concurrency.ErrLimiterClosed
		}
		return ctx.Err()
	}

	// Close may have raced with a successful acquisition.
	if l.isClosed() {
		l.sem.Release(1)
		return concurrency.ErrLimiterClosed
	}

	l.avail.Add(-1)
	return nil
}

// TryAcquire takes a permit only if one is immediately available.
func (l *Limiter) TryAcquire() bool {

	if l.isClosed() {
		return false
	}

	if !l.sem.TryAcquire(1) {
		return false
	}

	if l.isClosed() {
		l.sem.Release(1)
		return false
	}

	l.avail.Add(-1)
	return true
}

// Release returns one permit, waking a waiting Acquire if any.
func (l *Limiter) Release() error {

	if l.isClosed() {
		return concurrency.ErrLimiterClosed
	}

	// Reject releases that would exceed the permit count before touching
	// the semaphore; releasing an un-acquired permit would corrupt it.
	for {
		cur := l.avail.Load()
		if cur >= l.permits {
			return concurrency.ErrReleaseExceedsLimit
		}
		if l.avail.CompareAndSwap(cur, cur+1) {
			break
		}
	}

	l.sem.Release(1)
	return nil
}

// Close shuts the limiter down, failing all pending and future Acquire
// calls with ErrLimiterClosed. Calling Close again returns
// ErrLimiterClosed.
func (l *Limiter) Close() error {
	l.closeMutex.Lock()
	defer l.closeMutex.Unlock()

	if l.isClosed() {
		return concurrency.ErrLimiterClosed
	}

	l.closed.Store(true)
	l.closeFunc()
	return nil
}

// TotalPermits returns the permit count fixed at construction.
func (l *Limiter) TotalPermits() int64 {
	return l.permits
}

// AvailablePermits returns the number of permits not currently held.
func (l *Limiter) AvailablePermits() int64 {
	return l.avail.Load()
}

//endregion

//region Helpers

// isClosed is a helper method that checks whether the limiter has been
// closed.
func (l *Limiter) isClosed() bool {
	return l.closed.Load()
}

//endregion

//region Constructor

// NewLimiter initializes a new Limiter with the specified number of
// permits. The permit count defines the maximum number of concurrently
// in-flight operations and is fixed for the limiter's lifetime.
func NewLimiter(permits int64) *Limiter {

	closeCtx, closeFunc := context.WithCancel(context.Background())

	l := &Limiter{
		sem:        semaphore.NewWeighted(permits),
		permits:    permits,
		closed:     &atomic.Bool{},
		closeMutex: &sync.Mutex{},
		closeCtx:   closeCtx,
		closeFunc:  closeFunc,
	}
	l.avail.Store(permits)

	return l
}

//endregion
