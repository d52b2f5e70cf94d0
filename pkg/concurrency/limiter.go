package concurrency

import "context"

// Limiter bounds the number of concurrently in-flight operations against a
// shared resource, independently of how many workers or goroutines exist.
// Callers acquire a permit before starting the operation and release it on
// completion; when no permit is free, Acquire suspends the caller until one
// is.
//
// This is admission control for a resource, not for threads: a pool of 32
// workers combined with a Limiter of 4 permits runs at most 4 of a rate-
// limited operation at once while the remaining workers stay available for
// other work.
//
// Methods:
//   - Acquire(): Acquire a permit, blocking until one is available, the
//     context is done, or the limiter is closed.
//   - TryAcquire(): Acquire a permit without blocking.
//   - Release(): Return an acquired permit.
//   - Close(): Close the limiter, failing all pending and future Acquires.
//   - TotalPermits() / AvailablePermits(): Observe capacity and occupancy.
type Limiter interface {

	// Acquire blocks until a permit is available and takes it. It is
	// thread-safe and may be called from any number of goroutines.
	//
	// Returns:
	// - `nil`: A permit was acquired.
	// - `ErrLimiterClosed`: The limiter was closed before or while waiting.
	// - The context's error: ctx was canceled or its deadline passed while
	//   waiting.
	Acquire(ctx context.Context) error

	// TryAcquire takes a permit if one is immediately available. It never
	// blocks.
	//
	// Returns:
	// - `true`: A permit was acquired.
	// - `false`: No permit was free, or the limiter is closed.
	TryAcquire() bool

	// Release returns a previously acquired permit, waking one waiting
	// Acquire if any.
	//
	// Returns:
	// - `nil`: The permit was returned.
	// - `ErrReleaseExceedsLimit`: More releases than acquired permits.
	// - `ErrLimiterClosed`: The limiter has been closed.
	Release() error

	// Close closes the limiter. Pending Acquire calls fail with
	// ErrLimiterClosed, as do all later ones.
	//
	// Returns:
	// - `nil`: The limiter was closed.
	// - `ErrLimiterClosed`: The limiter had already been closed.
	Close() error

	// TotalPermits returns the permit count fixed at construction. This is
	// the maximum concurrency the limiter allows.
	TotalPermits() int64

	// AvailablePermits returns the number of permits not currently held.
	// It decreases with every Acquire and increases with every Release.
	AvailablePermits() int64
}
