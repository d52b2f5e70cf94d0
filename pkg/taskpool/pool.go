package taskpool

import (
	"github.com/pgvanniekerk/taskpool/pkg/job"
)

// Job is the unit of work submitted to a Pool. See the job package for the
// full contract.
type Job = job.Job

// Event is the advisory lifecycle event a Pool reports through its sink.
type Event = job.Event

// EventSink receives lifecycle events from a Pool. Sinks are called from
// worker goroutines and must be safe for concurrent use.
type EventSink = job.Sink

// Pool defines the interface for a fixed-size worker pool. A pool owns a
// set of long-lived workers sharing one FIFO job queue. Its worker count is
// fixed at construction for the pool's entire lifetime.
//
// Implementations must ensure thread safety: any number of goroutines may
// call Execute concurrently, and Shutdown may race with Execute and with
// other Shutdown calls.
type Pool interface {

	// Execute submits a job for asynchronous execution and returns
	// immediately; it never waits for the job to run. Jobs submitted
	// sequentially from one goroutine are started in submission order.
	//
	// Every job accepted before Shutdown begins runs to completion exactly
	// once before Shutdown returns. A job is never dropped and never run
	// twice.
	//
	// Returns:
	//   - nil: the job was accepted.
	//   - ErrPoolClosed: Shutdown has begun; the job was rejected and will
	//     never run.
	//   - ErrNilJob: the job was nil.
	//
	// When the pool was built with WithQueueCapacity, Execute blocks while
	// the queue is full. Shutdown unblocks such callers with ErrPoolClosed:
	// once shutdown begins, no further work is accepted regardless of
	// space.
	Execute(j Job) error

	// Shutdown closes the pool to new work and blocks until every
	// previously accepted job has finished and every worker has
	// terminated. It is idempotent: later calls are no-ops that still
	// block until the pool has fully stopped.
	//
	// A panicking job cannot prevent Shutdown from completing; panics are
	// contained at the worker boundary.
	Shutdown()

	// Workers returns the worker count fixed at construction.
	Workers() int

	// QueueDepth returns the number of jobs accepted but not yet picked up
	// by a worker. It is a point-in-time observation intended for
	// monitoring, not for flow control.
	QueueDepth() int
}
