package job

import (
	"time"

	"github.com/google/uuid"
)

// EventKind identifies which lifecycle transition an Event describes.
type EventKind uint8

const (

	// Started is emitted when a worker begins executing a job.
	Started EventKind = iota

	// Finished is emitted when a job returns normally. The event carries
	// the job's execution duration.
	Finished

	// Panicked is emitted when a job panics. The recovered value is carried
	// in the event; the worker that ran the job keeps running.
	Panicked
)

// String returns the event kind's name for logging.
func (k EventKind) String() string {
	switch k {
	case Started:
		return "started"
	case Finished:
		return "finished"
	case Panicked:
		return "panicked"
	default:
		return "unknown"
	}
}

// Event describes one lifecycle transition of one job. Events are advisory
// instrumentation only; a pool behaves identically whether or not a sink is
// installed.
type Event struct {

	// Kind is the lifecycle transition being reported.
	Kind EventKind

	// WorkerID identifies the worker that executed the job, in the range
	// [0, pool size).
	WorkerID int

	// JobID is the identifier assigned to the job when it was accepted.
	JobID uuid.UUID

	// Submitted is the time the job was accepted by Execute.
	Submitted time.Time

	// Duration is the job's execution time. It is set only on Finished
	// events.
	Duration time.Duration

	// PanicValue is the value recovered from the job. It is set only on
	// Panicked events.
	PanicValue any
}

// Sink receives lifecycle events from a pool. A Sink is called synchronously
// from worker goroutines and must therefore be safe for concurrent use and
// must not block; a slow sink slows the pool down.
type Sink func(Event)
