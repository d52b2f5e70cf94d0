package pool

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pgvanniekerk/taskpool/internal/queue"
	"github.com/pgvanniekerk/taskpool/pkg/job"
)

// ErrPoolClosed is returned by Execute once Shutdown has begun. The job was
// rejected and will never run.
var ErrPoolClosed = errors.New("pool is closed")

// ErrNilJob is returned by Execute when the submitted job is nil.
var ErrNilJob = errors.New("job must not be nil")

// Config carries the optional construction parameters of a Pool. The zero
// value gives an unbounded queue, no event sink and the standard logger.
type Config struct {

	// QueueCapacity bounds the job queue when greater than zero. Zero means
	// unbounded.
	QueueCapacity int

	// Sink, when non-nil, receives a lifecycle event for every job start,
	// finish and panic.
	Sink job.Sink

	// Logger receives panic reports and lifecycle logging. Nil defaults to
	// logrus.StandardLogger().
	Logger logrus.FieldLogger
}

// item is one accepted job together with the metadata reported through the
// event sink. Metadata never influences scheduling.
type item struct {
	id        uuid.UUID
	job       job.Job
	submitted time.Time
}

// Pool executes jobs on a fixed set of worker goroutines sharing a single
// FIFO queue. The worker count is fixed for the pool's entire lifetime.
type Pool struct {

	// queue is the hand-off buffer between Execute and the workers. Its
	// sending side is closed exactly once, by Shutdown.
	queue *queue.Queue[item]

	// workerWG tracks the worker goroutines so Shutdown can join them.
	workerWG sync.WaitGroup

	// closeOnce ensures the queue is closed exactly once even when Shutdown
	// is called concurrently.
	closeOnce sync.Once

	// numWorkers is the worker count fixed at construction.
	numWorkers int

	sink   job.Sink
	logger logrus.FieldLogger
}

// New creates a Pool with the given number of workers and starts them. The
// caller has already validated workers >= 1.
func New(workers int, cfg Config) *Pool {

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	p := &Pool{
		queue:      queue.New[item](cfg.QueueCapacity),
		numWorkers: workers,
		sink:       cfg.Sink,
		logger:     logger,
	}

	for id := 0; id < workers; id++ {
		p.workerWG.Add(1)
		go p.runWorker(id)
	}

	return p
}

// Execute submits a job for asynchronous execution. It does not wait for
// the job to run. Once Shutdown has begun, Execute fails fast with
// ErrPoolClosed regardless of queue space.
func (p *Pool) Execute(j job.Job) error {
	if j == nil {
		return ErrNilJob
	}

	it := item{
		id:        uuid.New(),
		job:       j,
		submitted: time.Now(),
	}

	if err := p.queue.Enqueue(it); err != nil {
		return ErrPoolClosed
	}
	return nil
}

// Shutdown closes the queue to new work and blocks until every worker has
// drained the remaining jobs and terminated. It is idempotent; concurrent
// and repeated calls all block until the pool has fully stopped.
func (p *Pool) Shutdown() {
	p.closeOnce.Do(func() {
		p.queue.Close()
		p.logger.WithField("workers", p.numWorkers).Debug("pool shutting down")
	})

	// Join every worker. Jobs accepted before the queue closed are
	// guaranteed to have run by the time this returns.
	p.workerWG.Wait()
}

// Workers returns the worker count fixed at construction.
func (p *Pool) Workers() int {
	return p.numWorkers
}

// QueueDepth returns the number of jobs accepted but not yet picked up by a
// worker.
func (p *Pool) QueueDepth() int {
	return p.queue.Len()
}

// emit forwards an event to the sink, if one is installed.
func (p *Pool) emit(ev job.Event) {
	if p.sink != nil {
		p.sink(ev)
	}
}
