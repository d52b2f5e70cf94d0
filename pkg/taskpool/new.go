package taskpool

import (
	"github.com/pgvanniekerk/taskpool/internal/pool"
)

// New creates a Pool with the specified number of workers and starts them.
// Each worker is a long-lived goroutine bound to the pool's shared job
// queue; exactly one worker dequeues any given job.
//
// Parameters:
//   - workers: The number of concurrent workers. Must be at least 1;
//     New returns ErrNoWorkers otherwise.
//   - opts: Optional configuration. See WithQueueCapacity, WithEventSink
//     and WithLogger.
//
// Returns:
//   - A running Pool ready to accept jobs via Execute.
//   - ErrNoWorkers if workers < 1.
//
// Example:
//
//	p, err := taskpool.New(4)
//	if err != nil {
//	    log.Fatalf("failed to create pool: %v", err)
//	}
//
//	err = p.Execute(func() {
//	    fmt.Println("running on a pool worker")
//	})
//	if err != nil {
//	    log.Printf("job rejected: %v", err)
//	}
//
//	// Blocks until every accepted job has finished.
//	p.Shutdown()
func New(workers int, opts ...Option) (Pool, error) {

	if workers < 1 {
		return nil, ErrNoWorkers
	}

	cfg := pool.Config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return pool.New(workers, cfg), nil
}
