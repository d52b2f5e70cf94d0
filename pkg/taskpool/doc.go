// Package taskpool provides a fixed-size worker pool with a FIFO job queue,
// deterministic graceful shutdown and per-job panic isolation.
//
// A pool owns a set of long-lived worker goroutines that repeatedly take
// one job from a shared queue and run it. The worker count is fixed at
// construction: submitting more work than the pool can absorb queues it, it
// never grows the worker set. This replaces the goroutine-per-task pattern,
// which under load creates unbounded concurrency and exhausts memory,
// scheduler and downstream resources.
//
// # Guarantees
//
//   - Every job accepted by Execute runs to completion exactly once before
//     Shutdown returns. No accepted job is ever dropped or run twice.
//   - At most `workers` jobs run concurrently.
//   - Jobs submitted sequentially from a single goroutine are started in
//     submission order. No ordering is guaranteed across goroutines.
//   - A panic inside a job is contained at the worker boundary. The worker
//     keeps running, so one malformed job can never reduce pool capacity,
//     and Shutdown always completes.
//   - After Shutdown begins, Execute fails fast with ErrPoolClosed; work is
//     never silently discarded.
//
// # Basic Usage
//
//	p, err := taskpool.New(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results := make(chan float64, len(symbols))
//	for _, symbol := range symbols {
//	    symbol := symbol
//	    err := p.Execute(func() {
//	        results <- analyze(symbol)
//	    })
//	    if err != nil {
//	        log.Printf("submission rejected: %v", err)
//	    }
//	}
//
//	p.Shutdown() // blocks until every accepted job has finished
//
// Jobs take no arguments and return nothing. Anything a job needs, and any
// channel it should report results on, is captured in its closure, as in
// the example above.
//
// # Bounded Queue
//
// By default the queue is unbounded and Execute always returns
// immediately. WithQueueCapacity bounds it, making Execute block while the
// queue is full so producers feel backpressure:
//
//	p, err := taskpool.New(4, taskpool.WithQueueCapacity(256))
//
// Shutdown unblocks producers waiting for space with ErrPoolClosed; once
// shutdown begins no further work is accepted, space or not.
//
// # Observability
//
// A pool optionally reports Started, Finished and Panicked events through
// an EventSink. Sinks are advisory only and never affect behavior:
//
//	p, err := taskpool.New(4,
//	    taskpool.WithEventSink(taskpool.LogSink(nil)),
//	)
//
// The metrics package provides a Prometheus-backed sink. Panics are
// additionally reported through the pool's logger (see WithLogger) whether
// or not a sink is installed.
//
// # Sizing and Partitioning
//
// Size a pool to the resource its jobs contend for: runtime.NumCPU()
// workers for CPU-bound jobs, more for I/O-bound jobs that spend most of
// their time blocked, and deliberately few for jobs whose concurrency must
// be tightly bounded. When one process hosts several workload classes, give
// each class its own pool so contention in one cannot starve another; the
// partition package manages such a set of pools as a unit.
//
// To bound concurrent use of an external resource independently of worker
// count, layer the concurrency package's Limiter inside the jobs
// themselves.
package taskpool
