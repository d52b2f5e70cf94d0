package pool

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pgvanniekerk/taskpool/pkg/job"
)

// runWorker is the run loop of one worker goroutine. The worker blocks in
// Dequeue while idle, runs one job at a time, and exits once the queue is
// closed and drained.
func (p *Pool) runWorker(id int) {
	defer p.workerWG.Done()

	for {
		it, ok := p.queue.Dequeue()
		if !ok {
			// Queue closed with nothing left to drain.
			return
		}
		p.runJob(id, it)
	}
}

// runJob executes one job inside a recover boundary. A panicking job is
// reported through the logger and the event sink; it never terminates the
// worker, so pool capacity is preserved no matter what jobs do.
func (p *Pool) runJob(id int, it item) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			p.logger.WithFields(logrus.Fields{
				"worker": id,
				"job":    it.id,
				"panic":  r,
			}).Error("job panicked")

			p.emit(job.Event{
				Kind:       job.Panicked,
				WorkerID:   id,
				JobID:      it.id,
				Submitted:  it.submitted,
				PanicValue: r,
			})
		}
	}()

	p.emit(job.Event{
		Kind:      job.Started,
		WorkerID:  id,
		JobID:     it.id,
		Submitted: it.submitted,
	})

	it.job()

	p.emit(job.Event{
		Kind:      job.Finished,
		WorkerID:  id,
		JobID:     it.id,
		Submitted: it.submitted,
		Duration:  time.Since(start),
	})
}
