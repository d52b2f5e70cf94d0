// Package metrics exposes a pool's lifecycle events as Prometheus
// collectors. Install the sink at construction time:
//
//	m := metrics.New("myapp", "ingest", nil)
//	p, err := taskpool.New(8, taskpool.WithEventSink(m.Sink()))
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pgvanniekerk/taskpool/pkg/job"
)

// Metrics holds the Prometheus collectors fed by a pool's event stream.
type Metrics struct {

	// JobsCompleted counts jobs that returned normally.
	JobsCompleted prometheus.Counter

	// JobsPanicked counts jobs that panicked and were contained at the
	// worker boundary.
	JobsPanicked prometheus.Counter

	// JobsInFlight tracks the number of jobs currently executing. It never
	// exceeds the pool's worker count.
	JobsInFlight prometheus.Gauge

	// JobDuration observes the execution time of completed jobs.
	JobDuration prometheus.Histogram

	// QueueWait observes the time jobs spent queued between submission and
	// pickup by a worker.
	QueueWait prometheus.Histogram
}

// New creates and registers the collectors against the given registerer.
// A nil registerer defaults to prometheus.DefaultRegisterer.
func New(namespace, subsystem string, registerer prometheus.Registerer) *Metrics {

	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		JobsCompleted: promauto.With(registerer).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "jobs_completed_total",
			Help:      "Total number of jobs that completed successfully",
		}),
		JobsPanicked: promauto.With(registerer).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "jobs_panicked_total",
			Help:      "Total number of jobs that panicked",
		}),
		JobsInFlight: promauto.With(registerer).NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "jobs_in_flight",
			Help:      "Number of jobs currently executing",
		}),
		JobDuration: promauto.With(registerer).NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "job_duration_seconds",
			Help:      "Histogram of job execution time",
			Buckets:   prometheus.DefBuckets,
		}),
		QueueWait: promauto.With(registerer).NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "job_queue_wait_seconds",
			Help:      "Histogram of time jobs spent queued before pickup",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Sink returns an event sink that updates the collectors. The sink is safe
// for concurrent use by all of a pool's workers.
func (m *Metrics) Sink() job.Sink {
	return func(ev job.Event) {
		switch ev.Kind {
		case job.Started:
			m.JobsInFlight.Inc()
			m.QueueWait.Observe(time.Since(ev.Submitted).Seconds())
		case job.Finished:
			m.JobsInFlight.Dec()
			m.JobsCompleted.Inc()
			m.JobDuration.Observe(ev.Duration.Seconds())
		case job.Panicked:
			m.JobsInFlight.Dec()
			m.JobsPanicked.Inc()
		}
	}
}
