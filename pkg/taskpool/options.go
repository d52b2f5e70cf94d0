package taskpool

import (
	"github.com/sirupsen/logrus"

	"github.com/pgvanniekerk/taskpool/internal/pool"
)

// Option customizes the behavior of a Pool created by New.
type Option func(*pool.Config)

// WithQueueCapacity bounds the job queue to the given number of pending
// jobs. Execute then blocks while the queue is full, applying backpressure
// to producers instead of growing memory without limit.
//
// The default (and any capacity <= 0) is an unbounded queue, where Execute
// always returns immediately.
func WithQueueCapacity(capacity int) Option {
	return func(cfg *pool.Config) {
		cfg.QueueCapacity = capacity
	}
}

// WithEventSink installs a sink that receives an Event for every job start,
// finish and panic. Sinks are purely advisory: the pool behaves identically
// with or without one. See the metrics package for a Prometheus-backed
// sink and LogSink for a logging one.
func WithEventSink(sink EventSink) Option {
	return func(cfg *pool.Config) {
		cfg.Sink = sink
	}
}

// WithLogger sets the logger the pool reports job panics and lifecycle
// transitions to. The default is logrus.StandardLogger().
func WithLogger(logger logrus.FieldLogger) Option {
	return func(cfg *pool.Config) {
		cfg.Logger = logger
	}
}
