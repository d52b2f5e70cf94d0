package taskpool

import (
	"github.com/sirupsen/logrus"

	"github.com/pgvanniekerk/taskpool/pkg/job"
)

// LogSink adapts a logrus logger into an EventSink. Started and Finished
// events are logged at debug level, Panicked events at error level, each
// with the worker id and job id as structured fields.
//
// Pass nil to use logrus.StandardLogger().
func LogSink(logger logrus.FieldLogger) EventSink {

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return func(ev Event) {
		entry := logger.WithFields(logrus.Fields{
			"worker": ev.WorkerID,
			"job":    ev.JobID,
		})

		switch ev.Kind {
		case job.Started:
			entry.Debug("job started")
		case job.Finished:
			entry.WithField("duration", ev.Duration).Debug("job finished")
		case job.Panicked:
			entry.WithField("panic", ev.PanicValue).Error("job panicked")
		}
	}
}
