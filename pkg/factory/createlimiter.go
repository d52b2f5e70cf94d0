package factory

import (
	"errors"
	"runtime"

	concurrencyInternal "github.com/pgvanniekerk/taskpool/internal/concurrency"
	"github.com/pgvanniekerk/taskpool/pkg/concurrency"
)

// limiterOptions represents configuration options for a Limiter.
type limiterOptions struct {
	permits int64
}

// limiterOption defines a functional option for customizing the behavior of
// a Limiter by modifying limiterOptions.
type limiterOption func(*limiterOptions)

// WithPermits configures the number of permits the limiter hands out, i.e.
// the maximum number of concurrently in-flight operations it admits.
func WithPermits(permits int64) limiterOption {
	return func(options *limiterOptions) {
		options.permits = permits
	}
}

// CreateLimiter initializes an admission-control limiter with customizable
// options and returns it or an error if creation fails. It defaults the
// permit count to the CPU core count and blocks on Acquire() until a permit
// becomes available or the caller's context is done.
func CreateLimiter(opts ...limiterOption) (concurrency.Limiter, error) {

	options := &limiterOptions{}

	// Default permits to CPU core count
	options.permits = int64(runtime.NumCPU())

	for idx := range opts {
		opts[idx](options)
	}

	if options.permits < 1 {
		return nil, errors.New("limiter requires at least one permit")
	}

	return concurrencyInternal.NewLimiter(options.permits), nil
}
