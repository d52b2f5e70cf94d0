package taskpool

import (
	"errors"

	"github.com/pgvanniekerk/taskpool/internal/pool"
)

// ErrPoolClosed is returned by Execute once Shutdown has begun. It means
// the pool is unavailable and the job was rejected; callers should retry
// elsewhere, drop the work, or surface the condition to their own caller.
// Rejection is never silent.
var ErrPoolClosed = pool.ErrPoolClosed

// ErrNilJob is returned by Execute when the submitted job is nil.
var ErrNilJob = pool.ErrNilJob

// ErrNoWorkers is returned by New when the requested worker count is less
// than one. A pool with zero workers would accept jobs it can never run and
// hang forever on Shutdown, so the mistake is rejected at construction
// time.
var ErrNoWorkers = errors.New("pool requires at least one worker")
