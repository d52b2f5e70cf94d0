// Package job defines the unit of work executed by a pool, together with
// the advisory lifecycle events a pool can report about it.
package job

// Job is one deferred, side-effecting unit of work. A Job takes no
// arguments and returns nothing; anything it needs must be captured in its
// closure, including any channel the submitter wants results reported on.
//
// Ownership of a Job transfers to the pool on submission. Exactly one
// worker runs it, exactly once. A Job that panics is contained at the
// worker boundary and reported through the pool's event sink; the panic
// never reaches the submitter or other jobs.
type Job func()
