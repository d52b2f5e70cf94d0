// Package partition manages a set of independent worker pools, one per
// workload class, so that contention in one class cannot starve another.
//
// Rather than pushing I/O-heavy, CPU-heavy and latency-critical work
// through one shared pool, each class gets its own pool with its own queue
// and its own fixed worker count, sized for that class alone. The pools
// share nothing; shutting one down leaves the others running.
package partition

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/pgvanniekerk/taskpool/pkg/taskpool"
)

// ErrUnknownClass is returned when a class name does not match any class
// the Group was built with.
var ErrUnknownClass = errors.New("unknown workload class")

// Class describes one workload class and how its pool is sized.
type Class struct {

	// Name identifies the class. Must be unique and non-empty within a
	// Group.
	Name string `yaml:"name" json:"name"`

	// Workers is the class's fixed worker count. Zero means
	// runtime.NumCPU(), the usual choice for CPU-bound classes; pick
	// larger counts for I/O-bound classes and deliberately small ones for
	// classes whose concurrency must stay tightly bounded.
	Workers int `yaml:"workers" json:"workers"`

	// QueueCapacity bounds the class's job queue when greater than zero.
	// Zero means unbounded.
	QueueCapacity int `yaml:"queue_capacity" json:"queue_capacity"`
}

// Group holds one independent pool per workload class. The set of classes
// is fixed at construction.
type Group struct {
	pools map[string]taskpool.Pool
	names []string
}

// NewGroup creates one pool per class and starts them all. Class names must
// be unique and non-empty; a Workers value of zero defaults to
// runtime.NumCPU(), a negative one is rejected.
//
// If any pool cannot be constructed, the pools already started are shut
// down before the error is returned.
func NewGroup(classes ...Class) (*Group, error) {

	if len(classes) == 0 {
		return nil, errors.New("at least one workload class is required")
	}

	g := &Group{
		pools: make(map[string]taskpool.Pool, len(classes)),
		names: make([]string, 0, len(classes)),
	}

	for _, class := range classes {
		if class.Name == "" {
			g.ShutdownAll()
			return nil, errors.New("workload class name must not be empty")
		}
		if _, exists := g.pools[class.Name]; exists {
			g.ShutdownAll()
			return nil, fmt.Errorf("duplicate workload class %q", class.Name)
		}

		workers := class.Workers
		if workers == 0 {
			workers = runtime.NumCPU()
		}

		var opts []taskpool.Option
		if class.QueueCapacity > 0 {
			opts = append(opts, taskpool.WithQueueCapacity(class.QueueCapacity))
		}

		p, err := taskpool.New(workers, opts...)
		if err != nil {
			g.ShutdownAll()
			return nil, fmt.Errorf("workload class %q: %w", class.Name, err)
		}

		g.pools[class.Name] = p
		g.names = append(g.names, class.Name)
	}

	return g, nil
}

// Pool returns the pool serving the named class, or false if the Group has
// no such class.
func (g *Group) Pool(name string) (taskpool.Pool, bool) {
	p, ok := g.pools[name]
	return p, ok
}

// Execute submits a job to the named class's pool.
func (g *Group) Execute(name string, j taskpool.Job) error {
	p, ok := g.pools[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}
	return p.Execute(j)
}

// Shutdown gracefully shuts down the named class's pool, blocking until its
// accepted jobs have finished. Other classes are unaffected.
func (g *Group) Shutdown(name string) error {
	p, ok := g.pools[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}
	p.Shutdown()
	return nil
}

// ShutdownAll shuts every class's pool down concurrently and blocks until
// all of them have fully stopped.
func (g *Group) ShutdownAll() {
	wg := &sync.WaitGroup{}
	for _, p := range g.pools {
		wg.Add(1)
		go func(p taskpool.Pool) {
			defer wg.Done()
			p.Shutdown()
		}(p)
	}
	wg.Wait()
}

// Names returns the class names in the order they were configured.
func (g *Group) Names() []string {
	names := make([]string, len(g.names))
	copy(names, g.names)
	return names
}
