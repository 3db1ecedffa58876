// Package bfs implements §4.4 of the coupled-maze specification: the BFS
// driver over the joint 4D state space, both single-threaded and
// frontier-parallel multi-threaded, plus the depth bound of §4.7 and the
// supplemental pairwise-distance and single-map-decomposition helpers used
// to cheaply prove infeasibility or skip the joint search entirely.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/coupledmaze/mazestate"
)

// Sentinel errors for bfs.Run.
var (
	// ErrNonPositiveWorkers indicates Options.Workers was set to zero or less.
	ErrNonPositiveWorkers = errors.New("bfs: worker count must be positive")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a bfs.Run call via functional arguments.
type Option func(*Options)

// Options holds tunable parameters and instrumentation hooks for Run.
type Options struct {
	// Workers selects the driver: 1 runs the single-threaded driver; >1
	// partitions the frontier across that many goroutines.
	Workers int

	// OnStep is called once per BFS depth level, after the frontier has
	// swapped, with the new depth and the frontier's size at that depth.
	OnStep func(depth, frontierSize int)

	// err records an invalid option so Run can surface it uniformly.
	err error
}

// DefaultOptions returns Options with a single worker (the sequential
// driver) and a no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
		OnStep:  func(int, int) {},
	}
}

// WithWorkers selects the number of frontier-partition workers. A value of
// 1 selects the single-threaded driver; values above 1 require the caller
// to supply a concurrency-safe DeltaTable backend to Run (AtomicBitsetXor
// or AtomicByteCAS).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrNonPositiveWorkers, n)
			return
		}
		o.Workers = n
	}
}

// WithOnStep registers a callback invoked once per BFS depth level.
func WithOnStep(fn func(depth, frontierSize int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Result summarizes a completed Run: whether the goal was reached, and the
// depth (instruction count) at which the search stopped.
type Result struct {
	Reached bool
	Depth   int
}

// DepthBound implements §4.7: the maximum instruction count any optimal
// solution can need, 2*W*H - 2 - |holes0| - |holes1|. Both BFS drivers
// terminate early once this many steps have run without reaching the goal.
func DepthBound(dims mazestate.Dims, holes0, holes1 int) int {
	return 2*dims.Tiles() - 2 - holes0 - holes1
}
