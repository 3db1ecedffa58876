package bfs

import (
	"github.com/katalvlaran/coupledmaze/deltatable"
	"github.com/katalvlaran/coupledmaze/kernel"
	"github.com/katalvlaran/coupledmaze/mazemap"
	"github.com/katalvlaran/coupledmaze/mazestate"
)

// Run searches the joint state space reachable from (0,0,0,0) for
// (W-1,H-1,W-1,H-1), recording every predecessor move into table. It
// dispatches to the sequential driver when Options.Workers == 1 (the
// default) and to the frontier-parallel driver otherwise.
//
// table must already have the start state written (Run writes it itself
// if it is still unvisited); callers that want a fresh search should pass
// a freshly constructed, empty table.
func Run(maps [2]*mazemap.Map, dims mazestate.Dims, respectHoles bool, table deltatable.Table, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	start := mazestate.Start()
	startIdx := dims.Index(start)
	table.Set(startIdx, mazestate.StartSentinel, false)

	bound := DepthBound(dims, len(maps[0].HolesPlacement()), len(maps[1].HolesPlacement()))

	if o.Workers <= 1 {
		return runSingleThreaded(maps, dims, respectHoles, table, bound, o)
	}
	return runMultiThreaded(maps, dims, respectHoles, table, bound, o)
}

func goalReached(dims mazestate.Dims, table deltatable.Table) bool {
	return table.Get(dims.Index(mazestate.Goal(dims.Width, dims.Height))) != mazestate.Unvisited
}

func runSingleThreaded(maps [2]*mazemap.Map, dims mazestate.Dims, respectHoles bool, table deltatable.Table, bound int, o Options) (Result, error) {
	tasks := []mazestate.JointState{mazestate.Start()}
	depth := 0

	for len(tasks) > 0 && depth < bound && !goalReached(dims, table) {
		output := make([]mazestate.JointState, 0, len(tasks)*2)
		for _, s := range tasks {
			for _, succ := range kernel.Expand(s, maps, dims, respectHoles, table) {
				output = append(output, succ.State)
			}
		}
		tasks = output
		depth++
		o.OnStep(depth, len(tasks))
	}

	return Result{Reached: goalReached(dims, table), Depth: depth}, nil
}
