package astar

import (
	"github.com/katalvlaran/coupledmaze/bfs"
	"github.com/katalvlaran/coupledmaze/deltatable"
	"github.com/katalvlaran/coupledmaze/kernel"
	"github.com/katalvlaran/coupledmaze/mazemap"
	"github.com/katalvlaran/coupledmaze/mazestate"
)

// Run searches the joint state space with A*, prioritizing expansion by
// g+h through a bucketQueue, and records every predecessor move into
// table exactly as package bfs does — the two drivers are interchangeable
// front ends onto the same deltatable.Table contract.
//
// When Options.Heuristic is PairwiseBFS, Run first runs the §4.5
// infeasibility pre-check: if either walker's start tile cannot reach its
// own goal at all (ignoring the other walker), Run returns
// Result{Reached: false} immediately without touching table or the queue,
// matching spec.md §7's Infeasible(PreCheck) error surface (no error
// value; an empty/unreached result is the signal).
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

	goal := mazestate.Goal(dims.Width, dims.Height)
	goalIdx := dims.Index(goal)

	if start == goal {
		return Result{Reached: true, Depth: 0}, nil
	}

	bound := bfs.DepthBound(dims, len(maps[0].HolesPlacement()), len(maps[1].HolesPlacement()))

	var dist0, dist1 []int
	if o.Heuristic == PairwiseBFS {
		dist0 = bfs.PairwiseDistances(maps[0], dims, respectHoles)
		dist1 = bfs.PairwiseDistances(maps[1], dims, respectHoles)
		if dist0[0] == -1 || dist1[0] == -1 {
			return Result{Reached: false}, nil
		}
	}

	h := func(s mazestate.JointState) int {
		switch o.Heuristic {
		case DisparityManhattan:
			return disparityPunished(s, dims)
		case PairwiseBFS:
			// ok is discarded: once the precheck above confirms each walker's
			// own origin can reach its own goal, every tile a walker's
			// position can ever hold during this search can too — wall edges
			// are symmetric, so a tile-to-origin path (the one kernel.Expand
			// just took in reverse) composes with the origin-to-goal path the
			// precheck already found. ok is therefore always true here; v is
			// never a placeholder zero.
			v, _ := pairwiseBFSValue(s, dims, dist0, dist1)
			return v
		default:
			return manhattanSum(s, dims)
		}
	}

	queue := newBucketQueue()
	queue.push(h(start), start, 0)

	depth := 0
	for {
		state, g, ok := queue.pop()
		if !ok {
			break
		}
		if g > bound {
			continue
		}

		for _, succ := range kernel.Expand(state, maps, dims, respectHoles, table) {
			newG := g + 1
			hv := h(succ.State)
			o.OnExpand(newG, hv)
			if succ.State == goal {
				depth = newG
			}
			if newG > bound {
				continue
			}
			queue.push(newG+hv, succ.State, newG)
		}

		if table.Get(goalIdx) != mazestate.Unvisited {
			break
		}
	}

	return Result{Reached: table.Get(goalIdx) != mazestate.Unvisited, Depth: depth}, nil
}
