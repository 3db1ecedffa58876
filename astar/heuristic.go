package astar

import "github.com/katalvlaran/coupledmaze/mazestate"

// remaining returns a single walker's Manhattan distance from (x,y) to the
// goal tile (goalX,goalY).
func remaining(x, y, goalX, goalY mazestate.Coordinate) int {
	return int(goalX-x) + int(goalY-y)
}

// manhattanSum implements the Manhattan heuristic: the sum of both
// walkers' remaining Manhattan distances.
func manhattanSum(state mazestate.JointState, dims mazestate.Dims) int {
	goalX, goalY := dims.Width-1, dims.Height-1
	d0 := remaining(state[0], state[1], goalX, goalY)
	d1 := remaining(state[2], state[3], goalX, goalY)
	return d0 + d1
}

// disparityPunished implements the DisparityManhattan heuristic: (d0+d1)+
// |d0-d1|, equivalently 2*max(d0,d1) — the Open Question resolution in
// DESIGN.md. Biasing on the larger of the two remaining distances
// prioritizes closing the gap between a lagging walker and a leading one.
func disparityPunished(state mazestate.JointState, dims mazestate.Dims) int {
	goalX, goalY := dims.Width-1, dims.Height-1
	d0 := remaining(state[0], state[1], goalX, goalY)
	d1 := remaining(state[2], state[3], goalX, goalY)
	diff := d0 - d1
	if diff < 0 {
		diff = -diff
	}
	return d0 + d1 + diff
}

// pairwiseBFSValue implements the PairwiseBFS heuristic: the sum of each
// walker's precomputed true remaining distance. dist0 and dist1 come from
// bfs.PairwiseDistances and are indexed by tile (y*W+x); a -1 entry means
// that tile cannot reach the goal, in which case ok is false and the
// caller must not expand this state.
func pairwiseBFSValue(state mazestate.JointState, dims mazestate.Dims, dist0, dist1 []int) (value int, ok bool) {
	w := int(dims.Width)
	t0 := int(state[1])*w + int(state[0])
	t1 := int(state[3])*w + int(state[2])
	a, b := dist0[t0], dist1[t1]
	if a < 0 || b < 0 {
		return 0, false
	}
	return a + b, true
}
