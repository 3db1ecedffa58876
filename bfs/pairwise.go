package bfs

import (
	"github.com/katalvlaran/coupledmaze/mazemap"
	"github.com/katalvlaran/coupledmaze/mazestate"
)

// PairwiseDistances computes, for a single walker on m, the shortest
// instruction-count distance from every tile to the goal (W-1,H-1),
// respecting walls. The result is indexed by y*W+x. A distance of -1 means
// the tile cannot reach the goal at all.
//
// When respectHoles is true, any transition that lands on a hole is
// discarded rather than followed: a hole teleport is a one-way reset to the
// origin in the forward direction, and reversing it would require treating
// every tile with an open edge into a hole as a predecessor of the origin,
// which conflates "can reach the origin" with "can reach the goal" and
// double-counts the origin's own distance. The ground-truth pairwise
// distance table (the Rust source's bfs_2d_distances) resolves this the same
// way: it skips any hole-touching transition outright rather than folding it
// into the origin's predecessor set. When respectHoles is false, holes have
// no special meaning and this check never fires.
//
// This is computed as a single reverse BFS from the goal tile: the
// predecessor of a tile n is any tile A with an open-wall edge into n that
// does not cross a hole. Used by astar's PairwiseBFS heuristic and as an
// upfront infeasibility check: if the distance from (0,0) is -1, no
// instruction sequence can ever get that walker to the goal.
func PairwiseDistances(m *mazemap.Map, dims mazestate.Dims, respectHoles bool) []int {
	n := dims.Tiles()
	reverse := make([][]int, n)
	w := int(dims.Width)

	for y := mazestate.Coordinate(0); y < dims.Height; y++ {
		for x := mazestate.Coordinate(0); x < dims.Width; x++ {
			a := int(y)*w + int(x)
			for _, instr := range mazestate.AllInstructions {
				nx, ny, open := step2D(m, x, y, instr)
				if !open {
					continue
				}
				if respectHoles && m.IsHole(nx, ny) {
					continue
				}
				target := int(ny)*w + int(nx)
				reverse[target] = append(reverse[target], a)
			}
		}
	}

	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	goalIdx := int(dims.Height-1)*w + int(dims.Width-1)
	dist[goalIdx] = 0
	queue := []int{goalIdx}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range reverse[u] {
			if dist[v] == -1 {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return dist
}

// step2D computes the tile instr moves to from (x,y) on m, and whether the
// wall between them is open. It does not apply the goal-freeze rule from
// package kernel: that rule exists only to keep the joint 4D search from
// revisiting the goal state, and has no bearing on a single-walker distance
// map.
func step2D(m *mazemap.Map, x, y mazestate.Coordinate, instr mazestate.Instruction) (mazestate.Coordinate, mazestate.Coordinate, bool) {
	switch instr.Axis {
	case mazestate.AxisX:
		if instr.Dir == mazestate.DirNeg {
			if m.VerticalWall(x, y) {
				return x, y, false
			}
			return x - 1, y, true
		}
		if m.VerticalWall(x+1, y) {
			return x, y, false
		}
		return x + 1, y, true
	default: // mazestate.AxisY
		if instr.Dir == mazestate.DirNeg {
			if m.HorizontalWall(x, y) {
				return x, y, false
			}
			return x, y - 1, true
		}
		if m.HorizontalWall(x, y+1) {
			return x, y, false
		}
		return x, y + 1, true
	}
}
