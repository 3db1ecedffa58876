package bfs

import (
	"github.com/katalvlaran/coupledmaze/mazemap"
	"github.com/katalvlaran/coupledmaze/mazestate"
)

// TrySingleMapDecomposition reports whether maps[0] and maps[1] are
// identical (mazemap.Map.Equal), and if so returns the shortest
// instruction sequence driving a single walker on that shared grid from
// (0,0) to (W-1,H-1). Because both walkers then see exactly the same
// walls and holes, any instruction applied to one produces an identical
// trajectory in the other: the pair stays synchronized at every step, so
// this single-walker sequence is also the coupled problem's answer,
// computed without ever touching the joint 4D state space.
//
// The second return value is false when the maps differ (the caller must
// fall back to Run) or when no path exists on the shared map.
func TrySingleMapDecomposition(maps [2]*mazemap.Map, dims mazestate.Dims) ([]mazestate.Instruction, bool) {
	if !maps[0].Equal(maps[1]) {
		return nil, false
	}

	w := int(dims.Width)
	n := dims.Tiles()
	goalIdx := int(dims.Height-1)*w + int(dims.Width-1)

	visited := make([]bool, n)
	parent := make([]int, n)
	parentInstr := make([]mazestate.Instruction, n)
	for i := range parent {
		parent[i] = -1
	}

	start := 0
	visited[start] = true
	queue := []int{start}
	found := start == goalIdx

	for len(queue) > 0 && !found {
		u := queue[0]
		queue = queue[1:]
		x := mazestate.Coordinate(u % w)
		y := mazestate.Coordinate(u / w)

		for _, instr := range mazestate.AllInstructions {
			nx, ny, open := step2D(maps[0], x, y, instr)
			if !open {
				continue
			}
			target := int(ny)*w + int(nx)
			if maps[0].IsHole(nx, ny) {
				target = 0
			}
			if visited[target] {
				continue
			}
			visited[target] = true
			parent[target] = u
			parentInstr[target] = instr
			if target == goalIdx {
				found = true
				break
			}
			queue = append(queue, target)
		}
	}

	if !found {
		return nil, false
	}

	var reversed []mazestate.Instruction
	for cur := goalIdx; cur != start; cur = parent[cur] {
		reversed = append(reversed, parentInstr[cur])
	}
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed, true
}
