package kernel

import (
	"github.com/katalvlaran/coupledmaze/deltatable"
	"github.com/katalvlaran/coupledmaze/mazemap"
	"github.com/katalvlaran/coupledmaze/mazestate"
)

// Expand computes the successors of state and records their DeltaCodes into
// table. maps[0] and maps[1] are walker 0 and walker 1's grids; both share
// dims. When respectHoles is false, IsHole is never consulted and no
// walker ever teleports.
//
// For each of the four instructions, in the fixed order mazestate.
// AllInstructions enumerates them: a walker may move only if it is not
// already standing on the goal tile (a terminal walker is frozen, so the
// goal state is never revisited with a spurious predecessor) and the wall
// between its current tile and the target tile is open. If neither walker
// can move, that instruction contributes no successor. Otherwise the
// resulting "raw" state is adjusted for hole teleportation (any walker
// landing on a hole resets to (0,0)); Expand always writes the adjusted
// state's index unforced, and additionally force-writes the raw state's
// index with the same code whenever teleportation made the two differ, so
// the reconstructor can walk back through the teleport.
//
// Expand returns only the successors whose unforced write actually
// transitioned the table from unvisited (i.e. the ones the caller should
// enqueue); states some other writer already claimed are omitted.
func Expand(state mazestate.JointState, maps [2]*mazemap.Map, dims mazestate.Dims, respectHoles bool, table deltatable.Table) []Successor {
	goalX, goalY := dims.Width-1, dims.Height-1

	successors := make([]Successor, 0, 4)
	for _, instr := range mazestate.AllInstructions {
		moved0 := canMove(maps[0], state[0], state[1], instr, goalX, goalY)
		moved1 := canMove(maps[1], state[2], state[3], instr, goalX, goalY)
		if !moved0 && !moved1 {
			continue
		}

		raw := state
		if moved0 {
			raw[0], raw[1] = step(raw[0], raw[1], instr)
		}
		if moved1 {
			raw[2], raw[3] = step(raw[2], raw[3], instr)
		}
		if raw == state {
			continue
		}

		adjusted := raw
		teleported := false
		if respectHoles {
			if maps[0].IsHole(adjusted[0], adjusted[1]) {
				adjusted[0], adjusted[1] = 0, 0
				teleported = true
			}
			if maps[1].IsHole(adjusted[2], adjusted[3]) {
				adjusted[2], adjusted[3] = 0, 0
				teleported = true
			}
		}

		code := mazestate.NewDeltaCode(moved0, moved1, instr)
		if table.Set(dims.Index(adjusted), code, false) {
			successors = append(successors, Successor{State: adjusted, Code: code})
		}
		if teleported && adjusted != raw {
			table.Set(dims.Index(raw), code, true)
		}
	}
	return successors
}

// canMove reports whether the walker at (x,y) on mp may take instr: it
// must not already be on the goal tile, and the wall segment between its
// current tile and the target tile must be open.
func canMove(mp *mazemap.Map, x, y mazestate.Coordinate, instr mazestate.Instruction, goalX, goalY mazestate.Coordinate) bool {
	if x == goalX && y == goalY {
		return false
	}
	switch instr.Axis {
	case mazestate.AxisX:
		if instr.Dir == mazestate.DirNeg {
			return !mp.VerticalWall(x, y)
		}
		return !mp.VerticalWall(x+1, y)
	default: // mazestate.AxisY
		if instr.Dir == mazestate.DirNeg {
			return !mp.HorizontalWall(x, y)
		}
		return !mp.HorizontalWall(x, y+1)
	}
}

// step applies instr to (x,y), assuming canMove already permitted it.
func step(x, y mazestate.Coordinate, instr mazestate.Instruction) (mazestate.Coordinate, mazestate.Coordinate) {
	delta := mazestate.Coordinate(1)
	if instr.Dir == mazestate.DirNeg {
		delta = -1
	}
	if instr.Axis == mazestate.AxisX {
		return x + delta, y
	}
	return x, y + delta
}
