package reconstruct

import (
	"fmt"

	"github.com/katalvlaran/coupledmaze/deltatable"
	"github.com/katalvlaran/coupledmaze/mazemap"
	"github.com/katalvlaran/coupledmaze/mazestate"
)

// Reconstruct walks table backward from (W-1,H-1,W-1,H-1) to (0,0,0,0),
// decoding the instruction sequence a completed bfs.Run or astar.Run
// recorded. If the goal was never visited, Reconstruct returns a zero
// Result and a nil error (spec.md §7's Unreachable(Goal): an empty
// instruction sequence with Moves == 0, not an error value). A broken
// predecessor chain mid-traversal — table.Get returning mazestate.
// Unvisited at a state other than the start — is the one condition that
// does return an error (ErrBrokenChain), since it indicates the table was
// populated incorrectly.
func Reconstruct(maps [2]*mazemap.Map, dims mazestate.Dims, respectHoles bool, table deltatable.Table) (Result, error) {
	start := mazestate.Start()
	goal := mazestate.Goal(dims.Width, dims.Height)

	if table.Get(dims.Index(goal)) == mazestate.Unvisited {
		return Result{}, nil
	}

	var reversed []mazestate.Instruction
	moves := 0
	state := goal

	for state != start {
		code := table.Get(dims.Index(state))
		if code == mazestate.Unvisited {
			return Result{}, fmt.Errorf("%w: no predecessor recorded for state %v", ErrBrokenChain, state)
		}
		instr := code.Instruction()

		if respectHoles {
			state = disambiguateHoles(state, code, maps, dims, table)
		}

		if code.Moved0() {
			state[0], state[1] = unstep(state[0], state[1], instr)
			moves++
		}
		if code.Moved1() {
			state[2], state[3] = unstep(state[2], state[3], instr)
			moves++
		}

		reversed = append(reversed, instr)
	}

	instructions := make([]mazestate.Instruction, len(reversed))
	for i, instr := range reversed {
		instructions[len(reversed)-1-i] = instr
	}

	return Result{
		Instructions: instructions,
		Moves:        moves,
		Validated:    simulate(instructions, maps, dims, respectHoles),
	}, nil
}

// disambiguateHoles resolves the ambiguity a hole teleport introduces: the
// instruction kernel (package kernel) force-writes the same DeltaCode at
// both the raw pre-teleport index and the adjusted (0,0) index, so a
// walker sitting at (0,0) mid-traversal might really have arrived there by
// teleporting from any hole on its map. For each walker currently at
// (0,0), this searches that map's hole list for the one hole whose joint
// state (with the other walker's position held fixed) carries the exact
// same code; if found, that hole — not (0,0) — is the walker's true
// pre-step tile.
func disambiguateHoles(state mazestate.JointState, code mazestate.DeltaCode, maps [2]*mazemap.Map, dims mazestate.Dims, table deltatable.Table) mazestate.JointState {
	for w := 0; w < 2; w++ {
		xi, yi := 2*w, 2*w+1
		if state[xi] != 0 || state[yi] != 0 {
			continue
		}
		for _, hole := range maps[w].HolesPlacement() {
			candidate := state
			candidate[xi], candidate[yi] = hole[0], hole[1]
			if table.Get(dims.Index(candidate)) == code {
				state = candidate
				break
			}
		}
	}
	return state
}

// unstep subtracts instr's move from (x,y), the inverse of the kernel's
// forward step.
func unstep(x, y mazestate.Coordinate, instr mazestate.Instruction) (mazestate.Coordinate, mazestate.Coordinate) {
	delta := mazestate.Coordinate(1)
	if instr.Dir == mazestate.DirNeg {
		delta = -1
	}
	if instr.Axis == mazestate.AxisX {
		return x - delta, y
	}
	return x, y - delta
}

// simulate independently drives each walker forward through instructions
// from (0,0), applying the same terminal-freeze and hole-teleport rules
// the instruction kernel does, and reports whether each one lands on
// (W-1,H-1).
func simulate(instructions []mazestate.Instruction, maps [2]*mazemap.Map, dims mazestate.Dims, respectHoles bool) [2]bool {
	goalX, goalY := dims.Width-1, dims.Height-1
	var validated [2]bool
	for w := 0; w < 2; w++ {
		x, y := mazestate.Coordinate(0), mazestate.Coordinate(0)
		for _, instr := range instructions {
			if x == goalX && y == goalY {
				continue
			}
			switch instr.Axis {
			case mazestate.AxisX:
				if instr.Dir == mazestate.DirNeg {
					if !maps[w].VerticalWall(x, y) {
						x--
					}
				} else if !maps[w].VerticalWall(x+1, y) {
					x++
				}
			default: // mazestate.AxisY
				if instr.Dir == mazestate.DirNeg {
					if !maps[w].HorizontalWall(x, y) {
						y--
					}
				} else if !maps[w].HorizontalWall(x, y+1) {
					y++
				}
			}
			if respectHoles && maps[w].IsHole(x, y) {
				x, y = 0, 0
			}
		}
		validated[w] = x == goalX && y == goalY
	}
	return validated
}
