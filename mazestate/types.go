// Package mazestate defines the joint state space for the coupled-maze
// instruction search: coordinates, instructions, joint states, and the
// compact 4-bit DeltaCode used to encode a predecessor move.
//
// Two identical walkers occupy two (possibly different) grids of the same
// width and height. A JointState is the tuple of both walkers' positions;
// the search explores the product space of size (W*H)^2. This file defines
// that address space and the bit-level encoding shared by every other
// package in this module (mazemap, deltatable, kernel, bfs, astar,
// reconstruct).
package mazestate

import "errors"

// Sentinel errors for mazestate operations.
var (
	// ErrNonPositiveDims indicates width or height is not a positive integer.
	ErrNonPositiveDims = errors.New("mazestate: width and height must be positive")
)

// Coordinate is a signed grid coordinate. It is signed because intermediate
// wall-index arithmetic (e.g. checking the wall to the "left" of x=0) can
// underflow by one before the bounds/wall check discards the move.
type Coordinate int32

// JointState is the tuple (x0,y0,x1,y1) of both walkers' positions.
// The start state is always {0,0,0,0}; the goal state is
// {W-1,H-1,W-1,H-1}.
type JointState [4]Coordinate

// Start returns the joint state both walkers begin in.
func Start() JointState {
	return JointState{0, 0, 0, 0}
}

// Goal returns the joint state both walkers must reach simultaneously.
func Goal(width, height Coordinate) JointState {
	return JointState{width - 1, height - 1, width - 1, height - 1}
}

// Instruction is a 2-bit code (axis, direction) applied identically to both
// walkers on a single step. Exactly four distinct instructions exist.
type Instruction struct {
	// Axis selects the moving dimension: AxisX or AxisY.
	Axis int
	// Dir selects the direction along Axis: DirNeg (-1) or DirPos (+1).
	Dir int
}

// Axis selectors for Instruction.Axis.
const (
	AxisY = 0
	AxisX = 1
)

// Direction selectors for Instruction.Dir.
const (
	DirNeg = 0
	DirPos = 1
)

// AllInstructions lists the four possible instructions in the fixed order
// the instruction kernel (package kernel) expands them: (x,-) (y,-) (x,+) (y,+).
// Reconstruction depends on this exact order being reflected in DeltaCode's
// axis/dir bits, not on the order of this slice, but callers that want to
// enumerate instructions deterministically (e.g. for rendering or testing)
// should use this order.
var AllInstructions = [4]Instruction{
	{Axis: AxisX, Dir: DirNeg},
	{Axis: AxisY, Dir: DirNeg},
	{Axis: AxisX, Dir: DirPos},
	{Axis: AxisY, Dir: DirPos},
}

// DeltaCode is the 4-bit encoding stored per reachable non-start JointState,
// recording how the predecessor move produced this state:
//
//	bit 3 (0x8) — walker 0 actually moved (1) or was wall-blocked (0)
//	bit 2 (0x4) — walker 1 actually moved (1) or was wall-blocked (0)
//	bit 1 (0x2) — axis of the instruction: 1 = x, 0 = y
//	bit 0 (0x1) — direction of the instruction: 1 = +, 0 = -
//
// A DeltaCode of 0 means "unvisited". The start state is marked with the
// sentinel StartSentinel (0001) to distinguish visited-at-index-0 from
// unvisited; it is never interpreted as a real instruction.
type DeltaCode uint8

// Unvisited is the zero value of DeltaCode: no predecessor has been recorded.
const Unvisited DeltaCode = 0

// StartSentinel marks the start state as visited without encoding a real
// move. Reconstruction halts before decoding it.
const StartSentinel DeltaCode = 0b0001

const (
	bitMoved0 = 1 << 3
	bitMoved1 = 1 << 2
	bitAxis   = 1 << 1
	bitDir    = 1 << 0
)

// NewDeltaCode packs the four predecessor fields into a DeltaCode.
func NewDeltaCode(moved0, moved1 bool, instr Instruction) DeltaCode {
	var c DeltaCode
	if moved0 {
		c |= bitMoved0
	}
	if moved1 {
		c |= bitMoved1
	}
	if instr.Axis == AxisX {
		c |= bitAxis
	}
	if instr.Dir == DirPos {
		c |= bitDir
	}
	return c
}

// Moved0 reports whether walker 0 actually moved on the step this code encodes.
func (c DeltaCode) Moved0() bool { return c&bitMoved0 != 0 }

// Moved1 reports whether walker 1 actually moved on the step this code encodes.
func (c DeltaCode) Moved1() bool { return c&bitMoved1 != 0 }

// Instruction decodes the (axis, direction) pair this code encodes.
func (c DeltaCode) Instruction() Instruction {
	instr := Instruction{Axis: AxisY, Dir: DirNeg}
	if c&bitAxis != 0 {
		instr.Axis = AxisX
	}
	if c&bitDir != 0 {
		instr.Dir = DirPos
	}
	return instr
}

// Dims bundles a grid's width and height; both JointState coordinates in a
// search share one Dims value (the two maps are required to be the same
// size; only their walls and holes may differ).
type Dims struct {
	Width, Height Coordinate
}

// Tiles returns W*H, the number of single-walker tiles.
func (d Dims) Tiles() int {
	return int(d.Width) * int(d.Height)
}

// States returns (W*H)^2, the size of the joint state space addressed by Index.
func (d Dims) States() int {
	t := d.Tiles()
	return t * t
}

// Validate reports ErrNonPositiveDims if either dimension is not positive.
func (d Dims) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return ErrNonPositiveDims
	}
	return nil
}

// Index linearizes a JointState into its DeltaTable address:
//
//	idx = (y0*W + x0)*T + (y1*W + x1),  T = W*H
//
// Callers must ensure each coordinate lies in [0, dim), Index does not bounds-check.
func (d Dims) Index(s JointState) int {
	w := int(d.Width)
	t := d.Tiles()
	tile0 := int(s[1])*w + int(s[0])
	tile1 := int(s[3])*w + int(s[2])
	return tile0*t + tile1
}
