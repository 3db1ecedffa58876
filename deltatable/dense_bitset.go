package deltatable

import "github.com/katalvlaran/coupledmaze/mazestate"

// DenseBitset stores one DeltaCode per index as five parallel bit-planes
// (visited, moved0, moved1, axis, dir), each packed 64 states per uint64
// word rather than one bool per byte. Memory is 5*|S| bits plus slice
// header overhead, matching spec.md §4.2's "4*|S| bits" dense-bitset
// contract (the fifth plane distinguishes visited-with-zero-code from
// unvisited, which the spec's four DeltaCode bits alone cannot do at the
// start state without it).
//
// DenseBitset is the default backend: predictable O(len) memory regardless
// of how many states end up reachable, and the cheapest Get/Set in the
// package. It is not safe for concurrent use; see AtomicBitsetXor for the
// multi-threaded equivalent, which packs the same five planes but with
// atomic words and first-writer-wins CAS semantics instead of plain writes.
type DenseBitset struct {
	visited []uint64
	moved0  []uint64
	moved1  []uint64
	axis    []uint64
	dir     []uint64
	written int
}

// NewDenseBitset allocates a DenseBitset covering indices [0,len).
func NewDenseBitset(length int) (*DenseBitset, error) {
	if length <= 0 {
		return nil, ErrNonPositiveLength
	}
	words := (length + wordBits - 1) / wordBits
	return &DenseBitset{
		visited: make([]uint64, words),
		moved0:  make([]uint64, words),
		moved1:  make([]uint64, words),
		axis:    make([]uint64, words),
		dir:     make([]uint64, words),
	}, nil
}

func getBit(plane []uint64, word int, mask uint64) bool {
	return plane[word]&mask != 0
}

func setBit(plane []uint64, word int, mask uint64, value bool) {
	if value {
		plane[word] |= mask
	} else {
		plane[word] &^= mask
	}
}

// Get implements Table.
func (d *DenseBitset) Get(idx int) mazestate.DeltaCode {
	word, mask := wordAndMask(idx)
	if !getBit(d.visited, word, mask) {
		return mazestate.Unvisited
	}
	return mazestate.NewDeltaCode(
		getBit(d.moved0, word, mask),
		getBit(d.moved1, word, mask),
		mazestate.Instruction{
			Axis: boolToAxis(getBit(d.axis, word, mask)),
			Dir:  boolToDir(getBit(d.dir, word, mask)),
		},
	)
}

// Set implements Table.
func (d *DenseBitset) Set(idx int, code mazestate.DeltaCode, forced bool) bool {
	word, mask := wordAndMask(idx)
	if !forced && getBit(d.visited, word, mask) {
		return false
	}
	if !getBit(d.visited, word, mask) {
		d.written++
	}
	setBit(d.visited, word, mask, true)
	setBit(d.moved0, word, mask, code.Moved0())
	setBit(d.moved1, word, mask, code.Moved1())
	instr := code.Instruction()
	setBit(d.axis, word, mask, instr.Axis == mazestate.AxisX)
	setBit(d.dir, word, mask, instr.Dir == mazestate.DirPos)
	return true
}

// Written implements Table.
func (d *DenseBitset) Written() int { return d.written }

func boolToAxis(b bool) int {
	if b {
		return mazestate.AxisX
	}
	return mazestate.AxisY
}

func boolToDir(b bool) int {
	if b {
		return mazestate.DirPos
	}
	return mazestate.DirNeg
}
