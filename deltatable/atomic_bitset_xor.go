package deltatable

import (
	"sync/atomic"

	"github.com/katalvlaran/coupledmaze/mazestate"
)

const wordBits = 64

// AtomicBitsetXor is the concurrent counterpart of DenseBitset: the same
// five bit-planes (visited, moved0, moved1, axis, dir), each packed 64 bits
// per atomic.Uint64 word instead of one bool per byte.
//
// Go's sync/atomic has no fetch-or or fetch-xor primitive, so both are
// built from a compare-and-swap retry loop. The visited plane is the
// linearization point: setFlag on it reports true for exactly one
// concurrent caller per index (first-writer-wins), and only that caller
// goes on to XOR its three bits into moved0/moved1/axis/dir. Because every
// other caller's setFlag on that index already failed, those three planes
// never see a second writer for the same index, so the XOR never needs to
// race against another XOR — it behaves exactly like a one-time OR.
type AtomicBitsetXor struct {
	visited []atomic.Uint64
	moved0  []atomic.Uint64
	moved1  []atomic.Uint64
	axis    []atomic.Uint64
	dir     []atomic.Uint64
	written atomic.Int64
}

// NewAtomicBitsetXor allocates an AtomicBitsetXor covering indices [0,len).
func NewAtomicBitsetXor(length int) (*AtomicBitsetXor, error) {
	if length <= 0 {
		return nil, ErrNonPositiveLength
	}
	words := (length + wordBits - 1) / wordBits
	return &AtomicBitsetXor{
		visited: make([]atomic.Uint64, words),
		moved0:  make([]atomic.Uint64, words),
		moved1:  make([]atomic.Uint64, words),
		axis:    make([]atomic.Uint64, words),
		dir:     make([]atomic.Uint64, words),
	}, nil
}

func wordAndMask(idx int) (int, uint64) {
	return idx / wordBits, uint64(1) << uint(idx%wordBits)
}

// setFlag atomically sets bit (word,mask) and reports whether this call
// performed the 0->1 transition.
func setFlag(plane []atomic.Uint64, word int, mask uint64) bool {
	for {
		old := plane[word].Load()
		if old&mask != 0 {
			return false
		}
		if plane[word].CompareAndSwap(old, old|mask) {
			return true
		}
	}
}

// xorFlag atomically XORs mask into (word). Used only by the single writer
// that just won setFlag on the visited plane for this index, so it never
// contends with another xorFlag on the same bit.
func xorFlag(plane []atomic.Uint64, word int, mask uint64) {
	for {
		old := plane[word].Load()
		if plane[word].CompareAndSwap(old, old^mask) {
			return
		}
	}
}

func readFlag(plane []atomic.Uint64, word int, mask uint64) bool {
	return plane[word].Load()&mask != 0
}

// Get implements Table.
func (a *AtomicBitsetXor) Get(idx int) mazestate.DeltaCode {
	word, mask := wordAndMask(idx)
	if !readFlag(a.visited, word, mask) {
		return mazestate.Unvisited
	}
	return mazestate.NewDeltaCode(
		readFlag(a.moved0, word, mask),
		readFlag(a.moved1, word, mask),
		mazestate.Instruction{
			Axis: boolToAxis(readFlag(a.axis, word, mask)),
			Dir:  boolToDir(readFlag(a.dir, word, mask)),
		},
	)
}

// Set implements Table. forced is intended for single-threaded callers
// (e.g. replaying a sparse table into this backend); concurrent callers
// should always pass forced=false to get first-writer-wins semantics.
func (a *AtomicBitsetXor) Set(idx int, code mazestate.DeltaCode, forced bool) bool {
	word, mask := wordAndMask(idx)
	if forced {
		if !readFlag(a.visited, word, mask) {
			setFlag(a.visited, word, mask)
			a.written.Add(1)
		}
		a.writeCodeBits(word, mask, code)
		return true
	}
	if !setFlag(a.visited, word, mask) {
		return false
	}
	a.written.Add(1)
	a.writeCodeBits(word, mask, code)
	return true
}

func (a *AtomicBitsetXor) writeCodeBits(word int, mask uint64, code mazestate.DeltaCode) {
	if code.Moved0() {
		xorFlag(a.moved0, word, mask)
	}
	if code.Moved1() {
		xorFlag(a.moved1, word, mask)
	}
	instr := code.Instruction()
	if instr.Axis == mazestate.AxisX {
		xorFlag(a.axis, word, mask)
	}
	if instr.Dir == mazestate.DirPos {
		xorFlag(a.dir, word, mask)
	}
}

// Written implements Table.
func (a *AtomicBitsetXor) Written() int { return int(a.written.Load()) }
