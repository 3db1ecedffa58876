package deltatable

import (
	"sync/atomic"

	"github.com/katalvlaran/coupledmaze/mazestate"
)

// AtomicByteCAS stores one DeltaCode per index as a single atomic cell,
// compare-and-swapped from mazestate.Unvisited (0). Every code the kernel
// ever produces sets at least one of its bits (a successor where neither
// walker moved is never a valid expansion), so 0 unambiguously means
// "unvisited" and a single CompareAndSwap(0, code) is both the visited
// check and the write.
//
// Go has no atomic.Uint8; atomic.Uint32 is the narrowest stand-in, so each
// cell costs four bytes instead of one. Against AtomicBitsetXor this
// backend trades that memory for a simpler, single-instruction fast path
// with no retry loop on the common (uncontended) case.
type AtomicByteCAS struct {
	cells   []atomic.Uint32
	written atomic.Int64
}

// NewAtomicByteCAS allocates an AtomicByteCAS covering indices [0,len).
func NewAtomicByteCAS(length int) (*AtomicByteCAS, error) {
	if length <= 0 {
		return nil, ErrNonPositiveLength
	}
	return &AtomicByteCAS{cells: make([]atomic.Uint32, length)}, nil
}

// Get implements Table.
func (a *AtomicByteCAS) Get(idx int) mazestate.DeltaCode {
	return mazestate.DeltaCode(a.cells[idx].Load())
}

// Set implements Table.
func (a *AtomicByteCAS) Set(idx int, code mazestate.DeltaCode, forced bool) bool {
	if forced {
		if a.cells[idx].Load() == uint32(mazestate.Unvisited) {
			a.written.Add(1)
		}
		a.cells[idx].Store(uint32(code))
		return true
	}
	if a.cells[idx].CompareAndSwap(uint32(mazestate.Unvisited), uint32(code)) {
		a.written.Add(1)
		return true
	}
	return false
}

// Written implements Table.
func (a *AtomicByteCAS) Written() int { return int(a.written.Load()) }
