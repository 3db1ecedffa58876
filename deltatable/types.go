// Package deltatable provides the four interchangeable backends for storing
// one mazestate.DeltaCode per reachable JointState (§4.2 of the
// specification).
//
// All four backends share the same read/write contract (Get, Set, Written)
// but differ in their concurrency guarantees:
//
//   - DenseBitset and LazySparseMap are single-owner: only one goroutine may
//     call Set at a time (the sequential BFS/A* drivers in packages bfs and
//     astar own one of these each).
//   - AtomicBitsetXor and AtomicByteCAS are safe for concurrent Set/Get from
//     multiple goroutines with "first-writer-wins" semantics: exactly one
//     concurrent Set on a given index transitions it from unvisited to
//     visited and returns true (the multi-threaded BFS driver shares one of
//     these across its worker pool).
//
// Memory ordering: all four backends may use relaxed atomics internally
// where applicable, because the caller (package bfs) provides the
// synchronizing barrier between search steps (see that package's doc.go).
package deltatable

import (
	"errors"

	"github.com/katalvlaran/coupledmaze/mazestate"
)

// Sentinel errors for deltatable operations.
var (
	// ErrNonPositiveLength indicates a backend was constructed with len <= 0.
	ErrNonPositiveLength = errors.New("deltatable: length must be positive")
	// ErrIndexOutOfRange indicates Get or Set was called with idx outside [0,len).
	ErrIndexOutOfRange = errors.New("deltatable: index out of range")
)

// Table is the common contract every backend implements: get the code
// stored at idx (Unvisited if nothing has been written there yet), and
// conditionally or unconditionally write a code to idx.
type Table interface {
	// Get returns the DeltaCode stored at idx, or mazestate.Unvisited if idx
	// has never been written.
	Get(idx int) mazestate.DeltaCode

	// Set writes code to idx. If forced is false, the write only takes
	// effect when idx is currently unvisited; Set reports whether this call
	// performed the write (true) or found the slot already written (false).
	// If forced is true, the write is unconditional and Set always returns
	// true.
	Set(idx int, code mazestate.DeltaCode, forced bool) bool

	// Written reports how many distinct indices have been written so far.
	// Provided for diagnostics; not required by any search correctness
	// property.
	Written() int
}

// Promotable is implemented by backends that can convert themselves into a
// denser representation once their sparse footprint stops paying for
// itself (currently only LazySparseMap).
type Promotable interface {
	// IsConversionWorthwhile reports whether, for a table addressing len
	// total states, this backend's current footprint has grown large enough
	// that converting to DenseBitset would use less memory.
	IsConversionWorthwhile(len int) bool

	// IntoDense consumes the sparse backend and replays every stored
	// (index, code) pair, forced, into a fresh DenseBitset of the given
	// length. The sparse backend must not be used afterward.
	IntoDense(len int) *DenseBitset
}
