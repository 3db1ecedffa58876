package reconstruct

import (
	"errors"

	"github.com/katalvlaran/coupledmaze/mazestate"
)

// Sentinel errors for Reconstruct.
var (
	// ErrBrokenChain indicates a Get during backward traversal returned
	// mazestate.Unvisited at a state other than the start — an
	// InvariantViolation(Reconstruction) per spec.md §7. This signals a bug
	// in the search driver that populated the table, not a user error.
	ErrBrokenChain = errors.New("reconstruct: broken predecessor chain")
)

// Result is the outcome of a successful Reconstruct call.
type Result struct {
	// Instructions is the ordered instruction sequence driving both
	// walkers from (0,0) to (W-1,H-1) simultaneously.
	Instructions []mazestate.Instruction

	// Moves is the total number of individual walker steps across
	// Instructions: 0 <= Moves <= 2*len(Instructions).
	Moves int

	// Validated reports, per walker, whether simulating Instructions from
	// (0,0) on that walker's map independently lands on (W-1,H-1). The
	// caller decides what to do with a false entry (printing is a
	// rendering/logging concern out of this package's scope); Reconstruct
	// itself never errors because of a validation mismatch.
	Validated [2]bool
}
