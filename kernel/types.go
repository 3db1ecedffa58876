// Package kernel implements §4.3 of the coupled-maze specification: the
// pure instruction kernel that expands one JointState into at most four
// successors, one per instruction in the fixed order (x,-) (y,-) (x,+)
// (y,+).
//
// Expand is deterministic in (state, maps, respectHoles): given the same
// inputs it always produces the same successors in the same order,
// regardless of which DeltaTable backend or search driver calls it. This
// determinism is what lets the reconstructor replay moves backward.
package kernel

import "github.com/katalvlaran/coupledmaze/mazestate"

// Successor is one expansion result: the adjusted joint state the kernel
// wrote to the DeltaTable, and the DeltaCode describing the move that
// produced it.
type Successor struct {
	State mazestate.JointState
	Code  mazestate.DeltaCode
}
