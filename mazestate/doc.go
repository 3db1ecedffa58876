// Package mazestate is the address-space layer for coupledmaze: it has no
// behavior of its own, only the types and arithmetic every other package
// builds on.
//
//	Dims{Width,Height}.Index(JointState) int   // DeltaTable address
//	DeltaCode                                   // 4-bit predecessor encoding
//	Instruction, AllInstructions                // the four possible moves
//
// See mazemap for the per-walker grid (walls, holes) and deltatable for the
// backends that store one DeltaCode per JointState.
package mazestate
