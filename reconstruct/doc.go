// Package reconstruct implements §4.6 of the coupled-maze specification:
// backward traversal of a populated deltatable.Table from the goal state
// to the start, decoding each DeltaCode into the instruction that produced
// it and resolving the ambiguity hole teleportation introduces.
//
// Reconstruct is the only consumer of deltatable.Table that runs after a
// search driver (package bfs or package astar) has quiesced; it treats the
// table as read-only.
package reconstruct
