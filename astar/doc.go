// Package astar implements §4.5 of the coupled-maze specification: the A*
// driver over the joint 4D state space, backed by a bucket-array priority
// queue indexed directly by priority (rather than a binary heap) and three
// interchangeable admissible-distance heuristics.
//
// Like package bfs, Run shares the instruction kernel in package kernel and
// writes the same deltatable.Table contract; the two drivers are
// interchangeable front ends onto the same DeltaTable backends, and P6
// (backend equivalence) and P2 (optimality) are expected to hold across
// both.
//
// Complexity: each pop costs O(W*H/64) amortized in the worst case (the
// bitmap scan), dominated in practice by the O(1) amortized cost once the
// frontier is dense. Memory is O(|S|) for the bucket array plus whatever
// the chosen deltatable.Table backend uses.
package astar
