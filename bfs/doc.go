// Package bfs runs breadth-first search over the joint 4D coupled-maze
// state space and returns whether the two walkers can reach the goal
// simultaneously, and at what depth.
//
// What
//
//   - Run explores JointStates in non-decreasing instruction count from
//     (0,0,0,0), via the kernel package's fixed four-instruction expansion.
//   - Options.Workers selects the driver: 1 for the sequential frontier-swap
//     loop, >1 for the frontier-parallel worker pool with explicit
//     inter-worker load rebalancing.
//   - DepthBound enforces the termination guarantee of §4.7 independent of
//     which driver runs.
//   - PairwiseDistances and TrySingleMapDecomposition are supplemental,
//     single-walker 2D precomputations: the former feeds astar's PairwiseBFS
//     heuristic and an upfront infeasibility check, the latter skips the
//     joint search entirely when both walkers' maps are identical.
//
// Concurrency
//
//	The multi-threaded driver synchronizes its worker pool with one
//	sync.Cond per worker plus a shared shutdown flag, in two phases per
//	BFS depth level: the controller signals "go", each worker drains its
//	own frontier slice into its own output slice through the kernel, then
//	signals "done" back to the controller, which rebalances load before
//	starting the next level.
package bfs
