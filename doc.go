// Package coupledmaze solves the coupled-maze problem: two walkers, each on
// their own W×H grid of walls (and optionally teleport holes), must be
// driven from (0,0) to (W-1,H-1) by the shortest possible sequence of
// instructions applied identically and simultaneously to both. An
// instruction is one of four moves — (x,-) (y,-) (x,+) (y,+) — and on each
// step a walker advances only if its own map has no wall in that direction;
// a wall-blocked walker simply stays put while the other may move on. The
// two grids can disagree on walls entirely, so the two walkers can and
// often must take a different number of real steps to arrive together.
//
// Overview:
//
//   - Solve explores the joint 4D state space (x0,y0,x1,y1) of both walkers'
//     positions at once, since an instruction advances both walkers together
//     and neither can be solved independently in general.
//   - Two interchangeable search drivers are available: a breadth-first
//     search (package bfs), sequential or frontier-parallel across a
//     goroutine pool, and an A* search (package astar) over one of three
//     admissible heuristics.
//   - Four interchangeable storage backends (package deltatable) trade off
//     memory footprint against concurrency: two single-owner (dense bitset,
//     lazy sparse map) and two lock-free (atomic bitset, atomic byte CAS).
//   - Solve recognizes the special case where both maps are identical
//     (package bfs's TrySingleMapDecomposition) and solves it as an ordinary
//     single-walker search, skipping the joint state space entirely.
//
// When to use:
//
//   - Any "two synchronized agents, shared controls" puzzle: twin-maze
//     games, dual-robot choreography under one control signal, or as a
//     teaching example of joint-state-space search and its memory/compute
//     tradeoffs.
//
// Key features:
//
//   - Functional options (Config, via NewConfig) select the backend,
//     strategy, worker count, heuristic, and hole semantics without
//     changing the Solve signature.
//   - RespectHoles: when a walker's map marks a tile as a hole, stepping
//     onto it teleports that walker back to (0,0) rather than letting it
//     rest there.
//   - MemoryOptimization: when paired with BackendLazySparseMap, promotes
//     the search's storage to a dense bitset mid-search once the sparse
//     map's footprint stops paying for itself.
//
// Error handling (sentinel errors):
//
//   - ErrNilMaps: returned if either element of the maps argument to Solve
//     is nil.
//   - ErrDimsMismatch: reserved for callers that validate both maps' Width/
//     Height agree before calling Solve; Solve itself only validates dims.
//   - ErrInvalidBackend: returned by NewConfig for an unrecognized Backend,
//     or by Solve if StrategyBFSMulti is paired with a non-atomic backend.
//   - ErrInvalidStrategy: returned by NewConfig for an unrecognized Strategy.
//   - ErrNonPositiveWorkers: returned by NewConfig if WithWorkers receives a
//     value <= 0.
//
// API reference:
//
//	func Solve(
//	    maps [2]*mazemap.Map,
//	    dims mazestate.Dims,
//	    cfg Config,
//	) (Result, error)
//
//	  - maps:   both walkers' grids, same Width/Height, independent walls
//	            and holes.
//	  - dims:   the shared grid dimensions.
//	  - cfg:    built via NewConfig(opts...); see Config's functional options.
//	  - Result: Reached (bool), Instructions ([]mazestate.Instruction),
//	            Moves (int, total individual walker steps), Validated
//	            ([2]bool, independent per-walker simulation check).
//
// Performance and complexity:
//
//   - The joint state space has (W*H)^2 states; BFS and A* both visit each
//     reachable state at most once (amortized O(1) per DeltaTable access).
//   - The instruction count of any solution is bounded by
//     2*W*H - 2 - |holes0| - |holes1| (bfs.DepthBound); both drivers use
//     this as an early-termination safety cap.
//   - A* with the PairwiseBFS heuristic additionally runs an O(W*H)
//     single-walker BFS per map upfront, both to seed the heuristic and to
//     prove infeasibility before ever touching the joint space.
//
// Thread safety:
//
//   - Solve itself allocates a fresh DeltaTable per call and is safe to call
//     concurrently with other Solve calls, but a single Result is not safe
//     for concurrent mutation by the caller.
//   - StrategyBFSMulti shares one DeltaTable across Config.Workers
//     goroutines; pass BackendAtomicBitsetXor or BackendAtomicByteCAS when
//     selecting it, or Solve returns ErrInvalidBackend.
//
// See also:
//
//   - mazemap.Map: per-walker grid construction, wall and hole accessors.
//   - bfs.Run / astar.Run: the two search drivers Solve dispatches to.
//   - reconstruct.Reconstruct: backward DeltaTable traversal into an
//     instruction sequence, called internally by Solve.
package coupledmaze
