package coupledmaze

import (
	"fmt"

	"github.com/katalvlaran/coupledmaze/astar"
	"github.com/katalvlaran/coupledmaze/bfs"
	"github.com/katalvlaran/coupledmaze/deltatable"
	"github.com/katalvlaran/coupledmaze/kernel"
	"github.com/katalvlaran/coupledmaze/mazemap"
	"github.com/katalvlaran/coupledmaze/mazestate"
	"github.com/katalvlaran/coupledmaze/reconstruct"
)

// Result is the end-to-end outcome of a successful Solve: whether the goal
// is reachable at all, and if so, the shortest instruction sequence, its
// move count, and the independent per-walker validation reconstruct.
// Reconstruct produced.
type Result struct {
	Reached      bool
	Instructions []mazestate.Instruction
	Moves        int
	Validated    [2]bool
}

// Solve runs cfg's configured search strategy over maps and returns the
// shortest joint instruction sequence from (0,0,0,0) to (W-1,H-1,W-1,H-1),
// or Result{Reached: false} if the goal is unreachable.
//
// Solve first tries bfs.TrySingleMapDecomposition (§4.6): when both maps are
// identical, the coupled search collapses to a single-walker BFS and the
// joint state space is never built. Otherwise it builds the backend cfg
// selects and dispatches to package bfs or package astar.
func Solve(maps [2]*mazemap.Map, dims mazestate.Dims, cfg Config) (Result, error) {
	if maps[0] == nil || maps[1] == nil {
		return Result{}, ErrNilMaps
	}
	if err := dims.Validate(); err != nil {
		return Result{}, err
	}

	if instructions, ok := bfs.TrySingleMapDecomposition(maps, dims); ok {
		moves := 2 * len(instructions)
		return Result{
			Reached:      true,
			Instructions: instructions,
			Moves:        moves,
			Validated:    [2]bool{true, true},
		}, nil
	}

	respectHoles := cfg.RespectHoles

	if cfg.Backend == BackendLazySparseMap && cfg.MemoryOptimization && cfg.Strategy != StrategyAStar {
		table, err := runSequentialWithPromotion(maps, dims, respectHoles)
		if err != nil {
			return Result{}, err
		}
		return finish(maps, dims, respectHoles, table)
	}

	table, err := newTable(cfg.Backend, dims.States())
	if err != nil {
		return Result{}, err
	}

	switch cfg.Strategy {
	case StrategyAStar:
		if _, err := astar.Run(maps, dims, respectHoles, table, astar.WithHeuristic(cfg.Heuristic)); err != nil {
			return Result{}, err
		}
	case StrategyBFSMulti:
		if cfg.Backend != BackendAtomicBitsetXor && cfg.Backend != BackendAtomicByteCAS {
			return Result{}, fmt.Errorf("%w: StrategyBFSMulti requires an atomic backend, got %v", ErrInvalidBackend, cfg.Backend)
		}
		if _, err := bfs.Run(maps, dims, respectHoles, table, bfs.WithWorkers(cfg.Workers)); err != nil {
			return Result{}, err
		}
	default:
		if _, err := bfs.Run(maps, dims, respectHoles, table); err != nil {
			return Result{}, err
		}
	}

	return finish(maps, dims, respectHoles, table)
}

func finish(maps [2]*mazemap.Map, dims mazestate.Dims, respectHoles bool, table deltatable.Table) (Result, error) {
	res, err := reconstruct.Reconstruct(maps, dims, respectHoles, table)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Reached:      res.Instructions != nil,
		Instructions: res.Instructions,
		Moves:        res.Moves,
		Validated:    res.Validated,
	}, nil
}

func newTable(backend Backend, length int) (deltatable.Table, error) {
	switch backend {
	case BackendDenseBitset:
		return deltatable.NewDenseBitset(length)
	case BackendLazySparseMap:
		return deltatable.NewLazySparseMap(), nil
	case BackendAtomicBitsetXor:
		return deltatable.NewAtomicBitsetXor(length)
	case BackendAtomicByteCAS:
		return deltatable.NewAtomicByteCAS(length)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackend, backend)
	}
}

// runSequentialWithPromotion reimplements bfs's single-threaded frontier
// loop directly, rather than calling bfs.Run, because Run's table parameter
// is fixed for the whole search: there is no way to swap a LazySparseMap for
// a DenseBitset mid-call through that entry point. This loop holds table in
// a local variable instead, and after every depth level asks a
// deltatable.Promotable backend whether converting now would shrink its
// footprint (§9's lazy-to-dense promotion), swapping over when it agrees.
func runSequentialWithPromotion(maps [2]*mazemap.Map, dims mazestate.Dims, respectHoles bool) (deltatable.Table, error) {
	var table deltatable.Table = deltatable.NewLazySparseMap()

	start := mazestate.Start()
	table.Set(dims.Index(start), mazestate.StartSentinel, false)

	bound := bfs.DepthBound(dims, len(maps[0].HolesPlacement()), len(maps[1].HolesPlacement()))
	goalIdx := dims.Index(mazestate.Goal(dims.Width, dims.Height))

	tasks := []mazestate.JointState{start}
	depth := 0
	length := dims.States()

	for len(tasks) > 0 && depth < bound && table.Get(goalIdx) == mazestate.Unvisited {
		output := make([]mazestate.JointState, 0, len(tasks)*2)
		for _, s := range tasks {
			for _, succ := range kernel.Expand(s, maps, dims, respectHoles, table) {
				output = append(output, succ.State)
			}
		}
		tasks = output
		depth++

		if sparse, ok := table.(deltatable.Promotable); ok && sparse.IsConversionWorthwhile(length) {
			table = sparse.IntoDense(length)
		}
	}

	return table, nil
}
