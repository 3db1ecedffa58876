package coupledmaze

import (
	"fmt"

	"github.com/katalvlaran/coupledmaze/astar"
)

// Backend selects which deltatable.Table implementation Solve constructs
// (§6's `backend` configuration knob).
type Backend int

const (
	// BackendDenseBitset selects deltatable.DenseBitset: predictable O(|S|)
	// memory, single-owner, the default.
	BackendDenseBitset Backend = iota
	// BackendLazySparseMap selects deltatable.LazySparseMap: O(visited)
	// memory, single-owner, optionally promotable via
	// Config.MemoryOptimization.
	BackendLazySparseMap
	// BackendAtomicBitsetXor selects deltatable.AtomicBitsetXor: packed,
	// concurrency-safe, required by StrategyBFSMulti.
	BackendAtomicBitsetXor
	// BackendAtomicByteCAS selects deltatable.AtomicByteCAS: one byte per
	// state, concurrency-safe, simpler but 8x the memory of
	// BackendAtomicBitsetXor.
	BackendAtomicByteCAS
)

func (b Backend) String() string {
	switch b {
	case BackendDenseBitset:
		return "DenseBitset"
	case BackendLazySparseMap:
		return "LazySparseMap"
	case BackendAtomicBitsetXor:
		return "AtomicBitsetXor"
	case BackendAtomicByteCAS:
		return "AtomicByteCAS"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Strategy selects which search driver Solve runs (§6's `strategy`
// configuration knob).
type Strategy int

const (
	// StrategyBFSSingle runs package bfs's single-threaded frontier driver.
	StrategyBFSSingle Strategy = iota
	// StrategyBFSMulti runs package bfs's frontier-parallel worker-pool
	// driver across Config.Workers goroutines. Requires an atomic Backend
	// (BackendAtomicBitsetXor or BackendAtomicByteCAS).
	StrategyBFSMulti
	// StrategyAStar runs package astar's bucket-queue driver using
	// Config.Heuristic.
	StrategyAStar
)

func (s Strategy) String() string {
	switch s {
	case StrategyBFSSingle:
		return "BFSSingle"
	case StrategyBFSMulti:
		return "BFSMulti"
	case StrategyAStar:
		return "AStar"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ConfigOption configures a Config via functional arguments, mirroring the
// bfs.Option / astar.Option pattern.
type ConfigOption func(*Config)

// Config holds every knob §6 of the specification names.
type Config struct {
	// RespectHoles activates hole teleportation in the kernel and the
	// reconstructor.
	RespectHoles bool

	// Backend selects the DeltaTable implementation.
	Backend Backend

	// Strategy selects the search driver.
	Strategy Strategy

	// Workers is the goroutine count used when Strategy is
	// StrategyBFSMulti; ignored otherwise.
	Workers int

	// Heuristic is used when Strategy is StrategyAStar; ignored otherwise.
	Heuristic astar.Heuristic

	// MemoryOptimization, when true and Backend is BackendLazySparseMap,
	// makes Solve periodically test IsConversionWorthwhile and promote to
	// a DenseBitset mid-search once the sparse table's footprint stops
	// paying for itself.
	MemoryOptimization bool

	err error
}

// DefaultConfig returns Config with holes disabled, a dense single-owner
// backend, and the single-threaded BFS driver — the cheapest correct
// configuration for any input size.
func DefaultConfig() Config {
	return Config{
		Backend:   BackendDenseBitset,
		Strategy:  StrategyBFSSingle,
		Workers:   1,
		Heuristic: astar.Manhattan,
	}
}

// WithRespectHoles activates or deactivates hole teleportation.
func WithRespectHoles(respectHoles bool) ConfigOption {
	return func(c *Config) { c.RespectHoles = respectHoles }
}

// WithBackend selects the DeltaTable implementation.
func WithBackend(b Backend) ConfigOption {
	return func(c *Config) {
		switch b {
		case BackendDenseBitset, BackendLazySparseMap, BackendAtomicBitsetXor, BackendAtomicByteCAS:
			c.Backend = b
		default:
			c.err = fmt.Errorf("%w: %v", ErrInvalidBackend, b)
		}
	}
}

// WithStrategy selects the search driver.
func WithStrategy(s Strategy) ConfigOption {
	return func(c *Config) {
		switch s {
		case StrategyBFSSingle, StrategyBFSMulti, StrategyAStar:
			c.Strategy = s
		default:
			c.err = fmt.Errorf("%w: %v", ErrInvalidStrategy, s)
		}
	}
}

// WithWorkers sets the goroutine count for StrategyBFSMulti.
func WithWorkers(n int) ConfigOption {
	return func(c *Config) {
		if n <= 0 {
			c.err = fmt.Errorf("%w: got %d", ErrNonPositiveWorkers, n)
			return
		}
		c.Workers = n
	}
}

// WithHeuristic selects the heuristic for StrategyAStar.
func WithHeuristic(h astar.Heuristic) ConfigOption {
	return func(c *Config) {
		switch h {
		case astar.Manhattan, astar.DisparityManhattan, astar.PairwiseBFS:
			c.Heuristic = h
		default:
			c.err = fmt.Errorf("%w: %v", astar.ErrUnknownHeuristic, h)
		}
	}
}

// WithMemoryOptimization activates mid-search dense promotion for
// BackendLazySparseMap.
func WithMemoryOptimization(enabled bool) ConfigOption {
	return func(c *Config) { c.MemoryOptimization = enabled }
}

// NewConfig applies opts over DefaultConfig, returning the first
// configuration error encountered, if any.
func NewConfig(opts ...ConfigOption) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Config{}, cfg.err
	}
	return cfg, nil
}
