package coupledmaze

import "errors"

// Sentinel errors for coupledmaze.NewConfig and coupledmaze.Solve.
var (
	// ErrNilMaps indicates one or both walker maps passed to Solve are nil.
	ErrNilMaps = errors.New("coupledmaze: both walker maps must be non-nil")
	// ErrDimsMismatch indicates the two walker maps disagree on width/height.
	ErrDimsMismatch = errors.New("coupledmaze: both walker maps must share the same dimensions")
	// ErrInvalidBackend indicates Config.Backend is not one of the four
	// defined Backend constants.
	ErrInvalidBackend = errors.New("coupledmaze: invalid backend")
	// ErrInvalidStrategy indicates Config.Strategy is not one of the three
	// defined Strategy constants.
	ErrInvalidStrategy = errors.New("coupledmaze: invalid strategy")
	// ErrNonPositiveWorkers indicates Config.Workers was set to zero or
	// less while Strategy is StrategyBFSMulti.
	ErrNonPositiveWorkers = errors.New("coupledmaze: worker count must be positive")
)
