package deltatable

import "github.com/katalvlaran/coupledmaze/mazestate"

// sparseWordBytes mirrors the Rust ground truth's size_of::<usize>() on a
// 64-bit platform, used only by IsConversionWorthwhile's heuristic.
const sparseWordBytes = 8

// LazySparseMap stores only the indices actually written, in a plain Go map.
// It is the right choice for large grids where the reachable joint-state
// fraction stays small: memory is O(visited) instead of O(W*H)^2.
//
// It tracks its own growth and, once entries*(sparseWordBytes/2) >= len
// (i.e. the map's estimated overhead has caught up to what a dense bitset
// would cost for the whole address space), reports via
// IsConversionWorthwhile that the caller should promote to a DenseBitset
// with IntoDense.
type LazySparseMap struct {
	entries map[int]mazestate.DeltaCode
}

// NewLazySparseMap constructs an empty LazySparseMap.
func NewLazySparseMap() *LazySparseMap {
	return &LazySparseMap{entries: make(map[int]mazestate.DeltaCode)}
}

// Get implements Table.
func (s *LazySparseMap) Get(idx int) mazestate.DeltaCode {
	if code, ok := s.entries[idx]; ok {
		return code
	}
	return mazestate.Unvisited
}

// Set implements Table.
func (s *LazySparseMap) Set(idx int, code mazestate.DeltaCode, forced bool) bool {
	if !forced {
		if _, ok := s.entries[idx]; ok {
			return false
		}
	}
	s.entries[idx] = code
	return true
}

// Written implements Table.
func (s *LazySparseMap) Written() int { return len(s.entries) }

// IsConversionWorthwhile implements Promotable.
func (s *LazySparseMap) IsConversionWorthwhile(length int) bool {
	return len(s.entries)*(sparseWordBytes/2) >= length
}

// IntoDense implements Promotable. The receiver must not be used afterward.
func (s *LazySparseMap) IntoDense(length int) *DenseBitset {
	dense, err := NewDenseBitset(length)
	if err != nil {
		// length was already validated by the caller that sized this table;
		// a failure here means the caller broke that contract.
		panic(err)
	}
	for idx, code := range s.entries {
		dense.Set(idx, code, true)
	}
	return dense
}
