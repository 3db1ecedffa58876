// Package mazemap implements §4.1 of the coupled-maze specification: Map,
// the immutable per-walker grid.
//
// Construction:
//
//	data := mazemap.InputData{Width: w, Height: h, ...}
//	m, err := mazemap.NewMap(data)
//
// Index helpers (vwIdx, hwIdx, tileIdx) and the public VerticalWall /
// HorizontalWall / IsHole accessors are the only way other packages touch a
// Map; its fields are unexported so the immutability invariant holds for the
// lifetime of a search.
package mazemap
