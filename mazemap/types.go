// Package mazemap defines the per-walker grid: wall bitmaps and the hole
// set a walker teleports from when respect-holes mode is active.
//
// A Map is built once from an InputData value and is read-only afterward;
// it is safe to share across goroutines (the multi-threaded BFS driver in
// package bfs reads the same *Map pair from every worker).
package mazemap

import (
	"errors"

	"github.com/katalvlaran/coupledmaze/mazestate"
)

// Sentinel errors for mazemap construction.
var (
	// ErrNonPositiveDims indicates width or height is not a positive integer.
	ErrNonPositiveDims = errors.New("mazemap: width and height must be positive")
	// ErrWallCountMismatch indicates the supplied wall slice has the wrong length.
	ErrWallCountMismatch = errors.New("mazemap: wall slice length does not match grid dimensions")
	// ErrHoleOutOfBounds indicates a hole coordinate lies outside the grid.
	ErrHoleOutOfBounds = errors.New("mazemap: hole coordinate out of bounds")
	// ErrHoleAtEndpoint indicates a hole was placed at the start or goal tile.
	ErrHoleAtEndpoint = errors.New("mazemap: hole cannot be placed at (0,0) or (W-1,H-1)")
)

// InputData is the parsed, external-collaborator-supplied description of one
// walker's grid (§6 of the specification this package implements). Parsing
// the raw whitespace-separated integer stream into this shape is an external
// concern; mazemap only consumes the already-tokenized result.
//
// InnerVerticalWalls has length Height*(Width-1): for row y and the vertical
// segment between column x and x+1 (0 <= x < Width-1), the wall bit lives at
// index y*(Width-1)+x. InnerHorizontalWalls has length (Height-1)*Width: for
// column x and the horizontal segment between row y and y+1 (0 <= y <
// Height-1), the bit lives at index y*Width+x. Perimeter walls are implicit
// and must not be included here; NewMap adds them.
type InputData struct {
	Width, Height      mazestate.Coordinate
	InnerVerticalWalls []bool
	InnerHorizontalWalls []bool
	Holes              [][2]mazestate.Coordinate
}

// Map is an immutable, read-only-after-construction grid: wall bitmaps
// (vertical and horizontal segments, including perimeter) and the hole set.
type Map struct {
	width, height mazestate.Coordinate

	// verticalWalls has length (width+1)*height. Bit vwIdx(x,y) set means the
	// vertical segment at column x, row y is a wall. Columns x=0 and x=width
	// are always set (perimeter).
	verticalWalls []bool

	// horizontalWalls has length width*(height+1). Bit hwIdx(x,y) set means
	// the horizontal segment at column x, row y is a wall. Rows y=0 and
	// y=height are always set (perimeter).
	horizontalWalls []bool

	// holes has length width*height; bit tileIdx(x,y) set means (x,y) is a hole.
	holes []bool

	// holesPlacement lists hole coordinates in insertion order, consulted by
	// the reconstructor to disambiguate which hole a teleport came from.
	holesPlacement [][2]mazestate.Coordinate
}

// Width returns the grid's width.
func (m *Map) Width() mazestate.Coordinate { return m.width }

// Height returns the grid's height.
func (m *Map) Height() mazestate.Coordinate { return m.height }

// HolesPlacement returns the ordered list of hole coordinates. The returned
// slice is shared and must not be mutated.
func (m *Map) HolesPlacement() [][2]mazestate.Coordinate { return m.holesPlacement }

// Dims returns the map's dimensions as a mazestate.Dims value.
func (m *Map) Dims() mazestate.Dims {
	return mazestate.Dims{Width: m.width, Height: m.height}
}

// vwIdx maps a vertical wall segment (x,y) to its bit index: y*(W+1)+x.
func (m *Map) vwIdx(x, y mazestate.Coordinate) int {
	return int(y)*(int(m.width)+1) + int(x)
}

// hwIdx maps a horizontal wall segment (x,y) to its bit index: x*(H+1)+y.
func (m *Map) hwIdx(x, y mazestate.Coordinate) int {
	return int(x)*(int(m.height)+1) + int(y)
}

// tileIdx maps a tile (x,y) to its bit index: y*W+x.
func (m *Map) tileIdx(x, y mazestate.Coordinate) int {
	return int(y)*int(m.width) + int(x)
}

// VerticalWall reports whether the vertical segment at (x,y) is a wall.
// x ranges over [0,width]; y over [0,height).
func (m *Map) VerticalWall(x, y mazestate.Coordinate) bool {
	return m.verticalWalls[m.vwIdx(x, y)]
}

// HorizontalWall reports whether the horizontal segment at (x,y) is a wall.
// x ranges over [0,width); y over [0,height].
func (m *Map) HorizontalWall(x, y mazestate.Coordinate) bool {
	return m.horizontalWalls[m.hwIdx(x, y)]
}

// IsHole reports whether tile (x,y) is a hole.
func (m *Map) IsHole(x, y mazestate.Coordinate) bool {
	return m.holes[m.tileIdx(x, y)]
}

// Equal reports whether m and other describe the same walls and holes over
// the same dimensions. Two walkers on Equal maps produce identical
// trajectories under any instruction sequence, which package bfs uses to
// shortcut the joint 4D search to a plain single-walker search.
func (m *Map) Equal(other *Map) bool {
	if m.width != other.width || m.height != other.height {
		return false
	}
	return boolSlicesEqual(m.verticalWalls, other.verticalWalls) &&
		boolSlicesEqual(m.horizontalWalls, other.horizontalWalls) &&
		boolSlicesEqual(m.holes, other.holes)
}

func boolSlicesEqual(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
