package mazemap

import "github.com/katalvlaran/coupledmaze/mazestate"

// NewMap constructs a Map from InputData. It pre-marks every perimeter
// segment as a wall, then overlays the caller's inner wall bits, then
// records the hole set. Complexity: O(W*H) time and memory.
//
// Returns ErrNonPositiveDims if width or height is not positive,
// ErrWallCountMismatch if either wall slice has the wrong length,
// ErrHoleOutOfBounds if a hole coordinate falls outside the grid, or
// ErrHoleAtEndpoint if a hole is placed at (0,0) or (W-1,H-1).
func NewMap(in InputData) (*Map, error) {
	w, h := in.Width, in.Height
	if w <= 0 || h <= 0 {
		return nil, ErrNonPositiveDims
	}

	wantV := int(h) * (int(w) - 1)
	wantH := (int(h) - 1) * int(w)
	if wantV < 0 {
		wantV = 0
	}
	if wantH < 0 {
		wantH = 0
	}
	if len(in.InnerVerticalWalls) != wantV || len(in.InnerHorizontalWalls) != wantH {
		return nil, ErrWallCountMismatch
	}

	m := &Map{
		width:           w,
		height:          h,
		verticalWalls:   make([]bool, (int(w)+1)*int(h)),
		horizontalWalls: make([]bool, int(w)*(int(h)+1)),
		holes:           make([]bool, int(w)*int(h)),
	}

	// Perimeter: the outer columns/rows are always walls.
	for y := mazestate.Coordinate(0); y < h; y++ {
		m.verticalWalls[m.vwIdx(0, y)] = true
		m.verticalWalls[m.vwIdx(w, y)] = true
	}
	for x := mazestate.Coordinate(0); x < w; x++ {
		m.horizontalWalls[m.hwIdx(x, 0)] = true
		m.horizontalWalls[m.hwIdx(x, h)] = true
	}

	// Inner vertical walls: row by row, columns 1..w-1.
	i := 0
	for y := mazestate.Coordinate(0); y < h; y++ {
		for x := mazestate.Coordinate(1); x < w; x++ {
			m.verticalWalls[m.vwIdx(x, y)] = in.InnerVerticalWalls[i]
			i++
		}
	}

	// Inner horizontal walls: row by row (rows 1..h-1), all columns.
	i = 0
	for y := mazestate.Coordinate(1); y < h; y++ {
		for x := mazestate.Coordinate(0); x < w; x++ {
			m.horizontalWalls[m.hwIdx(x, y)] = in.InnerHorizontalWalls[i]
			i++
		}
	}

	for _, hole := range in.Holes {
		x, y := hole[0], hole[1]
		if x < 0 || x >= w || y < 0 || y >= h {
			return nil, ErrHoleOutOfBounds
		}
		if (x == 0 && y == 0) || (x == w-1 && y == h-1) {
			return nil, ErrHoleAtEndpoint
		}
		m.holes[m.tileIdx(x, y)] = true
		m.holesPlacement = append(m.holesPlacement, hole)
	}

	return m, nil
}
