package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coupledmaze/bfs"
	"github.com/katalvlaran/coupledmaze/deltatable"
	"github.com/katalvlaran/coupledmaze/mazemap"
	"github.com/katalvlaran/coupledmaze/mazestate"
)

func openMap(t *testing.T, w, h mazestate.Coordinate) *mazemap.Map {
	t.Helper()
	m, err := mazemap.NewMap(mazemap.InputData{
		Width:                w,
		Height:               h,
		InnerVerticalWalls:   make([]bool, int(h)*int(w-1)),
		InnerHorizontalWalls: make([]bool, int(h-1)*int(w)),
	})
	require.NoError(t, err)
	return m
}

func TestRun_OpenGridSingleThreaded(t *testing.T) {
	dims := mazestate.Dims{Width: 3, Height: 3}
	m := openMap(t, 3, 3)
	table, err := deltatable.NewDenseBitset(dims.States())
	require.NoError(t, err)

	res, err := bfs.Run([2]*mazemap.Map{m, m}, dims, false, table)
	require.NoError(t, err)
	require.True(t, res.Reached)
	require.Equal(t, 4, res.Depth)
}

func TestRun_OpenGridMultiThreaded(t *testing.T) {
	dims := mazestate.Dims{Width: 4, Height: 4}
	m := openMap(t, 4, 4)
	table, err := deltatable.NewAtomicBitsetXor(dims.States())
	require.NoError(t, err)

	res, err := bfs.Run([2]*mazemap.Map{m, m}, dims, false, table, bfs.WithWorkers(4))
	require.NoError(t, err)
	require.True(t, res.Reached)
	require.Equal(t, 6, res.Depth)
}

func TestRun_MultiThreadedMatchesSingleThreaded(t *testing.T) {
	dims := mazestate.Dims{Width: 5, Height: 5}
	vwalls := make([]bool, int(dims.Height)*int(dims.Width-1))
	vwalls[3] = true // block one inner segment identically on both maps
	m0, err := mazemap.NewMap(mazemap.InputData{
		Width:                dims.Width,
		Height:               dims.Height,
		InnerVerticalWalls:   vwalls,
		InnerHorizontalWalls: make([]bool, int(dims.Height-1)*int(dims.Width)),
	})
	require.NoError(t, err)
	m1 := m0

	seqTable, err := deltatable.NewDenseBitset(dims.States())
	require.NoError(t, err)
	seqRes, err := bfs.Run([2]*mazemap.Map{m0, m1}, dims, false, seqTable)
	require.NoError(t, err)

	parTable, err := deltatable.NewAtomicByteCAS(dims.States())
	require.NoError(t, err)
	parRes, err := bfs.Run([2]*mazemap.Map{m0, m1}, dims, false, parTable, bfs.WithWorkers(3))
	require.NoError(t, err)

	require.Equal(t, seqRes.Reached, parRes.Reached)
	require.Equal(t, seqRes.Depth, parRes.Depth)
}

func TestRun_HoleMakesGoalUnreachableWithinDepthBound(t *testing.T) {
	dims := mazestate.Dims{Width: 2, Height: 2}
	holeMap, err := mazemap.NewMap(mazemap.InputData{
		Width:                2,
		Height:               2,
		InnerVerticalWalls:   make([]bool, 2),
		InnerHorizontalWalls: make([]bool, 2),
		Holes:                [][2]mazestate.Coordinate{{1, 0}},
	})
	require.NoError(t, err)
	table, err := deltatable.NewDenseBitset(dims.States())
	require.NoError(t, err)

	res, err := bfs.Run([2]*mazemap.Map{holeMap, openMap(t, 2, 2)}, dims, true, table)
	require.NoError(t, err)
	require.True(t, res.Reached, "walker 0 can still reach the goal via (y,+) then (x,+), avoiding the hole")
}

func TestRun_InvalidWorkerCount(t *testing.T) {
	dims := mazestate.Dims{Width: 2, Height: 2}
	m := openMap(t, 2, 2)
	table, err := deltatable.NewDenseBitset(dims.States())
	require.NoError(t, err)

	_, err = bfs.Run([2]*mazemap.Map{m, m}, dims, false, table, bfs.WithWorkers(0))
	require.True(t, errors.Is(err, bfs.ErrNonPositiveWorkers))
}

func TestDepthBound(t *testing.T) {
	dims := mazestate.Dims{Width: 3, Height: 3}
	require.Equal(t, 2*9-2, bfs.DepthBound(dims, 0, 0))
	require.Equal(t, 2*9-2-1-2, bfs.DepthBound(dims, 1, 2))
}

func TestPairwiseDistances_OpenGrid(t *testing.T) {
	dims := mazestate.Dims{Width: 3, Height: 3}
	m := openMap(t, 3, 3)
	dist := bfs.PairwiseDistances(m, dims, false)
	require.Equal(t, 4, dist[0]) // (0,0): Manhattan distance to (2,2)
	require.Equal(t, 0, dist[len(dist)-1])
}

func TestPairwiseDistances_UnreachableGoal(t *testing.T) {
	dims := mazestate.Dims{Width: 3, Height: 3}
	// Wall off the entire middle row/column so (0,0) cannot reach (2,2).
	vwalls := []bool{true, true, true, true, true, true}
	hwalls := []bool{true, true, true, true, true, true}
	m, err := mazemap.NewMap(mazemap.InputData{
		Width:                3,
		Height:               3,
		InnerVerticalWalls:   vwalls,
		InnerHorizontalWalls: hwalls,
	})
	require.NoError(t, err)
	dist := bfs.PairwiseDistances(m, dims, false)
	require.Equal(t, -1, dist[0])
}

func TestPairwiseDistances_HoleTransitionIsSkippedNotFollowed(t *testing.T) {
	// A 1x5 corridor with a hole at index 2: the only way past it is through
	// it, and stepping onto a hole resets to the origin rather than letting
	// a walker continue rightward, so the goal is genuinely unreachable once
	// holes are respected. With holes ignored, the same corridor is a plain
	// 4-step walk.
	dims := mazestate.Dims{Width: 5, Height: 1}
	m, err := mazemap.NewMap(mazemap.InputData{
		Width:                5,
		Height:               1,
		InnerVerticalWalls:   make([]bool, 4),
		InnerHorizontalWalls: nil,
		Holes:                [][2]mazestate.Coordinate{{2, 0}},
	})
	require.NoError(t, err)

	withHoles := bfs.PairwiseDistances(m, dims, true)
	require.Equal(t, -1, withHoles[0], "the hole is the only way past it, so the origin is trapped")

	withoutHoles := bfs.PairwiseDistances(m, dims, false)
	require.Equal(t, 4, withoutHoles[0], "ignoring hole semantics, the corridor is a plain 4-step walk")
}

func TestTrySingleMapDecomposition_IdenticalMaps(t *testing.T) {
	dims := mazestate.Dims{Width: 3, Height: 3}
	m := openMap(t, 3, 3)
	seq, ok := bfs.TrySingleMapDecomposition([2]*mazemap.Map{m, m}, dims)
	require.True(t, ok)
	require.Len(t, seq, 4)
}

func TestTrySingleMapDecomposition_DifferentMaps(t *testing.T) {
	dims := mazestate.Dims{Width: 3, Height: 3}
	m0 := openMap(t, 3, 3)
	m1, err := mazemap.NewMap(mazemap.InputData{
		Width:                3,
		Height:               3,
		InnerVerticalWalls:   []bool{true, false, false, false, false, false},
		InnerHorizontalWalls: make([]bool, 6),
	})
	require.NoError(t, err)
	_, ok := bfs.TrySingleMapDecomposition([2]*mazemap.Map{m0, m1}, dims)
	require.False(t, ok)
}
