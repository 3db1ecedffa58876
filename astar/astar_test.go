package astar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coupledmaze/astar"
	"github.com/katalvlaran/coupledmaze/deltatable"
	"github.com/katalvlaran/coupledmaze/mazemap"
	"github.com/katalvlaran/coupledmaze/mazestate"
)

func openGrid(t *testing.T, w, h mazestate.Coordinate) *mazemap.Map {
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

func TestRun_OpenGridManhattan(t *testing.T) {
	dims := mazestate.Dims{Width: 3, Height: 3}
	m := openGrid(t, 3, 3)
	table, err := deltatable.NewDenseBitset(dims.States())
	require.NoError(t, err)

	res, err := astar.Run([2]*mazemap.Map{m, m}, dims, false, table)
	require.NoError(t, err)
	require.True(t, res.Reached)
	require.Equal(t, 4, res.Depth)
}

func TestRun_OpenGridDisparityManhattan(t *testing.T) {
	dims := mazestate.Dims{Width: 4, Height: 1}
	m := openGrid(t, 4, 1)
	table, err := deltatable.NewDenseBitset(dims.States())
	require.NoError(t, err)

	res, err := astar.Run([2]*mazemap.Map{m, m}, dims, false, table, astar.WithHeuristic(astar.DisparityManhattan))
	require.NoError(t, err)
	require.True(t, res.Reached)
	require.Equal(t, 3, res.Depth)
}

func TestRun_OpenGridPairwiseBFS(t *testing.T) {
	dims := mazestate.Dims{Width: 3, Height: 3}
	m := openGrid(t, 3, 3)
	table, err := deltatable.NewDenseBitset(dims.States())
	require.NoError(t, err)

	res, err := astar.Run([2]*mazemap.Map{m, m}, dims, false, table, astar.WithHeuristic(astar.PairwiseBFS))
	require.NoError(t, err)
	require.True(t, res.Reached)
	require.Equal(t, 4, res.Depth)
}

func TestRun_PairwiseBFSPreCheckInfeasible(t *testing.T) {
	dims := mazestate.Dims{Width: 3, Height: 3}
	vwalls := []bool{true, true, true, true, true, true}
	hwalls := []bool{true, true, true, true, true, true}
	walledOff, err := mazemap.NewMap(mazemap.InputData{
		Width:                3,
		Height:               3,
		InnerVerticalWalls:   vwalls,
		InnerHorizontalWalls: hwalls,
	})
	require.NoError(t, err)
	open := openGrid(t, 3, 3)
	table, err := deltatable.NewDenseBitset(dims.States())
	require.NoError(t, err)

	res, err := astar.Run([2]*mazemap.Map{walledOff, open}, dims, false, table, astar.WithHeuristic(astar.PairwiseBFS))
	require.NoError(t, err)
	require.False(t, res.Reached)
}

func TestRun_MatchesBFSDepthAcrossHeuristics(t *testing.T) {
	dims := mazestate.Dims{Width: 3, Height: 3}
	m := openGrid(t, 3, 3)
	for _, heur := range []astar.Heuristic{astar.Manhattan, astar.DisparityManhattan, astar.PairwiseBFS} {
		table, err := deltatable.NewDenseBitset(dims.States())
		require.NoError(t, err)
		res, err := astar.Run([2]*mazemap.Map{m, m}, dims, false, table, astar.WithHeuristic(heur))
		require.NoError(t, err)
		require.True(t, res.Reached, heur.String())
		require.Equal(t, 4, res.Depth, heur.String())
	}
}

func TestRun_UnknownHeuristic(t *testing.T) {
	dims := mazestate.Dims{Width: 2, Height: 2}
	m := openGrid(t, 2, 2)
	table, err := deltatable.NewDenseBitset(dims.States())
	require.NoError(t, err)

	_, err = astar.Run([2]*mazemap.Map{m, m}, dims, false, table, astar.WithHeuristic(astar.Heuristic(99)))
	require.ErrorIs(t, err, astar.ErrUnknownHeuristic)
}
