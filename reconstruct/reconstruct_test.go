package reconstruct_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coupledmaze/bfs"
	"github.com/katalvlaran/coupledmaze/deltatable"
	"github.com/katalvlaran/coupledmaze/mazemap"
	"github.com/katalvlaran/coupledmaze/mazestate"
	"github.com/katalvlaran/coupledmaze/reconstruct"
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

func TestReconstruct_OpenGrid(t *testing.T) {
	dims := mazestate.Dims{Width: 3, Height: 3}
	m := openGrid(t, 3, 3)
	table, err := deltatable.NewDenseBitset(dims.States())
	require.NoError(t, err)
	_, err = bfs.Run([2]*mazemap.Map{m, m}, dims, false, table)
	require.NoError(t, err)

	res, err := reconstruct.Reconstruct([2]*mazemap.Map{m, m}, dims, false, table)
	require.NoError(t, err)
	require.Len(t, res.Instructions, 4)
	require.Equal(t, 8, res.Moves)
	require.True(t, res.Validated[0])
	require.True(t, res.Validated[1])
}

func TestReconstruct_Corridor(t *testing.T) {
	dims := mazestate.Dims{Width: 4, Height: 1}
	m := openGrid(t, 4, 1)
	table, err := deltatable.NewDenseBitset(dims.States())
	require.NoError(t, err)
	_, err = bfs.Run([2]*mazemap.Map{m, m}, dims, false, table)
	require.NoError(t, err)

	res, err := reconstruct.Reconstruct([2]*mazemap.Map{m, m}, dims, false, table)
	require.NoError(t, err)
	require.Len(t, res.Instructions, 3)
	require.Equal(t, 6, res.Moves)
	for _, instr := range res.Instructions {
		require.Equal(t, mazestate.AxisX, instr.Axis)
		require.Equal(t, mazestate.DirPos, instr.Dir)
	}
}

func TestReconstruct_WallBlocksOneWalkerSoMovesUndercount(t *testing.T) {
	dims := mazestate.Dims{Width: 3, Height: 3}
	vwalls := make([]bool, int(dims.Height)*int(dims.Width-1))
	vwalls[0] = true // block map0's (0,0)-(1,0) vertical segment
	m0, err := mazemap.NewMap(mazemap.InputData{
		Width:                3,
		Height:               3,
		InnerVerticalWalls:   vwalls,
		InnerHorizontalWalls: make([]bool, int(dims.Height-1)*int(dims.Width)),
	})
	require.NoError(t, err)
	m1 := openGrid(t, 3, 3)

	table, err := deltatable.NewDenseBitset(dims.States())
	require.NoError(t, err)
	_, err = bfs.Run([2]*mazemap.Map{m0, m1}, dims, false, table)
	require.NoError(t, err)

	res, err := reconstruct.Reconstruct([2]*mazemap.Map{m0, m1}, dims, false, table)
	require.NoError(t, err)
	require.Less(t, res.Moves, 2*len(res.Instructions))
	require.True(t, res.Validated[0])
	require.True(t, res.Validated[1])
}

func TestReconstruct_HoleTeleportDisambiguation(t *testing.T) {
	dims := mazestate.Dims{Width: 2, Height: 2}
	holeMap, err := mazemap.NewMap(mazemap.InputData{
		Width:                2,
		Height:               2,
		InnerVerticalWalls:   make([]bool, 2),
		InnerHorizontalWalls: make([]bool, 2),
		Holes:                [][2]mazestate.Coordinate{{1, 0}},
	})
	require.NoError(t, err)
	other := openGrid(t, 2, 2)

	table, err := deltatable.NewDenseBitset(dims.States())
	require.NoError(t, err)
	_, err = bfs.Run([2]*mazemap.Map{holeMap, other}, dims, true, table)
	require.NoError(t, err)

	res, err := reconstruct.Reconstruct([2]*mazemap.Map{holeMap, other}, dims, true, table)
	require.NoError(t, err)
	require.Equal(t, []mazestate.Instruction{
		{Axis: mazestate.AxisY, Dir: mazestate.DirPos},
		{Axis: mazestate.AxisX, Dir: mazestate.DirPos},
	}, res.Instructions)
	require.Equal(t, 4, res.Moves)
	require.True(t, res.Validated[0])
	require.True(t, res.Validated[1])
}

func TestReconstruct_UnreachableGoalReturnsEmptyResult(t *testing.T) {
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
	_, err = bfs.Run([2]*mazemap.Map{walledOff, open}, dims, false, table)
	require.NoError(t, err)

	res, err := reconstruct.Reconstruct([2]*mazemap.Map{walledOff, open}, dims, false, table)
	require.NoError(t, err)
	require.Empty(t, res.Instructions)
	require.Equal(t, 0, res.Moves)
}

func TestReconstruct_BrokenChainReportsError(t *testing.T) {
	dims := mazestate.Dims{Width: 2, Height: 2}
	m := openGrid(t, 2, 2)
	table, err := deltatable.NewDenseBitset(dims.States())
	require.NoError(t, err)
	// Mark the goal visited directly, without ever populating the chain
	// back to the start, to simulate a corrupted table.
	table.Set(dims.Index(mazestate.Goal(dims.Width, dims.Height)), mazestate.NewDeltaCode(true, true, mazestate.Instruction{Axis: mazestate.AxisX, Dir: mazestate.DirPos}), true)

	_, err = reconstruct.Reconstruct([2]*mazemap.Map{m, m}, dims, false, table)
	require.ErrorIs(t, err, reconstruct.ErrBrokenChain)
}
