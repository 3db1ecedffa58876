package deltatable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coupledmaze/deltatable"
	"github.com/katalvlaran/coupledmaze/mazestate"
)

// newAll constructs one instance of every backend covering the same length,
// so the shared-contract tests below can run identically against all four.
func newAll(t *testing.T, length int) map[string]deltatable.Table {
	t.Helper()
	dense, err := deltatable.NewDenseBitset(length)
	require.NoError(t, err)
	xorBits, err := deltatable.NewAtomicBitsetXor(length)
	require.NoError(t, err)
	byteCAS, err := deltatable.NewAtomicByteCAS(length)
	require.NoError(t, err)
	return map[string]deltatable.Table{
		"DenseBitset":     dense,
		"LazySparseMap":   deltatable.NewLazySparseMap(),
		"AtomicBitsetXor": xorBits,
		"AtomicByteCAS":   byteCAS,
	}
}

func sampleCode() mazestate.DeltaCode {
	return mazestate.NewDeltaCode(true, false, mazestate.Instruction{Axis: mazestate.AxisX, Dir: mazestate.DirPos})
}

func TestTable_UnvisitedByDefault(t *testing.T) {
	for name, tbl := range newAll(t, 16) {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, mazestate.Unvisited, tbl.Get(5))
			require.Equal(t, 0, tbl.Written())
		})
	}
}

func TestTable_SetThenGetRoundTrips(t *testing.T) {
	code := sampleCode()
	for name, tbl := range newAll(t, 16) {
		t.Run(name, func(t *testing.T) {
			ok := tbl.Set(3, code, false)
			require.True(t, ok)
			require.Equal(t, code, tbl.Get(3))
			require.Equal(t, 1, tbl.Written())
		})
	}
}

func TestTable_SecondUnforcedSetIsRejected(t *testing.T) {
	code := sampleCode()
	other := mazestate.NewDeltaCode(false, true, mazestate.Instruction{Axis: mazestate.AxisY, Dir: mazestate.DirNeg})
	for name, tbl := range newAll(t, 16) {
		t.Run(name, func(t *testing.T) {
			require.True(t, tbl.Set(7, code, false))
			require.False(t, tbl.Set(7, other, false))
			require.Equal(t, code, tbl.Get(7), "rejected write must not overwrite the winner's code")
			require.Equal(t, 1, tbl.Written())
		})
	}
}

func TestTable_ForcedSetAlwaysOverwrites(t *testing.T) {
	code := sampleCode()
	other := mazestate.NewDeltaCode(false, true, mazestate.Instruction{Axis: mazestate.AxisY, Dir: mazestate.DirNeg})
	for name, tbl := range newAll(t, 16) {
		t.Run(name, func(t *testing.T) {
			require.True(t, tbl.Set(2, code, false))
			require.True(t, tbl.Set(2, other, true))
			require.Equal(t, other, tbl.Get(2))
		})
	}
}

func TestTable_StartSentinelIsNotUnvisited(t *testing.T) {
	for name, tbl := range newAll(t, 4) {
		t.Run(name, func(t *testing.T) {
			require.True(t, tbl.Set(0, mazestate.StartSentinel, false))
			require.Equal(t, mazestate.StartSentinel, tbl.Get(0))
			require.NotEqual(t, mazestate.Unvisited, tbl.Get(0))
		})
	}
}

func TestTable_AllInstructionsRoundTripThroughDenseBitset(t *testing.T) {
	tbl, err := deltatable.NewDenseBitset(len(mazestate.AllInstructions))
	require.NoError(t, err)
	for i, instr := range mazestate.AllInstructions {
		code := mazestate.NewDeltaCode(true, true, instr)
		require.True(t, tbl.Set(i, code, false))
		require.Equal(t, code, tbl.Get(i))
	}
}

func TestLazySparseMap_PromotionAndConversion(t *testing.T) {
	const length = 8
	sparse := deltatable.NewLazySparseMap()
	require.False(t, sparse.IsConversionWorthwhile(length))

	codes := make(map[int]mazestate.DeltaCode)
	for i := 0; i < length; i++ {
		code := mazestate.NewDeltaCode(i%2 == 0, i%3 == 0, mazestate.AllInstructions[i%4])
		codes[i] = code
		sparse.Set(i, code, false)
	}
	require.True(t, sparse.IsConversionWorthwhile(length))

	dense := sparse.IntoDense(length)
	for i, code := range codes {
		require.Equal(t, code, dense.Get(i))
	}
}
