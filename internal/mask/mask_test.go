package mask_test

import (
	"testing"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/mask"
	"github.com/stretchr/testify/require"
)

func scrambledCube(t *testing.T, front, top cube.Color, scramble string) *cube.Cube {
	t.Helper()
	c, err := cube.NewSolvedCubeOriented(front, top)
	require.NoError(t, err)
	moves, err := cube.ParseScramble(scramble)
	require.NoError(t, err)
	c.ApplyMoves(moves)
	return c
}

func TestToWhiteCrossSolvedCubeStaysSolved(t *testing.T) {
	c, err := cube.NewSolvedCubeOriented(cube.Orange, cube.White)
	require.NoError(t, err)

	masked := mask.ToWhiteCross(c)
	require.True(t, mask.IsSolved(masked))
}

func TestToWhiteCrossSurvivesScramblesThatLeaveItAlone(t *testing.T) {
	// note white is on the bottom for these
	cases := []string{
		"R U2 R' U' R U' R' U'", // OLL: top layer only
		"U F' U' F",             // first layer corners only
		"U F' U' F U R U' R'",   // second layer only
	}
	for _, scramble := range cases {
		c := scrambledCube(t, cube.Green, cube.Yellow, scramble)
		masked := mask.ToWhiteCross(c)
		require.True(t, mask.IsSolved(masked), "scramble %q should leave the white cross intact", scramble)
	}
}

func TestToWhiteCrossCatchesAScrambledCross(t *testing.T) {
	c := scrambledCube(t, cube.Green, cube.Yellow, "F L D L' D' F'")
	masked := mask.ToWhiteCross(c)
	require.False(t, mask.IsSolved(masked))
}

func TestToWhiteCrossIgnoresABottomScrambleWhenWhiteIsOnTop(t *testing.T) {
	c := scrambledCube(t, cube.Green, cube.White, "F L D L' D' F'")
	masked := mask.ToWhiteCross(c)
	require.True(t, mask.IsSolved(masked))
}

func TestSolveWCSolvesAScrambledCross(t *testing.T) {
	c := scrambledCube(t, cube.Green, cube.Yellow, "F L D L' D' F'")

	moves, err := mask.SolveWC(c)
	require.NoError(t, err)

	work := c.Clone()
	for _, m := range moves {
		work.ApplyMove(m.ToCubeMove())
	}
	require.True(t, mask.IsSolved(mask.ToWhiteCross(work)))
}

func TestSolveWCOnAlreadySolvedCrossReturnsNoMoves(t *testing.T) {
	c, err := cube.NewSolvedCubeOriented(cube.Green, cube.Yellow)
	require.NoError(t, err)

	moves, err := mask.SolveWC(c)
	require.NoError(t, err)
	require.Empty(t, moves)
}
