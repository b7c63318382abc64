package thistlethwaite_test

import (
	"testing"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/substate"
	"github.com/cube-groups/solver/internal/thistlethwaite"
	"github.com/stretchr/testify/require"
)

func scrambledCube(t *testing.T, scramble string) *cube.Cube {
	t.Helper()
	c, err := cube.NewSolvedCubeOriented(cube.Green, cube.Yellow)
	require.NoError(t, err)
	moves, err := cube.ParseScramble(scramble)
	require.NoError(t, err)
	c.ApplyMoves(moves)
	return c
}

func TestPipelineSolvesShortScramble(t *testing.T) {
	p := thistlethwaite.NewPipeline()
	c := scrambledCube(t, "R U F")
	result, err := p.Solve(c)
	require.NoError(t, err)
	require.LessOrEqual(t, len(result.Moves), 5)

	final := c.Clone()
	for _, m := range result.Moves {
		final.ApplyMove(m.ToCubeMove())
	}
	require.True(t, final.IsSolved())
}

func TestPipelineSolvesLongerScramble(t *testing.T) {
	p := thistlethwaite.NewPipeline()
	c := scrambledCube(t, "R U F R U F R U F")
	result, err := p.Solve(c)
	require.NoError(t, err)

	final := c.Clone()
	for _, m := range result.Moves {
		final.ApplyMove(m.ToCubeMove())
	}
	require.True(t, final.IsSolved())
}

func TestSuperflipG0G1DistanceIsSeven(t *testing.T) {
	p := thistlethwaite.NewPipeline()
	c := scrambledCube(t, "U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2")
	result, err := p.Solve(c)
	require.NoError(t, err)
	require.Len(t, result.Stages[0], 7, "superflip's edge orientation distance under the full generator is 7")
}

func TestEachStageSolvesItsOwnSubstate(t *testing.T) {
	p := thistlethwaite.NewPipeline()
	c := scrambledCube(t, "B' L U2 R2 L' D L U F2 D' L2 D' L' R' B D' F2 B' U B' U L' U2 L F")
	result, err := p.Solve(c)
	require.NoError(t, err)

	work := c.Clone()
	for _, m := range result.Stages[0] {
		work.ApplyMove(m.ToCubeMove())
	}
	require.True(t, substate.EdgeOrientFromCube(work).IsSolved())

	for _, m := range result.Stages[1] {
		work.ApplyMove(m.ToCubeMove())
	}
	require.True(t, substate.CornerOrientFromCube(work).IsSolved())
	require.True(t, substate.EdgeMidSliceFromCube(work).IsSolved())

	for _, m := range result.Stages[2] {
		work.ApplyMove(m.ToCubeMove())
	}
	for _, m := range result.Stages[3] {
		work.ApplyMove(m.ToCubeMove())
	}
	require.True(t, work.IsSolved())
}
