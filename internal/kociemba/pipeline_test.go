package kociemba_test

import (
	"testing"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/kociemba"
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
	p := kociemba.NewPipeline()
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
	p := kociemba.NewPipeline()
	c := scrambledCube(t, "R U F R U F R U F")
	result, err := p.Solve(c)
	require.NoError(t, err)

	final := c.Clone()
	for _, m := range result.Moves {
		final.ApplyMove(m.ToCubeMove())
	}
	require.True(t, final.IsSolved())
}

func TestPipelineSolvesFullScramble(t *testing.T) {
	p := kociemba.NewPipeline()
	c := scrambledCube(t, "B' L U2 R2 L' D L U F2 D' L2 D' L' R' B D' F2 B' U B' U L' U2 L F")
	result, err := p.Solve(c)
	require.NoError(t, err)

	final := c.Clone()
	for _, m := range result.Moves {
		final.ApplyMove(m.ToCubeMove())
	}
	require.True(t, final.IsSolved())
}
