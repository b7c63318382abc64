package solve_test

import (
	"testing"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/solve"
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

func TestParseAlgorithmAcceptsBothPipelines(t *testing.T) {
	algo, err := solve.ParseAlgorithm("thistlethwaite")
	require.NoError(t, err)
	require.Equal(t, solve.Thistlethwaite, algo)

	algo, err = solve.ParseAlgorithm("kociemba")
	require.NoError(t, err)
	require.Equal(t, solve.Kociemba, algo)
}

func TestParseAlgorithmRejectsUnknownNames(t *testing.T) {
	_, err := solve.ParseAlgorithm("cfop")
	require.Error(t, err)
}

func TestEngineSolvesWithEitherAlgorithm(t *testing.T) {
	e := solve.NewEngine()
	c := scrambledCube(t, "R U R' U' F2 L")

	for _, algo := range []solve.Algorithm{solve.Thistlethwaite, solve.Kociemba} {
		result, err := e.Solve(c, algo)
		require.NoError(t, err, "algorithm %s", algo)

		final := c.Clone()
		for _, m := range result.Moves {
			final.ApplyMove(m)
		}
		require.True(t, final.IsSolved(), "algorithm %s should fully solve the cube", algo)
		require.NotEmpty(t, result.StageLengths)
	}
}

func TestEngineCachesAreReusedAcrossCalls(t *testing.T) {
	e := solve.NewEngine()
	first := scrambledCube(t, "R U F")
	second := scrambledCube(t, "L D B")

	_, err := e.Solve(first, solve.Thistlethwaite)
	require.NoError(t, err)
	_, err = e.Solve(second, solve.Thistlethwaite)
	require.NoError(t, err)
}

func TestEngineSolveWhiteCross(t *testing.T) {
	e := solve.NewEngine()
	c := scrambledCube(t, "F L D L' D' F'")

	result, err := e.SolveWhiteCross(c)
	require.NoError(t, err)

	final := c.Clone()
	for _, m := range result.Moves {
		final.ApplyMove(m)
	}
	require.Len(t, result.StageLengths, 1)
}
