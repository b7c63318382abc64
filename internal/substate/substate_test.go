package substate_test

import (
	"testing"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/substate"
	"github.com/stretchr/testify/require"
)

func solvedCube(t *testing.T) *cube.Cube {
	t.Helper()
	c, err := cube.NewSolvedCubeOriented(cube.Green, cube.Yellow)
	require.NoError(t, err)
	return c
}

func applyScramble(t *testing.T, c *cube.Cube, scramble string) {
	t.Helper()
	moves, err := cube.ParseScramble(scramble)
	require.NoError(t, err)
	c.ApplyMoves(moves)
}

// turns lets each sub-test below drive every sub-state type through the
// same table of moves without repeating a type switch per type.
var turns = []struct {
	name string
	face cube.Face
}{
	{"R", cube.Right}, {"L", cube.Left}, {"U", cube.Up},
	{"D", cube.Down}, {"B", cube.Back}, {"F", cube.Front},
}

func TestEdgeOrientProjectionMatchesSolvedAndScrambled(t *testing.T) {
	c := solvedCube(t)
	require.True(t, substate.EdgeOrientFromCube(c).IsSolved())
	require.Equal(t, substate.SolvedEdgeOrient(), substate.EdgeOrientFromCube(c))

	applyScramble(t, c, "R U F")
	require.False(t, substate.EdgeOrientFromCube(c).IsSolved())
}

func TestEdgeOrientCommutesWithCubeApplyMove(t *testing.T) {
	for _, tc := range turns {
		t.Run(tc.name, func(t *testing.T) {
			c := solvedCube(t)
			applyScramble(t, c, "R U F D2 L' B")

			want := substate.EdgeOrientFromCube(c)
			switch tc.face {
			case cube.Right:
				want = want.R()
			case cube.Left:
				want = want.L()
			case cube.Up:
				want = want.U()
			case cube.Down:
				want = want.D()
			case cube.Back:
				want = want.B()
			case cube.Front:
				want = want.F()
			}

			c.ApplyMove(cube.Move{Face: tc.face, Clockwise: true})
			got := substate.EdgeOrientFromCube(c)
			require.Equal(t, want, got, "projecting then turning the sub-state must match turning the cube then projecting")
		})
	}
}

func TestEdgeOrientFourQuarterTurnsIsIdentity(t *testing.T) {
	for _, tc := range turns {
		t.Run(tc.name, func(t *testing.T) {
			s := substate.EdgeOrientFromCube(solvedCube(t))
			got := s
			for i := 0; i < 4; i++ {
				switch tc.face {
				case cube.Right:
					got = got.R()
				case cube.Left:
					got = got.L()
				case cube.Up:
					got = got.U()
				case cube.Down:
					got = got.D()
				case cube.Back:
					got = got.B()
				case cube.Front:
					got = got.F()
				}
			}
			require.Equal(t, s, got)
		})
	}
}

func TestEdgeOrientIsSolvablePredicate(t *testing.T) {
	require.True(t, substate.SolvedEdgeOrient().IsSolvable())

	flippedOne := substate.SolvedEdgeOrient()
	flippedOne[cube.UF] = !flippedOne[cube.UF]
	require.False(t, flippedOne.IsSolvable(), "a single flipped edge is unreachable")

	flippedTwo := flippedOne
	flippedTwo[cube.UB] = !flippedTwo[cube.UB]
	require.True(t, flippedTwo.IsSolvable(), "an even number of flips is reachable")
}

func TestCornerOrientProjectionAndRoundTrip(t *testing.T) {
	c := solvedCube(t)
	require.True(t, substate.CornerOrientFromCube(c).IsSolved())

	applyScramble(t, c, "R U R' U'")
	require.False(t, substate.CornerOrientFromCube(c).IsSolved())
}

func TestCornerOrientCommutesWithCubeApplyMove(t *testing.T) {
	for _, tc := range turns {
		t.Run(tc.name, func(t *testing.T) {
			c := solvedCube(t)
			applyScramble(t, c, "R U F D2 L' B")

			want := substate.CornerOrientFromCube(c)
			switch tc.face {
			case cube.Right:
				want = want.R()
			case cube.Left:
				want = want.L()
			case cube.Up:
				want = want.U()
			case cube.Down:
				want = want.D()
			case cube.Back:
				want = want.B()
			case cube.Front:
				want = want.F()
			}

			c.ApplyMove(cube.Move{Face: tc.face, Clockwise: true})
			got := substate.CornerOrientFromCube(c)
			require.Equal(t, want, got)
		})
	}
}

func TestCornerOrientFourQuarterTurnsIsIdentity(t *testing.T) {
	for _, tc := range turns {
		t.Run(tc.name, func(t *testing.T) {
			s := substate.CornerOrientFromCube(solvedCube(t))
			got := s
			for i := 0; i < 4; i++ {
				switch tc.face {
				case cube.Right:
					got = got.R()
				case cube.Left:
					got = got.L()
				case cube.Up:
					got = got.U()
				case cube.Down:
					got = got.D()
				case cube.Back:
					got = got.B()
				case cube.Front:
					got = got.F()
				}
			}
			require.Equal(t, s, got)
		})
	}
}

func TestCornerOrientUTwoAndDTwoMatchCubeHalfTurns(t *testing.T) {
	// UTwo/DTwo exist because a literal double U/D would accumulate
	// spurious twist a physical 180-degree turn doesn't produce; verify
	// the override agrees with what the cube itself does under U2/D2.
	c := solvedCube(t)
	applyScramble(t, c, "R U F' L2")
	s := substate.CornerOrientFromCube(c)

	c.ApplyMove(cube.Move{Face: cube.Up, Clockwise: true, Double: true})
	want := substate.CornerOrientFromCube(c)

	require.Equal(t, want, s.UTwo())

	s = want
	c.ApplyMove(cube.Move{Face: cube.Down, Clockwise: true, Double: true})
	require.Equal(t, substate.CornerOrientFromCube(c), s.DTwo())
}

func TestCornerOrientIsSolvablePredicate(t *testing.T) {
	require.True(t, substate.SolvedCornerOrient().IsSolvable())

	twisted := substate.SolvedCornerOrient()
	twisted[cube.FUL] = substate.CW
	require.False(t, twisted.IsSolvable(), "a lone twist is unreachable")

	twisted[cube.FUR] = substate.CCW
	require.True(t, twisted.IsSolvable(), "opposite twists summing to zero mod 3 are reachable")
}

func TestEdgeMidSliceProjectionAndSolved(t *testing.T) {
	c := solvedCube(t)
	require.True(t, substate.EdgeMidSliceFromCube(c).IsSolved())
	require.Equal(t, substate.SolvedEdgeMidSlice(), substate.EdgeMidSliceFromCube(c))

	applyScramble(t, c, "R U R'")
	require.False(t, substate.EdgeMidSliceFromCube(c).IsSolved())
}

func TestEdgeMidSliceCommutesWithCubeApplyMove(t *testing.T) {
	for _, tc := range turns {
		t.Run(tc.name, func(t *testing.T) {
			c := solvedCube(t)
			applyScramble(t, c, "R U F D2 L' B")

			want := substate.EdgeMidSliceFromCube(c)
			switch tc.face {
			case cube.Right:
				want = want.R()
			case cube.Left:
				want = want.L()
			case cube.Up:
				want = want.U()
			case cube.Down:
				want = want.D()
			case cube.Back:
				want = want.B()
			case cube.Front:
				want = want.F()
			}

			c.ApplyMove(cube.Move{Face: tc.face, Clockwise: true})
			got := substate.EdgeMidSliceFromCube(c)
			require.Equal(t, want, got)
		})
	}
}

func TestEdgePermProjectionAndRoundTrip(t *testing.T) {
	c := solvedCube(t)
	require.True(t, substate.EdgePermFromCube(c).IsSolved())
	require.Equal(t, substate.SolvedEdgePerm(), substate.EdgePermFromCube(c))

	applyScramble(t, c, "R U R' U'")
	require.False(t, substate.EdgePermFromCube(c).IsSolved())
}

func TestEdgePermCommutesWithCubeApplyMove(t *testing.T) {
	for _, tc := range turns {
		t.Run(tc.name, func(t *testing.T) {
			c := solvedCube(t)
			applyScramble(t, c, "R U F D2 L' B")

			want := substate.EdgePermFromCube(c)
			switch tc.face {
			case cube.Right:
				want = want.R()
			case cube.Left:
				want = want.L()
			case cube.Up:
				want = want.U()
			case cube.Down:
				want = want.D()
			case cube.Back:
				want = want.B()
			case cube.Front:
				want = want.F()
			}

			c.ApplyMove(cube.Move{Face: tc.face, Clockwise: true})
			got := substate.EdgePermFromCube(c)
			require.Equal(t, want, got)
		})
	}
}

func TestCornerPermProjectionAndRoundTrip(t *testing.T) {
	c := solvedCube(t)
	require.True(t, substate.CornerPermFromCube(c).IsSolved())
	require.Equal(t, substate.SolvedCornerPerm(), substate.CornerPermFromCube(c))

	applyScramble(t, c, "R U R' U'")
	require.False(t, substate.CornerPermFromCube(c).IsSolved())
}

func TestCornerPermCommutesWithCubeApplyMove(t *testing.T) {
	for _, tc := range turns {
		t.Run(tc.name, func(t *testing.T) {
			c := solvedCube(t)
			applyScramble(t, c, "R U F D2 L' B")

			want := substate.CornerPermFromCube(c)
			switch tc.face {
			case cube.Right:
				want = want.R()
			case cube.Left:
				want = want.L()
			case cube.Up:
				want = want.U()
			case cube.Down:
				want = want.D()
			case cube.Back:
				want = want.B()
			case cube.Front:
				want = want.F()
			}

			c.ApplyMove(cube.Move{Face: tc.face, Clockwise: true})
			got := substate.CornerPermFromCube(c)
			require.Equal(t, want, got)
		})
	}
}

func TestCubePositionsCombinesBothPermutations(t *testing.T) {
	c := solvedCube(t)
	require.True(t, substate.CubePositionsFromCube(c).IsSolved())

	applyScramble(t, c, "R U R' U' R U R' U'")
	positions := substate.CubePositionsFromCube(c)
	require.Equal(t, substate.EdgePermFromCube(c), positions.Edges)
	require.Equal(t, substate.CornerPermFromCube(c), positions.Corners)
}

func TestCubePositionsCommutesWithCubeApplyMove(t *testing.T) {
	c := solvedCube(t)
	applyScramble(t, c, "R U F D2 L' B")

	want := substate.CubePositionsFromCube(c).R()
	c.ApplyMove(cube.Move{Face: cube.Right, Clockwise: true})
	require.Equal(t, want, substate.CubePositionsFromCube(c))
}
