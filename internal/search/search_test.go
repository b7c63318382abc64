package search_test

import (
	"testing"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/search"
	"github.com/cube-groups/solver/internal/substate"
	"github.com/stretchr/testify/require"
)

func TestGeneratorMovesListsHalfTurnsBeforeFree(t *testing.T) {
	g := search.Generator{
		Free: []search.Dir{cube.Front},
		Half: []search.Dir{cube.Up, cube.Down},
	}
	moves := g.Moves()
	require.Len(t, moves, 2+3)
	require.Equal(t, search.Move{Dir: cube.Up, Amt: search.Two}, moves[0])
	require.Equal(t, search.Move{Dir: cube.Down, Amt: search.Two}, moves[1])

	var frontMoves []search.Amt
	for _, m := range moves[2:] {
		require.Equal(t, cube.Front, m.Dir)
		frontMoves = append(frontMoves, m.Amt)
	}
	require.ElementsMatch(t, []search.Amt{search.One, search.Two, search.Rev}, frontMoves)
}

func TestCanFollowForbidsImmediateRepeat(t *testing.T) {
	require.False(t, search.CanFollow(cube.Right, cube.Right))
}

func TestCanFollowForbidsOneCanonicalOrderOfOpposites(t *testing.T) {
	require.False(t, search.CanFollow(cube.Front, cube.Back))
	require.True(t, search.CanFollow(cube.Back, cube.Front), "the other order of a commuting opposite pair stays legal")

	require.False(t, search.CanFollow(cube.Right, cube.Left))
	require.True(t, search.CanFollow(cube.Left, cube.Right))

	require.False(t, search.CanFollow(cube.Up, cube.Down))
	require.True(t, search.CanFollow(cube.Down, cube.Up))
}

func TestCanFollowAllowsAdjacentFaces(t *testing.T) {
	require.True(t, search.CanFollow(cube.Right, cube.Up))
	require.True(t, search.CanFollow(search.DirNone, cube.Right), "nothing is forbidden at the root of a search")
}

func TestApplyMatchesCubeApplyMoveForEdgeOrient(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    search.Move
	}{
		{"R", search.Move{Dir: cube.Right, Amt: search.One}},
		{"R2", search.Move{Dir: cube.Right, Amt: search.Two}},
		{"R'", search.Move{Dir: cube.Right, Amt: search.Rev}},
		{"U2", search.Move{Dir: cube.Up, Amt: search.Two}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, err := cube.NewSolvedCubeOriented(cube.Green, cube.Yellow)
			require.NoError(t, err)
			moves, err := cube.ParseScramble("R U F D2 L' B")
			require.NoError(t, err)
			c.ApplyMoves(moves)

			s := substate.EdgeOrientFromCube(c)
			want := search.Apply(s, tc.m)

			c.ApplyMove(tc.m.ToCubeMove())
			got := substate.EdgeOrientFromCube(c)
			require.Equal(t, want, got)
		})
	}
}

func TestApplyUsesUDTwoOverrideForCornerOrient(t *testing.T) {
	// CornerOrient implements UDTwoOverrider; Apply must call UTwo/DTwo
	// rather than applying U (or D) twice, which would accumulate
	// spurious twist a physical 180-degree turn doesn't produce.
	c, err := cube.NewSolvedCubeOriented(cube.Green, cube.Yellow)
	require.NoError(t, err)
	moves, err := cube.ParseScramble("R U F' L2")
	require.NoError(t, err)
	c.ApplyMoves(moves)

	s := substate.CornerOrientFromCube(c)
	viaApply := search.Apply(s, search.Move{Dir: cube.Up, Amt: search.Two})
	viaOverride := s.UTwo()

	require.Equal(t, viaOverride, viaApply)
}

func TestMoveStringFormatsAmount(t *testing.T) {
	require.Equal(t, "R", search.Move{Dir: cube.Right, Amt: search.One}.String())
	require.Equal(t, "R2", search.Move{Dir: cube.Right, Amt: search.Two}.String())
	require.Equal(t, "R'", search.Move{Dir: cube.Right, Amt: search.Rev}.String())
}

func TestSolveFindsShortSolutionForEdgeOrient(t *testing.T) {
	c, err := cube.NewSolvedCubeOriented(cube.Green, cube.Yellow)
	require.NoError(t, err)
	moves, err := cube.ParseScramble("R U F")
	require.NoError(t, err)
	c.ApplyMoves(moves)

	start := substate.EdgeOrientFromCube(c)
	p := search.Problem[substate.EdgeOrient]{
		Generator: search.Generator{Free: []search.Dir{cube.Right, cube.Left, cube.Up, cube.Down, cube.Front, cube.Back}},
		IsGoal:    substate.EdgeOrient.IsSolved,
		Heuristic: func(s substate.EdgeOrient) int {
			if s.IsSolved() {
				return 0
			}
			return 1
		},
		MaxFuel: 8,
	}

	result, err := search.Solve(start, p)
	require.NoError(t, err)

	got := start
	for _, m := range result {
		got = search.Apply(got, m)
	}
	require.True(t, got.IsSolved())
}

func TestSolveReturnsErrorWhenFuelExhausted(t *testing.T) {
	c, err := cube.NewSolvedCubeOriented(cube.Green, cube.Yellow)
	require.NoError(t, err)
	moves, err := cube.ParseScramble("U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2")
	require.NoError(t, err)
	c.ApplyMoves(moves)

	start := substate.EdgeOrientFromCube(c)
	p := search.Problem[substate.EdgeOrient]{
		Generator: search.Generator{Free: []search.Dir{cube.Right, cube.Left, cube.Up, cube.Down, cube.Front, cube.Back}},
		IsGoal:    substate.EdgeOrient.IsSolved,
		Heuristic: func(substate.EdgeOrient) int { return 0 },
		MaxFuel:   2,
	}

	_, err = search.Solve(start, p)
	require.Error(t, err, "superflip's edge orientation needs 7 moves, so a 2-move cap must fail")
}
