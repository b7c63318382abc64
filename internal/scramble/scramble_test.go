package scramble_test

import (
	"math/rand"
	"testing"

	"github.com/cube-groups/solver/internal/scramble"
	"github.com/cube-groups/solver/internal/solve"
	"github.com/cube-groups/solver/internal/substate"
	"github.com/stretchr/testify/require"
)

// permutationParity reports the parity (true = even) of a permutation
// given as home-label index per position, mirroring the check scramble.Any
// itself uses internally to reconcile EdgePerm against CornerPerm.
func permutationParity(perm []int) bool {
	n := len(perm)
	seen := make([]bool, n)
	swaps := 0
	for i := 0; i < n; i++ {
		if seen[i] {
			continue
		}
		cycleLen := 0
		for j := i; !seen[j]; j = perm[j] {
			seen[j] = true
			cycleLen++
		}
		swaps += cycleLen - 1
	}
	return swaps%2 == 0
}

func edgePermParity(p substate.EdgePerm) bool {
	idx := make([]int, len(p))
	for i, e := range p {
		idx[i] = int(e)
	}
	return permutationParity(idx)
}

func cornerPermParity(p substate.CornerPerm) bool {
	idx := make([]int, len(p))
	for i, c := range p {
		idx[i] = int(c)
	}
	return permutationParity(idx)
}

func TestAnyProducesASolvableCube(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 25; i++ {
		c, err := scramble.Any(rng)
		require.NoError(t, err)

		require.True(t, substate.EdgeOrientFromCube(c).IsSolvable())
		require.True(t, substate.CornerOrientFromCube(c).IsSolvable())

		positions := substate.CubePositionsFromCube(c)
		require.Equal(t, edgePermParity(positions.Edges), cornerPermParity(positions.Corners),
			"EdgePerm and CornerPerm parity must agree or the sampled cube is unreachable from solved")
	}
}

// TestAnySampledCubesSolveEndToEnd is the direct test of spec scenario 6:
// sample scramble.Any 100 times and drive each sample through a real
// pipeline rather than only checking its sub-state invariants.
func TestAnySampledCubesSolveEndToEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	engine := solve.NewEngine()
	engine.Warm()

	for i := 0; i < 100; i++ {
		c, err := scramble.Any(rng)
		require.NoError(t, err)

		positions := substate.CubePositionsFromCube(c)
		require.True(t, substate.EdgeOrientFromCube(c).IsSolvable())
		require.True(t, substate.CornerOrientFromCube(c).IsSolvable())
		require.Equal(t, edgePermParity(positions.Edges), cornerPermParity(positions.Corners))

		result, err := engine.Solve(c, solve.Thistlethwaite)
		require.NoError(t, err, "sample %d must solve end-to-end", i)

		final := c.Clone()
		for _, m := range result.Moves {
			final.ApplyMove(m)
		}
		require.True(t, final.IsSolved(), "sample %d's solution must actually solve the cube", i)
	}
}

func TestAnyIsUsuallyNotAlreadySolved(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sawUnsolved := false
	for i := 0; i < 10; i++ {
		c, err := scramble.Any(rng)
		require.NoError(t, err)
		if !c.IsSolved() {
			sawUnsolved = true
			break
		}
	}
	require.True(t, sawUnsolved, "10 random samples should not all land on the solved cube")
}

func TestAnyRoundTripsPositionsAndOrientation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c, err := scramble.Any(rng)
	require.NoError(t, err)

	positions := substate.CubePositionsFromCube(c)
	edgeOrient := substate.EdgeOrientFromCube(c)
	cornerOrient := substate.CornerOrientFromCube(c)

	require.Equal(t, positions, substate.CubePositionsFromCube(c))
	require.Equal(t, edgeOrient, substate.EdgeOrientFromCube(c))
	require.Equal(t, cornerOrient, substate.CornerOrientFromCube(c))
}
