// Package scramble builds uniformly-random solvable cubes directly, by
// sampling a position and orientation for every cubelet and writing the
// resulting facelets straight onto a concrete cube, rather than by
// applying a random walk of moves. It is grounded on the original
// scramble_any() construction: shuffle cubelet labels into positions, fix
// permutation parity with a single edge swap if needed, then sample
// orientations independently and fix the aggregate invariant with a
// single corrective nudge if needed.
package scramble

import (
	"fmt"
	"math/rand"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/solvererr"
	"github.com/cube-groups/solver/internal/substate"
)

var edgeLabels = [12]cube.EdgeLabel{
	cube.UF, cube.UB, cube.UL, cube.UR, cube.FL, cube.FR,
	cube.BL, cube.BR, cube.DF, cube.DB, cube.DL, cube.DR,
}

var cornerLabels = [8]cube.CornerLabel{
	cube.FUL, cube.FUR, cube.FDL, cube.FDR, cube.BUL, cube.BUR, cube.BDL, cube.BDR,
}

// permParity reports the parity of a permutation given as home-label
// index per position: true means even (reachable together with an equal
// parity on the other cubelet kind).
func permParity(perm []int) bool {
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

func randomEdgePerm(rng *rand.Rand) substate.EdgePerm {
	shuffled := edgeLabels
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return substate.EdgePerm(shuffled)
}

func randomCornerPerm(rng *rand.Rand) substate.CornerPerm {
	shuffled := cornerLabels
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return substate.CornerPerm(shuffled)
}

func edgePermParity(p substate.EdgePerm) bool {
	idx := make([]int, 12)
	for i, e := range p {
		idx[i] = int(e)
	}
	return permParity(idx)
}

func cornerPermParity(p substate.CornerPerm) bool {
	idx := make([]int, 8)
	for i, c := range p {
		idx[i] = int(c)
	}
	return permParity(idx)
}

// randomPositions samples independent random permutations of the edge and
// corner labels, then swaps two edges if the two parities disagree: an
// edge permutation's parity must match the corner permutation's for the
// result to be reachable from solved.
func randomPositions(rng *rand.Rand) substate.CubePositions {
	edges := randomEdgePerm(rng)
	corners := randomCornerPerm(rng)
	if edgePermParity(edges) != cornerPermParity(corners) {
		edges[cube.UF], edges[cube.UR] = edges[cube.UR], edges[cube.UF]
	}
	return substate.CubePositions{Edges: edges, Corners: corners}
}

// randomEdgeOrient samples an orientation bit per edge, then flips one if
// the total comes out odd: EdgeOrient.IsSolvable requires an even number
// of bad edges.
func randomEdgeOrient(rng *rand.Rand) substate.EdgeOrient {
	var s substate.EdgeOrient
	for i := range s {
		s[i] = rng.Intn(2) == 0
	}
	if !s.IsSolvable() {
		s[cube.UF] = !s[cube.UF]
	}
	return s
}

// randomCornerOrient samples a twist per corner, then nudges one corner's
// twist clockwise (up to twice, matching the range of correction a single
// Z/3 nudge can cover) until the total twist is Good.
func randomCornerOrient(rng *rand.Rand) substate.CornerOrient {
	var s substate.CornerOrient
	for i := range s {
		s[i] = substate.CornerTwist(rng.Intn(3))
	}
	for attempt := 0; attempt < 3 && !s.IsSolvable(); attempt++ {
		s[cube.FUL] = substate.CornerTwist((int(s[cube.FUL]) + 1) % 3)
	}
	if !s.IsSolvable() {
		panic("scramble: corner orientation correction failed to converge")
	}
	return s
}

func rotateCornerColors(side, next, third cube.Color, twist substate.CornerTwist) (cube.Color, cube.Color, cube.Color) {
	arr := [3]cube.Color{side, next, third}
	k := int(twist)
	var out [3]cube.Color
	for i := 0; i < 3; i++ {
		out[i] = arr[((i-k)%3+3)%3]
	}
	return out[0], out[1], out[2]
}

// orientGood mirrors substate's unexported predicate of the same name: the
// first facelet must not be a front/back color, and a U/D-colored first
// facelet must not be paired with an L/R-colored second.
func orientGood(c *cube.Cube, first, second cube.Color) bool {
	front, back := c.CenterColor(cube.Front), c.CenterColor(cube.Back)
	up, down := c.CenterColor(cube.Up), c.CenterColor(cube.Down)
	left, right := c.CenterColor(cube.Left), c.CenterColor(cube.Right)

	isFB := func(x cube.Color) bool { return x == front || x == back }
	isUD := func(x cube.Color) bool { return x == up || x == down }
	isLR := func(x cube.Color) bool { return x == left || x == right }

	return !isFB(first) && !(isUD(first) && isLR(second))
}

// build writes a sampled (positions, edge orientation, corner
// orientation) tuple directly onto a freshly solved reference cube's
// facelets. Identity colors for each cubelet are read from the solved
// cube before any writes happen, since a position's coordinates may be
// overwritten before its label is needed as someone else's source.
func build(positions substate.CubePositions, edgeOrient substate.EdgeOrient, cornerOrient substate.CornerOrient) (*cube.Cube, error) {
	c, err := cube.NewSolvedCubeOriented(cube.Green, cube.Yellow)
	if err != nil {
		return nil, err
	}

	var edgeIdentity [12][2]cube.Color
	for _, home := range edgeLabels {
		a, b := c.EdgeFacelets(home)
		edgeIdentity[home] = [2]cube.Color{a, b}
	}
	var cornerIdentity [8][3]cube.Color
	for _, home := range cornerLabels {
		a, b, d := c.CornerFacelets(home)
		cornerIdentity[home] = [3]cube.Color{a, b, d}
	}

	for _, pos := range cornerLabels {
		home := positions.Corners[pos]
		ident := cornerIdentity[home]
		side, next, third := rotateCornerColors(ident[0], ident[1], ident[2], cornerOrient[pos])
		c.SetCornerFacelets(pos, side, next, third)
	}

	for _, pos := range edgeLabels {
		home := positions.Edges[pos]
		ident := edgeIdentity[home]
		first, second := ident[0], ident[1]
		if edgeOrient[pos] != orientGood(c, first, second) {
			first, second = second, first
		}
		c.SetEdgeFacelets(pos, first, second)
	}

	if got := substate.CornerPermFromCube(c); got != positions.Corners {
		return nil, fmt.Errorf("%w: rebuilt corner permutation does not match sampled positions", solvererr.ErrInvariantViolated)
	}
	if got := substate.EdgePermFromCube(c); got != positions.Edges {
		return nil, fmt.Errorf("%w: rebuilt edge permutation does not match sampled positions", solvererr.ErrInvariantViolated)
	}
	if got := substate.CornerOrientFromCube(c); got != cornerOrient {
		return nil, fmt.Errorf("%w: rebuilt corner orientation does not match sampled orientation", solvererr.ErrInvariantViolated)
	}
	if got := substate.EdgeOrientFromCube(c); got != edgeOrient {
		return nil, fmt.Errorf("%w: rebuilt edge orientation does not match sampled orientation", solvererr.ErrInvariantViolated)
	}
	return c, nil
}

// Any samples a uniformly random, fully solvable cube: independent random
// permutations of edge and corner labels (parity-corrected with a single
// edge swap), and independent random edge/corner orientations (corrected
// with a single nudge apiece), then constructs the concrete cube those
// sub-states describe and re-derives them from it as a self-check.
func Any(rng *rand.Rand) (*cube.Cube, error) {
	positions := randomPositions(rng)
	edgeOrient := randomEdgeOrient(rng)
	cornerOrient := randomCornerOrient(rng)
	return build(positions, edgeOrient, cornerOrient)
}
