// Package substate implements the five sub-state abstractions of a cube
// (edge orientation, corner orientation, edge mid-slice membership, edge
// permutation, corner permutation) plus their combined position state.
// Every type here is a small comparable value: a plain fixed-size array of
// booleans/enums, projectable from a concrete cube and closed under all six
// face turns. None of them retains a pointer back to the cube they were
// projected from.
package substate

import "github.com/cube-groups/solver/internal/cube"

// EdgeOrient records, per edge position, whether that edge is "good" in
// Thistlethwaite's L/R-based orientation test.
type EdgeOrient [12]bool

// SolvedEdgeOrient is the all-good state.
func SolvedEdgeOrient() EdgeOrient {
	var s EdgeOrient
	for i := range s {
		s[i] = true
	}
	return s
}

// orientGood implements the shared predicate behind both the UD-mid-slice
// orientation test and the LR-side orientation test: the first facelet
// must not be a front/back color, and if it's a U/D color the second
// facelet must not be an L/R color.
func orientGood(c *cube.Cube, first, second cube.Color) bool {
	front, back := c.CenterColor(cube.Front), c.CenterColor(cube.Back)
	up, down := c.CenterColor(cube.Up), c.CenterColor(cube.Down)
	left, right := c.CenterColor(cube.Left), c.CenterColor(cube.Right)

	isFB := func(x cube.Color) bool { return x == front || x == back }
	isUD := func(x cube.Color) bool { return x == up || x == down }
	isLR := func(x cube.Color) bool { return x == left || x == right }

	return !isFB(first) && !(isUD(first) && isLR(second))
}

// EdgeOrientFromCube projects the orientation state of every edge from a
// concrete cube.
func EdgeOrientFromCube(c *cube.Cube) EdgeOrient {
	var s EdgeOrient
	for _, e := range allEdges {
		first, second := c.EdgeFacelets(e)
		s[e] = orientGood(c, first, second)
	}
	return s
}

var allEdges = [12]cube.EdgeLabel{
	cube.UF, cube.UB, cube.UL, cube.UR, cube.FL, cube.FR,
	cube.BL, cube.BR, cube.DF, cube.DB, cube.DL, cube.DR,
}

// IsSolvable reports whether an even number of edges are flipped, the
// necessary and sufficient condition for an EdgeOrient to be reachable
// from solved.
func (s EdgeOrient) IsSolvable() bool {
	flipped := false
	for _, good := range s {
		if !good {
			flipped = !flipped
		}
	}
	return !flipped
}

// IsSolved reports whether every edge is good.
func (s EdgeOrient) IsSolved() bool {
	for _, good := range s {
		if !good {
			return false
		}
	}
	return true
}

func (s EdgeOrient) R() EdgeOrient {
	s[cube.UR], s[cube.FR], s[cube.DR], s[cube.BR] = s[cube.FR], s[cube.DR], s[cube.BR], s[cube.UR]
	return s
}

func (s EdgeOrient) L() EdgeOrient {
	s[cube.UL], s[cube.BL], s[cube.DL], s[cube.FL] = s[cube.BL], s[cube.DL], s[cube.FL], s[cube.UL]
	return s
}

func (s EdgeOrient) U() EdgeOrient {
	s[cube.UF], s[cube.UR], s[cube.UB], s[cube.UL] = !s[cube.UR], !s[cube.UB], !s[cube.UL], !s[cube.UF]
	return s
}

func (s EdgeOrient) D() EdgeOrient {
	s[cube.DF], s[cube.DL], s[cube.DB], s[cube.DR] = !s[cube.DL], !s[cube.DB], !s[cube.DR], !s[cube.DF]
	return s
}

func (s EdgeOrient) B() EdgeOrient {
	s[cube.UB], s[cube.BR], s[cube.DB], s[cube.BL] = s[cube.BR], s[cube.DB], s[cube.BL], s[cube.UB]
	return s
}

func (s EdgeOrient) F() EdgeOrient {
	s[cube.UF], s[cube.FL], s[cube.DF], s[cube.FR] = s[cube.FL], s[cube.DF], s[cube.FR], s[cube.UF]
	return s
}
