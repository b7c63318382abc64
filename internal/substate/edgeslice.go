package substate

import "github.com/cube-groups/solver/internal/cube"

// EdgeMidSlice records, per edge position, whether it belongs to the
// UF/UB/DF/DB mid-slice (the four edges not touching L or R) in the solved
// cube. Unlike EdgeOrient this is a pure permutation state: every move
// cycles membership bits without flipping any of them.
type EdgeMidSlice [12]bool

// SolvedEdgeMidSlice has UF, UB, DF, DB set.
func SolvedEdgeMidSlice() EdgeMidSlice {
	var s EdgeMidSlice
	s[cube.UF], s[cube.UB], s[cube.DF], s[cube.DB] = true, true, true, true
	return s
}

// EdgeMidSliceFromCube projects mid-slice membership from a concrete cube:
// an edge is a mid-slice edge if neither of its facelets carries an L/R
// color, regardless of which facelet is which.
func EdgeMidSliceFromCube(c *cube.Cube) EdgeMidSlice {
	left, right := c.CenterColor(cube.Left), c.CenterColor(cube.Right)
	isLR := func(x cube.Color) bool { return x == left || x == right }

	var s EdgeMidSlice
	for _, e := range allEdges {
		first, second := c.EdgeFacelets(e)
		s[e] = !isLR(first) && !isLR(second)
	}
	return s
}

// IsSolved reports whether exactly the four mid-slice positions hold a
// mid-slice edge.
func (s EdgeMidSlice) IsSolved() bool { return s == SolvedEdgeMidSlice() }

func (s EdgeMidSlice) R() EdgeMidSlice {
	s[cube.UR], s[cube.FR], s[cube.DR], s[cube.BR] = s[cube.FR], s[cube.DR], s[cube.BR], s[cube.UR]
	return s
}

func (s EdgeMidSlice) L() EdgeMidSlice {
	s[cube.UL], s[cube.BL], s[cube.DL], s[cube.FL] = s[cube.BL], s[cube.DL], s[cube.FL], s[cube.UL]
	return s
}

func (s EdgeMidSlice) U() EdgeMidSlice {
	s[cube.UF], s[cube.UR], s[cube.UB], s[cube.UL] = s[cube.UR], s[cube.UB], s[cube.UL], s[cube.UF]
	return s
}

func (s EdgeMidSlice) D() EdgeMidSlice {
	s[cube.DF], s[cube.DL], s[cube.DB], s[cube.DR] = s[cube.DL], s[cube.DB], s[cube.DR], s[cube.DF]
	return s
}

func (s EdgeMidSlice) B() EdgeMidSlice {
	s[cube.UB], s[cube.BR], s[cube.DB], s[cube.BL] = s[cube.BR], s[cube.DB], s[cube.BL], s[cube.UB]
	return s
}

func (s EdgeMidSlice) F() EdgeMidSlice {
	s[cube.UF], s[cube.FL], s[cube.DF], s[cube.FR] = s[cube.FL], s[cube.DF], s[cube.FR], s[cube.UF]
	return s
}
