package substate

import "github.com/cube-groups/solver/internal/cube"

// EdgePerm records, per edge position, which edge (identified by its home
// position) currently occupies it.
type EdgePerm [12]cube.EdgeLabel

// SolvedEdgePerm has every position holding its own label.
func SolvedEdgePerm() EdgePerm {
	var s EdgePerm
	for _, e := range allEdges {
		s[e] = e
	}
	return s
}

// EdgePermFromCube projects edge permutation from a concrete cube: for each
// position, finds which home position's pair of colors is sitting there,
// independent of which of the pair is which facelet.
func EdgePermFromCube(c *cube.Cube) EdgePerm {
	var s EdgePerm
	for _, pos := range allEdges {
		a, b := c.EdgeFacelets(pos)
		s[pos] = findEdgeHome(c, a, b)
	}
	return s
}

func findEdgeHome(c *cube.Cube, a, b cube.Color) cube.EdgeLabel {
	for _, home := range allEdges {
		f, g := cube.EdgeCoords(home)
		x, y := c.CenterColor(f.Face), c.CenterColor(g.Face)
		if (x == a && y == b) || (x == b && y == a) {
			return home
		}
	}
	panic("substate: no edge home for given facelet pair")
}

// IsSolved reports whether every position holds its own edge.
func (s EdgePerm) IsSolved() bool { return s == SolvedEdgePerm() }

func (s EdgePerm) R() EdgePerm {
	s[cube.UR], s[cube.FR], s[cube.DR], s[cube.BR] = s[cube.FR], s[cube.DR], s[cube.BR], s[cube.UR]
	return s
}

func (s EdgePerm) L() EdgePerm {
	s[cube.UL], s[cube.BL], s[cube.DL], s[cube.FL] = s[cube.BL], s[cube.DL], s[cube.FL], s[cube.UL]
	return s
}

func (s EdgePerm) U() EdgePerm {
	s[cube.UF], s[cube.UR], s[cube.UB], s[cube.UL] = s[cube.UR], s[cube.UB], s[cube.UL], s[cube.UF]
	return s
}

func (s EdgePerm) D() EdgePerm {
	s[cube.DF], s[cube.DL], s[cube.DB], s[cube.DR] = s[cube.DL], s[cube.DB], s[cube.DR], s[cube.DF]
	return s
}

func (s EdgePerm) B() EdgePerm {
	s[cube.UB], s[cube.BR], s[cube.DB], s[cube.BL] = s[cube.BR], s[cube.DB], s[cube.BL], s[cube.UB]
	return s
}

func (s EdgePerm) F() EdgePerm {
	s[cube.UF], s[cube.FL], s[cube.DF], s[cube.FR] = s[cube.FL], s[cube.DF], s[cube.FR], s[cube.UF]
	return s
}
