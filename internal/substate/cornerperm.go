package substate

import "github.com/cube-groups/solver/internal/cube"

// CornerPerm records, per corner position, which corner (identified by its
// home position) currently occupies it.
type CornerPerm [8]cube.CornerLabel

// SolvedCornerPerm has every position holding its own label.
func SolvedCornerPerm() CornerPerm {
	var s CornerPerm
	for _, c := range allCorners {
		s[c] = c
	}
	return s
}

// CornerPermFromCube projects corner permutation from a concrete cube: for
// each position, finds which home position's set of three colors is
// sitting there, independent of facelet order.
func CornerPermFromCube(c *cube.Cube) CornerPerm {
	var s CornerPerm
	for _, pos := range allCorners {
		a, b, d := c.CornerFacelets(pos)
		s[pos] = findCornerHome(c, a, b, d)
	}
	return s
}

func findCornerHome(c *cube.Cube, a, b, d cube.Color) cube.CornerLabel {
	matches := func(x, y, z cube.Color) bool {
		set := [3]cube.Color{a, b, d}
		cand := [3]cube.Color{x, y, z}
		for i := 0; i < 3; i++ {
			j, k := (i+1)%3, (i+2)%3
			if set[0] == cand[i] && set[1] == cand[j] && set[2] == cand[k] {
				return true
			}
			if set[0] == cand[i] && set[1] == cand[k] && set[2] == cand[j] {
				return true
			}
		}
		return false
	}
	for _, home := range allCorners {
		f, g, h := cube.CornerCoordsAll(home)
		x, y, z := c.CenterColor(f.Face), c.CenterColor(g.Face), c.CenterColor(h.Face)
		if matches(x, y, z) {
			return home
		}
	}
	panic("substate: no corner home for given facelet triple")
}

// IsSolved reports whether every position holds its own corner.
func (s CornerPerm) IsSolved() bool { return s == SolvedCornerPerm() }

func (s CornerPerm) R() CornerPerm {
	s[cube.FUR], s[cube.FDR], s[cube.BDR], s[cube.BUR] = s[cube.FDR], s[cube.BDR], s[cube.BUR], s[cube.FUR]
	return s
}

func (s CornerPerm) L() CornerPerm {
	s[cube.FUL], s[cube.BUL], s[cube.BDL], s[cube.FDL] = s[cube.BUL], s[cube.BDL], s[cube.FDL], s[cube.FUL]
	return s
}

func (s CornerPerm) U() CornerPerm {
	s[cube.FUR], s[cube.BUR], s[cube.BUL], s[cube.FUL] = s[cube.BUR], s[cube.BUL], s[cube.FUL], s[cube.FUR]
	return s
}

func (s CornerPerm) D() CornerPerm {
	s[cube.FDR], s[cube.FDL], s[cube.BDL], s[cube.BDR] = s[cube.FDL], s[cube.BDL], s[cube.BDR], s[cube.FDR]
	return s
}

func (s CornerPerm) B() CornerPerm {
	s[cube.BUR], s[cube.BDR], s[cube.BDL], s[cube.BUL] = s[cube.BDR], s[cube.BDL], s[cube.BUL], s[cube.BUR]
	return s
}

func (s CornerPerm) F() CornerPerm {
	s[cube.FUR], s[cube.FUL], s[cube.FDL], s[cube.FDR] = s[cube.FUL], s[cube.FDL], s[cube.FDR], s[cube.FUR]
	return s
}
