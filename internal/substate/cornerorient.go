package substate

import "github.com/cube-groups/solver/internal/cube"

// CornerTwist is an element of Z/3: how many clockwise twists a corner is
// off from "side facelet on L or R face".
type CornerTwist uint8

const (
	Good CornerTwist = iota
	CW
	CCW
)

func (t CornerTwist) add(u CornerTwist) CornerTwist { return (t + u) % 3 }
func (t CornerTwist) cw() CornerTwist                { return (t + 1) % 3 }
func (t CornerTwist) ccw() CornerTwist                { return (t + 2) % 3 }

// CornerOrient records, per corner position, its twist relative to solved.
type CornerOrient [8]CornerTwist

// SolvedCornerOrient is the all-Good state.
func SolvedCornerOrient() CornerOrient { return CornerOrient{} }

// CornerOrientFromCube projects corner orientation from a concrete cube.
// Feed the side facelet (on L or R) and, going clockwise around the
// cubelet as viewed face-on, the next facelet: Good if the side facelet
// already carries an L/R color, CW if the L/R color instead shows up next,
// CCW otherwise.
func CornerOrientFromCube(c *cube.Cube) CornerOrient {
	left, right := c.CenterColor(cube.Left), c.CenterColor(cube.Right)
	isLR := func(x cube.Color) bool { return x == left || x == right }

	var s CornerOrient
	for _, cl := range allCorners {
		side, next := c.CornerOrientFacelets(cl)
		switch {
		case isLR(side):
			s[cl] = Good
		case isLR(next):
			s[cl] = CW
		default:
			s[cl] = CCW
		}
	}
	return s
}

var allCorners = [8]cube.CornerLabel{
	cube.FUL, cube.FUR, cube.FDL, cube.FDR, cube.BUL, cube.BUR, cube.BDL, cube.BDR,
}

func (s CornerOrient) total() CornerTwist {
	var t CornerTwist
	for _, x := range s {
		t = t.add(x)
	}
	return t
}

// IsSolvable reports whether the total twist is Good, the necessary and
// sufficient condition for reachability from solved.
func (s CornerOrient) IsSolvable() bool { return s.total() == Good }

// IsSolved reports whether every corner is untwisted.
func (s CornerOrient) IsSolved() bool { return s == SolvedCornerOrient() }

func (s CornerOrient) R() CornerOrient {
	s[cube.FUR], s[cube.FDR], s[cube.BDR], s[cube.BUR] = s[cube.FDR], s[cube.BDR], s[cube.BUR], s[cube.FUR]
	return s
}

func (s CornerOrient) L() CornerOrient {
	s[cube.FUL], s[cube.BUL], s[cube.BDL], s[cube.FDL] = s[cube.BUL], s[cube.BDL], s[cube.FDL], s[cube.FUL]
	return s
}

func (s CornerOrient) U() CornerOrient {
	s[cube.FUL], s[cube.FUR], s[cube.BUR], s[cube.BUL] =
		s[cube.FUR].ccw(), s[cube.BUR].cw(), s[cube.BUL].ccw(), s[cube.FUL].cw()
	return s
}

// UTwo is the U2 override: a pure swap, without the twisting that a literal
// double-application of U would accumulate.
func (s CornerOrient) UTwo() CornerOrient {
	s[cube.FUL], s[cube.BUR], s[cube.FUR], s[cube.BUL] = s[cube.BUR], s[cube.FUL], s[cube.BUL], s[cube.FUR]
	return s
}

func (s CornerOrient) D() CornerOrient {
	s[cube.FDL], s[cube.BDL], s[cube.BDR], s[cube.FDR] =
		s[cube.BDL].cw(), s[cube.BDR].ccw(), s[cube.FDR].cw(), s[cube.FDL].ccw()
	return s
}

// DTwo is the D2 override, for the same reason as UTwo.
func (s CornerOrient) DTwo() CornerOrient {
	s[cube.FDL], s[cube.BDR], s[cube.FDR], s[cube.BDL] = s[cube.BDR], s[cube.FDL], s[cube.BDL], s[cube.FDR]
	return s
}

func (s CornerOrient) B() CornerOrient {
	s[cube.BUL], s[cube.BUR], s[cube.BDR], s[cube.BDL] =
		s[cube.BUR].ccw(), s[cube.BDR].cw(), s[cube.BDL].ccw(), s[cube.BUL].cw()
	return s
}

func (s CornerOrient) F() CornerOrient {
	s[cube.FUL], s[cube.FDL], s[cube.FDR], s[cube.FUR] =
		s[cube.FDL].cw(), s[cube.FDR].ccw(), s[cube.FUR].cw(), s[cube.FUL].ccw()
	return s
}
