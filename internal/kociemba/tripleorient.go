package kociemba

import "github.com/cube-groups/solver/internal/substate"

// orientTriple is the product sub-state H0->H1 searches over: edge
// orientation, corner orientation, and edge mid-slice membership combined
// because the stage's goal is their conjunction.
type orientTriple struct {
	EO substate.EdgeOrient
	CO substate.CornerOrient
	ES substate.EdgeMidSlice
}

func (s orientTriple) R() orientTriple { return orientTriple{s.EO.R(), s.CO.R(), s.ES.R()} }
func (s orientTriple) L() orientTriple { return orientTriple{s.EO.L(), s.CO.L(), s.ES.L()} }
func (s orientTriple) F() orientTriple { return orientTriple{s.EO.F(), s.CO.F(), s.ES.F()} }
func (s orientTriple) B() orientTriple { return orientTriple{s.EO.B(), s.CO.B(), s.ES.B()} }
func (s orientTriple) U() orientTriple { return orientTriple{s.EO.U(), s.CO.U(), s.ES.U()} }
func (s orientTriple) D() orientTriple { return orientTriple{s.EO.D(), s.CO.D(), s.ES.D()} }

// UTwo/DTwo: only CornerOrient needs a real override (see its own
// UTwo/DTwo doc); EdgeOrient and EdgeMidSlice compose correctly from two
// single turns (U2's pure-permutation behavior falls out of flipping each
// bit twice, i.e. not at all).
func (s orientTriple) UTwo() orientTriple {
	return orientTriple{s.EO.U().U(), s.CO.UTwo(), s.ES.U().U()}
}

func (s orientTriple) DTwo() orientTriple {
	return orientTriple{s.EO.D().D(), s.CO.DTwo(), s.ES.D().D()}
}

func (s orientTriple) isSolved() bool {
	return s.EO.IsSolved() && s.CO.IsSolved() && s.ES.IsSolved()
}
