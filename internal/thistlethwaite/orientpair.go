package thistlethwaite

import "github.com/cube-groups/solver/internal/substate"

// orientPair is the product sub-state G1->G2 searches over: corner
// orientation and edge mid-slice membership, combined because the stage's
// goal is their conjunction. It implements the Turnable interface
// componentwise, the "one-line derivation" the design notes call for
// rather than any kind of inheritance.
type orientPair struct {
	CO substate.CornerOrient
	ES substate.EdgeMidSlice
}

func (s orientPair) R() orientPair { return orientPair{s.CO.R(), s.ES.R()} }
func (s orientPair) L() orientPair { return orientPair{s.CO.L(), s.ES.L()} }
func (s orientPair) F() orientPair { return orientPair{s.CO.F(), s.ES.F()} }
func (s orientPair) B() orientPair { return orientPair{s.CO.B(), s.ES.B()} }

// U and D are only ever reached by this stage's generator as a double
// turn (U is a half-only direction here), so composing the literal U()
// twice would be enough for ES — but CornerOrient.U() composed with
// itself accumulates twist a physical U2 doesn't produce. UTwo/DTwo below
// are what Apply actually calls; U/D exist only to satisfy Turnable.
func (s orientPair) U() orientPair { return orientPair{s.CO.U(), s.ES.U()} }
func (s orientPair) D() orientPair { return orientPair{s.CO.D(), s.ES.D()} }

func (s orientPair) UTwo() orientPair { return orientPair{s.CO.UTwo(), s.ES.U().U()} }
func (s orientPair) DTwo() orientPair { return orientPair{s.CO.DTwo(), s.ES.D().D()} }

func (s orientPair) isSolved() bool { return s.CO.IsSolved() && s.ES.IsSolved() }
