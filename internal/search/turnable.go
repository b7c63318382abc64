package search

import "github.com/cube-groups/solver/internal/cube"

// Turnable is any sub-state type closed under the six face turns.
type Turnable[T any] interface {
	R() T
	L() T
	U() T
	D() T
	B() T
	F() T
}

// UDTwoOverrider is implemented by sub-states whose U2/D2 move isn't
// equivalent to applying U/D twice — corner orientation is the motivating
// case, where a literal double U would accumulate spurious twist that the
// physical U2 move doesn't produce. Apply checks for this via a type
// assertion before falling back to double application.
type UDTwoOverrider[T any] interface {
	UTwo() T
	DTwo() T
}

func applyOnce[T Turnable[T]](s T, d Dir) T {
	switch d {
	case cube.Right:
		return s.R()
	case cube.Left:
		return s.L()
	case cube.Up:
		return s.U()
	case cube.Down:
		return s.D()
	case cube.Back:
		return s.B()
	case cube.Front:
		return s.F()
	default:
		panic("search: unknown direction")
	}
}

// Apply turns state s by move m.
func Apply[T Turnable[T]](s T, m Move) T {
	if m.Amt == Two {
		if ov, ok := any(s).(UDTwoOverrider[T]); ok {
			switch m.Dir {
			case cube.Up:
				return ov.UTwo()
			case cube.Down:
				return ov.DTwo()
			}
		}
	}
	switch m.Amt {
	case One:
		return applyOnce(s, m.Dir)
	case Two:
		return applyOnce(applyOnce(s, m.Dir), m.Dir)
	case Rev:
		return applyOnce(applyOnce(applyOnce(s, m.Dir), m.Dir), m.Dir)
	default:
		panic("search: unknown amount")
	}
}
