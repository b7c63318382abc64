// Package search provides the move algebra, generator, and IDA* driver
// shared by every group-descent stage: a stage is nothing but a
// (Generator, goal predicate, Heuristic, depth cap) tuple fed to Solve.
package search

import "github.com/cube-groups/solver/internal/cube"

// Dir is a quarter-turn axis, reusing the cube package's own face enum
// rather than duplicating it.
type Dir = cube.Face

// DirNone marks "no previous move" at the root of a search.
const DirNone Dir = -1

// Amt is how far a move turns.
type Amt int

const (
	One Amt = iota
	Two
	Rev
)

func (a Amt) String() string {
	switch a {
	case One:
		return ""
	case Two:
		return "2"
	case Rev:
		return "'"
	default:
		return "?"
	}
}

// Move is a single face turn.
type Move struct {
	Dir Dir
	Amt Amt
}

func (m Move) String() string { return dirLetter(m.Dir) + m.Amt.String() }

// ToCubeMove converts a search Move into the concrete cube package's Move,
// the form Cube.ApplyMove expects. The solver core never needs this itself
// (it only ever turns sub-states); pipelines use it to replay a stage's
// solution onto the concrete cube between stages.
func (m Move) ToCubeMove() cube.Move {
	switch m.Amt {
	case Two:
		return cube.Move{Face: m.Dir, Clockwise: true, Double: true}
	case Rev:
		return cube.Move{Face: m.Dir, Clockwise: false}
	default:
		return cube.Move{Face: m.Dir, Clockwise: true}
	}
}

func dirLetter(d Dir) string {
	switch d {
	case cube.Front:
		return "F"
	case cube.Back:
		return "B"
	case cube.Left:
		return "L"
	case cube.Right:
		return "R"
	case cube.Up:
		return "U"
	case cube.Down:
		return "D"
	default:
		return "?"
	}
}

// CanFollow reports whether next may legally follow last in a search path:
// a direction never repeats, and opposite-face pairs are only explored in
// one canonical order (B before F, L before R, D before U) since turning
// them in either order commutes and reaches the same state.
func CanFollow(last, next Dir) bool {
	if last == DirNone {
		return true
	}
	if last == next {
		return false
	}
	switch {
	case last == cube.Front && next == cube.Back:
		return false
	case last == cube.Right && next == cube.Left:
		return false
	case last == cube.Up && next == cube.Down:
		return false
	}
	return true
}
