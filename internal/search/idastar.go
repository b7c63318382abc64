package search

import (
	"fmt"

	"github.com/cube-groups/solver/internal/solvererr"
)

// Heuristic is an admissible lower bound on the remaining distance to goal
// for a sub-state of type T.
type Heuristic[T any] func(T) int

// Problem packages everything a single group-descent stage needs to run
// IDA*: the generator defining legal moves, the goal predicate, an
// admissible heuristic, and the hard fuel cap the outer deepening loop may
// not exceed.
type Problem[T Turnable[T]] struct {
	Generator Generator
	IsGoal    func(T) bool
	Heuristic Heuristic[T]
	MaxFuel   int
}

// Solve runs iterative-deepening search from start: for each fuel from 0
// to MaxFuel, a bounded depth-first search either finds a move sequence
// satisfying IsGoal or exhausts the bound and the outer loop tries the
// next fuel. Successor enumeration always tries the generator's half-only
// directions before its free directions (Generator.Moves already orders
// them that way), and commutativity pruning skips redundant orderings of
// commuting moves.
func Solve[T Turnable[T]](start T, p Problem[T]) ([]Move, error) {
	moves := p.Generator.Moves()
	for fuel := 0; fuel <= p.MaxFuel; fuel++ {
		path := make([]Move, 0, fuel)
		if dfs(start, DirNone, fuel, moves, p.IsGoal, p.Heuristic, &path) {
			out := make([]Move, len(path))
			copy(out, path)
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: no solution within %d moves", solvererr.ErrSearchBudgetExceeded, p.MaxFuel)
}

// dfs explores to depth `budget` (moves remaining), appending to path in
// place and trimming back off on backtrack so a single slice is reused
// across the whole search rather than allocating per-node.
func dfs[T Turnable[T]](s T, last Dir, budget int, moves []Move, isGoal func(T) bool, h Heuristic[T], path *[]Move) bool {
	if isGoal(s) {
		return true
	}
	if h(s) >= budget {
		return false
	}
	for _, m := range moves {
		if !CanFollow(last, m.Dir) {
			continue
		}
		next := Apply(s, m)
		*path = append(*path, m)
		if dfs(next, m.Dir, budget-1, moves, isGoal, h, path) {
			return true
		}
		*path = (*path)[:len(*path)-1]
	}
	return false
}
