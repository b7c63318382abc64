package mask

import (
	"fmt"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/search"
	"github.com/cube-groups/solver/internal/solvererr"
)

var allDirs = [6]search.Dir{cube.Right, cube.Left, cube.Up, cube.Down, cube.Front, cube.Back}
var allAmts = [3]search.Amt{search.One, search.Two, search.Rev}

// maxMoves bounds the white-cross search. Not derived from a proven
// lower bound, just an experimentally comfortable ceiling.
const maxMoves = 12

// SolveWC returns a sequence of moves solving c's white cross, found by
// an un-heuristic'd iterative-deepening DFS over the masked cube: no
// distance estimate prunes branches here, only commutativity pruning and
// skipping moves that turn out to be no-ops under the mask (most moves
// touch only blanked-out facelets, which cuts runtime substantially).
func SolveWC(c *cube.Cube) ([]search.Move, error) {
	masked := ToWhiteCross(c)

	for depth := 0; depth <= maxMoves; depth++ {
		running := make([]search.Move, 0, depth)
		if solveDepth(masked, &running, depth) {
			return running, nil
		}
	}
	return nil, fmt.Errorf("%w: white-cross mask solve exceeded %d moves", solvererr.ErrSearchBudgetExceeded, maxMoves)
}

func solveDepth(state *cube.Cube, running *[]search.Move, maxDepth int) bool {
	if IsSolved(state) {
		return true
	}
	if len(*running) >= maxDepth {
		return false
	}

	last := search.DirNone
	if n := len(*running); n > 0 {
		last = (*running)[n-1].Dir
	}

	for _, dir := range allDirs {
		if !search.CanFollow(last, dir) {
			continue
		}
		for _, amt := range allAmts {
			m := search.Move{Dir: dir, Amt: amt}
			next := state.Clone()
			next.ApplyMove(m.ToCubeMove())
			if Equal(next, state) {
				continue
			}

			*running = append(*running, m)
			if solveDepth(next, running, maxDepth) {
				return true
			}
			*running = (*running)[:len(*running)-1]
		}
	}
	return false
}
