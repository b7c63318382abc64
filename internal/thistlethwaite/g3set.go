package thistlethwaite

import (
	"fmt"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/search"
	"github.com/cube-groups/solver/internal/solvererr"
	"github.com/cube-groups/solver/internal/substate"
)

// halfTurnGenerator is <F,B,L,R,U,D> restricted to double turns only — the
// subgroup the G3 goal set (and the G3->G4 stage's own moves) lives in.
var halfTurnGenerator = search.Generator{Half: []search.Dir{
	cube.Front, cube.Back, cube.Left, cube.Right, cube.Up, cube.Down,
}}

// g3Set is the precomputed set of cube positions reachable from solved
// under the half-turn generator (~663,552 positions), decomposed into its
// independent edge-permutation and corner-permutation factors: edges and
// corners never interact under a generator of pure double turns, so a
// position is in the set iff both its edge factor and its corner factor
// are.
type g3Set struct {
	edges   map[substate.EdgePerm]struct{}
	corners map[substate.CornerPerm]struct{}
}

func buildG3Set() *g3Set {
	start := substate.SolvedCubePositions()
	seen := map[substate.CubePositions]struct{}{start: {}}
	queue := []substate.CubePositions{start}
	moves := halfTurnGenerator.Moves()
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, m := range moves {
			next := search.Apply(cur, m)
			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}

	edges := make(map[substate.EdgePerm]struct{})
	corners := make(map[substate.CornerPerm]struct{})
	for p := range seen {
		edges[p.Edges] = struct{}{}
		corners[p.Corners] = struct{}{}
	}
	if len(edges)*len(corners) != len(seen) {
		panic(fmt.Errorf("%w: G3 set does not factor: |edges|=%d * |corners|=%d != |full|=%d",
			solvererr.ErrInvariantViolated, len(edges), len(corners), len(seen)))
	}
	return &g3Set{edges: edges, corners: corners}
}

func (g *g3Set) hasEdges(e substate.EdgePerm) bool {
	_, ok := g.edges[e]
	return ok
}

func (g *g3Set) hasCorners(c substate.CornerPerm) bool {
	_, ok := g.corners[c]
	return ok
}

func (g *g3Set) edgeGoals() []substate.EdgePerm {
	goals := make([]substate.EdgePerm, 0, len(g.edges))
	for e := range g.edges {
		goals = append(goals, e)
	}
	return goals
}

func (g *g3Set) cornerGoals() []substate.CornerPerm {
	goals := make([]substate.CornerPerm, 0, len(g.corners))
	for c := range g.corners {
		goals = append(goals, c)
	}
	return goals
}
