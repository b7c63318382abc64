package heuristic_test

import (
	"testing"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/heuristic"
	"github.com/cube-groups/solver/internal/search"
	"github.com/cube-groups/solver/internal/substate"
	"github.com/stretchr/testify/require"
)

var allSixFree = search.Generator{Free: []search.Dir{
	cube.Front, cube.Back, cube.Left, cube.Right, cube.Up, cube.Down,
}}

func TestBuildEdgeOrientUncapped(t *testing.T) {
	cache := heuristic.Build([]substate.EdgeOrient{substate.SolvedEdgeOrient()}, allSixFree, -1)
	require.Equal(t, 0, cache.Evaluate(substate.SolvedEdgeOrient()))
	require.LessOrEqual(t, cache.Len(), 2048)
}

func TestCappedCacheMissReportsFuelPlusOne(t *testing.T) {
	goal := substate.SolvedEdgeOrient()
	cache := heuristic.Build([]substate.EdgeOrient{goal}, allSixFree, 0)
	// Fuel 0 only ever enqueues the goal itself; anything else is a miss
	// and must be reported as fuel+1 = 1, never left at the zero value.
	oneAway := search.Apply(goal, search.Move{Dir: cube.Up, Amt: search.One})
	require.Equal(t, 1, cache.Evaluate(oneAway))
}

func TestBuildAdmissibleAgainstBruteForce(t *testing.T) {
	goal := substate.SolvedEdgeOrient()
	cache := heuristic.Build([]substate.EdgeOrient{goal}, allSixFree, -1)
	// A state one U turn away from solved must have estimated distance <= 1.
	one := search.Apply(goal, search.Move{Dir: cube.Up, Amt: search.One})
	require.LessOrEqual(t, cache.Evaluate(one), 1)
}
