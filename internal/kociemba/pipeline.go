// Package kociemba implements the two-stage Kociemba descent H0 -> H1 ->
// H2, sharing every primitive (sub-states, the heuristic cache builder,
// the IDA* driver) with the Thistlethwaite pipeline in
// internal/thistlethwaite. The two stages here use bigger depth caps than
// any single Thistlethwaite stage because H1's goal folds three
// sub-states into one search, and H2 is solving for full permutation
// parity in one shot rather than two.
package kociemba

import (
	"fmt"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/heuristic"
	"github.com/cube-groups/solver/internal/search"
	"github.com/cube-groups/solver/internal/solvererr"
	"github.com/cube-groups/solver/internal/substate"
)

var (
	h0h1Generator = search.Generator{Free: []search.Dir{
		cube.Front, cube.Back, cube.Left, cube.Right, cube.Up, cube.Down,
	}}
	h1h2Generator = search.Generator{
		Free: []search.Dir{cube.Left, cube.Right},
		Half: []search.Dir{cube.Up, cube.Down, cube.Front, cube.Back},
	}
)

const (
	h0h1Cap = 17
	h1h2Cap = 18

	// Capped product heuristic fuel: a memory/speed knob, not a
	// correctness property. Kept at the source's values.
	h0h1ProductFuel = 6
	h1h2ProductFuel = 7
)

// Pipeline holds every precomputed per-factor heuristic cache plus the
// two capped product caches that tighten them near the goal.
type Pipeline struct {
	edgeOrient   *heuristic.Cache[substate.EdgeOrient]
	cornerOrient *heuristic.Cache[substate.CornerOrient]
	edgeSlice    *heuristic.Cache[substate.EdgeMidSlice]
	h0h1Product  *heuristic.Cache[orientTriple]

	edgePerm    *heuristic.Cache[substate.EdgePerm]
	cornerPerm  *heuristic.Cache[substate.CornerPerm]
	h1h2Product *heuristic.Cache[substate.CubePositions]
}

// NewPipeline builds every cache for both stages.
func NewPipeline() *Pipeline {
	solvedTriple := orientTriple{
		EO: substate.SolvedEdgeOrient(),
		CO: substate.SolvedCornerOrient(),
		ES: substate.SolvedEdgeMidSlice(),
	}
	return &Pipeline{
		edgeOrient:   heuristic.Build([]substate.EdgeOrient{substate.SolvedEdgeOrient()}, h0h1Generator, -1),
		cornerOrient: heuristic.Build([]substate.CornerOrient{substate.SolvedCornerOrient()}, h0h1Generator, -1),
		edgeSlice:    heuristic.Build([]substate.EdgeMidSlice{substate.SolvedEdgeMidSlice()}, h0h1Generator, -1),
		h0h1Product:  heuristic.Build([]orientTriple{solvedTriple}, h0h1Generator, h0h1ProductFuel),

		edgePerm:    heuristic.Build([]substate.EdgePerm{substate.SolvedEdgePerm()}, h1h2Generator, -1),
		cornerPerm:  heuristic.Build([]substate.CornerPerm{substate.SolvedCornerPerm()}, h1h2Generator, -1),
		h1h2Product: heuristic.Build([]substate.CubePositions{substate.SolvedCubePositions()}, h1h2Generator, h1h2ProductFuel),
	}
}

func maxInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func (p *Pipeline) solveH0H1(c *cube.Cube) ([]search.Move, error) {
	s := orientTriple{
		EO: substate.EdgeOrientFromCube(c),
		CO: substate.CornerOrientFromCube(c),
		ES: substate.EdgeMidSliceFromCube(c),
	}
	h := func(s orientTriple) int {
		return maxInt(
			p.edgeOrient.Evaluate(s.EO),
			p.cornerOrient.Evaluate(s.CO),
			p.edgeSlice.Evaluate(s.ES),
			p.h0h1Product.Evaluate(s),
		)
	}
	return search.Solve(s, search.Problem[orientTriple]{
		Generator: h0h1Generator,
		IsGoal:    orientTriple.isSolved,
		Heuristic: h,
		MaxFuel:   h0h1Cap,
	})
}

func (p *Pipeline) solveH1H2(c *cube.Cube) ([]search.Move, error) {
	s := substate.CubePositionsFromCube(c)
	h := func(s substate.CubePositions) int {
		return maxInt(
			p.edgePerm.Evaluate(s.Edges),
			p.cornerPerm.Evaluate(s.Corners),
			p.h1h2Product.Evaluate(s),
		)
	}
	return search.Solve(s, search.Problem[substate.CubePositions]{
		Generator: h1h2Generator,
		IsGoal:    substate.CubePositions.IsSolved,
		Heuristic: h,
		MaxFuel:   h1h2Cap,
	})
}

// Result is a full two-stage run: the concatenated solution plus each
// stage's individual contribution.
type Result struct {
	Moves  []search.Move
	Stages [2][]search.Move
}

// Solve runs both stages in sequence against a clone of c.
func (p *Pipeline) Solve(c *cube.Cube) (*Result, error) {
	work := c.Clone()
	stageFns := [2]func(*cube.Cube) ([]search.Move, error){p.solveH0H1, p.solveH1H2}

	var res Result
	for i, fn := range stageFns {
		moves, err := fn(work)
		if err != nil {
			return nil, fmt.Errorf("kociemba stage %d: %w", i, err)
		}
		res.Stages[i] = moves
		res.Moves = append(res.Moves, moves...)
		for _, m := range moves {
			work.ApplyMove(m.ToCubeMove())
		}
	}

	if !work.IsSolved() {
		return nil, fmt.Errorf("%w: kociemba pipeline finished without solving the cube", solvererr.ErrInvariantViolated)
	}
	return &res, nil
}
