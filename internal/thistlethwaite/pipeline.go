// Package thistlethwaite implements the four-stage Thistlethwaite
// group-descent solver G0 -> G1 -> G2 -> G3 -> G4, each stage a concrete
// (generator, goal predicate, heuristic, depth cap) tuple fed to the
// shared IDA* driver in internal/search.
package thistlethwaite

import (
	"fmt"
	"log/slog"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/heuristic"
	"github.com/cube-groups/solver/internal/search"
	"github.com/cube-groups/solver/internal/solvererr"
	"github.com/cube-groups/solver/internal/substate"
)

var (
	g0g1Generator = search.Generator{Free: []search.Dir{
		cube.Front, cube.Back, cube.Left, cube.Right, cube.Up, cube.Down,
	}}
	g1g2Generator = search.Generator{
		Free: []search.Dir{cube.Left, cube.Right, cube.Front, cube.Back},
		Half: []search.Dir{cube.Up, cube.Down},
	}
	g2g3Generator = search.Generator{
		Free: []search.Dir{cube.Left, cube.Right},
		Half: []search.Dir{cube.Up, cube.Down, cube.Front, cube.Back},
	}
	g3g4Generator = halfTurnGenerator
)

// Depth caps per stage. The G0->G1 true optimum under "all six moves
// free" is 7; the cap here is kept at 8 as a one-move safety margin (see
// DESIGN.md), and Solve logs whenever a solve actually needs the eighth
// move so the bound can be tightened later from real data instead of a
// guess.
const (
	g0g1Cap = 8
	g1g2Cap = 11
	g2g3Cap = 13
	g3g4Cap = 16
)

// Pipeline holds every precomputed heuristic cache and the G3 goal set.
// Build once at startup (≈ hundreds of milliseconds); Solve may then be
// called for any number of concrete cubes, reading the caches but never
// mutating them.
type Pipeline struct {
	edgeOrient   *heuristic.Cache[substate.EdgeOrient]
	cornerOrient *heuristic.Cache[substate.CornerOrient]
	edgeSlice    *heuristic.Cache[substate.EdgeMidSlice]
	g3           *g3Set
	g3Edges      *heuristic.Cache[substate.EdgePerm]
	g3Corners    *heuristic.Cache[substate.CornerPerm]
	edgePerm     *heuristic.Cache[substate.EdgePerm]
	cornerPerm   *heuristic.Cache[substate.CornerPerm]
}

// NewPipeline builds every stage's heuristic cache and the G3 goal set.
func NewPipeline() *Pipeline {
	g3 := buildG3Set()
	return &Pipeline{
		edgeOrient:   heuristic.Build([]substate.EdgeOrient{substate.SolvedEdgeOrient()}, g0g1Generator, -1),
		cornerOrient: heuristic.Build([]substate.CornerOrient{substate.SolvedCornerOrient()}, g1g2Generator, -1),
		edgeSlice:    heuristic.Build([]substate.EdgeMidSlice{substate.SolvedEdgeMidSlice()}, g1g2Generator, -1),
		g3:           g3,
		g3Edges:      heuristic.Build(g3.edgeGoals(), g2g3Generator, -1),
		g3Corners:    heuristic.Build(g3.cornerGoals(), g2g3Generator, -1),
		edgePerm:     heuristic.Build([]substate.EdgePerm{substate.SolvedEdgePerm()}, g3g4Generator, -1),
		cornerPerm:   heuristic.Build([]substate.CornerPerm{substate.SolvedCornerPerm()}, g3g4Generator, -1),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (p *Pipeline) solveG0G1(c *cube.Cube) ([]search.Move, error) {
	s := substate.EdgeOrientFromCube(c)
	moves, err := search.Solve(s, search.Problem[substate.EdgeOrient]{
		Generator: g0g1Generator,
		IsGoal:    substate.EdgeOrient.IsSolved,
		Heuristic: p.edgeOrient.Evaluate,
		MaxFuel:   g0g1Cap,
	})
	if err == nil && len(moves) >= 8 {
		slog.Debug("thistlethwaite G0->G1 consumed the full safety-margin fuel", "moves", len(moves))
	}
	return moves, err
}

func (p *Pipeline) solveG1G2(c *cube.Cube) ([]search.Move, error) {
	s := orientPair{CO: substate.CornerOrientFromCube(c), ES: substate.EdgeMidSliceFromCube(c)}
	h := func(s orientPair) int {
		return maxInt(p.cornerOrient.Evaluate(s.CO), p.edgeSlice.Evaluate(s.ES))
	}
	return search.Solve(s, search.Problem[orientPair]{
		Generator: g1g2Generator,
		IsGoal:    orientPair.isSolved,
		Heuristic: h,
		MaxFuel:   g1g2Cap,
	})
}

func (p *Pipeline) solveG2G3(c *cube.Cube) ([]search.Move, error) {
	s := substate.CubePositionsFromCube(c)
	isGoal := func(s substate.CubePositions) bool {
		return p.g3.hasEdges(s.Edges) && p.g3.hasCorners(s.Corners)
	}
	h := func(s substate.CubePositions) int {
		return maxInt(p.g3Edges.Evaluate(s.Edges), p.g3Corners.Evaluate(s.Corners))
	}
	return search.Solve(s, search.Problem[substate.CubePositions]{
		Generator: g2g3Generator,
		IsGoal:    isGoal,
		Heuristic: h,
		MaxFuel:   g2g3Cap,
	})
}

func (p *Pipeline) solveG3G4(c *cube.Cube) ([]search.Move, error) {
	s := substate.CubePositionsFromCube(c)
	h := func(s substate.CubePositions) int {
		return maxInt(p.edgePerm.Evaluate(s.Edges), p.cornerPerm.Evaluate(s.Corners))
	}
	return search.Solve(s, search.Problem[substate.CubePositions]{
		Generator: g3g4Generator,
		IsGoal:    substate.CubePositions.IsSolved,
		Heuristic: h,
		MaxFuel:   g3g4Cap,
	})
}

// Result is a full pipeline run: the concatenated solution plus each
// stage's individual contribution, for CLI/benchmark per-stage reporting.
type Result struct {
	Moves  []search.Move
	Stages [4][]search.Move
}

// Solve runs all four stages in sequence against a clone of c, replaying
// each stage's move list onto the working cube before handing it to the
// next stage. It never mutates c itself.
func (p *Pipeline) Solve(c *cube.Cube) (*Result, error) {
	work := c.Clone()
	stageFns := [4]func(*cube.Cube) ([]search.Move, error){
		p.solveG0G1, p.solveG1G2, p.solveG2G3, p.solveG3G4,
	}

	var res Result
	for i, fn := range stageFns {
		moves, err := fn(work)
		if err != nil {
			return nil, fmt.Errorf("thistlethwaite stage %d: %w", i, err)
		}
		res.Stages[i] = moves
		res.Moves = append(res.Moves, moves...)
		for _, m := range moves {
			work.ApplyMove(m.ToCubeMove())
		}
	}

	if !work.IsSolved() {
		return nil, fmt.Errorf("%w: thistlethwaite pipeline finished without solving the cube", solvererr.ErrInvariantViolated)
	}
	return &res, nil
}
