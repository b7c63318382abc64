// Package solve is the single place that turns a concrete cube.Cube into a
// solution, fronting the thistlethwaite and kociemba pipelines (and the
// white-cross mask solver) behind one entry point shared by the CLI, the
// web server, and the benchmark harness.
package solve

import (
	"fmt"
	"sync"
	"time"

	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/kociemba"
	"github.com/cube-groups/solver/internal/mask"
	"github.com/cube-groups/solver/internal/search"
	"github.com/cube-groups/solver/internal/thistlethwaite"
)

// Algorithm names a full solving pipeline.
type Algorithm string

const (
	Thistlethwaite Algorithm = "thistlethwaite"
	Kociemba       Algorithm = "kociemba"
)

// ParseAlgorithm validates a CLI/JSON algorithm name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case Thistlethwaite, Kociemba:
		return Algorithm(s), nil
	default:
		return "", fmt.Errorf("unknown algorithm %q: want %q or %q", s, Thistlethwaite, Kociemba)
	}
}

// Result is one solve's move list plus a per-stage breakdown, the shape
// both the CLI and the web JSON response render.
type Result struct {
	Moves        []cube.Move
	StageLengths []int
	Duration     time.Duration
}

// Engine builds each pipeline's heuristic caches at most once, the first
// time that pipeline is actually needed, and shares them across every
// later Solve call. Building both pipelines takes roughly a second
// combined; a long-lived Engine (one per web server, one per benchmark
// run) amortizes that over many solves instead of paying it per request.
type Engine struct {
	thistleOnce sync.Once
	thistle     *thistlethwaite.Pipeline

	kociembaOnce sync.Once
	koci         *kociemba.Pipeline
}

// NewEngine returns an Engine with no caches built yet.
func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) thistlethwaitePipeline() *thistlethwaite.Pipeline {
	e.thistleOnce.Do(func() { e.thistle = thistlethwaite.NewPipeline() })
	return e.thistle
}

func (e *Engine) kociembaPipeline() *kociemba.Pipeline {
	e.kociembaOnce.Do(func() { e.koci = kociemba.NewPipeline() })
	return e.koci
}

// Warm forces both pipelines' caches to build now rather than on first
// Solve call. The benchmark harness uses this so cache-build time never
// pollutes a recorded run's timings.
func (e *Engine) Warm() {
	e.thistlethwaitePipeline()
	e.kociembaPipeline()
}

// Solve runs algo's full pipeline against c and returns its solution as
// concrete cube moves, ready to print or replay.
func (e *Engine) Solve(c *cube.Cube, algo Algorithm) (*Result, error) {
	start := time.Now()
	switch algo {
	case Thistlethwaite:
		res, err := e.thistlethwaitePipeline().Solve(c)
		if err != nil {
			return nil, err
		}
		return toResult(res.Moves, res.Stages[:], start), nil
	case Kociemba:
		res, err := e.kociembaPipeline().Solve(c)
		if err != nil {
			return nil, err
		}
		return toResult(res.Moves, res.Stages[:], start), nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q: want %q or %q", algo, Thistlethwaite, Kociemba)
	}
}

// SolveWhiteCross projects c to its white-cross mask and solves just that
// subgoal, per the --mask white-cross flag.
func (e *Engine) SolveWhiteCross(c *cube.Cube) (*Result, error) {
	start := time.Now()
	moves, err := mask.SolveWC(c)
	if err != nil {
		return nil, err
	}
	return toResult(moves, [][]search.Move{moves}, start), nil
}

func toResult(moves []search.Move, stages [][]search.Move, start time.Time) *Result {
	out := make([]cube.Move, len(moves))
	for i, m := range moves {
		out[i] = m.ToCubeMove()
	}
	lengths := make([]int, len(stages))
	for i, s := range stages {
		lengths[i] = len(s)
	}
	return &Result{Moves: out, StageLengths: lengths, Duration: time.Since(start)}
}
