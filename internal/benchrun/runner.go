package benchrun

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/cube-groups/solver/internal/benchstore"
	"github.com/cube-groups/solver/internal/cube"
	"github.com/cube-groups/solver/internal/solve"
)

// ProgressEvent reports one (scramble, algorithm) pair finishing, for a
// caller that wants to render progress as the run goes rather than
// waiting for Run to return everything at once.
type ProgressEvent struct {
	Scramble  string
	Algorithm solve.Algorithm
	Index     int
	Total     int
	Result    *solve.Result
	Err       error
}

type job struct {
	scramble string
	algo     solve.Algorithm
	index    int
}

// Run solves every scramble in Corpus with both algorithms across a
// worker pool sized to GOMAXPROCS, sharing e's already-built heuristic
// caches read-only across goroutines. If progress is non-nil, one event
// is sent per finished (scramble, algorithm) pair; Run closes nothing on
// progress, the caller owns it. ctx is checked between jobs so a caller
// (the web server's streaming endpoint) can cancel a run in progress.
func Run(ctx context.Context, e *solve.Engine, progress chan<- ProgressEvent) (*benchstore.Run, error) {
	e.Warm()

	algos := []solve.Algorithm{solve.Thistlethwaite, solve.Kociemba}
	jobs := make(chan job)
	total := len(Corpus) * len(algos)

	type outcome struct {
		job    job
		result *solve.Result
		err    error
	}
	outcomes := make(chan outcome, total)

	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				c, err := cube.NewSolvedCubeOriented(cube.Green, cube.Yellow)
				if err == nil {
					var moves []cube.Move
					moves, err = cube.ParseScramble(j.scramble)
					if err == nil {
						c.ApplyMoves(moves)
					}
				}
				var result *solve.Result
				if err == nil {
					result, err = e.Solve(c, j.algo)
				}
				outcomes <- outcome{job: j, result: result, err: err}
			}
		}()
	}

	start := time.Now()
	go func() {
		defer close(jobs)
		for i, scramble := range Corpus {
			for _, algo := range algos {
				select {
				case <-ctx.Done():
					return
				case jobs <- job{scramble: scramble, algo: algo, index: i}:
				}
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	run := &benchstore.Run{
		StartedAt: start,
		Results:   make([]benchstore.ScrambleResult, 0, total),
	}

	received := 0
	for o := range outcomes {
		received++
		if o.err != nil {
			return nil, fmt.Errorf("benchmark scramble %q (%s): %w", o.job.scramble, o.job.algo, o.err)
		}

		res := benchstore.ScrambleResult{
			Scramble:     o.job.scramble,
			Algorithm:    string(o.job.algo),
			StageLengths: o.result.StageLengths,
			Duration:     o.result.Duration,
		}
		run.Results = append(run.Results, res)

		switch o.job.algo {
		case solve.Thistlethwaite:
			if res.Duration > run.WorstThistleDuration {
				run.WorstThistleDuration = res.Duration
				run.WorstThistleScramble = res.Scramble
			}
		case solve.Kociemba:
			if res.Duration > run.WorstKociembaDuration {
				run.WorstKociembaDuration = res.Duration
				run.WorstKociembaScramble = res.Scramble
			}
		}

		if progress != nil {
			progress <- ProgressEvent{
				Scramble:  o.job.scramble,
				Algorithm: o.job.algo,
				Index:     received,
				Total:     total,
				Result:    o.result,
			}
		}
	}

	if ctx.Err() != nil && received < total {
		return nil, fmt.Errorf("benchmark run cancelled after %d/%d: %w", received, total, ctx.Err())
	}

	run.Duration = time.Since(start)
	run.ID = benchstore.NewRunID()
	return run, nil
}
