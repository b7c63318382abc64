package benchrun_test

import (
	"context"
	"testing"

	"github.com/cube-groups/solver/internal/benchrun"
	"github.com/cube-groups/solver/internal/solve"
	"github.com/stretchr/testify/require"
)

func TestRunSolvesEveryScrambleWithBothAlgorithms(t *testing.T) {
	e := solve.NewEngine()
	progress := make(chan benchrun.ProgressEvent, len(benchrun.Corpus)*2)

	run, err := benchrun.Run(context.Background(), e, progress)
	close(progress)
	require.NoError(t, err)

	require.Len(t, run.Results, len(benchrun.Corpus)*2)
	require.NotEmpty(t, run.ID)
	require.NotEmpty(t, run.WorstThistleScramble)
	require.NotEmpty(t, run.WorstKociembaScramble)

	seen := 0
	for range progress {
		seen++
	}
	require.Equal(t, len(benchrun.Corpus)*2, seen)
}

func TestRunIsCancellable(t *testing.T) {
	e := solve.NewEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := benchrun.Run(ctx, e, nil)
	require.Error(t, err)
}
