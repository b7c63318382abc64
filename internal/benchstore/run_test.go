package benchstore_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cube-groups/solver/internal/benchstore"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *benchstore.DB {
	t.Helper()
	db, err := benchstore.Open(filepath.Join(t.TempDir(), "bench.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndListRoundTripsARun(t *testing.T) {
	db := openTestDB(t)
	repo := benchstore.NewRepository(db)

	run := benchstore.Run{
		ID:        benchstore.NewRunID(),
		StartedAt: time.Date(2026, 7, 29, 12, 0, 0, 0, time.UTC),
		Duration:  2 * time.Second,
		Results: []benchstore.ScrambleResult{
			{Scramble: "R U F", Algorithm: "thistlethwaite", StageLengths: []int{3, 4, 2, 5}, Duration: 500 * time.Microsecond},
			{Scramble: "R U F", Algorithm: "kociemba", StageLengths: []int{8, 6}, Duration: 700 * time.Microsecond},
		},
		WorstThistleScramble:  "R U F",
		WorstThistleDuration:  500 * time.Microsecond,
		WorstKociembaScramble: "R U F",
		WorstKociembaDuration: 700 * time.Microsecond,
	}

	require.NoError(t, repo.Record(run))

	runs, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	require.Equal(t, run.ID, runs[0].ID)
	require.Equal(t, 2, runs[0].ScrambleCount)
	require.Equal(t, "R U F", runs[0].WorstThistleScramble)
}

func TestNewRunIDsAreUnique(t *testing.T) {
	a := benchstore.NewRunID()
	b := benchstore.NewRunID()
	require.NotEqual(t, a, b)
}
