package benchstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScrambleResult is one scramble's timing against one algorithm within a
// benchmark run.
type ScrambleResult struct {
	Scramble     string
	Algorithm    string
	StageLengths []int
	Duration     time.Duration
}

// Run is a full benchmark run's summary: every per-scramble result plus
// each algorithm's worst case, tagged with a uuid so a websocket stream of
// the same run can share its id with the persisted row.
type Run struct {
	ID                    string
	StartedAt             time.Time
	Duration              time.Duration
	Results               []ScrambleResult
	WorstThistleScramble  string
	WorstThistleDuration  time.Duration
	WorstKociembaScramble string
	WorstKociembaDuration time.Duration
}

// NewRunID generates the uuid used both as the SQLite primary key and as
// a websocket stream's session id, so a client can correlate the two.
func NewRunID() string {
	return uuid.New().String()
}

// Repository persists and retrieves benchmark runs.
type Repository struct {
	db *DB
}

// NewRepository wraps db for benchmark-run access.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Record inserts run and every one of its per-scramble results inside a
// single transaction.
func (r *Repository) Record(run Run) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin benchmark transaction: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO benchmark_runs (
			run_id, started_at, duration_ms, scramble_count,
			worst_thistle_scramble, worst_thistle_ms,
			worst_kociemba_scramble, worst_kociemba_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt.UTC().Format(time.RFC3339), run.Duration.Milliseconds(), len(run.Results),
		run.WorstThistleScramble, run.WorstThistleDuration.Milliseconds(),
		run.WorstKociembaScramble, run.WorstKociembaDuration.Milliseconds())
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("insert benchmark run: %w", err)
	}

	for _, res := range run.Results {
		stageJSON, err := json.Marshal(res.StageLengths)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("encode stage lengths: %w", err)
		}
		_, err = tx.Exec(`
			INSERT INTO benchmark_results (run_id, scramble, algorithm, stage_lengths, duration_ms)
			VALUES (?, ?, ?, ?, ?)
		`, run.ID, res.Scramble, res.Algorithm, string(stageJSON), res.Duration.Milliseconds())
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("insert benchmark result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit benchmark transaction: %w", err)
	}
	return nil
}

// RunSummary is one row of List's output: a run's headline stats without
// its per-scramble detail.
type RunSummary struct {
	ID                    string
	StartedAt             time.Time
	Duration              time.Duration
	ScrambleCount         int
	WorstThistleScramble  string
	WorstThistleDuration  time.Duration
	WorstKociembaScramble string
	WorstKociembaDuration time.Duration
}

// List returns the most recent runs, newest first.
func (r *Repository) List(limit int) ([]RunSummary, error) {
	rows, err := r.db.Query(`
		SELECT run_id, started_at, duration_ms, scramble_count,
			worst_thistle_scramble, worst_thistle_ms,
			worst_kociemba_scramble, worst_kociemba_ms
		FROM benchmark_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list benchmark runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var s RunSummary
		var startedAt string
		var durationMs, worstThistleMs, worstKociembaMs int64
		if err := rows.Scan(&s.ID, &startedAt, &durationMs, &s.ScrambleCount,
			&s.WorstThistleScramble, &worstThistleMs,
			&s.WorstKociembaScramble, &worstKociembaMs); err != nil {
			return nil, fmt.Errorf("scan benchmark run: %w", err)
		}
		s.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		s.Duration = time.Duration(durationMs) * time.Millisecond
		s.WorstThistleDuration = time.Duration(worstThistleMs) * time.Millisecond
		s.WorstKociembaDuration = time.Duration(worstKociembaMs) * time.Millisecond
		out = append(out, s)
	}
	return out, rows.Err()
}
