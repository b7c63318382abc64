// Package benchstore persists benchmark run summaries to a local SQLite
// database for later comparison across runs, an ambient logging concern
// layered on top of the solver core rather than a part of it.
package benchstore

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS benchmark_runs (
	run_id           TEXT PRIMARY KEY,
	started_at       TEXT NOT NULL,
	duration_ms      INTEGER NOT NULL,
	scramble_count   INTEGER NOT NULL,
	worst_thistle_scramble TEXT NOT NULL,
	worst_thistle_ms       INTEGER NOT NULL,
	worst_kociemba_scramble TEXT NOT NULL,
	worst_kociemba_ms       INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS benchmark_results (
	run_id        TEXT NOT NULL REFERENCES benchmark_runs(run_id),
	scramble      TEXT NOT NULL,
	algorithm     TEXT NOT NULL,
	stage_lengths TEXT NOT NULL,
	duration_ms   INTEGER NOT NULL
);
`

// DefaultPath returns the database path honored by --record: the
// CUBE_BENCHMARK_DB environment variable if set, otherwise
// ./cube-benchmark.db in the working directory.
func DefaultPath() string {
	if p := os.Getenv("CUBE_BENCHMARK_DB"); p != "" {
		return p
	}
	return "./cube-benchmark.db"
}

// DB wraps the SQLite connection used to persist benchmark runs.
type DB struct {
	*sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures its schema exists.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open benchmark database: %w", err)
	}
	if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply benchmark schema: %w", err)
	}
	return &DB{DB: conn}, nil
}
