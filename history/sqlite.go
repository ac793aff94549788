package history

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteSink is an optional durable History sink: each entry passed to its
// Append is written to a SQLite table so a log survives process restarts.
// Log does not call it; callers append to it alongside Log, whose in-memory
// slices remain the source of truth for LatticeAt during the lifetime of
// one process.
type SQLiteSink struct {
	db  *sql.DB
	run uuid.UUID
}

// OpenSQLiteSink opens (creating if needed) a SQLite database at path and
// prepares the history table for runID. Complexity: O(1) plus driver I/O.
func OpenSQLiteSink(path string, runID uuid.UUID) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	const schema = `
CREATE TABLE IF NOT EXISTS history_entries (
	run_id   TEXT NOT NULL,
	step     INTEGER NOT NULL,
	vertex   INTEGER NOT NULL,
	new_id   INTEGER NOT NULL,
	new_type INTEGER NOT NULL,
	snapshot BLOB
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteSink{db: db, run: runID}, nil
}

// Append persists one entry under the sink's run identifier.
func (s *SQLiteSink) Append(ctx context.Context, e Entry) error {
	const stmt = `INSERT INTO history_entries (run_id, step, vertex, new_id, new_type, snapshot) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, stmt, s.run.String(), e.Step, e.Vertex, e.NewID, e.NewType, e.Snapshot)
	return err
}

// LoadRun reads back every entry persisted under runID in the order it was
// appended,
// suitable for seeding Log.LoadEntries after a process restart.
func LoadRun(ctx context.Context, db *sql.DB, runID uuid.UUID) ([]Entry, error) {
	const q = `SELECT step, vertex, new_id, new_type, snapshot FROM history_entries WHERE run_id = ? ORDER BY rowid ASC`
	rows, err := db.QueryContext(ctx, q, runID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Step, &e.Vertex, &e.NewID, &e.NewType, &e.Snapshot); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Close releases the underlying database handle.
func (s *SQLiteSink) Close() error { return s.db.Close() }

// RunID reports the run identifier entries are tagged with.
func (s *SQLiteSink) RunID() uuid.UUID { return s.run }
