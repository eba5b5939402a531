// Package audit is an append-only log of HTTP-frontend tuple-space
// operations, owned entirely by the HTTP server. It is not consulted by
// internal/tuplespace and has no bearing on matching, expiry, or locking —
// it exists purely so an operator can answer "what happened" after the
// fact.
package audit

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded invocation of an HTTP tuple-space operation.
type Entry struct {
	Op            string // out, rd, inp, ls, clear
	PatternOrName string
	Mode          string // wait, once, the timeout seconds "<n>" as given, or "" for out/ls/clear
	Outcome       string // ok, no-match, timeout, invalid-argument, io-error
	Bytes         int64
	DurationMS    int64
	CreatedAt     time.Time
}

// Store wraps a SQLite-backed op_log table. Grounded on the teacher's
// internal/database.DatabaseInitializer (create-if-absent + migrations) and
// internal/repository.FileRepository (prepared statement wiring), retargeted
// from a file-metadata catalog to a single append-only log, and on
// internal/database.SafeQueryBuilder's parameterized-query discipline: every
// query here uses '?' placeholders, never string-built SQL.
type Store struct {
	db *sql.DB
}

// Open initializes (creating the containing directory and the table if
// absent) the audit database at dsn and returns a ready Store. dsn ":memory:"
// is accepted for tests.
func Open(dsn string) (*Store, error) {
	if dsn != ":memory:" {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("audit: create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("audit: open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("audit: ping database: %w", err)
	}

	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("audit: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS op_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	op TEXT NOT NULL,
	pattern_or_name TEXT NOT NULL,
	mode TEXT NOT NULL DEFAULT '',
	outcome TEXT NOT NULL,
	bytes INTEGER NOT NULL DEFAULT 0,
	duration_ms INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_op_log_created_at ON op_log(created_at);
`

// Record appends one entry. Callers (the HTTP handlers' recordOp) treat a failure
// here as non-fatal: log it and move on, never surface it to the client
// whose request already succeeded or failed on its own terms.
func (s *Store) Record(e Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO op_log (op, pattern_or_name, mode, outcome, bytes, duration_ms, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Op, e.PatternOrName, e.Mode, e.Outcome, e.Bytes, e.DurationMS, e.CreatedAt,
	)
	return err
}

// Recent returns the last limit entries, most recent first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT op, pattern_or_name, mode, outcome, bytes, duration_ms, created_at FROM op_log ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Op, &e.PatternOrName, &e.Mode, &e.Outcome, &e.Bytes, &e.DurationMS, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountByOutcome groups the log by outcome, for a quick /health-adjacent
// summary. op, if non-empty, restricts the count to one operation.
func (s *Store) CountByOutcome(op string) (map[string]int, error) {
	query := `SELECT outcome, COUNT(*) FROM op_log`
	args := []interface{}{}
	if op != "" {
		query += ` WHERE op = ?`
		args = append(args, op)
	}
	query += ` GROUP BY outcome`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, err
		}
		counts[outcome] = n
	}
	return counts, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// sanitizeForLog truncates a pattern/name value longer than 80 bytes to its
// first 80 bytes plus "...", mirroring the teacher's
// SafeQueryBuilder.LogSQLOperation truncation of long parameters. No caller
// in this module uses it; recordOp logs only the op name.
func sanitizeForLog(s string) string {
	const maxLen = 80
	if len(s) <= maxLen {
		return s
	}
	return strings.TrimSpace(s[:maxLen]) + "..."
}
