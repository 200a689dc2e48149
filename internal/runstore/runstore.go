// SPDX-License-Identifier: MIT

// Package runstore keeps a history of gthsolve results in a SQLite database.
//
// The pure-Go modernc.org/sqlite driver is used by default; build with
// -tags cgo_sqlite to switch to github.com/mattn/go-sqlite3.
package runstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/stationary/internal/chainfile"
)

// ErrInvalidLimit indicates a non-positive limit passed to Recent.
var ErrInvalidLimit = errors.New("runstore: limit must be >= 1")

const schemaSolves = `
CREATE TABLE IF NOT EXISTS solves (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    solved_at      TEXT    NOT NULL,
    name           TEXT    NOT NULL,
    states         INTEGER NOT NULL,
    kind           TEXT    NOT NULL,
    closed_classes INTEGER NOT NULL,
    residual       REAL    NOT NULL,
    distribution   TEXT    NOT NULL
);
`

const (
	queryInsert = `INSERT INTO solves (solved_at, name, states, kind, closed_classes, residual, distribution)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	queryRecent = `SELECT id, solved_at, name, states, kind, closed_classes, residual, distribution
FROM solves ORDER BY id DESC LIMIT ?`
)

// Run is one stored result.
type Run struct {
	ID       int64
	SolvedAt time.Time
	chainfile.Report
}

// Store records reports. It is safe for concurrent use.
type Store struct {
	db         *sql.DB
	stmtInsert *sql.Stmt
	stmtRecent *sql.Stmt
	now        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithNow replaces the timestamp source, useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (creating if needed) the database at dataSource and prepares
// the schema. The caller must Close the store.
func Open(ctx context.Context, dataSource string, opts ...Option) (*Store, error) {
	db, err := openDB(dataSource)
	if err != nil {
		return nil, fmt.Errorf("runstore: open %s: %w", dataSource, err)
	}
	// SQLite allows one writer; a single connection serializes Save calls.
	db.SetMaxOpenConns(1)
	if _, err = db.ExecContext(ctx, schemaSolves); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("runstore: could not create schema: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.stmtInsert, err = db.PrepareContext(ctx, queryInsert); err != nil {
		_ = s.Close()

		return nil, fmt.Errorf("runstore: prepare insert: %w", err)
	}
	if s.stmtRecent, err = db.PrepareContext(ctx, queryRecent); err != nil {
		_ = s.Close()

		return nil, fmt.Errorf("runstore: prepare recent: %w", err)
	}

	return s, nil
}

// Save appends r and returns its id.
func (s *Store) Save(ctx context.Context, r chainfile.Report) (int64, error) {
	dist, err := json.Marshal(r.Distribution)
	if err != nil {
		return 0, fmt.Errorf("runstore: encode distribution: %w", err)
	}
	res, err := s.stmtInsert.ExecContext(ctx,
		s.now().UTC().Format(time.RFC3339Nano), r.Name, r.States, r.Kind, r.ClosedClasses, r.Residual, string(dist))
	if err != nil {
		return 0, fmt.Errorf("runstore: insert %q: %w", r.Name, err)
	}

	return res.LastInsertId()
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}
	rows, err := s.stmtRecent.QueryContext(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("runstore: query: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var run Run
		var solvedAt, dist string
		if err = rows.Scan(&run.ID, &solvedAt, &run.Name, &run.States, &run.Kind,
			&run.ClosedClasses, &run.Residual, &dist); err != nil {
			return nil, fmt.Errorf("runstore: scan: %w", err)
		}
		if run.SolvedAt, err = time.Parse(time.RFC3339Nano, solvedAt); err != nil {
			return nil, fmt.Errorf("runstore: run %d: %w", run.ID, err)
		}
		if err = json.Unmarshal([]byte(dist), &run.Distribution); err != nil {
			return nil, fmt.Errorf("runstore: run %d: %w", run.ID, err)
		}
		out = append(out, run)
	}

	return out, rows.Err()
}

// Close releases the prepared statements and the database handle.
func (s *Store) Close() error {
	var errs []error
	for _, st := range []*sql.Stmt{s.stmtInsert, s.stmtRecent} {
		if st != nil {
			errs = append(errs, st.Close())
		}
	}
	errs = append(errs, s.db.Close())

	return errors.Join(errs...)
}
