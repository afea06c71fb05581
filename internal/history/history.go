// Package history keeps a local ledger of job runs: one row per spawned
// process, completed by the reaper once the process is collected. The
// ledger backs the history CLI command and the history.recent RPC; the
// daemon runs fine without it.
package history

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed migrations.sql
var migrationsFS embed.FS

// ErrDisabled is returned by all Store methods when the store is nil or
// closed, so callers can run with history recording switched off.
var ErrDisabled = errors.New("history store is disabled")

// Termination outcomes recorded by the reaper.
const (
	OutcomeExited   = "exited"
	OutcomeSignaled = "signaled"
	OutcomeStopped  = "stopped"
)

// Run is one row of the ledger. ReapedAt and Outcome stay zero until
// the reaper collects the process.
type Run struct {
	ID        int64
	JobName   string
	Pid       int
	FireTime  time.Time
	SpawnedAt time.Time
	ReapedAt  time.Time
	Outcome   string
	Detail    int
}

// Store is a SQLite-backed run ledger. A nil *Store is valid and makes
// every method return ErrDisabled.
type Store struct {
	db *sql.DB

	opCount    atomic.Uint64
	pruneEvery uint64
	keepRows   int
}

// Open opens (and if needed creates) the ledger database at path and
// applies the schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("history db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite prefers a small number of concurrent writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, _ = db.Exec("PRAGMA busy_timeout = 5000")
	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")

	st := &Store{db: db, pruneEvery: 500, keepRows: 1000}
	if err := st.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return st, nil
}

func (s *Store) migrate(ctx context.Context) error {
	b, err := migrationsFS.ReadFile("migrations.sql")
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, string(b))
	return err
}

// Close closes the underlying database. Safe on a nil store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// RecordSpawn inserts a row for a freshly spawned process.
func (s *Store) RecordSpawn(ctx context.Context, jobName string, pid int, fireTime, spawnedAt time.Time) error {
	if s == nil || s.db == nil {
		return ErrDisabled
	}
	if spawnedAt.IsZero() {
		spawnedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs(job_name, pid, fire_time, spawned_at) VALUES(?,?,?,?)`,
		jobName, pid, fireTime.Format(time.RFC3339Nano), spawnedAt.Format(time.RFC3339Nano),
	)
	if err == nil && s.opCount.Add(1)%s.pruneEvery == 0 {
		pctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		_ = s.prune(pctx)
		cancel()
	}
	return err
}

// RecordOutcome completes the newest open row for pid with the
// termination cause observed by the reaper. Collecting a child that was
// not spawned through the ledger (or whose row was pruned) is not an
// error; the update simply matches nothing.
func (s *Store) RecordOutcome(ctx context.Context, pid int, outcome string, detail int, reapedAt time.Time) error {
	if s == nil || s.db == nil {
		return ErrDisabled
	}
	if reapedAt.IsZero() {
		reapedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET reaped_at=?, outcome=?, detail=?
		 WHERE id = (SELECT id FROM runs WHERE pid=? AND reaped_at IS NULL ORDER BY id DESC LIMIT 1)`,
		reapedAt.Format(time.RFC3339Nano), outcome, detail, pid,
	)
	return err
}

// Recent returns up to limit runs, newest spawn first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if s == nil || s.db == nil {
		return nil, ErrDisabled
	}
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, job_name, pid, fire_time, spawned_at, reaped_at, outcome, detail
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r       Run
			fireTS  string
			spawnTS string
			reapTS  sql.NullString
			outcome sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.JobName, &r.Pid, &fireTS, &spawnTS, &reapTS, &outcome, &r.Detail); err != nil {
			return nil, err
		}
		if r.FireTime, err = parseTS(fireTS); err != nil {
			return nil, fmt.Errorf("run %d: %w", r.ID, err)
		}
		if r.SpawnedAt, err = parseTS(spawnTS); err != nil {
			return nil, fmt.Errorf("run %d: %w", r.ID, err)
		}
		if reapTS.Valid {
			if r.ReapedAt, err = parseTS(reapTS.String); err != nil {
				return nil, fmt.Errorf("run %d: %w", r.ID, err)
			}
		}
		if outcome.Valid {
			r.Outcome = outcome.String
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func parseTS(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// prune keeps the ledger bounded by dropping everything but the newest
// keepRows rows.
func (s *Store) prune(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (SELECT id FROM runs ORDER BY id DESC LIMIT ?)`,
		s.keepRows,
	)
	return err
}
