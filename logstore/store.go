// Package logstore persists event logs in a SQLite database, so large XES
// imports can be parsed once and mined many times.
package logstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/xelahalo/process-mining/eventlog"
)

// Store errors.
var (
	// ErrLogNotFound is returned when the named log does not exist.
	ErrLogNotFound = errors.New("log not found")

	// ErrLogExists is returned when saving under a name already in use.
	ErrLogExists = errors.New("log already exists")
)

// Store handles SQLite persistence of event logs.
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a structured logger; the default store is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.log = logger
	}
}

// Open opens (creating if needed) a store at the given database path.
// Pass ":memory:" for an ephemeral store.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// In-memory databases exist per connection; keep the pool at one so
	// every statement sees the same database.
	db.SetMaxOpenConns(1)

	store := &Store{db: db, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(store)
	}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS logs (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS events (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		log_id    INTEGER NOT NULL REFERENCES logs(id) ON DELETE CASCADE,
		case_id   TEXT NOT NULL,
		seq       INTEGER NOT NULL,
		activity  TEXT NOT NULL,
		ts        TEXT,
		cost      INTEGER NOT NULL DEFAULT 0,
		resources TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_events_log_case ON events(log_id, case_id, seq);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	_, err := s.db.Exec("PRAGMA foreign_keys = ON")
	return err
}

// SaveLog stores an event log under the given name. Saving under an
// existing name fails with ErrLogExists.
func (s *Store) SaveLog(ctx context.Context, name string, log *eventlog.EventLog) error {
	if exists, err := s.exists(ctx, name); err != nil {
		return err
	} else if exists {
		return fmt.Errorf("%w: %s", ErrLogExists, name)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO logs (name, created_at) VALUES (?, ?)",
		name, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	logID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("log id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO events (log_id, case_id, seq, activity, ts, cost, resources) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	total := 0
	for _, trace := range log.Traces() {
		for seq, event := range trace.Events {
			ts := ""
			if !event.Timestamp.IsZero() {
				ts = event.Timestamp.Format(time.RFC3339Nano)
			}
			resources, err := json.Marshal(event.Resources)
			if err != nil {
				return fmt.Errorf("encode resources: %w", err)
			}
			if _, err := stmt.ExecContext(ctx, logID, trace.CaseID, seq, event.Activity, ts, event.Cost, string(resources)); err != nil {
				return fmt.Errorf("insert event: %w", err)
			}
			total++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.log.Debug().Str("name", name).Int("cases", log.NumCases()).Int("events", total).Msg("saved event log")
	return nil
}

// LoadLog retrieves a stored event log by name.
func (s *Store) LoadLog(ctx context.Context, name string) (*eventlog.EventLog, error) {
	var logID int64
	err := s.db.QueryRowContext(ctx, "SELECT id FROM logs WHERE name = ?", name).Scan(&logID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrLogNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("query log: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT case_id, activity, ts, cost, resources FROM events WHERE log_id = ? ORDER BY case_id, seq",
		logID)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	log := eventlog.NewEventLog()
	for rows.Next() {
		var caseID, activity, ts, resources string
		var cost int
		if err := rows.Scan(&caseID, &activity, &ts, &cost, &resources); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}

		event := eventlog.Event{CaseID: caseID, Activity: activity, Cost: cost}
		if ts != "" {
			if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
				event.Timestamp = parsed
			}
		}
		if resources != "" {
			if err := json.Unmarshal([]byte(resources), &event.Resources); err != nil {
				return nil, fmt.Errorf("decode resources: %w", err)
			}
		}
		log.AddEvent(event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	s.log.Debug().Str("name", name).Int("cases", log.NumCases()).Msg("loaded event log")
	return log, nil
}

// ListLogs returns the names of all stored logs, sorted.
func (s *Store) ListLogs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM logs ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteLog removes a stored log and its events.
func (s *Store) DeleteLog(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM logs WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete log: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrLogNotFound, name)
	}

	s.log.Debug().Str("name", name).Msg("deleted event log")
	return nil
}

func (s *Store) exists(ctx context.Context, name string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM logs WHERE name = ?", name).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query log: %w", err)
	}
	return true, nil
}
