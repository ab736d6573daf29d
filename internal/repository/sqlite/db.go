// Package sqlite contains the SQLite implementation of repository interfaces.
//
// The whole library lives in a single database file. Every operation
// takes a store-wide lock: correctness over throughput, which is the
// right trade for a personal, low-concurrency deployment.
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	// Register sqlite driver
	_ "modernc.org/sqlite"
)

// Store implements repository.RecordRepository on a single SQLite file.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (or creates) the database file and applies connection pragmas.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	// All access is serialized behind s.mu anyway; a single connection
	// keeps the per-connection pragmas in effect for every query.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		`PRAGMA journal_mode=WAL`,
		`PRAGMA busy_timeout=5000`,
		`PRAGMA synchronous=NORMAL`,
		`PRAGMA foreign_keys=ON`,
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for migrations.
func (s *Store) DB() *sql.DB {
	return s.db
}

// timeFmt is ISO-8601 with millisecond precision, always UTC. The fixed
// width makes lexical comparison in SQL agree with chronological order,
// which the modified-since queries depend on.
const timeFmt = "2006-01-02T15:04:05.000Z"

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeFmt)
}

func decodeTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(timeFmt, s)
	if err != nil {
		// Accept full RFC 3339 written by older clients.
		t, err = time.Parse(time.RFC3339Nano, s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}
