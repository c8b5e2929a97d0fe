// Package store persists completed scans in an embedded SQLite database.
// Records are immutable once written; the only mutations are whole-record
// overwrite by id and explicit deletion.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/kozaktomas/glow-scan/internal/ai"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// ErrStorageUnavailable wraps every failure to open or write the
// underlying database file.
var ErrStorageUnavailable = errors.New("scan storage unavailable")

// schemaVersion gates one-time structural setup. Only version 1 exists;
// the switch in migrate is the extension point for future versions.
const schemaVersion = 1

// StoredScan is one persisted analysis event.
type StoredScan struct {
	ID        string            `json:"id"`
	Timestamp int64             `json:"timestamp"` // epoch milliseconds
	Image     string            `json:"image"`     // JPEG data URI captured at scan time
	Result    ai.AnalysisResult `json:"result"`
}

// Store is a durable record store keyed by scan id. The database is
// opened lazily on first use; Init may also be called explicitly and is
// an idempotent no-op on repeat calls.
type Store struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

func New(path string) *Store {
	return &Store{path: path}
}

// Init opens or creates the database file and applies the schema.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.handle(ctx)
	return err
}

func (s *Store) handle(ctx context.Context) (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrStorageUnavailable, s.path, err)
	}

	// WAL keeps concurrent reads cheap while a write is in flight.
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", ErrStorageUnavailable, err)
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	s.db = db
	return s.db, nil
}

// migrate applies version-gated schema setup.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)"); err != nil {
		return fmt.Errorf("%w: creating version table: %v", ErrStorageUnavailable, err)
	}

	var version int
	err := db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: reading schema version: %v", ErrStorageUnavailable, err)
	}

	switch version {
	case 0:
		if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("%w: applying schema: %v", ErrStorageUnavailable, err)
		}
		if _, err := db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("%w: recording schema version: %v", ErrStorageUnavailable, err)
		}
	case schemaVersion:
		// Up to date.
	default:
		return fmt.Errorf("%w: database schema version %d is newer than supported %d", ErrStorageUnavailable, version, schemaVersion)
	}

	return nil
}

// Put inserts or overwrites a record by id.
func (s *Store) Put(ctx context.Context, scan *StoredScan) error {
	db, err := s.handle(ctx)
	if err != nil {
		return err
	}

	resultJSON, err := json.Marshal(scan.Result)
	if err != nil {
		return fmt.Errorf("encoding scan result: %w", err)
	}

	query := `
		INSERT INTO scans (id, timestamp, image, result)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			timestamp = excluded.timestamp,
			image = excluded.image,
			result = excluded.result
	`
	if _, err := db.ExecContext(ctx, query, scan.ID, scan.Timestamp, scan.Image, string(resultJSON)); err != nil {
		return fmt.Errorf("%w: writing scan %s: %v", ErrStorageUnavailable, scan.ID, err)
	}
	return nil
}

// GetAll returns every record, unordered. Rows whose stored result no
// longer parses are skipped with a warning rather than failing the read.
func (s *Store) GetAll(ctx context.Context) ([]StoredScan, error) {
	db, err := s.handle(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, "SELECT id, timestamp, image, result FROM scans")
	if err != nil {
		return nil, fmt.Errorf("%w: reading scans: %v", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var scans []StoredScan
	for rows.Next() {
		var scan StoredScan
		var resultJSON string
		if err := rows.Scan(&scan.ID, &scan.Timestamp, &scan.Image, &resultJSON); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", ErrStorageUnavailable, err)
		}
		if err := json.Unmarshal([]byte(resultJSON), &scan.Result); err != nil {
			log.Printf("warning: skipping scan %s with unreadable result: %v", scan.ID, err)
			continue
		}
		scans = append(scans, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading scans: %v", ErrStorageUnavailable, err)
	}

	return scans, nil
}

// DeleteByID removes one record. Deleting an absent id is a no-op.
func (s *Store) DeleteByID(ctx context.Context, id string) error {
	db, err := s.handle(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, "DELETE FROM scans WHERE id = ?", id); err != nil {
		return fmt.Errorf("%w: deleting scan %s: %v", ErrStorageUnavailable, id, err)
	}
	return nil
}

// Close closes the underlying database if it was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
