package archivestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/igorsergioJS/GA-PSO-web-app/internal/optimization"
)

// SQLiteStore persists archived runs in a sqlite database file.
type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore returns a store backed by the database at path.
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

// Init opens the database and creates the schema if needed.
func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("sqlite path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS archived_runs (
			id INTEGER PRIMARY KEY,
			function TEXT NOT NULL,
			payload BLOB NOT NULL
		);
	`); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// Save stores an entry keyed by its archive id.
func (s *SQLiteStore) Save(ctx context.Context, entry optimization.ArchiveEntry) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := EncodeEntry(entry)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO archived_runs (id, function, payload)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			function = excluded.function,
			payload = excluded.payload
	`, entry.ID, entry.FunctionName, payload)
	return err
}

// Get retrieves one entry.
func (s *SQLiteStore) Get(ctx context.Context, id int) (optimization.ArchiveEntry, error) {
	db, err := s.getDB()
	if err != nil {
		return optimization.ArchiveEntry{}, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM archived_runs WHERE id = ?`, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return optimization.ArchiveEntry{}, &NotFoundError{ID: id}
		}
		return optimization.ArchiveEntry{}, err
	}

	entry, err := DecodeEntry(payload)
	if err != nil {
		return optimization.ArchiveEntry{}, fmt.Errorf("decode archived run %d: %w", id, err)
	}
	return entry, nil
}

// List returns all entries ordered by id.
func (s *SQLiteStore) List(ctx context.Context) ([]optimization.ArchiveEntry, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT payload FROM archived_runs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []optimization.ArchiveEntry
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		entry, err := DecodeEntry(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("store is not initialized")
	}
	return s.db, nil
}
