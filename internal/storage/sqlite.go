// Package storage provides SQLite-based persistence for conversion history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/colorx/internal/converter"
)

// Store manages the SQLite database connection for conversion history.
type Store struct {
	db *sql.DB
}

// Conversion is a single successful conversion record.
type Conversion struct {
	ID        int64
	Input     string
	Source    string // Detected input notation
	Target    string // Requested output notation
	Output    string
	CreatedAt time.Time
}

// NotationStats counts conversions per source/target notation pair.
type NotationStats struct {
	Source   string
	Target   string
	Count    int
	LastUsed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input TEXT NOT NULL,
			source TEXT NOT NULL,
			target TEXT NOT NULL,
			output TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_conversions_created ON conversions(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_conversions_pair ON conversions(source, target);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveConversion records a conversion. Returns the ID of the inserted record.
func (s *Store) SaveConversion(c Conversion) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO conversions (input, source, target, output) VALUES (?, ?, ?, ?)",
		c.Input, c.Source, c.Target, c.Output,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save conversion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentConversions retrieves the most recent conversions, newest first.
func (s *Store) RecentConversions(limit int) ([]Conversion, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, input, source, target, output, created_at
		 FROM conversions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query conversions: %w", err)
	}
	defer rows.Close()

	var entries []Conversion
	for rows.Next() {
		var c Conversion
		var createdAt any
		if err := rows.Scan(&c.ID, &c.Input, &c.Source, &c.Target, &c.Output, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats returns conversion counts grouped by notation pair, most used first.
func (s *Store) Stats() ([]NotationStats, error) {
	rows, err := s.db.Query(
		`SELECT source, target, COUNT(*), MAX(created_at)
		 FROM conversions
		 GROUP BY source, target
		 ORDER BY COUNT(*) DESC, source, target`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	var stats []NotationStats
	for rows.Next() {
		var st NotationStats
		var lastUsed any
		if err := rows.Scan(&st.Source, &st.Target, &st.Count, &lastUsed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastUsed = parseTimestamp(lastUsed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// Count returns the number of stored conversions.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM conversions").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count conversions: %w", err)
	}
	return n, nil
}

// ClearHistory deletes all recorded conversions.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM conversions"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RecordConversion implements converter.Recorder.
func (s *Store) RecordConversion(rec converter.Record) error {
	_, err := s.SaveConversion(Conversion{
		Input:  rec.Input,
		Source: rec.Source,
		Target: rec.Target,
		Output: rec.Output,
	})
	return err
}

// Ensure Store implements Recorder
var _ converter.Recorder = (*Store)(nil)
