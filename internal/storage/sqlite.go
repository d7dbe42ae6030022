// Package storage provides SQLite-based persistence for screensaver run
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord represents a single completed screensaver session.
type RunRecord struct {
	ID         int64
	Palette    string
	Style      string
	Pipes      int
	FPS        float64
	Duration   int // Session length in seconds
	CellsDrawn int // Total glyphs drawn across all canvas resets
	Resets     int // Canvas resets during the session
	CreatedAt  time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			palette TEXT NOT NULL,
			style TEXT NOT NULL,
			pipes INTEGER NOT NULL,
			fps REAL NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			cells_drawn INTEGER NOT NULL DEFAULT 0,
			resets INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_duration ON runs(duration_secs DESC);
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

// SaveRun records a completed session.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (palette, style, pipes, fps, duration_secs, cells_drawn, resets)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Palette, r.Style, r.Pipes, r.FPS, r.Duration, r.CellsDrawn, r.Resets,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, palette, style, pipes, fps, duration_secs, cells_drawn, resets, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// LongestRun returns the run with the longest duration.
// Returns nil if no runs exist.
func (s *Store) LongestRun() (*RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, palette, style, pipes, fps, duration_secs, cells_drawn, resets, created_at
		 FROM runs
		 ORDER BY duration_secs DESC, id DESC
		 LIMIT 1`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query longest run: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	r, err := scanRun(rows)
	if err != nil {
		return nil, err
	}
	return &r, rows.Err()
}

// TotalCells returns the number of glyphs drawn across all recorded runs.
func (s *Store) TotalCells() (int64, error) {
	var total sql.NullInt64
	err := s.db.QueryRow("SELECT SUM(cells_drawn) FROM runs").Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query total cells: %w", err)
	}

	if !total.Valid {
		return 0, nil
	}

	return total.Int64, nil
}

// ClearRuns deletes all recorded runs.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// scanRun reads one run record from the current row.
func scanRun(rows *sql.Rows) (RunRecord, error) {
	var r RunRecord
	var createdAt any
	if err := rows.Scan(&r.ID, &r.Palette, &r.Style, &r.Pipes, &r.FPS,
		&r.Duration, &r.CellsDrawn, &r.Resets, &createdAt); err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}

	return r, nil
}
