// Package storage provides SQLite-based persistence for run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/mkallin/driftwalk/internal/core"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord is one completed (or aborted) simulation run.
type RunRecord struct {
	ID        int64
	Width     int
	Height    int
	Particles int
	TurnProb  *uint8 // nil when the run used the engine default
	Seed      int64
	Frames    uint64
	Duration  time.Duration
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			particles INTEGER NOT NULL,
			turn_prob INTEGER,
			seed INTEGER NOT NULL,
			frames INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_frames ON runs(frames DESC);
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

// SaveRun records a completed run and returns the ID of the inserted record.
func (s *Store) SaveRun(cfg core.Config, stats core.RunStats) (int64, error) {
	var prob sql.NullInt64
	if cfg.TurnProb != nil {
		prob = sql.NullInt64{Int64: int64(*cfg.TurnProb), Valid: true}
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (width, height, particles, turn_prob, seed, frames, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		cfg.Width, cfg.Height, cfg.Particles, prob, cfg.Seed,
		stats.Frames, stats.Duration.Milliseconds(),
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
	return s.queryRuns(
		`SELECT id, width, height, particles, turn_prob, seed, frames, duration_ms, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// LongestRuns retrieves the runs that survived the most frames.
func (s *Store) LongestRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, width, height, particles, turn_prob, seed, frames, duration_ms, created_at
		 FROM runs
		 ORDER BY frames DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// LongestFrames returns the highest frame count recorded, 0 if none.
func (s *Store) LongestFrames() (uint64, error) {
	var frames sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(frames) FROM runs").Scan(&frames)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest run: %w", err)
	}
	if !frames.Valid {
		return 0, nil
	}
	return uint64(frames.Int64), nil
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var prob sql.NullInt64
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Width, &r.Height, &r.Particles, &prob,
			&r.Seed, &r.Frames, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		if prob.Valid {
			p := uint8(prob.Int64)
			r.TurnProb = &p
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}
