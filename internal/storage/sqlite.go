// Package storage keeps the run history of the explorer in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one finished expedition: how many worlds the player got through
// before an enemy caught them.
type Run struct {
	ID             int64
	Player         string
	Generator      string
	WorldsExplored int
	Seed           int64
	CreatedAt      time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			generator TEXT NOT NULL,
			worlds_explored INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_generator ON runs(generator);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(generator, worlds_explored DESC);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	if r.WorldsExplored < 0 {
		return 0, fmt.Errorf("storage: negative worlds explored: %d", r.WorldsExplored)
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (player, generator, worlds_explored, seed) VALUES (?, ?, ?, ?)",
		r.Player, r.Generator, r.WorldsExplored, r.Seed,
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

// TopRuns returns the best N runs for a generator, most worlds first.
// An empty generator ranks runs across all generators.
func (s *Store) TopRuns(generator string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, generator, worlds_explored, seed, created_at
		 FROM runs
		 WHERE ? = '' OR generator = ?
		 ORDER BY worlds_explored DESC, id ASC
		 LIMIT ?`,
		generator, generator, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// AllRuns returns every run for a generator in the order they were played.
func (s *Store) AllRuns(generator string) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, player, generator, worlds_explored, seed, created_at
		 FROM runs
		 WHERE ? = '' OR generator = ?
		 ORDER BY id ASC`,
		generator, generator,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

// BestRun returns the highest worlds explored for a generator.
// Returns 0 if no runs exist.
func (s *Store) BestRun(generator string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(worlds_explored) FROM runs WHERE ? = '' OR generator = ?",
		generator, generator,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// ClearRuns deletes the runs of a generator, or every run when generator is empty.
func (s *Store) ClearRuns(generator string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR generator = ?", generator, generator)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GeneratorStats contains aggregated statistics for one generator.
type GeneratorStats struct {
	Generator  string
	Runs       int
	Best       int
	Average    float64
	LastPlayed time.Time
}

// Stats returns aggregated statistics for every generator that has runs.
func (s *Store) Stats() (map[string]*GeneratorStats, error) {
	rows, err := s.db.Query(
		`SELECT generator, COUNT(*), MAX(worlds_explored), AVG(worlds_explored), MAX(created_at)
		 FROM runs
		 GROUP BY generator`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GeneratorStats)
	for rows.Next() {
		var g GeneratorStats
		var lastPlayed any
		if err := rows.Scan(&g.Generator, &g.Runs, &g.Best, &g.Average, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		g.LastPlayed = parseTime(lastPlayed)
		stats[g.Generator] = &g
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Generator, &r.WorldsExplored, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
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
