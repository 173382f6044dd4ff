// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/leap-of-faith/internal/core"
)

// Store manages the SQLite database connection for the run leaderboard.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID        int64
	Hero      string
	Level     int // Floor counter the run ended on
	Floors    int // Floors descended
	Won       bool
	Cause     string
	Ticks     int
	Seed      int64
	CreatedAt time.Time
}

// RecordFromSummary converts a run summary into a record ready to save.
func RecordFromSummary(s core.RunSummary, seed int64) RunRecord {
	return RunRecord{
		Hero:   s.Hero,
		Level:  s.Level,
		Floors: s.Floors,
		Won:    s.Won,
		Cause:  s.Cause,
		Ticks:  s.Ticks,
		Seed:   seed,
	}
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
			hero TEXT NOT NULL,
			level INTEGER NOT NULL,
			floors INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			cause TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(floors DESC, ticks ASC);
		CREATE INDEX IF NOT EXISTS idx_runs_hero ON runs(hero);
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
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (hero, level, floors, won, cause, ticks, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Hero, r.Level, r.Floors, r.Won, r.Cause, r.Ticks, r.Seed,
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

// TopRuns returns the best runs: most floors first, faster runs breaking ties.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, hero, level, floors, won, cause, ticks, seed, created_at
		 FROM runs
		 ORDER BY floors DESC, ticks ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns returns the latest runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT id, hero, level, floors, won, cause, ticks, seed, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Hero, &r.Level, &r.Floors, &r.Won, &r.Cause, &r.Ticks, &r.Seed, &createdAt); err != nil {
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

// BestFloors returns the most floors descended in any run, or 0 if no run
// was recorded. An empty hero matches every hero.
func (s *Store) BestFloors(hero string) (int, error) {
	var floors sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(floors) FROM runs WHERE ? = '' OR hero = ?",
		hero, hero,
	).Scan(&floors)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best floors: %w", err)
	}
	if !floors.Valid {
		return 0, nil
	}
	return int(floors.Int64), nil
}

// Clear deletes every recorded run.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics over recorded runs.
type RunStats struct {
	Hero       string // Empty for all heroes
	Runs       int
	Wins       int
	BestFloors int
	AvgFloors  float64
	TotalTicks int64
	LastPlayed time.Time
}

// Stats aggregates every recorded run.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(floors), 0),
		        COALESCE(AVG(floors), 0), COALESCE(SUM(ticks), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Wins, &stats.BestFloors, &stats.AvgFloors, &stats.TotalTicks, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// HeroStats aggregates runs per hero.
func (s *Store) HeroStats() (map[string]*RunStats, error) {
	rows, err := s.db.Query(
		`SELECT hero, COUNT(*), SUM(won), MAX(floors), AVG(floors), SUM(ticks), MAX(created_at)
		 FROM runs
		 GROUP BY hero`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get hero stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*RunStats)
	for rows.Next() {
		var st RunStats
		var lastPlayed any
		if err := rows.Scan(&st.Hero, &st.Runs, &st.Wins, &st.BestFloors, &st.AvgFloors, &st.TotalTicks, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Hero] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// RunByID returns one run, or ErrNotFound.
func (s *Store) RunByID(id int64) (*RunRecord, error) {
	runs, err := s.queryRuns(
		`SELECT id, hero, level, floors, won, cause, ticks, seed, created_at
		 FROM runs WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, ErrNotFound
	}
	return &runs[0], nil
}

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("storage: run not found")

// parseTime handles both driver-decoded times and raw SQLite timestamps.
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
