// Package storage keeps run history and cosmetic wardrobes in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultProfile is used when no profile name is given.
const DefaultProfile = "default"

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is one finished run.
type Run struct {
	ID          string
	Profile     string
	Variant     string
	Score       int
	Level       int
	CoinsEarned int
	Ticks       int
	EndedAt     time.Time
}

// Wardrobe lists the cosmetics a profile owns and which one is equipped.
type Wardrobe struct {
	Owned    []int
	Equipped int
}

// Stats aggregates the runs of one variant.
type Stats struct {
	Variant    string
	Runs       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
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
			id TEXT PRIMARY KEY,
			profile TEXT NOT NULL,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			coins_earned INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			ended_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(variant, score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_profile ON runs(profile);

		CREATE TABLE IF NOT EXISTS wardrobe (
			profile TEXT NOT NULL,
			cosmetic INTEGER NOT NULL,
			equipped INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (profile, cosmetic)
		);
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

// SaveRun records a finished run. A missing ID is generated, a missing
// profile becomes DefaultProfile and a zero EndedAt becomes now.
// Returns the run ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Profile == "" {
		r.Profile = DefaultProfile
	}
	if r.EndedAt.IsZero() {
		r.EndedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, profile, variant, score, level, coins_earned, ticks, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Profile, r.Variant, r.Score, r.Level, r.CoinsEarned, r.Ticks,
		r.EndedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

// TopRuns retrieves the best runs for a variant, score descending.
// An empty variant means every variant.
func (s *Store) TopRuns(variant string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, profile, variant, score, level, coins_earned, ticks, ended_at
		 FROM runs
		 WHERE ? = '' OR variant = ?
		 ORDER BY score DESC, ended_at ASC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var endedAt any
		if err := rows.Scan(&r.ID, &r.Profile, &r.Variant, &r.Score, &r.Level,
			&r.CoinsEarned, &r.Ticks, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.EndedAt = parseTime(endedAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// HighScore returns the best score for a variant, or 0 without runs.
func (s *Store) HighScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE variant = ?",
		variant,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// RunCount returns how many runs a profile has finished.
func (s *Store) RunCount(profile string) (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE profile = ?", profile).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// VariantStats aggregates the runs of every variant played so far.
func (s *Store) VariantStats() (map[string]Stats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*), MAX(score), AVG(score), MAX(ended_at)
		 FROM runs
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]Stats)
	for rows.Next() {
		var st Stats
		var lastPlayed any
		if err := rows.Scan(&st.Variant, &st.Runs, &st.HighScore, &st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Variant] = st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearRuns deletes the run history of a variant; an empty variant clears all.
func (s *Store) ClearRuns(variant string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR variant = ?", variant, variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SaveWardrobe replaces the stored wardrobe of a profile.
func (s *Store) SaveWardrobe(profile string, w Wardrobe) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin wardrobe update: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec("DELETE FROM wardrobe WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot reset wardrobe: %w", err)
	}
	for _, c := range w.Owned {
		equipped := 0
		if c == w.Equipped {
			equipped = 1
		}
		if _, err = tx.Exec(
			"INSERT OR REPLACE INTO wardrobe (profile, cosmetic, equipped) VALUES (?, ?, ?)",
			profile, c, equipped,
		); err != nil {
			return fmt.Errorf("storage: cannot save cosmetic %d: %w", c, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit wardrobe: %w", err)
	}
	return nil
}

// LoadWardrobe returns the stored wardrobe of a profile. A profile with no
// rows gets an empty wardrobe with cosmetic 0 equipped.
func (s *Store) LoadWardrobe(profile string) (Wardrobe, error) {
	rows, err := s.db.Query(
		"SELECT cosmetic, equipped FROM wardrobe WHERE profile = ? ORDER BY cosmetic",
		profile,
	)
	if err != nil {
		return Wardrobe{}, fmt.Errorf("storage: cannot query wardrobe: %w", err)
	}
	defer rows.Close()

	var w Wardrobe
	for rows.Next() {
		var c, equipped int
		if err := rows.Scan(&c, &equipped); err != nil {
			return Wardrobe{}, fmt.Errorf("storage: cannot scan wardrobe row: %w", err)
		}
		w.Owned = append(w.Owned, c)
		if equipped != 0 {
			w.Equipped = c
		}
	}

	if err := rows.Err(); err != nil {
		return Wardrobe{}, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return w, nil
}

// RunByID fetches a single run. It returns nil when the ID is unknown.
func (s *Store) RunByID(id string) (*Run, error) {
	var r Run
	var endedAt any
	err := s.db.QueryRow(
		`SELECT id, profile, variant, score, level, coins_earned, ticks, ended_at
		 FROM runs WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Profile, &r.Variant, &r.Score, &r.Level, &r.CoinsEarned, &r.Ticks, &endedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	r.EndedAt = parseTime(endedAt)
	return &r, nil
}

// parseTime handles both driver-decoded times and stored strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
