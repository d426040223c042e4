// Package storage provides SQLite-based persistence for level clear records.
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

// Store manages the SQLite database connection for clear records.
type Store struct {
	db *sql.DB
}

// ClearEntry is one cleared level.
type ClearEntry struct {
	ID        int64
	Level     int // zero-based level index
	Title     string
	Ticks     int // simulation ticks spent playing the level
	Seed      int64
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
		CREATE TABLE IF NOT EXISTS clears (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			ticks INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_clears_level ON clears(level, ticks);
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

// SaveClear records a cleared level and returns the new record's ID.
func (s *Store) SaveClear(level int, title string, ticks int, seed int64) (int64, error) {
	if level < 0 || ticks < 0 {
		return 0, fmt.Errorf("storage: invalid clear (level %d, ticks %d)", level, ticks)
	}

	result, err := s.db.Exec(
		"INSERT INTO clears (level, title, ticks, seed) VALUES (?, ?, ?, ?)",
		level, title, ticks, seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save clear: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestClears returns the fastest clear of every level, ordered by level.
func (s *Store) BestClears() ([]ClearEntry, error) {
	// SQLite returns the bare columns of the row that holds MIN(ticks).
	return s.query(
		`SELECT id, level, title, MIN(ticks), seed, created_at
		 FROM clears
		 GROUP BY level
		 ORDER BY level`,
	)
}

// RecentClears returns the latest N clears, newest first.
func (s *Store) RecentClears(limit int) ([]ClearEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, level, title, ticks, seed, created_at
		 FROM clears
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// LevelClears returns every clear of one level, fastest first.
func (s *Store) LevelClears(level int) ([]ClearEntry, error) {
	return s.query(
		`SELECT id, level, title, ticks, seed, created_at
		 FROM clears
		 WHERE level = ?
		 ORDER BY ticks, id`,
		level,
	)
}

// BestTicks returns the fastest clear of a level in ticks.
// Returns 0 if the level was never cleared.
func (s *Store) BestTicks(level int) (int, error) {
	var ticks sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(ticks) FROM clears WHERE level = ?",
		level,
	).Scan(&ticks)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best clear: %w", err)
	}

	if !ticks.Valid {
		return 0, nil
	}
	return int(ticks.Int64), nil
}

// ResetClears deletes every record.
func (s *Store) ResetClears() error {
	if _, err := s.db.Exec("DELETE FROM clears"); err != nil {
		return fmt.Errorf("storage: cannot reset clears: %w", err)
	}
	return nil
}

func (s *Store) query(q string, args ...any) ([]ClearEntry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clears: %w", err)
	}
	defer rows.Close()

	var entries []ClearEntry
	for rows.Next() {
		var e ClearEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Level, &e.Title, &e.Ticks, &e.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// ClearHook returns a level-cleared callback that saves each clear. title
// names a level by index; onErr receives save failures and may be nil.
// A nil Store returns a nil hook.
func (s *Store) ClearHook(seed int64, title func(level int) string, onErr func(error)) func(level, ticks int) {
	if s == nil {
		return nil
	}
	return func(level, ticks int) {
		name := ""
		if title != nil {
			name = title(level)
		}
		if _, err := s.SaveClear(level, name, ticks, seed); err != nil && onErr != nil {
			onErr(err)
		}
	}
}
