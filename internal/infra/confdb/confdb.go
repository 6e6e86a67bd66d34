// Package confdb persists the typed key/value configuration (ui_last and
// session values) in a small SQLite database.
package confdb

import (
	"database/sql"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"
)

// migration is a numbered schema change, applied in order and tracked in
// schema_migrations so each runs exactly once.
type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "initial schema",
		SQL: `
CREATE TABLE IF NOT EXISTS conf (
    key    TEXT PRIMARY KEY,
    value  TEXT NOT NULL
);`,
	},
}

// defaults are the values reads fall back to when a key was never written.
var defaults = map[string]string{
	"ui_last/import_dialog_width":  "1100",
	"ui_last/import_dialog_height": "700",
	"ui_last/import_last_image":    "-1",
	"session/sub_directory_pattern": "$(YEAR)$(MONTH)$(DAY)_$(JOBCODE)",
	"session/filename_pattern":      "$(YEAR)$(MONTH)$(DAY)_$(SEQUENCE).$(FILE_EXTENSION)",
}

type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
        version     INTEGER PRIMARY KEY,
        applied_at  DATETIME DEFAULT CURRENT_TIMESTAMP
    )`); err != nil {
		return err
	}
	for _, m := range migrations {
		var done int
		err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = ?", m.Version).Scan(&done)
		if err != nil {
			return err
		}
		if done > 0 {
			continue
		}
		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}
		if _, err := db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(key string) string {
	var value string
	err := s.db.QueryRow("SELECT value FROM conf WHERE key = ?", key).Scan(&value)
	if err != nil {
		return defaults[key]
	}
	return value
}

func (s *Store) set(key, value string) {
	s.db.Exec(`INSERT INTO conf (key, value) VALUES (?, ?)
        ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
}

func (s *Store) GetString(key string) string {
	return s.get(key)
}

func (s *Store) SetString(key, value string) {
	s.set(key, value)
}

func (s *Store) GetInt(key string) int {
	v, err := strconv.Atoi(s.get(key))
	if err != nil {
		return 0
	}
	return v
}

func (s *Store) SetInt(key string, value int) {
	s.set(key, strconv.Itoa(value))
}

func (s *Store) GetBool(key string) bool {
	return s.get(key) == "true"
}

func (s *Store) SetBool(key string, value bool) {
	s.set(key, strconv.FormatBool(value))
}
