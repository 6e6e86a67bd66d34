// Package library is the catalogue of imported images: filmrolls (on-disk
// folders) and the images inside them.
package library

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

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
CREATE TABLE IF NOT EXISTS film_rolls (
    id      INTEGER PRIMARY KEY,
    folder  TEXT UNIQUE NOT NULL
);
CREATE TABLE IF NOT EXISTS images (
    id              INTEGER PRIMARY KEY,
    film_id         INTEGER NOT NULL REFERENCES film_rolls(id) ON DELETE CASCADE,
    filename        TEXT NOT NULL,
    datetime_taken  TEXT,
    UNIQUE(film_id, filename)
);`,
	},
}

type Index struct {
	db *sql.DB
}

func Open(path string) (*Index, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL; PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Index{db: db}, nil
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
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = ?", m.Version).Scan(&done); err != nil {
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

func (i *Index) Close() error {
	return i.db.Close()
}

// ImageID returns the id of the catalogued image, or -1 when the
// (folder, filename) pair is unknown.
func (i *Index) ImageID(folder, filename string) (int64, error) {
	var id int64
	err := i.db.QueryRow(`SELECT img.id FROM images img
        JOIN film_rolls fr ON fr.id = img.film_id
        WHERE fr.folder = ? AND img.filename = ?`, folder, filename).Scan(&id)
	if err == sql.ErrNoRows {
		return -1, nil
	}
	if err != nil {
		return -1, err
	}
	return id, nil
}

// AddImage catalogues an image, creating its filmroll as needed, and
// returns the image id. Re-adding an existing image returns the existing id.
func (i *Index) AddImage(folder, filename, datetimeTaken string) (int64, error) {
	filmID, err := i.ensureFilmroll(folder)
	if err != nil {
		return -1, err
	}

	var id int64
	err = i.db.QueryRow(`INSERT INTO images (film_id, filename, datetime_taken)
        VALUES (?, ?, ?)
        ON CONFLICT(film_id, filename) DO UPDATE SET datetime_taken = excluded.datetime_taken
        RETURNING id`, filmID, filename, datetimeTaken).Scan(&id)
	if err != nil {
		return -1, err
	}
	return id, nil
}

// LastImportedID returns the id of the most recently catalogued image, or
// -1 on an empty library.
func (i *Index) LastImportedID() (int64, error) {
	var id int64
	err := i.db.QueryRow("SELECT id FROM images ORDER BY id DESC LIMIT 1").Scan(&id)
	if err == sql.ErrNoRows {
		return -1, nil
	}
	if err != nil {
		return -1, err
	}
	return id, nil
}

// FilmrollFolder returns the folder of the filmroll holding the image.
func (i *Index) FilmrollFolder(imageID int64) (string, error) {
	var folder string
	err := i.db.QueryRow(`SELECT fr.folder FROM film_rolls fr
        JOIN images img ON img.film_id = fr.id
        WHERE img.id = ?`, imageID).Scan(&folder)
	if err != nil {
		return "", err
	}
	return folder, nil
}

func (i *Index) ensureFilmroll(folder string) (int64, error) {
	var id int64
	err := i.db.QueryRow("SELECT id FROM film_rolls WHERE folder = ?", folder).Scan(&id)
	if err == nil {
		return id, nil
	}
	err = i.db.QueryRow(`INSERT INTO film_rolls (folder) VALUES (?)
        ON CONFLICT(folder) DO UPDATE SET folder = excluded.folder
        RETURNING id`, folder).Scan(&id)
	return id, err
}
