package bmpcat

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog records the bitmaps discovered by Scan so repeated scans can
// recognize files they have already seen.
type Catalog struct {
	db *sql.DB
}

func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS bitmap (id INTEGER PRIMARY KEY NOT NULL, path TEXT NOT NULL UNIQUE, crc TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, bit_depth INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

func (db *Catalog) Close() error {
	return db.db.Close()
}

// Entry is one catalogued bitmap file.
type Entry struct {
	Path     string
	CRC      string
	Width    int
	Height   int
	BitDepth uint16
}

func (db *Catalog) Add(e *Entry) error {
	if _, err := db.db.Exec("INSERT OR REPLACE INTO bitmap (path, crc, width, height, bit_depth) VALUES (?, ?, ?, ?, ?)", e.Path, e.CRC, e.Width, e.Height, e.BitDepth); err != nil {
		return err
	}
	return nil
}

// FindByPath returns the catalogued entry for a path, or nil when the
// path has never been scanned.
func (db *Catalog) FindByPath(path string) (*Entry, error) {
	e := &Entry{Path: path}
	switch err := db.db.QueryRow("SELECT crc, width, height, bit_depth FROM bitmap WHERE path = ?", path).Scan(&e.CRC, &e.Width, &e.Height, &e.BitDepth); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return e, nil
	default:
		return nil, err
	}
}

// FindByCRC returns every catalogued entry whose file contents hash to
// crc; duplicate files share a CRC.
func (db *Catalog) FindByCRC(crc string) ([]*Entry, error) {
	rows, err := db.db.Query("SELECT path, width, height, bit_depth FROM bitmap WHERE crc = ?", crc)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{CRC: crc}
		if err := rows.Scan(&e.Path, &e.Width, &e.Height, &e.BitDepth); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
