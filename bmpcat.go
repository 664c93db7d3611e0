/*
Package bmpcat is a library for decoding Windows bitmap images,
converting them between their on-disk layout and an in-memory pixel
grid, and cataloguing bitmap files found on disk.
*/
package bmpcat

import "log"

type BMPCat struct {
	db     *Catalog
	logger *log.Logger
}

func New(dbFile string, logger *log.Logger) (*BMPCat, error) {
	db, err := NewCatalog(dbFile)
	if err != nil {
		return nil, err
	}
	return &BMPCat{
		db:     db,
		logger: logger,
	}, nil
}

func (m *BMPCat) Close() error {
	return m.db.Close()
}
