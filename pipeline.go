package bmpcat

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/kmckinnon/bmpcat/bitmap"
)

func (m *BMPCat) findBitmaps(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() {
				return nil
			}

			if !strings.EqualFold(filepath.Ext(file), ".bmp") {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (m *BMPCat) bitmapWorker(ctx context.Context, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			b, err := os.ReadFile(file)
			if err != nil {
				errc <- err
				return
			}

			crc := crcBytes(b)

			seen, err := m.db.FindByPath(file)
			if err != nil {
				errc <- err
				return
			}
			if seen != nil && seen.CRC == crc {
				continue
			}

			bmp, err := bitmap.Decode(b)
			if err != nil {
				// Malformed or unsupported files are skipped, not fatal.
				m.logger.Printf("Skipping \"%s\": %v\n", file, err)
				continue
			}

			if err := m.db.Add(&Entry{
				Path:     file,
				CRC:      crc,
				Width:    int(bmp.InfoHeader.Width),
				Height:   int(bmp.InfoHeader.Height),
				BitDepth: bmp.InfoHeader.BitDepth,
			}); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks path for .bmp files, decodes each one, and records its
// dimensions, bit depth and content CRC in the catalog. Files that
// fail to decode are logged and skipped.
func (m *BMPCat) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := m.findBitmaps(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < 10; i++ {
		errc, err := m.bitmapWorker(ctx, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
