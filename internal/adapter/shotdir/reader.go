package shotdir

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/couchcryptid/obs-shots2cnv/internal/domain"
)

// Reader enumerates per-station shot files in a directory and parses them.
// It implements pipeline.ShotSource.
type Reader struct {
	dir    string
	logger *slog.Logger
}

// NewReader creates a Reader over dir.
func NewReader(dir string, logger *slog.Logger) *Reader {
	return &Reader{dir: dir, logger: logger}
}

// List returns the shot files in dir sorted by file name. Subdirectories are
// ignored even when their name ends in ".time".
func (r *Reader) List(_ context.Context) ([]domain.ShotFile, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("list shot directory: %w", err)
	}

	var files []domain.ShotFile
	for _, entry := range entries {
		name := entry.Name()
		if !domain.IsShotFile(name) {
			continue
		}
		path := filepath.Join(r.dir, name)
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.Mode().IsRegular() {
			r.logger.Debug("skipping non-regular shot entry", "path", path)
			continue
		}
		files = append(files, domain.NewShotFile(path, name))
	}
	return files, nil
}

// Read parses every arrival in a shot file in a single pass.
func (r *Reader) Read(_ context.Context, f domain.ShotFile) ([]domain.ShotArrival, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open shot file: %w", err)
	}
	defer file.Close()

	arrivals, err := domain.ParseArrivals(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.Name, err)
	}
	return arrivals, nil
}
