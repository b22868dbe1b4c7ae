package cnvfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/obs-shots2cnv/internal/domain"
	"github.com/gofrs/flock"
)

const defaultBufSize = 64 * 1024 // 64KB

// Writer appends CNV blocks to an output file opened once per run.
// It implements pipeline.EventLoader.
type Writer struct {
	path    string
	file    *os.File
	buf     *bufio.Writer
	lock    *flock.Flock
	logger  *slog.Logger
	written int64
	closed  bool
}

// Open truncates (or creates) the CNV file at path. An advisory lock on
// "<path>.lock" is held until Close so two runs cannot interleave one output.
func Open(path string, logger *slog.Logger) (*Writer, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire output lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another conversion is writing %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("create cnv output: %w", err)
	}

	logger.Debug("cnv output opened", "path", path)
	return &Writer{
		path:   path,
		file:   f,
		buf:    bufio.NewWriterSize(f, defaultBufSize),
		lock:   lock,
		logger: logger,
	}, nil
}

// Load writes the CNV block for one station event.
func (w *Writer) Load(_ context.Context, e domain.CnvEvent) error {
	if w.closed {
		return errors.New("cnv output already closed")
	}
	n, err := domain.WriteCNV(w.buf, e)
	w.written += int64(n)
	return err
}

// Written reports the number of bytes handed to the output so far.
func (w *Writer) Written() int64 {
	return w.written
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// Close flushes buffered output, closes the file and releases the lock.
// It is safe to call more than once.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	var errs []error
	if err := w.buf.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("flush cnv output: %w", err))
	}
	if err := w.file.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close cnv output: %w", err))
	}
	if err := w.lock.Unlock(); err != nil {
		w.logger.Warn("failed to release output lock", "path", w.path, "error", err)
	}
	return errors.Join(errs...)
}
