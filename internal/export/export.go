package export

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"alecheck/internal/logging"
)

var (
	// ErrOutputUnavailable reports a missing or unwritable output directory.
	ErrOutputUnavailable = errors.New("output directory unavailable")
	// ErrNoRecords reports an empty record set.
	ErrNoRecords = errors.New("no records to export")
)

const lockFileName = ".alecheck.lock"

// Writer writes export artifacts into one directory.
type Writer struct {
	dir    string
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithClock overrides the time source used for manifest names.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) {
		if now != nil {
			w.now = now
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) {
		w.logger = logger
	}
}

// NewWriter returns a Writer targeting dir. An empty dir is accepted so the
// failure surfaces at write time as ErrOutputUnavailable.
func NewWriter(dir string, opts ...Option) *Writer {
	w := &Writer{dir: strings.TrimSpace(dir), now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = logging.NewComponentLogger(w.logger, "export")
	return w
}

// Dir returns the target directory.
func (w *Writer) Dir() string {
	return w.dir
}

// lock ensures the directory exists and takes an exclusive lock on it for
// the duration of one export.
func (w *Writer) lock() (func(), error) {
	if w.dir == "" {
		return nil, fmt.Errorf("%w: not configured", ErrOutputUnavailable)
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputUnavailable, err)
	}
	fl := flock.New(filepath.Join(w.dir, lockFileName))
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("%w: lock %s: %v", ErrOutputUnavailable, w.dir, err)
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			w.logger.Warn("failed to release export lock",
				logging.String("dir", w.dir),
				logging.Error(err),
				logging.String(logging.FieldEventType, "export_unlock_failed"),
			)
		}
	}, nil
}
