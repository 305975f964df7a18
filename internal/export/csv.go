package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"alecheck/internal/ale"
	"alecheck/internal/logging"
)

// ForceProcessColumn is the operator override column placed after Session.
const ForceProcessColumn = "FORCE_PROCESS"

const manifestTimeLayout = "20060102_150405"

// ManifestHeader orders keys for the manifest: FORCE_PROCESS is moved to
// just after Session, or appended when Session is absent.
func ManifestHeader(keys []string) []string {
	header := slices.DeleteFunc(slices.Clone(keys), func(k string) bool { return k == ForceProcessColumn })
	idx := slices.Index(header, ale.ColSession)
	if idx < 0 {
		return append(header, ForceProcessColumn)
	}
	return slices.Insert(header, idx+1, ForceProcessColumn)
}

// WriteCSV writes rows as a manifest named output_<YYYYMMDD_HHMMSS>.csv and
// returns its path. Failing records are included with their error column so
// operators can review them and set FORCE_PROCESS.
func (w *Writer) WriteCSV(rows []ale.Record) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoRecords
	}
	unlock, err := w.lock()
	if err != nil {
		return "", err
	}
	defer unlock()

	fields := rows[0].Fields()
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	header := ManifestHeader(keys)

	file, path, err := w.createManifest()
	if err != nil {
		return "", err
	}

	writer := csv.NewWriter(file)
	writer.UseCRLF = true
	if err := writer.Write(header); err != nil {
		file.Close()
		return "", fmt.Errorf("write csv header: %w", err)
	}
	line := make([]string, len(header))
	for _, row := range rows {
		for i, key := range header {
			value, _ := row.Get(key)
			line[i] = value
		}
		if err := writer.Write(line); err != nil {
			file.Close()
			return "", fmt.Errorf("write csv row %d: %w", row.Line, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return "", fmt.Errorf("flush csv: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close csv: %w", err)
	}

	w.logger.Info("csv manifest written",
		logging.String("path", path),
		logging.Int("records", len(rows)),
	)
	return path, nil
}

// createManifest opens a fresh manifest file. A second export within the same
// second gets a numeric suffix instead of overwriting the first.
func (w *Writer) createManifest() (*os.File, string, error) {
	stamp := w.now().Format(manifestTimeLayout)
	base := "output_" + stamp
	for attempt := 1; attempt < 100; attempt++ {
		name := base + ".csv"
		if attempt > 1 {
			name = fmt.Sprintf("%s_%d.csv", base, attempt)
		}
		path := filepath.Join(w.dir, name)
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return file, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("%w: create %s: %v", ErrOutputUnavailable, path, err)
		}
	}
	return nil, "", fmt.Errorf("%w: too many manifests for %s", ErrOutputUnavailable, stamp)
}
