package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// RecordRun stores run and its records in one transaction.
func (s *Store) RecordRun(ctx context.Context, run Run, records []RunRecord) error {
	ctx = ensureContext(ctx)
	if run.ID == "" {
		return errors.New("record run: missing id")
	}
	globals := run.GlobalErrors
	if globals == nil {
		globals = []string{}
	}
	globalsJSON, err := json.Marshal(globals)
	if err != nil {
		return fmt.Errorf("marshal global errors: %w", err)
	}

	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin run tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO runs (
                id, document, origin, created_at, record_count, failing_count,
                global_errors_json, total_seconds, adjusted_seconds, speed_factor
            ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID,
			run.Document,
			string(run.Origin),
			run.CreatedAt.UTC().Format(time.RFC3339Nano),
			run.Records,
			run.Failing,
			string(globalsJSON),
			run.TotalSeconds,
			run.AdjustedSeconds,
			run.SpeedFactor,
		); err != nil {
			return fmt.Errorf("insert run: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO run_records (run_id, position, line, name, source_file, fullpath, ok, error)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare record insert: %w", err)
		}
		defer stmt.Close()
		for _, rec := range records {
			if _, err := stmt.ExecContext(ctx,
				run.ID, rec.Position, rec.Line, rec.Name, rec.SourceFile, rec.Fullpath, boolToInt(rec.OK), rec.Error,
			); err != nil {
				return fmt.Errorf("insert record %d: %w", rec.Position, err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit run: %w", err)
		}
		return nil
	})
}

// RecordExport notes an artifact written for runID.
func (s *Store) RecordExport(ctx context.Context, runID, kind, path string) error {
	if err := s.execWithoutResultRetry(ctx,
		`INSERT INTO run_exports (run_id, kind, path, created_at) VALUES (?, ?, ?, ?)`,
		runID, kind, path, time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("insert export: %w", err)
	}
	return nil
}

const runColumns = `id, document, origin, created_at, record_count, failing_count,
    global_errors_json, total_seconds, adjusted_seconds, speed_factor`

// ListRuns returns the most recent runs first. A limit <= 0 returns all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	ctx = ensureContext(ctx)
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY created_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// GetRun loads a run with its records and exports.
func (s *Store) GetRun(ctx context.Context, id string) (*RunDetail, error) {
	ctx = ensureContext(ctx)
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	detail := &RunDetail{Run: run, Records: []RunRecord{}, Exports: []Export{}}

	recRows, err := s.db.QueryContext(ctx,
		`SELECT position, line, name, source_file, fullpath, ok, error
         FROM run_records WHERE run_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("query run records: %w", err)
	}
	defer recRows.Close()
	for recRows.Next() {
		var (
			rec RunRecord
			ok  int
		)
		if err := recRows.Scan(&rec.Position, &rec.Line, &rec.Name, &rec.SourceFile, &rec.Fullpath, &ok, &rec.Error); err != nil {
			return nil, fmt.Errorf("scan run record: %w", err)
		}
		rec.OK = ok != 0
		detail.Records = append(detail.Records, rec)
	}
	if err := recRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run records: %w", err)
	}

	expRows, err := s.db.QueryContext(ctx,
		`SELECT kind, path, created_at FROM run_exports WHERE run_id = ? ORDER BY rowid`, id)
	if err != nil {
		return nil, fmt.Errorf("query run exports: %w", err)
	}
	defer expRows.Close()
	for expRows.Next() {
		var (
			exp     Export
			created string
		)
		if err := expRows.Scan(&exp.Kind, &exp.Path, &created); err != nil {
			return nil, fmt.Errorf("scan run export: %w", err)
		}
		exp.CreatedAt = parseTime(created)
		detail.Exports = append(detail.Exports, exp)
	}
	if err := expRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run exports: %w", err)
	}
	return detail, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		run         Run
		origin      string
		created     string
		globalsJSON string
	)
	if err := sc.Scan(
		&run.ID, &run.Document, &origin, &created, &run.Records, &run.Failing,
		&globalsJSON, &run.TotalSeconds, &run.AdjustedSeconds, &run.SpeedFactor,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	run.Origin = Origin(origin)
	run.CreatedAt = parseTime(created)
	if err := json.Unmarshal([]byte(globalsJSON), &run.GlobalErrors); err != nil {
		return Run{}, fmt.Errorf("decode global errors for run %s: %w", run.ID, err)
	}
	return run, nil
}

func parseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
