package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"alecheck/internal/ale"
	"alecheck/internal/config"
	"alecheck/internal/export"
	"alecheck/internal/ledger"
	"alecheck/internal/logging"
	"alecheck/internal/metrics"
)

// RunStore abstracts the run history operations the service needs.
type RunStore interface {
	RecordRun(ctx context.Context, run ledger.Run, records []ledger.RunRecord) error
	RecordExport(ctx context.Context, runID, kind, path string) error
}

// AnalysisService runs documents through the processor, records them in the
// ledger and writes exports. It is shared by the CLI and the HTTP server.
type AnalysisService struct {
	cfg    *config.Config
	proc   *ale.Processor
	store  RunStore
	logger *slog.Logger
}

// NewAnalysisService wires a service. store may be nil when the ledger is
// disabled.
func NewAnalysisService(cfg *config.Config, proc *ale.Processor, store RunStore, logger *slog.Logger) *AnalysisService {
	return &AnalysisService{
		cfg:    cfg,
		proc:   proc,
		store:  store,
		logger: logging.NewComponentLogger(logger, "analysis"),
	}
}

// Convention returns the deployment convention used for derivations.
func (s *AnalysisService) Convention() ale.Convention {
	return s.proc.Convention()
}

// Analyze processes data. The speed factor file is read on every call so
// edits take effect without a restart; a missing or invalid file is reported
// as the first global error and the default factor is used.
func (s *AnalysisService) Analyze(ctx context.Context, document string, origin ledger.Origin, data []byte) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	logger := logging.WithContext(logging.WithDocument(ctx, document), s.logger)

	speed, speedErr := config.LoadSpeedFactor(s.cfg.Paths.SpeedFactorFile)
	if speedErr != nil {
		logging.WarnWithContext(logger, "speed factor unavailable, using default", "speed_factor_default",
			logging.String("path", s.cfg.Paths.SpeedFactorFile),
			logging.Float64("speed_factor", speed),
			logging.Error(speedErr),
			logging.String(logging.FieldErrorHint, "run alecheck config speed-factor <value>"),
			logging.String(logging.FieldImpact, "adjusted duration uses the default factor"),
		)
	}

	start := time.Now()
	res := s.proc.ProcessBytes(data)
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	if speedErr != nil {
		res.GlobalErrors = append([]ale.GlobalError{{Level: ale.LevelError, Message: speedErr.Error()}}, res.GlobalErrors...)
	}
	summary := ale.Summarize(res, s.proc.Convention(), speed)
	run := ledger.NewRun(document, origin, res, summary)

	outcome := metrics.OutcomeAccepted
	if len(res.Rows) == 0 && len(res.GlobalErrors) > 0 {
		outcome = metrics.OutcomeRejected
	}
	metrics.AnalysesTotal.WithLabelValues(string(origin), outcome).Inc()
	metrics.RecordsTotal.WithLabelValues(metrics.VerdictClean).Add(float64(summary.Clean))
	metrics.RecordsTotal.WithLabelValues(metrics.VerdictFailing).Add(float64(summary.Failing))
	metrics.GlobalErrorsTotal.Add(float64(len(res.GlobalErrors)))

	logger = logger.With(logging.String(logging.FieldRunID, run.ID))
	if s.store != nil {
		if err := s.store.RecordRun(ctx, run, ledger.RecordsFromResult(res)); err != nil {
			metrics.LedgerWritesTotal.WithLabelValues(metrics.StatusError).Inc()
			logging.WarnWithContext(logger, "run history write failed", "ledger_write_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check the state directory and ledger database"),
				logging.String(logging.FieldImpact, "run will be missing from history"),
			)
		} else {
			metrics.LedgerWritesTotal.WithLabelValues(metrics.StatusSuccess).Inc()
		}
	}

	logger.Info("document analyzed",
		logging.Int("records", summary.Records),
		logging.Int("failing", summary.Failing),
		logging.Int("global_errors", summary.GlobalErrors),
		logging.String("total", summary.Total),
		logging.String("adjusted", summary.Adjusted),
	)

	return Analysis{
		RunID:     run.ID,
		Document:  document,
		CreatedAt: run.CreatedAt,
		Summary:   summary,
		Result:    res,
	}, nil
}

// ExportCSV writes every record of a to the configured manifest directory.
func (s *AnalysisService) ExportCSV(ctx context.Context, a Analysis) (string, error) {
	start := time.Now()
	path, err := export.NewWriter(s.cfg.Paths.CSVDir, export.WithLogger(s.logger)).WriteCSV(a.Rows)
	metrics.ExportDuration.WithLabelValues(ledger.ExportCSV).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExportsTotal.WithLabelValues(ledger.ExportCSV, metrics.StatusError).Inc()
		return "", fmt.Errorf("csv export: %w", err)
	}
	metrics.ExportsTotal.WithLabelValues(ledger.ExportCSV, metrics.StatusSuccess).Inc()
	metrics.ExportedFilesTotal.WithLabelValues(ledger.ExportCSV).Inc()
	s.noteExport(ctx, a.RunID, ledger.ExportCSV, path)
	return path, nil
}

// ExportXML writes one descriptor per clean record of a.
func (s *AnalysisService) ExportXML(ctx context.Context, a Analysis) (export.XMLReport, error) {
	clean := a.Clean()
	start := time.Now()
	report, err := export.NewWriter(s.cfg.Paths.XMLDir, export.WithLogger(s.logger)).WriteXML(clean, s.proc.Convention())
	metrics.ExportDuration.WithLabelValues(ledger.ExportXML).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExportsTotal.WithLabelValues(ledger.ExportXML, metrics.StatusError).Inc()
		if errors.Is(err, export.ErrNoRecords) {
			return report, fmt.Errorf("xml export: no clean records: %w", err)
		}
		return report, fmt.Errorf("xml export: %w", err)
	}
	metrics.ExportsTotal.WithLabelValues(ledger.ExportXML, metrics.StatusSuccess).Inc()
	metrics.ExportedFilesTotal.WithLabelValues(ledger.ExportXML).Add(float64(len(report.Written)))
	for _, path := range report.Written {
		s.noteExport(ctx, a.RunID, ledger.ExportXML, path)
	}
	return report, nil
}

func (s *AnalysisService) noteExport(ctx context.Context, runID, kind, path string) {
	if s.store == nil || runID == "" {
		return
	}
	if err := s.store.RecordExport(ctx, runID, kind, path); err != nil {
		logging.WarnWithContext(s.logger, "export history write failed", "ledger_write_failed",
			logging.String(logging.FieldRunID, runID),
			logging.String("path", path),
			logging.Error(err),
		)
	}
}
