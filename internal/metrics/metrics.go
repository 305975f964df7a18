package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alecheck_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alecheck_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "alecheck_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Analysis metrics
var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alecheck_analyses_total",
			Help: "Total number of ALE documents analyzed",
		},
		[]string{"origin", "outcome"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "alecheck_analysis_duration_seconds",
			Help:    "Time spent parsing and validating one document",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	RecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alecheck_records_total",
			Help: "Total number of clip records processed, by verdict",
		},
		[]string{"verdict"},
	)

	GlobalErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "alecheck_global_errors_total",
			Help: "Total number of document-level errors reported",
		},
	)
)

// Export metrics
var (
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alecheck_exports_total",
			Help: "Total number of export attempts",
		},
		[]string{"kind", "status"},
	)

	ExportedFilesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alecheck_exported_files_total",
			Help: "Total number of files written by exports",
		},
		[]string{"kind"},
	)

	ExportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "alecheck_export_duration_seconds",
			Help:    "Export duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"kind"},
	)
)

// Ledger metrics
var (
	LedgerWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alecheck_ledger_writes_total",
			Help: "Total number of run history writes",
		},
		[]string{"status"},
	)
)

// Label values shared by callers.
const (
	StatusSuccess = "success"
	StatusError   = "error"

	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"

	VerdictClean   = "clean"
	VerdictFailing = "failing"
)
