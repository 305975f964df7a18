// Package logging assembles structured slog loggers and formatting helpers used
// across alecheck.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so a run identifier and document name
// travel with every log line emitted while an ALE file is analyzed or
// exported. A no-op logger is provided for tests and wiring code that cannot
// fail.
package logging
