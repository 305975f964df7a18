// Package export writes analysis results for the downstream ingest pipeline.
//
// Two artifacts exist: a CSV batch manifest holding every record (failing ones
// included, with a FORCE_PROCESS column operators fill in to override a
// verdict) and one XML descriptor per clean record carrying the derived
// episode number and storage paths. Both writers take an exclusive lock on the
// target directory so concurrent exports from the CLI and the HTTP service do
// not interleave.
package export
