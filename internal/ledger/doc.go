// Package ledger keeps a SQLite history of analysis runs.
//
// Every analysis, from the CLI or the HTTP service, is stored under a UUID
// with its counts, duration totals, global errors and one verdict per record.
// Exports written afterwards are attached to the run so operators can trace a
// manifest or descriptor back to the document that produced it.
//
// The database lives in the configured state directory. A schema version
// table guards against opening a database written by an incompatible build.
package ledger
