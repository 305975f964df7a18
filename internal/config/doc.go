// Package config loads, normalizes, and validates alecheck configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the ALECHECK_CSV_DIR environment
// fallback. The Config type gathers the export directories, the deployment's
// clip naming convention, the HTTP bind address and logging options.
//
// The real-time speed factor lives in its own one-line file, outside the TOML
// document, so operators can adjust it without touching the rest of the
// configuration.
package config
