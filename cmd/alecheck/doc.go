// Package main hosts the alecheck CLI entrypoint and command graph.
//
// The Cobra-based command tree loads configuration once, builds the analysis
// service over the ale engine and the run ledger, and renders results as
// tables or JSON. The serve command exposes the same service over HTTP.
//
// Keep this package lean: new behaviour belongs in the internal packages and
// is surfaced here through dedicated commands or flags.
package main
