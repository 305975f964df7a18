// Package api holds the analysis service shared by the CLI and the HTTP
// server, along with its transport types.
//
// A call to AnalysisService.Analyze reads the speed factor, runs the document
// through the ale processor, summarizes durations, records the run in the
// ledger and feeds the Prometheus collectors. Exports reuse the returned
// Analysis so the CLI and the server produce identical artifacts and history
// entries.
//
// Analysis embeds ale.Result, so its JSON form keeps the global_errors and
// rows keys next to the run identifier and summary.
package api
