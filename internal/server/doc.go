// Package server exposes the analysis service over HTTP.
//
// Routes:
//
//	POST /api/analyze              analyze an uploaded document (multipart ale_file or raw body)
//	GET  /api/runs/{id}            recent analysis, or its ledger entry once evicted
//	POST /api/runs/{id}/ingest     write XML descriptors for the run's clean records
//	POST /api/runs/{id}/manifest   write the run's CSV manifest
//	GET  /healthz                  output directory readiness
//	GET  /metrics                  Prometheus collectors
//
// Recent analyses are kept in memory so ingest and manifest calls can reuse
// the full record set without re-uploading the document.
package server
