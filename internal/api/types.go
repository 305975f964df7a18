package api

import (
	"time"

	"alecheck/internal/ale"
	"alecheck/internal/export"
)

// Analysis is the outcome of analyzing one document. The embedded result
// keeps the global_errors/rows shape consumers already parse.
type Analysis struct {
	RunID     string      `json:"run_id"`
	Document  string      `json:"document"`
	CreatedAt time.Time   `json:"created_at"`
	Summary   ale.Summary `json:"summary"`
	ale.Result
}

// ManifestResponse reports a written CSV manifest.
type ManifestResponse struct {
	RunID string `json:"run_id"`
	Path  string `json:"path"`
}

// IngestResponse reports written XML descriptors.
type IngestResponse struct {
	RunID string `json:"run_id"`
	export.XMLReport
}
