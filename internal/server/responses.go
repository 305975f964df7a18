package server

import (
	"alecheck/internal/api"
	"alecheck/internal/export"
)

func ingestResponse(runID string, report export.XMLReport) api.IngestResponse {
	return api.IngestResponse{RunID: runID, XMLReport: report}
}

func manifestResponse(runID, path string) api.ManifestResponse {
	return api.ManifestResponse{RunID: runID, Path: path}
}
