package preflight

import (
	"strings"

	"alecheck/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail"`
}

// Target selects which output directories a command is about to write.
type Target struct {
	CSV bool
	XML bool
}

// RunAll executes the checks relevant to target. The state directory is
// always checked because the ledger and lock files live there.
func RunAll(cfg *config.Config, target Target) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{CheckDirectoryAccess("State directory", cfg.Paths.StateDir)}

	if target.CSV {
		if strings.TrimSpace(cfg.Paths.CSVDir) == "" {
			results = append(results, Result{Name: "CSV directory", Detail: "not configured (paths.csv_dir)"})
		} else {
			results = append(results, CheckDirectoryAccess("CSV directory", cfg.Paths.CSVDir))
		}
	}
	if target.XML {
		results = append(results, CheckDirectoryAccess("XML directory", cfg.Paths.XMLDir))
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
