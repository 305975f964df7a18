package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"alecheck/internal/ale"
)

// ErrNotFound is returned when a run ID is unknown.
var ErrNotFound = errors.New("run not found")

// Origin records how a run was started.
type Origin string

const (
	OriginCLI  Origin = "cli"
	OriginHTTP Origin = "http"
)

// Export kinds stored in run_exports.
const (
	ExportCSV = "csv"
	ExportXML = "xml"
)

// Run is one analysis of one document.
type Run struct {
	ID              string    `json:"id"`
	Document        string    `json:"document"`
	Origin          Origin    `json:"origin"`
	CreatedAt       time.Time `json:"created_at"`
	Records         int       `json:"records"`
	Failing         int       `json:"failing"`
	GlobalErrors    []string  `json:"global_errors"`
	TotalSeconds    int       `json:"total_seconds"`
	AdjustedSeconds int       `json:"adjusted_seconds"`
	SpeedFactor     float64   `json:"speed_factor"`
}

// Clean returns the number of records without violations.
func (r Run) Clean() int {
	return r.Records - r.Failing
}

// RunRecord is the stored verdict for one record of a run.
type RunRecord struct {
	Position   int    `json:"position"`
	Line       int    `json:"line"`
	Name       string `json:"name"`
	SourceFile string `json:"source_file"`
	Fullpath   string `json:"fullpath"`
	OK         bool   `json:"ok"`
	Error      string `json:"error"`
}

// Export is an artifact written for a run.
type Export struct {
	Kind      string    `json:"kind"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

// RunDetail bundles a run with its records and exports.
type RunDetail struct {
	Run     Run         `json:"run"`
	Records []RunRecord `json:"records"`
	Exports []Export    `json:"exports"`
}

// NewRun builds a run with a fresh identifier from an analysis result.
func NewRun(document string, origin Origin, res ale.Result, summary ale.Summary) Run {
	globals := make([]string, 0, len(res.GlobalErrors))
	for _, g := range res.GlobalErrors {
		globals = append(globals, g.Message)
	}
	return Run{
		ID:              uuid.NewString(),
		Document:        document,
		Origin:          origin,
		CreatedAt:       time.Now().UTC(),
		Records:         summary.Records,
		Failing:         summary.Failing,
		GlobalErrors:    globals,
		TotalSeconds:    summary.TotalSeconds,
		AdjustedSeconds: summary.AdjustedSeconds,
		SpeedFactor:     summary.SpeedFactor,
	}
}

// RecordsFromResult converts result rows into stored verdicts.
func RecordsFromResult(res ale.Result) []RunRecord {
	out := make([]RunRecord, 0, len(res.Rows))
	for i, row := range res.Rows {
		out = append(out, RunRecord{
			Position:   i,
			Line:       row.Line,
			Name:       row.Name,
			SourceFile: row.SourceFile,
			Fullpath:   row.Fullpath,
			OK:         row.OK(),
			Error:      row.Error,
		})
	}
	return out
}
