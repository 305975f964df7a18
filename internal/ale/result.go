package ale

// LevelError is the only level the engine emits for global errors.
const LevelError = "ERROR"

// GlobalError describes a document-level failure that is not tied to a record.
type GlobalError struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func newGlobalError(message string) *GlobalError {
	return &GlobalError{Level: LevelError, Message: message}
}

// Error implements error so a GlobalError can be surfaced through error paths.
func (g GlobalError) Error() string {
	return g.Message
}

// Result is the output of one Process call.
type Result struct {
	GlobalErrors []GlobalError `json:"global_errors"`
	Rows         []Record      `json:"rows"`
}

// AddGlobalError appends a document-level error.
func (r *Result) AddGlobalError(message string) {
	r.GlobalErrors = append(r.GlobalErrors, *newGlobalError(message))
}

// Clean returns the records with an empty Error, preserving order.
func (r Result) Clean() []Record {
	out := make([]Record, 0, len(r.Rows))
	for _, row := range r.Rows {
		if row.OK() {
			out = append(out, row)
		}
	}
	return out
}

// FailingCount counts records with at least one violation.
func (r Result) FailingCount() int {
	n := 0
	for _, row := range r.Rows {
		if !row.OK() {
			n++
		}
	}
	return n
}
