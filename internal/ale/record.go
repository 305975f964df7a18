package ale

// Field keys used for manifest columns and the JSON boundary.
const (
	FieldFullpath      = "Fullpath"
	FieldDecoratedName = "ESTA_DECORNAME"
	FieldEsta          = "ESTA"
	FieldIngestManual  = "INGEST_MANUEL"
	FieldIngestator    = "INGESTATOR"
	FieldError         = "error"
)

const (
	flagTrue  = "TRUE"
	flagFalse = "FALSE"
	flagValue = "1"
)

// ErrorSeparator joins per-record violation messages.
const ErrorSeparator = " |  "

// Record is one parsed data line.
type Record struct {
	Name          string   `json:"Name"`
	SourceFile    string   `json:"Source File"`
	SourcePath    string   `json:"Source Path"`
	Session       string   `json:"Session"`
	Duration      string   `json:"Duration"`
	Fullpath      string   `json:"Fullpath"`
	DecoratedName string   `json:"ESTA_DECORNAME"`
	Esta          string   `json:"ESTA"`
	IngestManual  string   `json:"INGEST_MANUEL"`
	Ingestator    string   `json:"INGESTATOR"`
	Line          int      `json:"line"`
	Errors        []string `json:"errors"`
	Error         string   `json:"error"`
}

// Field is one key/value pair of a Record in manifest order.
type Field struct {
	Key   string
	Value string
}

// OK reports whether the record carries no violations.
func (r Record) OK() bool {
	return r.Error == ""
}

// Fields returns the record's exported fields in construction order.
func (r Record) Fields() []Field {
	return []Field{
		{ColName, r.Name},
		{ColSourceFile, r.SourceFile},
		{ColSourcePath, r.SourcePath},
		{ColSession, r.Session},
		{ColDuration, r.Duration},
		{FieldFullpath, r.Fullpath},
		{FieldDecoratedName, r.DecoratedName},
		{FieldEsta, r.Esta},
		{FieldIngestManual, r.IngestManual},
		{FieldIngestator, r.Ingestator},
		{FieldError, r.Error},
	}
}

// Get returns the value for a field key.
func (r Record) Get(key string) (string, bool) {
	for _, f := range r.Fields() {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

func flag(raw string) string {
	if raw == flagValue {
		return flagTrue
	}
	return flagFalse
}
