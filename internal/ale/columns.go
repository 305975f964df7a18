package ale

import "strings"

// Header names as they appear in the ALE Column section.
const (
	ColName         = "Name"
	ColStart        = "Start"
	ColEnd          = "End"
	ColSession      = "Session"
	ColDuration     = "Duration"
	ColSourceFile   = "Source File"
	ColSourcePath   = "Source Path"
	ColIngestator   = "Ingestator"
	ColIngestManual = "Ingest_manuel"
	ColEsta         = "Esta"
)

// RequiredColumns must all be present in the header line.
var RequiredColumns = []string{
	ColName, ColStart, ColSession, ColEnd, ColDuration, ColSourceFile, ColSourcePath,
}

// EssentialColumns are copied onto every Record and must be non-empty.
var EssentialColumns = []string{
	ColName, ColSourceFile, ColSourcePath, ColSession, ColDuration,
}

// DecoratedColumns lists the historical spellings of the decorated-name column,
// in lookup priority order.
var DecoratedColumns = []string{
	"Esta_decorname", "ESTA_DECORNAME", "Esta_Decorname", "Decorname",
}

// ColumnMap resolves field names to positions in a tab-split data line.
type ColumnMap struct {
	index map[string]int
}

// SplitHeader splits a header line on tabs. The trailing line terminator is
// ignored but cells are otherwise kept verbatim.
func SplitHeader(line string) []string {
	return strings.Split(strings.TrimRight(line, "\r\n"), "\t")
}

// MapColumns resolves every required name with an exact, case-sensitive match.
// When any are absent it returns a single GlobalError listing all of them.
// Optional names are resolved when present and silently ignored otherwise.
func MapColumns(headers, required, optional []string) (ColumnMap, *GlobalError) {
	positions := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, seen := positions[h]; !seen {
			positions[h] = i
		}
	}

	cm := ColumnMap{index: make(map[string]int, len(required)+len(optional))}
	var missing []string
	for _, name := range required {
		idx, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		cm.index[name] = idx
	}
	if len(missing) > 0 {
		return ColumnMap{}, newGlobalError("Colonnes manquantes dans le fichier ALE : " + strings.Join(missing, ", ") + ".")
	}
	for _, name := range optional {
		if idx, ok := positions[name]; ok {
			cm.index[name] = idx
		}
	}
	return cm, nil
}

// Has reports whether name was resolved.
func (m ColumnMap) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Index returns the position for name.
func (m ColumnMap) Index(name string) (int, bool) {
	idx, ok := m.index[name]
	return idx, ok
}

// Value returns the cell for name, or "" when the column is unmapped or the
// line is too short.
func (m ColumnMap) Value(cells []string, name string) string {
	idx, ok := m.index[name]
	if !ok || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

// First returns the value of the first mapped column among names.
func (m ColumnMap) First(cells []string, names ...string) (string, bool) {
	for _, name := range names {
		if m.Has(name) {
			return m.Value(cells, name), true
		}
	}
	return "", false
}
