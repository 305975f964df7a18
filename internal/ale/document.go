package ale

import "strings"

const (
	markerColumn = "Column"
	markerData   = "Data"
)

// Sections holds the line offsets discovered by LocateSections.
type Sections struct {
	// Header is the index of the header line (the line after Column).
	Header int
	// DataStart is the index of the first data line (the line after Data).
	DataStart int
}

// SplitLines splits text into lines the way a line-oriented reader would:
// \n, \r\n and \r all terminate a line and a trailing terminator does not
// produce an empty final line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// LocateSections finds the Column and Data markers. Markers match a whole
// trimmed line, never a substring. The returned GlobalError is nil on success.
func LocateSections(lines []string) (Sections, *GlobalError) {
	column := findMarker(lines, markerColumn)
	if column < 0 {
		return Sections{}, newGlobalError("Section 'Column' manquante.")
	}
	if column+1 >= len(lines) {
		return Sections{}, newGlobalError("Section 'Column' sans ligne d'en-tête.")
	}
	data := findMarker(lines, markerData)
	if data < 0 {
		return Sections{}, newGlobalError("Section 'Data' manquante.")
	}
	return Sections{Header: column + 1, DataStart: data + 1}, nil
}

func findMarker(lines []string, marker string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) == marker {
			return i
		}
	}
	return -1
}
