package logging

import "strings"

// FormatSubject builds the run/document subject shown in console output.
// Run IDs are shortened to their first eight characters.
func FormatSubject(runID, document string) string {
	runID = strings.TrimSpace(runID)
	document = strings.TrimSpace(document)
	if len(runID) > 8 {
		runID = runID[:8]
	}
	parts := make([]string, 0, 2)
	if runID != "" {
		parts = append(parts, "run "+runID)
	}
	if document != "" {
		parts = append(parts, document)
	}
	return strings.Join(parts, " · ")
}
