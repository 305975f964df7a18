package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ALEHeader is the column line used by SampleALE.
var ALEHeader = []string{
	"Name", "Start", "End", "Duration", "Session", "Source File", "Source Path",
	"Esta_decorname", "Ingestator", "Ingest_manuel",
}

// ALERow is one data line of a generated fixture.
type ALERow struct {
	Name, Duration, Session, File, Path, Decor, Ingestator, Manual string
}

// CleanRow returns a row that passes every convention check.
func CleanRow(name, file string) ALERow {
	return ALERow{
		Name:     name,
		Duration: "00:01:00:00",
		Session:  "240115_EQ2_AM",
		File:     file,
		Path:     `D:\RUSHES\EQ2`,
	}
}

// BuildALE renders a tab-delimited document with Heading, Column and Data
// sections. The first data row sits on physical line 10.
func BuildALE(rows ...ALERow) string {
	var b strings.Builder
	b.WriteString("Heading\nFIELD_DELIM\tTABS\nVIDEO_FORMAT\t1080\nFPS\t25\n\n")
	b.WriteString("Column\n")
	b.WriteString(strings.Join(ALEHeader, "\t"))
	b.WriteString("\n\nData\n")
	for _, r := range rows {
		b.WriteString(strings.Join([]string{
			r.Name, "10:00:00:00", "10:01:00:00", r.Duration, r.Session,
			r.File, r.Path, r.Decor, r.Ingestator, r.Manual,
		}, "\t"))
		b.WriteString("\n")
	}
	return b.String()
}

// SampleALE returns a document with two clean records (episodes 0001 and
// 0012) and one record failing the naming checks.
func SampleALE() string {
	return BuildALE(
		CleanRow("NJ-000101", "NJ-000101.mov"),
		CleanRow("NJ-001203", "NJ-001203.mov"),
		CleanRow("bad name", "bad.mov"),
	)
}

// WriteALE stores contents at path and returns path.
func WriteALE(t testing.TB, path, contents string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
