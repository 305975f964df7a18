package ale

import "strings"

var testHeader = []string{
	"Name", "Start", "End", "Duration", "Session", "Source File", "Source Path",
	"Esta_decorname", "Ingestator", "Ingest_manuel",
}

type testRow struct {
	name, duration, session, file, path, decor, ingestator, manual string
}

func (r testRow) cells() []string {
	return []string{
		r.name, "10:00:00:00", "10:01:00:00", r.duration, r.session,
		r.file, r.path, r.decor, r.ingestator, r.manual,
	}
}

func cleanRow(name, file string) testRow {
	return testRow{
		name:     name,
		duration: "00:01:00:00",
		session:  "240115_EQ2_AM",
		file:     file,
		path:     `D:\RUSHES\EQ2`,
	}
}

func buildALE(header []string, rows ...[]string) string {
	var b strings.Builder
	b.WriteString("Heading\nFIELD_DELIM\tTABS\nVIDEO_FORMAT\t1080\nFPS\t25\n\n")
	b.WriteString("Column\n")
	b.WriteString(strings.Join(header, "\t"))
	b.WriteString("\n\nData\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteString("\n")
	}
	return b.String()
}

func buildRows(rows ...testRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.cells())
	}
	return out
}
