package ale

import (
	"math"
	"testing"
)

func TestParseTimecode(t *testing.T) {
	cases := []struct {
		tc     string
		frames int
		ok     bool
	}{
		{"00:00:01:00", 25, true},
		{"01:00:00:10", 90010, true},
		{"00:00:00;12", 0, false},
		{"0:00:01:00", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		frames, ok := ParseTimecode(tc.tc, 25)
		if frames != tc.frames || ok != tc.ok {
			t.Fatalf("ParseTimecode(%q) = %d, %v; want %d, %v", tc.tc, frames, ok, tc.frames, tc.ok)
		}
	}
}

func TestTotalSecondsDropsLeftoverFrames(t *testing.T) {
	rows := []Record{
		{SourceFile: "a.mov", Duration: "00:01:00:00"},
		{SourceFile: "b.mxf", Duration: "00:02:30:12"},
	}
	total := TotalSeconds(rows, 25)
	if total != 210 {
		t.Fatalf("total = %d, want 210", total)
	}
	if got := FormatDuration(total); got != "00 heures 03 min 30 secondes" {
		t.Fatalf("formatted = %q", got)
	}
}

func TestTotalSecondsExcludesWavAndMalformed(t *testing.T) {
	rows := []Record{
		{SourceFile: "a.mov", Duration: "00:00:10:00"},
		{SourceFile: "son.wav", Duration: "01:00:00:00"},
		{SourceFile: "SON.WAV", Duration: "01:00:00:00"},
		{SourceFile: "b.mov", Duration: "10 sec"},
		{SourceFile: "c.mov", Duration: ""},
	}
	if got := TotalSeconds(rows, 25); got != 10 {
		t.Fatalf("total = %d, want 10", got)
	}
}

func TestAdjustedSeconds(t *testing.T) {
	if got := AdjustedSeconds(210, 10.0); got != 21 {
		t.Fatalf("adjusted = %d, want 21", got)
	}
	if got := FormatDuration(AdjustedSeconds(210, 10.0)); got != "00 heures 00 min 21 secondes" {
		t.Fatalf("formatted = %q", got)
	}
	if got := AdjustedSeconds(215, 10.0); got != 21 {
		t.Fatalf("adjusted should truncate, got %d", got)
	}
	if got := AdjustedSeconds(60, 0); got != 60 {
		t.Fatalf("non-positive factor should be ignored, got %d", got)
	}
	for _, factor := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := AdjustedSeconds(210, factor); got != 210 {
			t.Fatalf("factor %v should be ignored, got %d", factor, got)
		}
	}
}

func TestFormatDurationLongTotals(t *testing.T) {
	if got := FormatDuration(123*3600 + 4*60 + 5); got != "123 heures 04 min 05 secondes" {
		t.Fatalf("formatted = %q", got)
	}
}

func TestSummarize(t *testing.T) {
	res := Result{Rows: []Record{
		{SourceFile: "a.mov", Duration: "00:01:00:00", Error: "x"},
		{SourceFile: "b.mov", Duration: "00:02:30:12"},
	}}
	sum := Summarize(res, DefaultConvention(), 10)
	if sum.Records != 2 || sum.Failing != 1 || sum.Clean != 1 {
		t.Fatalf("unexpected counts %+v", sum)
	}
	if sum.TotalSeconds != 210 || sum.AdjustedSeconds != 21 {
		t.Fatalf("unexpected durations %+v", sum)
	}
}
