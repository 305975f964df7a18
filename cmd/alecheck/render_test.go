package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Records", statusError, "0 total", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Records:", "[ERROR] 0 total")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("Records", statusOK, "3 total", true)
	if !strings.HasPrefix(got, ansiGreen) {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected reset suffix, got %q", got)
	}
}

func TestShouldColorizeIgnoresBuffers(t *testing.T) {
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers must never be colorized")
	}
}

func TestRenderTableWrapsLongCells(t *testing.T) {
	long := strings.Repeat("erreur ", 20)
	out := renderTable([]string{"Name", "Erreur"}, [][]string{{"clip", long}}, nil)
	for _, line := range strings.Split(out, "\n") {
		if len([]rune(line)) > maxColumnWidth+20 {
			t.Fatalf("expected wrapped output, got line %q", line)
		}
	}
}

func TestRenderTableUppercasesHeaders(t *testing.T) {
	out := renderTable([]string{"Line", "Erreur"}, [][]string{{"10", "OK"}}, nil)
	if !strings.Contains(out, "ERREUR") || strings.Contains(out, "Erreur") {
		t.Fatalf("expected upper-cased headers, got\n%s", out)
	}
}
