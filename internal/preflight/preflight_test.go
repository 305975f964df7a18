package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"alecheck/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDirectoryAccess_Empty(t *testing.T) {
	if result := CheckDirectoryAccess("test", ""); result.Passed {
		t.Fatal("expected failure for empty path")
	}
}

func TestRunAllSelectsTargets(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.StateDir = t.TempDir()
	cfg.Paths.XMLDir = t.TempDir()
	cfg.Paths.CSVDir = ""

	tests := []struct {
		name       string
		target     Target
		wantNames  []string
		wantFailed int
	}{
		{"state only", Target{}, []string{"State directory"}, 0},
		{"xml", Target{XML: true}, []string{"State directory", "XML directory"}, 0},
		{"csv unconfigured", Target{CSV: true}, []string{"State directory", "CSV directory"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := RunAll(&cfg, tt.target)
			if len(results) != len(tt.wantNames) {
				t.Fatalf("expected %d results, got %+v", len(tt.wantNames), results)
			}
			for i, want := range tt.wantNames {
				if results[i].Name != want {
					t.Fatalf("result %d: got %q want %q", i, results[i].Name, want)
				}
			}
			if got := len(Failed(results)); got != tt.wantFailed {
				t.Fatalf("expected %d failures, got %d", tt.wantFailed, got)
			}
		})
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if results := RunAll(nil, Target{CSV: true}); results != nil {
		t.Fatalf("expected nil, got %+v", results)
	}
}
