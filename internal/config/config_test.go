package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"alecheck/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("ALECHECK_CSV_DIR", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "alecheck", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "state", "alecheck")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.Paths.SpeedFactorFile != filepath.Join(wantState, "rtfactor.conf") {
		t.Fatalf("unexpected speed factor file: %q", cfg.Paths.SpeedFactorFile)
	}
	if cfg.Paths.CSVDir != "" {
		t.Fatalf("expected csv dir unset, got %q", cfg.Paths.CSVDir)
	}
	if cfg.Convention.EpisodePrefix != "NJ" || cfg.Convention.DecorMode != "override" {
		t.Fatalf("unexpected convention defaults: %+v", cfg.Convention)
	}
	if cfg.Server.Bind != "127.0.0.1:5000" {
		t.Fatalf("unexpected bind: %q", cfg.Server.Bind)
	}
	if !cfg.Ledger.Enabled {
		t.Fatal("expected ledger enabled by default")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.StateDir); err != nil || !info.IsDir() {
		t.Fatalf("expected state dir to exist: %v", err)
	}
	if cfg.LedgerPath() != filepath.Join(wantState, "ledger.db") {
		t.Fatalf("unexpected ledger path %q", cfg.LedgerPath())
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "alecheck.toml")
	contents := `
[paths]
csv_dir = "` + filepath.ToSlash(filepath.Join(tempDir, "csv")) + `"
state_dir = "` + filepath.ToSlash(filepath.Join(tempDir, "state")) + `"
speed_factor_file = "` + filepath.ToSlash(filepath.Join(tempDir, "conf", "rt.conf")) + `"

[convention]
episode_prefix = "lgs"
decor_mode = "FLAG"

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom path to resolve, got %q exists=%v", resolved, exists)
	}
	if cfg.Paths.CSVDir != filepath.Join(tempDir, "csv") {
		t.Fatalf("unexpected csv dir %q", cfg.Paths.CSVDir)
	}
	if cfg.Paths.SpeedFactorFile != filepath.Join(tempDir, "conf", "rt.conf") {
		t.Fatalf("unexpected speed factor file %q", cfg.Paths.SpeedFactorFile)
	}
	if cfg.Convention.EpisodePrefix != "LGS" || cfg.Convention.DecorMode != "flag" {
		t.Fatalf("convention not normalized: %+v", cfg.Convention)
	}
	if cfg.Convention.SequenceDigits != 6 || cfg.Convention.EpisodeGroupSize != 10 {
		t.Fatalf("expected defaults to fill convention gaps: %+v", cfg.Convention)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
}

func TestLoadCSVDirFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	want := t.TempDir()
	t.Setenv("ALECHECK_CSV_DIR", want)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.CSVDir != want {
		t.Fatalf("expected csv dir from env %q, got %q", want, cfg.Paths.CSVDir)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"decor mode", "[convention]\ndecor_mode = \"maybe\"\n", "convention.decor_mode"},
		{"prefix separator", "[convention]\nepisode_prefix = \"NJ-\"\n", "convention.episode_prefix"},
		{"storage template", "[convention]\nstorage_template = \"/mnt/rushes\"\n", "convention.storage_template"},
		{"log format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"unknown key", "[paths]\nlibrary_dir = \"/x\"\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			path := filepath.Join(t.TempDir(), "alecheck.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCreateSampleProducesLoadableConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	for _, section := range []string{"paths", "convention", "server", "ledger", "logging"} {
		if _, ok := raw[section]; !ok {
			t.Fatalf("sample config missing [%s]", section)
		}
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load(sample) returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	def := config.Default()
	if cfg.Convention.MediaTemplate != def.Convention.MediaTemplate {
		t.Fatalf("sample media template %q differs from default %q", cfg.Convention.MediaTemplate, def.Convention.MediaTemplate)
	}
	if cfg.Convention.StorageTemplate != def.Convention.StorageTemplate {
		t.Fatalf("sample storage template %q differs from default %q", cfg.Convention.StorageTemplate, def.Convention.StorageTemplate)
	}
}
