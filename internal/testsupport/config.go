package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"alecheck/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The CSV, XML and state directories exist on return.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.CSVDir = filepath.Join(base, "csv")
	cfgVal.Paths.XMLDir = filepath.Join(base, "xml")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.SpeedFactorFile = filepath.Join(base, "state", "rtfactor.conf")
	cfgVal.Server.Bind = "127.0.0.1:0"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	for _, dir := range []string{cfgVal.Paths.CSVDir, cfgVal.Paths.XMLDir, cfgVal.Paths.StateDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}

	return builder.cfg
}

// WithoutCSVDir leaves CSV export unconfigured.
func WithoutCSVDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.CSVDir = ""
	}
}

// WithDecorMode overrides the decorated-name handling.
func WithDecorMode(mode string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Convention.DecorMode = mode
	}
}

// WithSpeedFactor writes value to the speed factor file.
func WithSpeedFactor(value string) ConfigOption {
	return func(b *configBuilder) {
		path := b.cfg.Paths.SpeedFactorFile
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			b.t.Fatalf("mkdir for speed factor: %v", err)
		}
		if err := os.WriteFile(path, []byte(value), 0o644); err != nil {
			b.t.Fatalf("write speed factor: %v", err)
		}
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}
