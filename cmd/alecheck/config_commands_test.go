package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"alecheck/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Config path: "+env.configPath)
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigValidateRejectsBadDecorMode(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithDecorMode("sometimes"))

	_, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestConfigSpeedFactor(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"config", "speed-factor"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing speed factor file")
	}
	requireContains(t, err.Error(), "rtfactor.conf not found")

	out, _, err := runCLI(t, []string{"config", "speed-factor", "2.5"}, env.configPath)
	if err != nil {
		t.Fatalf("set speed factor: %v", err)
	}
	requireContains(t, out, "Speed factor set to 2.5")

	data, err := os.ReadFile(env.cfg.Paths.SpeedFactorFile)
	if err != nil {
		t.Fatalf("read speed factor file: %v", err)
	}
	if strings.TrimSpace(string(data)) != "2.5" {
		t.Fatalf("unexpected file contents %q", data)
	}

	out, _, err = runCLI(t, []string{"config", "speed-factor"}, env.configPath)
	if err != nil {
		t.Fatalf("show speed factor: %v", err)
	}
	requireContains(t, out, "2.5")

	if _, _, err := runCLI(t, []string{"config", "speed-factor", "0"}, env.configPath); err == nil {
		t.Fatal("expected error for non-positive factor")
	}
}

func TestCheckCommand(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithSpeedFactor("10.0"))

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "State directory")
	requireContains(t, out, "CSV directory")
	requireContains(t, out, "Speed factor")

	env = setupCLITestEnv(t, testsupport.WithoutCSVDir())
	out, _, err = runCLI(t, []string{"check"}, env.configPath)
	if err == nil {
		t.Fatal("expected check failure without csv dir")
	}
	requireContains(t, out, "[ERROR] not configured (paths.csv_dir)")
}
