package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLogsCommandPrintsTail(t *testing.T) {
	env := setupCLITestEnv(t)
	logPath := filepath.Join(env.baseDir, "alecheck.log")
	if err := os.WriteFile(logPath, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	env.cfg.Logging.File = logPath
	writeTestConfig(t, env.configPath, env.cfg)

	out, _, err := runCLI(t, []string{"logs", "-n", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if out != "two\nthree\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLogsCommandRequiresLogFile(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"logs"}, env.configPath)
	if err == nil {
		t.Fatal("expected error without logging.file")
	}
	requireContains(t, err.Error(), "logging.file")
}
