package main

import (
	"encoding/json"
	"testing"

	"alecheck/internal/testsupport"
)

func TestHistoryListAndShow(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithSpeedFactor("10.0"))
	doc := env.writeDocument(t, "day1.ale", testsupport.SampleALE())

	out, _, err := runCLI(t, []string{"analyze", "--json", "--csv", doc}, env.configPath)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	var analyzed analyzeJSON
	if err := json.Unmarshal([]byte(out), &analyzed); err != nil {
		t.Fatalf("decode analyze output: %v", err)
	}

	out, _, err = runCLI(t, []string{"history", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, analyzed.RunID)
	requireContains(t, out, "day1.ale")

	out, _, err = runCLI(t, []string{"history", "show", analyzed.RunID}, env.configPath)
	if err != nil {
		t.Fatalf("history show: %v", err)
	}
	requireContains(t, out, "Records:  3 (2 clean, 1 failing)")
	requireContains(t, out, "bad name")
	requireContains(t, out, "Exports")
	requireContains(t, out, analyzed.Manifest)
}

func TestHistoryListJSONHonoursLimit(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithSpeedFactor("10.0"))
	doc := env.writeDocument(t, "day1.ale", testsupport.SampleALE())
	for i := 0; i < 3; i++ {
		if _, _, err := runCLI(t, []string{"analyze", doc}, env.configPath); err != nil {
			t.Fatalf("analyze %d: %v", i, err)
		}
	}

	out, _, err := runCLI(t, []string{"history", "list", "--json", "--limit", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	var runs []map[string]any
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("decode runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}

func TestHistoryShowUnknownRun(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"history", "show", "missing"}, env.configPath)
	if err == nil {
		t.Fatal("expected error for unknown run")
	}
	requireContains(t, err.Error(), "run not found")
}

func TestHistoryDisabledLedger(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Ledger.Enabled = false
	writeTestConfig(t, env.configPath, env.cfg)

	_, _, err := runCLI(t, []string{"history", "list"}, env.configPath)
	if err == nil {
		t.Fatal("expected error when ledger disabled")
	}
	requireContains(t, err.Error(), "run history is disabled")
}
