package config_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"alecheck/internal/config"
)

func TestLoadSpeedFactorCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "rtfactor.conf")

	value, err := config.LoadSpeedFactor(path)
	if !errors.Is(err, config.ErrSpeedFactorMissing) {
		t.Fatalf("expected ErrSpeedFactorMissing, got %v", err)
	}
	if err.Error() != "Fichier rtfactor.conf non trouvé, création du fichier avec la valeur par défaut." {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if value != config.DefaultSpeedFactor {
		t.Fatalf("expected default, got %v", value)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file to be created: %v", err)
	}
	if string(data) != "10.0" {
		t.Fatalf("unexpected file contents %q", data)
	}

	value, err = config.LoadSpeedFactor(path)
	if err != nil || value != 10 {
		t.Fatalf("second load = %v, %v", value, err)
	}
}

func TestParseSpeedFactor(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"10.0", 10, false},
		{"  2.5\n", 2.5, false},
		{"1O.O", 10, false},
		{"4\nignored", 4, false},
		{"abc", 0, true},
		{"0", 0, true},
		{"-3", 0, true},
		{"", 0, true},
		{"NaN", 0, true},
		{"nan", 0, true},
		{"Inf", 0, true},
		{"-Inf", 0, true},
		{"1e400", 0, true},
	}
	for _, tt := range tests {
		got, err := config.ParseSpeedFactor(tt.raw)
		if tt.wantErr {
			if !errors.Is(err, config.ErrSpeedFactorInvalid) {
				t.Errorf("ParseSpeedFactor(%q) expected ErrSpeedFactorInvalid, got %v", tt.raw, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseSpeedFactor(%q) = %v, %v; want %v", tt.raw, got, err, tt.want)
		}
	}
}

func TestLoadSpeedFactorInvalidFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rtfactor.conf")
	if err := os.WriteFile(path, []byte("fast"), 0o644); err != nil {
		t.Fatal(err)
	}
	value, err := config.LoadSpeedFactor(path)
	if !errors.Is(err, config.ErrSpeedFactorInvalid) {
		t.Fatalf("expected ErrSpeedFactorInvalid, got %v", err)
	}
	if !strings.Contains(err.Error(), "fast") {
		t.Fatalf("expected reason to mention the bad value: %v", err)
	}
	if value != config.DefaultSpeedFactor {
		t.Fatalf("expected default fallback, got %v", value)
	}
}

func TestSaveSpeedFactorRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rtfactor.conf")
	if err := config.SaveSpeedFactor(path, 12.5); err != nil {
		t.Fatalf("SaveSpeedFactor: %v", err)
	}
	got, err := config.LoadSpeedFactor(path)
	if err != nil || got != 12.5 {
		t.Fatalf("LoadSpeedFactor = %v, %v", got, err)
	}
	for _, bad := range []float64{0, math.NaN(), math.Inf(1)} {
		if err := config.SaveSpeedFactor(path, bad); !errors.Is(err, config.ErrSpeedFactorInvalid) {
			t.Fatalf("expected rejection of %v, got %v", bad, err)
		}
	}
	if got, err := config.LoadSpeedFactor(path); err != nil || got != 12.5 {
		t.Fatalf("rejected values must not overwrite the file: %v, %v", got, err)
	}
}

func TestLoadSpeedFactorRejectsNonFinite(t *testing.T) {
	for _, raw := range []string{"NaN", "+Inf"} {
		path := filepath.Join(t.TempDir(), "rtfactor.conf")
		if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
			t.Fatal(err)
		}
		value, err := config.LoadSpeedFactor(path)
		if !errors.Is(err, config.ErrSpeedFactorInvalid) {
			t.Fatalf("%s: expected ErrSpeedFactorInvalid, got %v", raw, err)
		}
		if value != config.DefaultSpeedFactor {
			t.Fatalf("%s: expected default fallback, got %v", raw, value)
		}
	}
}
