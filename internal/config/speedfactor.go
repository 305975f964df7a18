package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrSpeedFactorMissing reports that the file was absent and has been created with the default.
	ErrSpeedFactorMissing = errors.New("Fichier rtfactor.conf non trouvé, création du fichier avec la valeur par défaut.")
	// ErrSpeedFactorInvalid reports an unparsable or non-positive value.
	ErrSpeedFactorInvalid = errors.New("Erreur lors de la lecture de rtfactor.conf")
)

// LoadSpeedFactor reads the one-line speed factor file. The returned value is
// always usable: when the file is missing (it is then created) or invalid,
// DefaultSpeedFactor comes back together with an error wrapping one of the
// sentinels, which callers surface as a global error rather than aborting.
func LoadSpeedFactor(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if werr := SaveSpeedFactor(path, DefaultSpeedFactor); werr != nil {
			return DefaultSpeedFactor, fmt.Errorf("%w (%v)", ErrSpeedFactorMissing, werr)
		}
		return DefaultSpeedFactor, ErrSpeedFactorMissing
	}
	if err != nil {
		return DefaultSpeedFactor, fmt.Errorf("%w : %v", ErrSpeedFactorInvalid, err)
	}
	value, err := ParseSpeedFactor(string(data))
	if err != nil {
		return DefaultSpeedFactor, err
	}
	return value, nil
}

// ParseSpeedFactor parses a speed factor, accepting the letter O typed for zero.
func ParseSpeedFactor(raw string) (float64, error) {
	text := strings.TrimSpace(strings.ReplaceAll(raw, "O", "0"))
	if line, _, ok := strings.Cut(text, "\n"); ok {
		text = strings.TrimSpace(line)
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w : could not convert string to float: '%s'", ErrSpeedFactorInvalid, text)
	}
	if !usableFactor(value) {
		return 0, fmt.Errorf("%w : speed factor must be a positive finite number (got %s)", ErrSpeedFactorInvalid, text)
	}
	return value, nil
}

// SaveSpeedFactor persists value as a single line.
func SaveSpeedFactor(path string, value float64) error {
	if !usableFactor(value) {
		return fmt.Errorf("%w : speed factor must be a positive finite number", ErrSpeedFactorInvalid)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create speed factor directory: %w", err)
		}
	}
	line := strconv.FormatFloat(value, 'f', -1, 64)
	if !strings.ContainsAny(line, ".eE") {
		line += ".0"
	}
	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		return fmt.Errorf("write speed factor: %w", err)
	}
	return nil
}

func usableFactor(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0) && value > 0
}
