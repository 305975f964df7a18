package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeConvention()
	c.normalizeServer()
	return c.normalizeLogging()
}

func (c *Config) normalizePaths() error {
	if strings.TrimSpace(c.Paths.CSVDir) == "" {
		if value, ok := os.LookupEnv("ALECHECK_CSV_DIR"); ok {
			c.Paths.CSVDir = value
		}
	}
	var err error
	if c.Paths.CSVDir, err = expandPath(strings.TrimSpace(c.Paths.CSVDir)); err != nil {
		return fmt.Errorf("paths.csv_dir: %w", err)
	}
	if c.Paths.XMLDir, err = expandPath(strings.TrimSpace(c.Paths.XMLDir)); err != nil {
		return fmt.Errorf("paths.xml_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir()
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	speed := strings.TrimSpace(c.Paths.SpeedFactorFile)
	if speed == "" {
		speed = defaultSpeedFactorFile
	}
	// A bare file name lives next to the ledger.
	if !strings.ContainsAny(speed, `/\`) && !strings.HasPrefix(speed, "~") {
		speed = filepath.Join(c.Paths.StateDir, speed)
	}
	if c.Paths.SpeedFactorFile, err = expandPath(speed); err != nil {
		return fmt.Errorf("paths.speed_factor_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeConvention() {
	c.Convention.EpisodePrefix = strings.ToUpper(strings.TrimSpace(c.Convention.EpisodePrefix))
	if c.Convention.EpisodePrefix == "" {
		c.Convention.EpisodePrefix = defaultEpisodePrefix
	}
	c.Convention.DecorMode = strings.ToLower(strings.TrimSpace(c.Convention.DecorMode))
	if c.Convention.DecorMode == "" {
		c.Convention.DecorMode = defaultDecorMode
	}
	if strings.TrimSpace(c.Convention.StorageTemplate) == "" {
		c.Convention.StorageTemplate = defaultStorageTemplate
	}
	if strings.TrimSpace(c.Convention.MediaTemplate) == "" {
		c.Convention.MediaTemplate = defaultMediaTemplate
	}
	if c.Convention.SequenceDigits == 0 {
		c.Convention.SequenceDigits = defaultSequenceDigits
	}
	if c.Convention.EpisodeGroupSize == 0 {
		c.Convention.EpisodeGroupSize = defaultEpisodeGroupSize
	}
	if c.Convention.FrameRate == 0 {
		c.Convention.FrameRate = defaultFrameRate
	}
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultServerBind
	}
}

func (c *Config) normalizeLogging() error {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format == "" {
		format = defaultLogFormat
	}
	c.Logging.Format = format

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level

	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
