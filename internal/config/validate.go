package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateConvention(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return errors.New("paths.state_dir must be set")
	}
	return nil
}

func (c *Config) validateConvention() error {
	conv := c.Convention
	if strings.ContainsAny(conv.EpisodePrefix, "-\t ") {
		return fmt.Errorf("convention.episode_prefix %q must not contain separators", conv.EpisodePrefix)
	}
	if conv.SequenceDigits < 0 {
		return errors.New("convention.sequence_digits must be positive")
	}
	switch conv.DecorMode {
	case "override", "flag":
	default:
		return fmt.Errorf("convention.decor_mode must be one of override, flag (got %q)", conv.DecorMode)
	}
	if !strings.Contains(conv.StorageTemplate, "{episode}") {
		return errors.New("convention.storage_template must contain {episode}")
	}
	if !strings.Contains(conv.MediaTemplate, "{episode}") {
		return errors.New("convention.media_template must contain {episode}")
	}
	if conv.EpisodeGroupSize < 0 {
		return errors.New("convention.episode_group_size must be positive")
	}
	if conv.FrameRate < 0 {
		return errors.New("convention.frame_rate must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be one of console, json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	return nil
}
