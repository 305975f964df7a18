package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"alecheck/internal/ale"
	"alecheck/internal/api"
	"alecheck/internal/config"
	"alecheck/internal/ledger"
	"alecheck/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// session bundles what a command needs to analyze documents. store is nil
// when the ledger is disabled.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *ledger.Store
	svc    *api.AnalysisService
}

func (s *session) Close() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

func (c *commandContext) openSession() (*session, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	conv := conventionFromConfig(cfg)
	if err := conv.Validate(); err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, logger: logger}
	var runs api.RunStore
	if cfg.Ledger.Enabled {
		store, err := ledger.Open(cfg)
		if err != nil {
			return nil, fmt.Errorf("open run history: %w", err)
		}
		s.store = store
		runs = store
	}
	proc := ale.NewProcessor(conv, ale.WithLogger(logger))
	s.svc = api.NewAnalysisService(cfg, proc, runs, logger)
	return s, nil
}

func (c *commandContext) openLedger() (*ledger.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.Ledger.Enabled {
		return nil, fmt.Errorf("run history is disabled (ledger.enabled = false)")
	}
	store, err := ledger.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open run history: %w", err)
	}
	return store, nil
}

func conventionFromConfig(cfg *config.Config) ale.Convention {
	conv := cfg.Convention
	return ale.Convention{
		EpisodePrefix:   conv.EpisodePrefix,
		SequenceDigits:  conv.SequenceDigits,
		DecorMode:       ale.DecorMode(conv.DecorMode),
		StorageTemplate: conv.StorageTemplate,
		MediaTemplate:   conv.MediaTemplate,
		GroupSize:       conv.EpisodeGroupSize,
		FrameRate:       conv.FrameRate,
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
