package ale

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// DecorMode selects how the decorated-name column is interpreted.
type DecorMode string

const (
	// DecorOverride treats the column as a free-text override token. A non-empty
	// cleaned token exempts the record from raw-name convention checks.
	DecorOverride DecorMode = "override"
	// DecorFlag treats the legacy Esta column as a boolean ingest flag.
	DecorFlag DecorMode = "flag"
)

const (
	// PlaceholderEpisode is replaced by the four-digit episode number in path templates.
	PlaceholderEpisode = "{episode}"
	// PlaceholderGroup is replaced by the 1-based media volume group in path templates.
	PlaceholderGroup = "{group}"
)

const (
	defaultEpisodePrefix   = "NJ"
	defaultSequenceDigits  = 6
	defaultGroupSize       = 10
	defaultFrameRate       = 25
	defaultStorageTemplate = `\\facilis\LGS_RUSHES\NATIFS\LGS_EP_{episode}\`
	defaultMediaTemplate   = `\\nexis\LGS_MTG_{group}\Avid MediaFiles\MXF\EP{episode}`
)

// Convention captures one deployment's naming and storage rules.
type Convention struct {
	EpisodePrefix   string
	SequenceDigits  int
	DecorMode       DecorMode
	StorageTemplate string
	MediaTemplate   string
	GroupSize       int
	FrameRate       int
}

// DefaultConvention returns the current NJ deployment rules.
func DefaultConvention() Convention {
	return Convention{
		EpisodePrefix:   defaultEpisodePrefix,
		SequenceDigits:  defaultSequenceDigits,
		DecorMode:       DecorOverride,
		StorageTemplate: defaultStorageTemplate,
		MediaTemplate:   defaultMediaTemplate,
		GroupSize:       defaultGroupSize,
		FrameRate:       defaultFrameRate,
	}
}

// Validate reports the first unusable setting.
func (c Convention) Validate() error {
	prefix := strings.TrimSpace(c.EpisodePrefix)
	if prefix == "" {
		return errors.New("convention: episode prefix must be set")
	}
	if strings.ContainsAny(prefix, "-\t ") {
		return fmt.Errorf("convention: episode prefix %q must not contain separators", prefix)
	}
	if c.SequenceDigits <= 0 {
		return errors.New("convention: sequence digits must be positive")
	}
	switch c.DecorMode {
	case DecorOverride, DecorFlag:
	default:
		return fmt.Errorf("convention: unsupported decor mode %q", c.DecorMode)
	}
	if !strings.Contains(c.StorageTemplate, PlaceholderEpisode) {
		return fmt.Errorf("convention: storage template must contain %s", PlaceholderEpisode)
	}
	if !strings.Contains(c.MediaTemplate, PlaceholderEpisode) {
		return fmt.Errorf("convention: media template must contain %s", PlaceholderEpisode)
	}
	if c.GroupSize <= 0 {
		return errors.New("convention: episode group size must be positive")
	}
	if c.FrameRate <= 0 {
		return errors.New("convention: frame rate must be positive")
	}
	return nil
}

// Tag returns the literal episode tag searched for in clip names, e.g. "NJ-".
func (c Convention) Tag() string {
	return strings.TrimSpace(c.EpisodePrefix) + "-"
}

// episodePatterns caches compiled tag patterns keyed by tag.
var episodePatterns sync.Map

func (c Convention) pattern() *regexp.Regexp {
	tag := c.Tag()
	if cached, ok := episodePatterns.Load(tag); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(regexp.QuoteMeta(tag) + `(\d{4})`)
	actual, _ := episodePatterns.LoadOrStore(tag, re)
	return actual.(*regexp.Regexp)
}
