package config

import (
	"fmt"
	"strings"

	"rostersrt/internal/joindate"
	"rostersrt/internal/pacing"
	"rostersrt/internal/timeline"
)

func (c *Config) normalize() error {
	c.Profile = strings.ToLower(strings.TrimSpace(c.Profile))
	if c.Profile == "" {
		c.Profile = ProfileClassic
	}
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizePolicies()
	c.normalizeCaptions()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.InputDir) == "" {
		c.Paths.InputDir = defaultInputDir
	}
	if c.Paths.InputDir, err = expandPath(c.Paths.InputDir); err != nil {
		return fmt.Errorf("paths.input_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizePolicies() {
	c.Ordering.Policy = strings.ToLower(strings.TrimSpace(c.Ordering.Policy))
	if c.Ordering.Policy == "" {
		c.Ordering.Policy = timeline.PolicyOldestFirst
	}
	c.Pacing.Policy = strings.ToLower(strings.TrimSpace(c.Pacing.Policy))
	if c.Pacing.Policy == "" {
		c.Pacing.Policy = pacing.PolicyTiered
	}
	c.Dates.DisplayLanguage = strings.ToLower(strings.TrimSpace(c.Dates.DisplayLanguage))
	if c.Dates.DisplayLanguage == "" {
		c.Dates.DisplayLanguage = joindate.LanguageEnglish
	}
}

func (c *Config) normalizeCaptions() {
	c.Captions.OpeningTitle = strings.TrimSpace(c.Captions.OpeningTitle)
	c.Captions.ClosingMessage = strings.TrimSpace(c.Captions.ClosingMessage)
	c.Captions.UnknownText = strings.TrimSpace(c.Captions.UnknownText)
	c.Captions.OutputSuffix = strings.TrimSpace(c.Captions.OutputSuffix)
	if c.Captions.UnknownText == "" {
		c.Captions.UnknownText = defaultUnknownText
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
