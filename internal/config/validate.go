package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"rostersrt/internal/joindate"
	"rostersrt/internal/pacing"
	"rostersrt/internal/timeline"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateProfile(); err != nil {
		return err
	}
	if err := c.validateVideo(); err != nil {
		return err
	}
	if err := c.validateOrdering(); err != nil {
		return err
	}
	if err := c.validatePacing(); err != nil {
		return err
	}
	if err := c.validateDates(); err != nil {
		return err
	}
	if err := c.validateCaptions(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateProfile() error {
	switch c.Profile {
	case ProfileClassic, ProfileFlexible, ProfileGaming:
		return nil
	default:
		return fmt.Errorf("profile: unsupported value %q (want classic, flexible, or gaming)", c.Profile)
	}
}

func (c *Config) validateVideo() error {
	if err := ensureFinite(
		numberField{"video.fps", c.Video.FPS},
		numberField{"video.opening_seconds", c.Video.OpeningSeconds},
		numberField{"video.ending_seconds", c.Video.EndingSeconds},
	); err != nil {
		return err
	}
	if c.Video.IntroDelayFrames < 0 {
		return errors.New("video.intro_delay_frames must be >= 0")
	}
	if c.Video.IntroDelayFrames > 0 && c.Video.FPS <= 0 {
		return errors.New("video.fps must be positive when video.intro_delay_frames is set")
	}
	if c.Video.OpeningSeconds < 0 {
		return errors.New("video.opening_seconds must be >= 0")
	}
	if c.Video.EndingSeconds < 0 {
		return errors.New("video.ending_seconds must be >= 0")
	}
	return nil
}

func (c *Config) validateOrdering() error {
	if _, err := timeline.PolicyFor(c.Ordering.Policy, c.Ordering.CaseSensitiveNames); err != nil {
		return fmt.Errorf("ordering.policy: %w", err)
	}
	return nil
}

func (c *Config) validatePacing() error {
	switch c.Pacing.Policy {
	case pacing.PolicyTiered:
		if len(c.Pacing.Tiers) == 0 {
			return errors.New("pacing.tiers must include at least one tier when pacing.policy is tiered")
		}
		previous := 0
		for i, tier := range c.Pacing.Tiers {
			if tier.MaxCount < 0 || tier.MaxCards < 0 {
				return fmt.Errorf("pacing.tiers[%d]: max_count and max_cards must be >= 0", i)
			}
			if math.IsNaN(tier.SecondsPerCard) || math.IsInf(tier.SecondsPerCard, 0) {
				return fmt.Errorf("pacing.tiers[%d].seconds_per_card must be finite", i)
			}
			if tier.SecondsPerCard < 0 {
				return fmt.Errorf("pacing.tiers[%d].seconds_per_card must be >= 0", i)
			}
			if tier.MaxCount == 0 && i != len(c.Pacing.Tiers)-1 {
				return fmt.Errorf("pacing.tiers[%d]: only the last tier may be unbounded", i)
			}
			if tier.MaxCount != 0 && tier.MaxCount <= previous {
				return fmt.Errorf("pacing.tiers[%d].max_count must be ascending", i)
			}
			previous = tier.MaxCount
		}
	case pacing.PolicyBudget:
		b := c.Pacing.Budget
		fields := []numberField{
			{"pacing.budget.few_seconds", b.FewSeconds},
			{"pacing.budget.show_all_seconds", b.ShowAllSeconds},
			{"pacing.budget.min_seconds_per_card", b.MinSecondsPerCard},
			{"pacing.budget.max_total_seconds", b.MaxTotalSeconds},
		}
		if err := ensureFinite(fields...); err != nil {
			return err
		}
		if err := ensureNonNegative(fields...); err != nil {
			return err
		}
		if b.FewThreshold < 0 || b.ShowAllThreshold < b.FewThreshold {
			return errors.New("pacing.budget thresholds must satisfy 0 <= few_threshold <= show_all_threshold")
		}
		if b.MinSecondsPerCard <= 0 {
			return errors.New("pacing.budget.min_seconds_per_card must be positive")
		}
	default:
		return fmt.Errorf("pacing.policy: unsupported value %q (want tiered or budget)", c.Pacing.Policy)
	}
	return nil
}

func (c *Config) validateDates() error {
	switch c.Dates.DisplayLanguage {
	case joindate.LanguageEnglish, joindate.LanguageIndonesian:
		return nil
	default:
		return fmt.Errorf("dates.display_language: unsupported value %q (want en or id)", c.Dates.DisplayLanguage)
	}
}

func (c *Config) validateCaptions() error {
	if c.Captions.OpeningTitle == "" {
		return errors.New("captions.opening_title must be set")
	}
	if c.Captions.ClosingCaption && c.Captions.ClosingMessage == "" {
		return errors.New("captions.closing_message must be set when captions.closing_caption is true")
	}
	suffix := c.Captions.OutputSuffix
	if suffix == "" {
		return errors.New("captions.output_suffix must be set")
	}
	if strings.ContainsRune(suffix, filepath.Separator) || strings.Contains(suffix, "/") {
		return fmt.Errorf("captions.output_suffix must not contain a path separator: %q", suffix)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q (want debug, info, warn, or error)", c.Logging.Level)
	}
}

// numberField pairs a config key with its value; checks report the first
// failing field in the order given.
type numberField struct {
	key   string
	value float64
}

func ensureFinite(fields ...numberField) error {
	for _, field := range fields {
		if math.IsNaN(field.value) || math.IsInf(field.value, 0) {
			return fmt.Errorf("%s must be a finite number", field.key)
		}
	}
	return nil
}

func ensureNonNegative(fields ...numberField) error {
	for _, field := range fields {
		if field.value < 0 {
			return fmt.Errorf("%s must be >= 0", field.key)
		}
	}
	return nil
}
