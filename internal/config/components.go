package config

import (
	"rostersrt/internal/captions"
	"rostersrt/internal/joindate"
	"rostersrt/internal/pacing"
	"rostersrt/internal/timeline"
)

// OpeningSeconds is the opening title duration. A positive intro delay in
// frames wins over the configured seconds.
func (c *Config) OpeningSeconds() float64 {
	if c.Video.IntroDelayFrames > 0 && c.Video.FPS > 0 {
		return float64(c.Video.IntroDelayFrames) / c.Video.FPS
	}
	return c.Video.OpeningSeconds
}

// Bounds returns the opening and ending durations used for pacing.
func (c *Config) Bounds() pacing.Bounds {
	return pacing.Bounds{
		OpeningSeconds: c.OpeningSeconds(),
		EndingSeconds:  c.Video.EndingSeconds,
	}
}

// PacingPolicy builds the configured pacing policy.
func (c *Config) PacingPolicy() (pacing.Policy, error) {
	tiers := make([]pacing.Tier, 0, len(c.Pacing.Tiers))
	for _, tier := range c.Pacing.Tiers {
		tiers = append(tiers, pacing.Tier{
			MaxCount:       tier.MaxCount,
			MaxCards:       tier.MaxCards,
			SecondsPerCard: tier.SecondsPerCard,
		})
	}
	b := c.Pacing.Budget
	budget := pacing.Budget{
		FewThreshold:      b.FewThreshold,
		FewSeconds:        b.FewSeconds,
		ShowAllThreshold:  b.ShowAllThreshold,
		ShowAllSeconds:    b.ShowAllSeconds,
		MinSecondsPerCard: b.MinSecondsPerCard,
		MaxTotalSeconds:   b.MaxTotalSeconds,
	}
	return pacing.Select(c.Pacing.Policy, pacing.Tiered{Tiers: tiers}, budget)
}

// OrderingPolicy builds the configured ordering policy.
func (c *Config) OrderingPolicy() (timeline.Policy, error) {
	return timeline.PolicyFor(c.Ordering.Policy, c.Ordering.CaseSensitiveNames)
}

// DateParser returns the join date parser for this configuration.
func (c *Config) DateParser() joindate.Parser {
	return joindate.Parser{NaturalLanguage: c.Dates.NaturalLanguage}
}

// Template returns the caption template for this configuration.
func (c *Config) Template() captions.Template {
	return captions.Template{
		Extended:       c.Captions.Extended,
		OpeningTitle:   c.Captions.OpeningTitle,
		ClosingCaption: c.Captions.ClosingCaption,
		ClosingMessage: c.Captions.ClosingMessage,
		Unknown:        c.Captions.UnknownText,
		Labels: captions.Labels{
			FullName: c.Captions.Labels.FullName,
			JoinDate: c.Captions.Labels.JoinDate,
			Roles:    c.Captions.Labels.Roles,
			Heros:    c.Captions.Labels.Heros,
		},
		Dates: joindate.Formatter{
			Parser:   c.DateParser(),
			Language: c.Dates.DisplayLanguage,
			Unknown:  c.Captions.UnknownText,
		},
	}
}
