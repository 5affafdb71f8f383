package config

import (
	"fmt"
	"strings"

	"rostersrt/internal/joindate"
	"rostersrt/internal/pacing"
	"rostersrt/internal/timeline"
)

// Profiles accepted by the profile setting.
const (
	ProfileClassic  = "classic"
	ProfileFlexible = "flexible"
	ProfileGaming   = "gaming"
)

const (
	defaultInputDir         = "data"
	defaultGamingInputDir   = "gaming"
	defaultOutputDir        = "srt_output"
	defaultFPS              = 60
	defaultIntroDelayFrames = 120
	defaultOpeningSeconds   = 2
	defaultEndingSeconds    = 5
	defaultOpeningTitle     = "Riwayat Pemain {team} 2017-2025"
	defaultClosingMessage   = "Terima kasih sudah menonton!"
	defaultUnknownText      = "Tidak diketahui"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with the classic profile.
func Default() Config {
	return Config{
		Profile: ProfileClassic,
		Paths: Paths{
			InputDir:  defaultInputDir,
			OutputDir: defaultOutputDir,
		},
		Video: Video{
			FPS:              defaultFPS,
			IntroDelayFrames: defaultIntroDelayFrames,
			OpeningSeconds:   defaultOpeningSeconds,
			EndingSeconds:    defaultEndingSeconds,
		},
		Ordering: Ordering{
			Policy: timeline.PolicyOldestFirst,
		},
		Pacing: Pacing{
			Policy: pacing.PolicyTiered,
			Tiers: []Tier{
				{MaxCount: 5, SecondsPerCard: 8},
				{MaxCount: 10, MaxCards: 8, SecondsPerCard: 7},
				{MaxCount: 20, MaxCards: 12, SecondsPerCard: 6},
				{MaxCount: 30, MaxCards: 15, SecondsPerCard: 5},
				{MaxCards: 20, SecondsPerCard: 4},
			},
			Budget: Budget{
				FewThreshold:      10,
				FewSeconds:        8,
				ShowAllThreshold:  30,
				ShowAllSeconds:    6,
				MinSecondsPerCard: 5,
				MaxTotalSeconds:   360,
			},
		},
		Dates: Dates{
			DisplayLanguage: joindate.LanguageEnglish,
		},
		Captions: Captions{
			OpeningTitle:   defaultOpeningTitle,
			ClosingMessage: defaultClosingMessage,
			UnknownText:    defaultUnknownText,
			OutputSuffix:   ".srt",
			Labels: Labels{
				FullName: "Nama",
				JoinDate: "Tanggal masuk {team}",
				Roles:    "Roles",
				Heros:    "Heros",
			},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// Preset returns the defaults for a profile. An empty profile selects classic.
func Preset(profile string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(strings.TrimSpace(profile)) {
	case "", ProfileClassic:
	case ProfileFlexible:
		cfg.Profile = ProfileFlexible
		cfg.Pacing.Policy = pacing.PolicyBudget
		cfg.Captions.ClosingCaption = true
		cfg.Captions.OutputSuffix = "_flexible.srt"
	case ProfileGaming:
		cfg.Profile = ProfileGaming
		cfg.Paths.InputDir = defaultGamingInputDir
		cfg.Ordering.Policy = timeline.PolicyNewestFirst
		cfg.Pacing.Tiers = []Tier{{SecondsPerCard: 6}}
		cfg.Dates.NaturalLanguage = true
		cfg.Captions.Extended = true
		cfg.Captions.ClosingCaption = true
		cfg.Captions.OutputSuffix = "_flexible.srt"
		cfg.Captions.Labels = Labels{
			FullName: "Name",
			JoinDate: "Bergabung",
			Roles:    "Roles",
			Heros:    "Heros",
		}
	default:
		return Config{}, fmt.Errorf("profile: unsupported value %q (want classic, flexible, or gaming)", profile)
	}
	return cfg, nil
}
