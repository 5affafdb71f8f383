package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// ProfileEnv overrides the profile when the configuration file does not set one.
const ProfileEnv = "ROSTERSRT_PROFILE"

// Paths contains input, output, and log directories.
type Paths struct {
	InputDir  string `toml:"input_dir"`
	OutputDir string `toml:"output_dir"`
	// LogDir enables a log file when set.
	LogDir string `toml:"log_dir"`
}

// Video describes the timing of the video the track overlays.
type Video struct {
	FPS float64 `toml:"fps"`
	// IntroDelayFrames takes precedence over OpeningSeconds when positive.
	IntroDelayFrames int     `toml:"intro_delay_frames"`
	OpeningSeconds   float64 `toml:"opening_seconds"`
	EndingSeconds    float64 `toml:"ending_seconds"`
}

// Ordering selects how records are sequenced.
type Ordering struct {
	Policy             string `toml:"policy"`
	CaseSensitiveNames bool   `toml:"case_sensitive_names"`
}

// Tier is one row of the tiered pacing table.
type Tier struct {
	MaxCount       int     `toml:"max_count"`
	MaxCards       int     `toml:"max_cards"`
	SecondsPerCard float64 `toml:"seconds_per_card"`
}

// Budget configures budget pacing.
type Budget struct {
	FewThreshold      int     `toml:"few_threshold"`
	FewSeconds        float64 `toml:"few_seconds"`
	ShowAllThreshold  int     `toml:"show_all_threshold"`
	ShowAllSeconds    float64 `toml:"show_all_seconds"`
	MinSecondsPerCard float64 `toml:"min_seconds_per_card"`
	MaxTotalSeconds   float64 `toml:"max_total_seconds"`
}

// Pacing selects and configures the pacing policy.
type Pacing struct {
	Policy string `toml:"policy"`
	Tiers  []Tier `toml:"tiers"`
	Budget Budget `toml:"budget"`
}

// Dates controls join date parsing and display.
type Dates struct {
	NaturalLanguage bool   `toml:"natural_language"`
	DisplayLanguage string `toml:"display_language"`
}

// Labels are the field prefixes written into caption info lines.
type Labels struct {
	FullName string `toml:"full_name"`
	JoinDate string `toml:"join_date"`
	Roles    string `toml:"roles"`
	Heros    string `toml:"heros"`
}

// Captions controls caption text and the output file name.
type Captions struct {
	Extended       bool   `toml:"extended"`
	ClosingCaption bool   `toml:"closing_caption"`
	OpeningTitle   string `toml:"opening_title"`
	ClosingMessage string `toml:"closing_message"`
	UnknownText    string `toml:"unknown_text"`
	OutputSuffix   string `toml:"output_suffix"`
	Labels         Labels `toml:"labels"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for rostersrt.
//
// Profile selects the preset every other section starts from; values in the
// file override the preset field by field.
type Config struct {
	Profile  string   `toml:"profile"`
	Paths    Paths    `toml:"paths"`
	Video    Video    `toml:"video"`
	Ordering Ordering `toml:"ordering"`
	Pacing   Pacing   `toml:"pacing"`
	Dates    Dates    `toml:"dates"`
	Captions Captions `toml:"captions"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/rostersrt/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	return LoadProfile(path, "")
}

// LoadProfile is Load with a profile that, when non-empty, takes precedence
// over both the file and ProfileEnv.
func LoadProfile(path, profile string) (*Config, string, bool, error) {
	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	var data []byte
	if exists {
		data, err = os.ReadFile(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
	}

	cfg, err := decode(data, profile)
	if err != nil {
		return nil, "", false, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// probe reads the fields that decide how the rest of the file is applied.
type probe struct {
	Profile string `toml:"profile"`
	Pacing  struct {
		Tiers []Tier `toml:"tiers"`
	} `toml:"pacing"`
}

func decode(data []byte, override string) (Config, error) {
	var head probe
	if err := toml.Unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	profile := strings.TrimSpace(override)
	if profile == "" {
		profile = strings.TrimSpace(head.Profile)
	}
	if profile == "" {
		profile = strings.TrimSpace(os.Getenv(ProfileEnv))
	}
	cfg, err := Preset(profile)
	if err != nil {
		return Config{}, err
	}
	// Array tables append to an existing slice, so a file that defines its
	// own tiers replaces the preset table.
	if head.Pacing.Tiers != nil {
		cfg.Pacing.Tiers = nil
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if override != "" {
		cfg.Profile = strings.TrimSpace(override)
	}
	return cfg, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("rostersrt.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the output directory and, when configured, the
// log directory. The input directory must already exist.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.OutputDir}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		dirs = append(dirs, c.Paths.LogDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Encode renders the effective configuration as TOML.
func (c *Config) Encode() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}
