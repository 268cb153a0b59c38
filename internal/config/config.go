// Package config holds the replay configuration, its defaults and loading
// from YAML files and WAKATIMER_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment variable overrides (WAKATIMER_SPEED_FACTOR, ...).
const EnvPrefix = "WAKATIMER"

// IntegrityPolicy decides what a failed final-content check does to the run.
type IntegrityPolicy string

const (
	// IntegrityAbort stops the whole replay on the first mismatch.
	IntegrityAbort IntegrityPolicy = "abort"
	// IntegritySkip records the file as failed and keeps replaying.
	IntegritySkip IntegrityPolicy = "skip"
)

// Config is the top-level configuration for a replay session.
type Config struct {
	SourceRoot      string          `mapstructure:"source_root" yaml:"source_root"`
	DestinationRoot string          `mapstructure:"destination_root" yaml:"destination_root"`
	TotalDuration   time.Duration   `mapstructure:"total_duration" yaml:"total_duration"`
	SpeedFactor     float64         `mapstructure:"speed_factor" yaml:"speed_factor"`
	Seed            uint64          `mapstructure:"seed" yaml:"seed"`
	Instant         bool            `mapstructure:"instant" yaml:"instant"`
	IntegrityPolicy IntegrityPolicy `mapstructure:"integrity_policy" yaml:"integrity_policy"`
	Classifier      Classifier      `mapstructure:"classifier" yaml:"classifier"`
	Typing          Typing          `mapstructure:"typing" yaml:"typing"`
	Pacing          Pacing          `mapstructure:"pacing" yaml:"pacing"`
}

// Classifier configures which paths are skipped, copied or typed.
type Classifier struct {
	SkipDirs         []string `mapstructure:"skip_dirs" yaml:"skip_dirs"`
	SkipFiles        []string `mapstructure:"skip_files" yaml:"skip_files"`
	TextExtensions   []string `mapstructure:"text_extensions" yaml:"text_extensions"`
	BinaryExtensions []string `mapstructure:"binary_extensions" yaml:"binary_extensions"`
	ProbeBytes       int      `mapstructure:"probe_bytes" yaml:"probe_bytes"`
}

// Typing configures how a text file is cut into increments.
type Typing struct {
	MinIncrementSize     int     `mapstructure:"min_increment_size" yaml:"min_increment_size"`
	MaxIncrementsPerFile int     `mapstructure:"max_increments_per_file" yaml:"max_increments_per_file"`
	Jitter               float64 `mapstructure:"jitter" yaml:"jitter"`
}

// Pacing configures how increments are spread over the session.
type Pacing struct {
	PauseProbability float64 `mapstructure:"pause_probability" yaml:"pause_probability"`
	PauseMinSlots    float64 `mapstructure:"pause_min_slots" yaml:"pause_min_slots"`
	PauseMaxSlots    float64 `mapstructure:"pause_max_slots" yaml:"pause_max_slots"`
	Variance         float64 `mapstructure:"variance" yaml:"variance"`
	Focus            float64 `mapstructure:"focus" yaml:"focus"`
	WeightBySize     bool    `mapstructure:"weight_by_size" yaml:"weight_by_size"`
}

// DefaultSkipDirs lists cache, build and version-control folders never replayed.
var DefaultSkipDirs = []string{
	".git", ".hg", ".svn", ".idea", ".vscode", ".venv", "venv", "env",
	"__pycache__", ".pytest_cache", ".mypy_cache", ".tox", ".cache",
	"node_modules", "dist", "build", "target", ".next", ".gradle",
}

// DefaultSkipFiles lists glob patterns of files never replayed.
var DefaultSkipFiles = []string{
	"*.pyc", "*.pyo", "*.class", "*.o", "*.obj", "*.log", "*.tmp", "*.swp",
	".DS_Store", "Thumbs.db",
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		TotalDuration:   2 * time.Hour,
		SpeedFactor:     1,
		Seed:            42,
		IntegrityPolicy: IntegrityAbort,
		Classifier: Classifier{
			SkipDirs:   append([]string(nil), DefaultSkipDirs...),
			SkipFiles:  append([]string(nil), DefaultSkipFiles...),
			ProbeBytes: 8000,
		},
		Typing: Typing{
			MinIncrementSize:     200,
			MaxIncrementsPerFile: 40,
			Jitter:               0.3,
		},
		Pacing: Pacing{
			PauseProbability: 0.05,
			PauseMinSlots:    3,
			PauseMaxSlots:    10,
			Variance:         0.5,
			Focus:            0.75,
		},
	}
}

// Validate checks that the config is usable for a replay.
func (c Config) Validate() error {
	if c.TotalDuration <= 0 {
		return fmt.Errorf("total_duration must be positive, got %s", c.TotalDuration)
	}

	if c.SpeedFactor <= 0 {
		return fmt.Errorf("speed_factor must be positive, got %g", c.SpeedFactor)
	}

	switch c.IntegrityPolicy {
	case IntegrityAbort, IntegritySkip:
	default:
		return fmt.Errorf("unknown integrity_policy %q, must be one of: abort, skip", c.IntegrityPolicy)
	}

	if c.Classifier.ProbeBytes <= 0 {
		return fmt.Errorf("classifier.probe_bytes must be positive, got %d", c.Classifier.ProbeBytes)
	}

	if err := c.Typing.validate(); err != nil {
		return err
	}

	return c.Pacing.validate()
}

func (t Typing) validate() error {
	if t.MinIncrementSize < 1 {
		return fmt.Errorf("typing.min_increment_size must be at least 1, got %d", t.MinIncrementSize)
	}

	if t.MaxIncrementsPerFile < 1 {
		return fmt.Errorf("typing.max_increments_per_file must be at least 1, got %d", t.MaxIncrementsPerFile)
	}

	if t.Jitter < 0 || t.Jitter >= 1 {
		return fmt.Errorf("typing.jitter must be in [0,1), got %g", t.Jitter)
	}

	return nil
}

func (p Pacing) validate() error {
	if p.PauseProbability < 0 || p.PauseProbability > 1 {
		return fmt.Errorf("pacing.pause_probability must be in [0,1], got %g", p.PauseProbability)
	}

	if p.PauseMinSlots < 0 || p.PauseMaxSlots < p.PauseMinSlots {
		return fmt.Errorf("pacing pause slots must satisfy 0 <= min <= max, got %g..%g", p.PauseMinSlots, p.PauseMaxSlots)
	}

	if p.Variance < 0 || p.Variance >= 1 {
		return fmt.Errorf("pacing.variance must be in [0,1), got %g", p.Variance)
	}

	if p.Focus < 0 || p.Focus > 1 {
		return fmt.Errorf("pacing.focus must be in [0,1], got %g", p.Focus)
	}

	return nil
}

// Load reads an optional YAML config file and environment overrides on top
// of the defaults. An empty path loads defaults and environment only.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	setDefaults(v, cfg)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}

		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, nil
}

// setDefaults registers every key so environment overrides reach Unmarshal.
func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("source_root", cfg.SourceRoot)
	v.SetDefault("destination_root", cfg.DestinationRoot)
	v.SetDefault("total_duration", cfg.TotalDuration)
	v.SetDefault("speed_factor", cfg.SpeedFactor)
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("instant", cfg.Instant)
	v.SetDefault("integrity_policy", string(cfg.IntegrityPolicy))

	v.SetDefault("classifier.skip_dirs", cfg.Classifier.SkipDirs)
	v.SetDefault("classifier.skip_files", cfg.Classifier.SkipFiles)
	v.SetDefault("classifier.text_extensions", cfg.Classifier.TextExtensions)
	v.SetDefault("classifier.binary_extensions", cfg.Classifier.BinaryExtensions)
	v.SetDefault("classifier.probe_bytes", cfg.Classifier.ProbeBytes)

	v.SetDefault("typing.min_increment_size", cfg.Typing.MinIncrementSize)
	v.SetDefault("typing.max_increments_per_file", cfg.Typing.MaxIncrementsPerFile)
	v.SetDefault("typing.jitter", cfg.Typing.Jitter)

	v.SetDefault("pacing.pause_probability", cfg.Pacing.PauseProbability)
	v.SetDefault("pacing.pause_min_slots", cfg.Pacing.PauseMinSlots)
	v.SetDefault("pacing.pause_max_slots", cfg.Pacing.PauseMaxSlots)
	v.SetDefault("pacing.variance", cfg.Pacing.Variance)
	v.SetDefault("pacing.focus", cfg.Pacing.Focus)
	v.SetDefault("pacing.weight_by_size", cfg.Pacing.WeightBySize)
}

// Marshal renders the config as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// WriteExample writes the default config as a YAML file to the given path.
func WriteExample(path string) error {
	data, err := Marshal(Default())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
