package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Contains(t, cfg.Classifier.SkipDirs, "__pycache__")
	assert.Contains(t, cfg.Classifier.SkipDirs, ".git")
	assert.Equal(t, IntegrityAbort, cfg.IntegrityPolicy)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero duration", func(c *Config) { c.TotalDuration = 0 }, "total_duration"},
		{"negative speed", func(c *Config) { c.SpeedFactor = -1 }, "speed_factor"},
		{"unknown policy", func(c *Config) { c.IntegrityPolicy = "retry" }, "integrity_policy"},
		{"no probe", func(c *Config) { c.Classifier.ProbeBytes = 0 }, "probe_bytes"},
		{"min increment", func(c *Config) { c.Typing.MinIncrementSize = 0 }, "min_increment_size"},
		{"max increments", func(c *Config) { c.Typing.MaxIncrementsPerFile = 0 }, "max_increments_per_file"},
		{"jitter", func(c *Config) { c.Typing.Jitter = 1 }, "jitter"},
		{"pause probability", func(c *Config) { c.Pacing.PauseProbability = 1.5 }, "pause_probability"},
		{"pause slots", func(c *Config) { c.Pacing.PauseMinSlots = 5; c.Pacing.PauseMaxSlots = 1 }, "pause slots"},
		{"variance", func(c *Config) { c.Pacing.Variance = 1 }, "variance"},
		{"focus", func(c *Config) { c.Pacing.Focus = -0.1 }, "focus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.TotalDuration, cfg.TotalDuration)
	assert.Equal(t, def.SpeedFactor, cfg.SpeedFactor)
	assert.Equal(t, def.Seed, cfg.Seed)
	assert.Equal(t, def.IntegrityPolicy, cfg.IntegrityPolicy)
	assert.Equal(t, def.Classifier.SkipDirs, cfg.Classifier.SkipDirs)
	assert.Equal(t, def.Typing, cfg.Typing)
	assert.Equal(t, def.Pacing, cfg.Pacing)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wakatimer.yaml")
	content := `total_duration: 10s
speed_factor: 4
seed: 7
integrity_policy: skip
classifier:
  skip_dirs: [cache]
typing:
  max_increments_per_file: 5
pacing:
  pause_probability: 0.2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.TotalDuration)
	assert.Equal(t, 4.0, cfg.SpeedFactor)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, IntegritySkip, cfg.IntegrityPolicy)
	assert.Equal(t, []string{"cache"}, cfg.Classifier.SkipDirs)
	assert.Equal(t, 5, cfg.Typing.MaxIncrementsPerFile)
	assert.Equal(t, 0.2, cfg.Pacing.PauseProbability)

	// Untouched keys keep their defaults.
	assert.Equal(t, Default().Typing.MinIncrementSize, cfg.Typing.MinIncrementSize)
	assert.Equal(t, Default().Classifier.SkipFiles, cfg.Classifier.SkipFiles)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("WAKATIMER_SPEED_FACTOR", "60")
	t.Setenv("WAKATIMER_TYPING_JITTER", "0")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 60.0, cfg.SpeedFactor)
	assert.Equal(t, 0.0, cfg.Typing.Jitter)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestWriteExample_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, WriteExample(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &generic))
	assert.Equal(t, "2h0m0s", generic["total_duration"])
	assert.Contains(t, string(raw), "total_duration: 2h0m0s\n")
	assert.Contains(t, generic, "pacing")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().TotalDuration, cfg.TotalDuration)
	assert.Equal(t, Default().Pacing, cfg.Pacing)
}
