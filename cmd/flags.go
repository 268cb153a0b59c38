package cmd

import (
	"time"

	"github.com/mouse-blink/wakatimer/internal/config"
	"github.com/spf13/pflag"
)

var configFileFlag string

// replayOptions holds the config overrides shared by replay and plan.
// Only flags set on the command line override file and environment values.
type replayOptions struct {
	duration         time.Duration
	speed            float64
	seed             uint64
	skipDirs         []string
	skipFiles        []string
	minIncrement     int
	maxIncrements    int
	pauseProbability float64
	weightBySize     bool
	integrityPolicy  string
	instant          bool
}

func (o *replayOptions) bind(flags *pflag.FlagSet) {
	defaults := config.Default()

	flags.DurationVarP(&o.duration, "duration", "d", defaults.TotalDuration, "simulated session length")
	flags.Float64VarP(&o.speed, "speed", "s", defaults.SpeedFactor, "speed factor; 60 replays an hour in a minute")
	flags.Uint64Var(&o.seed, "seed", defaults.Seed, "random seed; equal seeds give equal timelines")
	flags.StringArrayVar(&o.skipDirs, "skip-dir", nil, "additional directory name to skip (can be repeated)")
	flags.StringArrayVar(&o.skipFiles, "skip-file", nil, "additional file glob to skip (can be repeated)")
	flags.IntVar(&o.minIncrement, "min-increment", defaults.Typing.MinIncrementSize, "minimum bytes per typed increment")
	flags.IntVar(&o.maxIncrements, "max-increments", defaults.Typing.MaxIncrementsPerFile, "maximum increments per file")
	flags.Float64Var(&o.pauseProbability, "pause-probability", defaults.Pacing.PauseProbability, "chance of an idle pause before an event")
	flags.BoolVar(&o.weightBySize, "weight-by-size", defaults.Pacing.WeightBySize, "give larger increments proportionally more time")
	flags.StringVar(&o.integrityPolicy, "integrity-policy", string(defaults.IntegrityPolicy), "on final content mismatch: abort or skip")
	flags.BoolVar(&o.instant, "instant", defaults.Instant, "run on a virtual clock without waiting")
}

func (o *replayOptions) applyTo(cfg *config.Config, flags *pflag.FlagSet) {
	if flags.Changed("duration") {
		cfg.TotalDuration = o.duration
	}

	if flags.Changed("speed") {
		cfg.SpeedFactor = o.speed
	}

	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}

	cfg.Classifier.SkipDirs = append(cfg.Classifier.SkipDirs, o.skipDirs...)
	cfg.Classifier.SkipFiles = append(cfg.Classifier.SkipFiles, o.skipFiles...)

	if flags.Changed("min-increment") {
		cfg.Typing.MinIncrementSize = o.minIncrement
	}

	if flags.Changed("max-increments") {
		cfg.Typing.MaxIncrementsPerFile = o.maxIncrements
	}

	if flags.Changed("pause-probability") {
		cfg.Pacing.PauseProbability = o.pauseProbability
	}

	if flags.Changed("weight-by-size") {
		cfg.Pacing.WeightBySize = o.weightBySize
	}

	if flags.Changed("integrity-policy") {
		cfg.IntegrityPolicy = config.IntegrityPolicy(o.integrityPolicy)
	}

	if flags.Changed("instant") {
		cfg.Instant = o.instant
	}
}

// loadConfig merges defaults, the config file, WAKATIMER_* variables and flags.
func loadConfig(flags *pflag.FlagSet, opts *replayOptions) (config.Config, error) {
	cfg, err := config.Load(configFileFlag)
	if err != nil {
		return cfg, err
	}

	if opts != nil {
		opts.applyTo(&cfg, flags)
	}

	return cfg, nil
}
