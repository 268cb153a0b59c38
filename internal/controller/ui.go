// Package controller provides output adapters for displaying replay plans and progress.
package controller

import (
	m "github.com/mouse-blink/wakatimer/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModePlan StartMode = iota
	ModeReplay
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithPlanMode sets the UI to plan-only mode.
func WithPlanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePlan
	}
}

// WithReplayMode sets the UI to replay progress mode.
func WithReplayMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReplay
	}
}

func applyStartOptions(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModePlan}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// ReplayEvent describes one processed timeline event.
type ReplayEvent struct {
	Index int
	Total int
	Event m.ScheduledEvent
	Err   error
}

// SessionInfo describes a replay about to start.
type SessionInfo struct {
	Session m.Session
	Source  m.Path
	Files   int
	Events  int
	Instant bool
}

// UI defines the interface for displaying replay plans and progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	// DisplayWarning records a path that was skipped or failed without aborting the run.
	DisplayWarning(path m.Path, err error)
	DisplayPlan(plans []m.FilePlan, timeline m.Timeline) error
	DisplaySessionInfo(info SessionInfo)
	DisplayEvent(event ReplayEvent)
	DisplaySummary(summary m.ReplaySummary, err error)
}
