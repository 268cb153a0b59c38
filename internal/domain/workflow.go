package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mouse-blink/wakatimer/internal/adapter"
	"github.com/mouse-blink/wakatimer/internal/clock"
	"github.com/mouse-blink/wakatimer/internal/config"
	"github.com/mouse-blink/wakatimer/internal/controller"
	m "github.com/mouse-blink/wakatimer/internal/model"
	"github.com/mouse-blink/wakatimer/internal/rng"
)

// PlanArgs contains the arguments for planning a replay.
type PlanArgs struct {
	Config config.Config
}

// ReplayArgs contains the arguments for running a replay.
type ReplayArgs struct {
	PlanArgs
}

// PlanResult is everything computed before the first write.
type PlanResult struct {
	Session  m.Session
	Source   m.Path
	Plans    []m.FilePlan
	Timeline m.Timeline
	Warnings int
}

// Workflow defines the interface for planning and replaying a source tree.
type Workflow interface {
	Plan(args PlanArgs) (PlanResult, error)
	Replay(ctx context.Context, args ReplayArgs) (m.ReplaySummary, error)
}

type workflow struct {
	fsAdapter adapter.FSAdapter
	ui        controller.UI
	clock     clock.Clock
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(fsAdapter adapter.FSAdapter, ui controller.UI, clk clock.Clock) Workflow {
	return &workflow{
		fsAdapter: fsAdapter,
		ui:        ui,
		clock:     clk,
	}
}

// Plan walks, classifies, plans and schedules the source tree without writing
// anything, then displays the per-file plan.
func (w *workflow) Plan(args PlanArgs) (PlanResult, error) {
	if err := w.ui.Start(controller.WithPlanMode()); err != nil {
		return PlanResult{}, fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	result, err := w.prepare(context.Background(), args.Config, false)
	if err != nil {
		return result, err
	}

	if err := w.ui.DisplayPlan(result.Plans, result.Timeline); err != nil {
		return result, fmt.Errorf("failed to display plan: %w", err)
	}

	return result, nil
}

// Replay plans the source tree and executes the timeline against the
// destination. An interrupted run still reports its summary.
func (w *workflow) Replay(ctx context.Context, args ReplayArgs) (m.ReplaySummary, error) {
	if err := w.ui.Start(controller.WithReplayMode()); err != nil {
		return m.ReplaySummary{}, fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	cfg := args.Config

	result, err := w.prepare(ctx, cfg, true)
	if err != nil {
		summary := m.ReplaySummary{SessionID: result.Session.ID, Interrupted: ctx.Err() != nil}
		w.ui.DisplaySummary(summary, err)

		return summary, err
	}

	if err := w.fsAdapter.MkdirAll(result.Session.Destination); err != nil {
		err = &FilesystemError{Op: "mkdir", Path: result.Session.Destination, Err: err}
		w.ui.DisplaySummary(m.ReplaySummary{SessionID: result.Session.ID}, err)

		return m.ReplaySummary{SessionID: result.Session.ID}, err
	}

	clk := w.clock
	if cfg.Instant {
		clk = clock.NewVirtualClock(w.clock.Now())
	}

	session := result.Session
	session.Start = clk.Now()

	w.ui.DisplaySessionInfo(controller.SessionInfo{
		Session: session,
		Source:  result.Source,
		Files:   len(result.Plans),
		Events:  len(result.Timeline),
		Instant: cfg.Instant,
	})

	executor := NewExecutor(w.fsAdapter, clk, cfg.IntegrityPolicy)
	total := len(result.Timeline)

	summary, err := executor.Run(ctx, result.Timeline, session, func(res EventResult) {
		w.ui.DisplayEvent(controller.ReplayEvent{
			Index: res.Index,
			Total: total,
			Event: res.Event,
			Err:   res.Err,
		})
	})

	w.ui.DisplaySummary(summary, err)

	return summary, err
}

// prepare runs every stage that precedes execution. One seeded source feeds
// both the planner and the scheduler, so equal seeds give equal timelines.
func (w *workflow) prepare(ctx context.Context, cfg config.Config, needDestination bool) (PlanResult, error) {
	var result PlanResult

	if needDestination && cfg.DestinationRoot == "" {
		return result, &SchedulingError{Reason: "destination root is required"}
	}

	if err := cfg.Validate(); err != nil {
		return result, &SchedulingError{Reason: err.Error()}
	}

	source, err := w.fsAdapter.NormalizeRoot(m.Path(cfg.SourceRoot))
	if err != nil {
		return result, fmt.Errorf("failed to resolve source root: %w", err)
	}

	var destination m.Path

	if cfg.DestinationRoot != "" {
		destination, err = w.fsAdapter.NormalizeRoot(m.Path(cfg.DestinationRoot))
		if err != nil {
			return result, fmt.Errorf("failed to resolve destination root: %w", err)
		}

		if destination == source {
			return result, &SchedulingError{Reason: fmt.Sprintf("destination %s must differ from source", destination)}
		}
	}

	result.Source = source
	result.Session = m.Session{
		ID:            uuid.NewString(),
		TotalDuration: cfg.TotalDuration,
		SpeedFactor:   cfg.SpeedFactor,
		Destination:   destination,
	}

	ignore, err := loadIgnoreRule(w.fsAdapter, source)
	if err != nil {
		return result, err
	}

	classifier, err := NewClassifier(w.fsAdapter, ignore.apply(cfg.Classifier))
	if err != nil {
		return result, fmt.Errorf("failed to build classifier: %w", err)
	}

	src := rng.NewSeeded(cfg.Seed)
	walker := NewWalker(w.fsAdapter, classifier, destination)
	planner := NewPlanner(w.fsAdapter, cfg.Typing, src)

	for entry, err := range walker.Walk(ctx, source) {
		if err != nil {
			if IsClassifierError(err) {
				w.ui.DisplayWarning(entry.RelPath, err)
				result.Warnings++

				continue
			}

			return result, err
		}

		if entry.IsDir() {
			continue
		}

		increments, err := planner.Plan(entry)
		if err != nil {
			if IsPlanningError(err) {
				w.ui.DisplayWarning(entry.RelPath, err)
				result.Warnings++

				continue
			}

			return result, err
		}

		if len(increments) == 0 {
			continue
		}

		result.Plans = append(result.Plans, m.FilePlan{Entry: entry, Increments: increments})
	}

	timeline, err := NewScheduler(cfg.Pacing, src).Schedule(result.Plans, result.Session)
	if err != nil {
		return result, err
	}

	result.Timeline = timeline

	return result, nil
}
