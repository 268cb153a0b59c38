package domain

import (
	"context"
	"time"

	"github.com/mouse-blink/wakatimer/internal/adapter"
	"github.com/mouse-blink/wakatimer/internal/clock"
	"github.com/mouse-blink/wakatimer/internal/config"
	m "github.com/mouse-blink/wakatimer/internal/model"
)

const textFilePerm = 0o644

// EventResult is reported after each timeline event is processed.
type EventResult struct {
	Index int
	Event m.ScheduledEvent
	// Err is a *ReplayIntegrityError tolerated under the skip policy.
	Err error
}

// Executor materializes a timeline at the destination.
type Executor interface {
	Run(ctx context.Context, timeline m.Timeline, session m.Session, observe func(EventResult)) (m.ReplaySummary, error)
}

type executor struct {
	fsAdapter adapter.FSAdapter
	clock     clock.Clock
	policy    config.IntegrityPolicy
}

// NewExecutor creates an Executor that waits on clk and writes through fsAdapter.
func NewExecutor(fsAdapter adapter.FSAdapter, clk clock.Clock, policy config.IntegrityPolicy) Executor {
	if policy == "" {
		policy = config.IntegrityAbort
	}

	return &executor{
		fsAdapter: fsAdapter,
		clock:     clk,
		policy:    policy,
	}
}

// Run applies events strictly in order. Before each event it sleeps until
// Start + Offset/SpeedFactor. Cancellation is checked around every wait, so
// an interrupted run stops after the increment in progress; each write is
// atomic, leaving every destination file at the last increment applied to it.
func (e *executor) Run(ctx context.Context, timeline m.Timeline, session m.Session, observe func(EventResult)) (m.ReplaySummary, error) {
	wallStart := e.clock.Now()
	if session.Start.IsZero() {
		session.Start = wallStart
	}

	if session.SpeedFactor <= 0 {
		session.SpeedFactor = 1
	}

	summary := m.ReplaySummary{
		SessionID: session.ID,
		Events:    len(timeline),
	}

	finish := func(err error) (m.ReplaySummary, error) {
		summary.Wall = e.clock.Since(wallStart)
		if ctx.Err() != nil {
			summary.Interrupted = true
		}

		return summary, err
	}

	for i, event := range timeline {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}

		if err := e.clock.Sleep(ctx, e.waitFor(session, event.Offset)); err != nil {
			return finish(err)
		}

		if err := ctx.Err(); err != nil {
			return finish(err)
		}

		if err := e.apply(session, event.Increment); err != nil {
			return finish(err)
		}

		summary.Applied++
		summary.Simulated = event.Offset

		result := EventResult{Index: i, Event: event}

		if event.Increment.Final {
			err := e.verify(session, event.Increment)

			switch {
			case err == nil:
				summary.FilesCompleted++
			case e.policy == config.IntegritySkip && IsReplayIntegrityError(err):
				summary.FilesFailed = append(summary.FilesFailed, event.Increment.Target)
				result.Err = err
			default:
				return finish(err)
			}
		}

		if observe != nil {
			observe(result)
		}
	}

	return finish(nil)
}

func (e *executor) waitFor(session m.Session, offset time.Duration) time.Duration {
	target := session.Start.Add(time.Duration(float64(offset) / session.SpeedFactor))

	return target.Sub(e.clock.Now())
}

func (e *executor) apply(session m.Session, inc m.Increment) error {
	dst := e.fsAdapter.JoinPath(string(session.Destination), string(inc.Target))

	switch inc.Kind {
	case m.IncrementCopy:
		if err := e.fsAdapter.CopyFileAtomic(inc.Source, dst); err != nil {
			return &FilesystemError{Op: "copy", Path: inc.Target, Err: err}
		}
	default:
		perm := inc.Mode.Perm()
		if perm == 0 {
			perm = textFilePerm
		}

		if err := e.fsAdapter.WriteFileAtomic(dst, inc.Content, perm); err != nil {
			return &FilesystemError{Op: "write", Path: inc.Target, Err: err}
		}
	}

	return nil
}

// verify compares the destination's final bytes with the source file.
func (e *executor) verify(session m.Session, inc m.Increment) error {
	dst := e.fsAdapter.JoinPath(string(session.Destination), string(inc.Target))

	expected, err := e.fsAdapter.HashFile(inc.Source)
	if err != nil {
		return &FilesystemError{Op: "hash source", Path: inc.Target, Err: err}
	}

	actual, err := e.fsAdapter.HashFile(dst)
	if err != nil {
		return &FilesystemError{Op: "hash destination", Path: inc.Target, Err: err}
	}

	if expected != actual {
		return &ReplayIntegrityError{Path: inc.Target, Expected: expected, Actual: actual}
	}

	return nil
}
