package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/mouse-blink/wakatimer/internal/config"
	m "github.com/mouse-blink/wakatimer/internal/model"
	"github.com/mouse-blink/wakatimer/internal/rng"
)

// Scheduler merges per-file increments into one global timeline.
type Scheduler interface {
	Schedule(plans []m.FilePlan, session m.Session) (m.Timeline, error)
}

type scheduler struct {
	opts config.Pacing
	src  rng.Source
}

// NewScheduler creates a Scheduler drawing all randomness from src.
func NewScheduler(opts config.Pacing, src rng.Source) Scheduler {
	return &scheduler{
		opts: opts,
		src:  src,
	}
}

// Schedule interleaves files while keeping each file's increments in order,
// then spreads the events over the session: every unit gets a nominal slot of
// TotalDuration/units scaled by a pacing factor, and some events are preceded
// by a pause of several slots. When the gaps add up to more than the session
// they are compressed proportionally. Offsets are strictly increasing and lie
// in (0, TotalDuration].
func (s *scheduler) Schedule(plans []m.FilePlan, session m.Session) (m.Timeline, error) {
	if err := s.validate(session); err != nil {
		return nil, err
	}

	queues := make([][]m.Increment, 0, len(plans))
	units := 0

	for _, plan := range plans {
		if len(plan.Increments) == 0 {
			continue
		}

		queues = append(queues, plan.Increments)
		units += len(plan.Increments)
	}

	if units == 0 {
		return m.Timeline{}, nil
	}

	if int64(units) > int64(session.TotalDuration) {
		return nil, &SchedulingError{Reason: fmt.Sprintf("%d increments do not fit in %s", units, session.TotalDuration)}
	}

	order := s.interleave(queues, units)
	gaps := s.gaps(order, session.TotalDuration)

	return buildTimeline(order, gaps, session.TotalDuration), nil
}

func (s *scheduler) validate(session m.Session) error {
	switch {
	case session.TotalDuration <= 0:
		return &SchedulingError{Reason: fmt.Sprintf("total duration must be positive, got %s", session.TotalDuration)}
	case session.SpeedFactor <= 0:
		return &SchedulingError{Reason: fmt.Sprintf("speed factor must be positive, got %g", session.SpeedFactor)}
	case s.opts.PauseProbability < 0 || s.opts.PauseProbability > 1:
		return &SchedulingError{Reason: fmt.Sprintf("pause probability must be in [0,1], got %g", s.opts.PauseProbability)}
	case s.opts.PauseMinSlots < 0 || s.opts.PauseMaxSlots < s.opts.PauseMinSlots:
		return &SchedulingError{Reason: fmt.Sprintf("invalid pause range %g..%g", s.opts.PauseMinSlots, s.opts.PauseMaxSlots)}
	case s.opts.Variance < 0 || s.opts.Variance >= 1:
		return &SchedulingError{Reason: fmt.Sprintf("pacing variance must be in [0,1), got %g", s.opts.Variance)}
	}

	return nil
}

// interleave picks the next increment from a focus file, switching focus to a
// random unfinished file with probability 1-Focus.
func (s *scheduler) interleave(queues [][]m.Increment, units int) []m.Increment {
	next := make([]int, len(queues))
	active := make([]int, len(queues))

	for i := range active {
		active[i] = i
	}

	order := make([]m.Increment, 0, units)
	current := -1

	for len(active) > 0 {
		if current < 0 || (len(active) > 1 && s.src.Float64() >= s.opts.Focus) {
			current = rng.Pick(s.src, active)
		}

		order = append(order, queues[current][next[current]])
		next[current]++

		if next[current] == len(queues[current]) {
			active = removeValue(active, current)
			current = -1
		}
	}

	return order
}

// gaps returns the simulated time before each event, in nanoseconds.
func (s *scheduler) gaps(order []m.Increment, total time.Duration) []float64 {
	slot := float64(total) / float64(len(order))
	weights := s.weights(order)
	gaps := make([]float64, len(order))
	sum := 0.0

	for i := range order {
		gap := slot * weights[i] * s.src.Uniform(1-s.opts.Variance, 1+s.opts.Variance)

		if s.opts.PauseProbability > 0 && s.src.Float64() < s.opts.PauseProbability {
			gap += slot * s.src.Uniform(s.opts.PauseMinSlots, s.opts.PauseMaxSlots)
		}

		gaps[i] = gap
		sum += gap
	}

	if sum > float64(total) {
		scale := float64(total) / sum
		for i := range gaps {
			gaps[i] *= scale
		}
	}

	return gaps
}

// weights are 1 per increment, or proportional to the bytes each write adds
// (normalized to a mean of 1) when WeightBySize is set. Copies weigh 1.
func (s *scheduler) weights(order []m.Increment) []float64 {
	weights := make([]float64, len(order))
	for i := range weights {
		weights[i] = 1
	}

	if !s.opts.WeightBySize {
		return weights
	}

	lastSize := make(map[m.Path]int64)
	deltas := make([]float64, len(order))
	writes, total := 0, 0.0

	for i, inc := range order {
		if inc.Kind != m.IncrementWrite {
			continue
		}

		delta := float64(max(inc.Size-lastSize[inc.Target], 1))
		lastSize[inc.Target] = inc.Size
		deltas[i] = delta
		writes++
		total += delta
	}

	if writes == 0 {
		return weights
	}

	mean := total / float64(writes)

	for i, inc := range order {
		if inc.Kind == m.IncrementWrite {
			weights[i] = deltas[i] / mean
		}
	}

	return weights
}

// buildTimeline turns gaps into strictly increasing offsets capped at total.
func buildTimeline(order []m.Increment, gaps []float64, total time.Duration) m.Timeline {
	timeline := make(m.Timeline, len(order))
	cumulative := 0.0
	prev := time.Duration(0)

	for i, inc := range order {
		cumulative += gaps[i]

		offset := time.Duration(math.Floor(cumulative))
		offset = max(offset, prev+1)
		// Leave one nanosecond per remaining event so later offsets still fit.
		offset = min(offset, total-time.Duration(len(order)-1-i))

		timeline[i] = m.ScheduledEvent{Increment: inc, Offset: offset}
		prev = offset
	}

	return timeline
}

func removeValue(values []int, v int) []int {
	out := values[:0]

	for _, x := range values {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}
