package domain

import (
	"github.com/mouse-blink/wakatimer/internal/adapter"
	"github.com/mouse-blink/wakatimer/internal/config"
	m "github.com/mouse-blink/wakatimer/internal/model"
	"github.com/mouse-blink/wakatimer/internal/rng"
)

// Planner turns a classified entry into its ordered increments.
type Planner interface {
	Plan(entry m.SourceEntry) ([]m.Increment, error)
}

type planner struct {
	fsAdapter adapter.FSAdapter
	opts      config.Typing
	src       rng.Source
}

// NewPlanner creates a Planner drawing all randomness from src.
func NewPlanner(fsAdapter adapter.FSAdapter, opts config.Typing, src rng.Source) Planner {
	return &planner{
		fsAdapter: fsAdapter,
		opts:      opts,
		src:       src,
	}
}

// Plan returns no increments for directories and skipped entries, a single
// copy for binaries and growing prefixes for text files. Unreadable text
// content is reported as a *PlanningError.
func (p *planner) Plan(entry m.SourceEntry) ([]m.Increment, error) {
	if entry.IsDir() {
		return nil, nil
	}

	switch entry.Class {
	case m.ClassCopyBinary:
		return []m.Increment{{
			Target: entry.RelPath,
			Source: entry.AbsPath,
			Kind:   m.IncrementCopy,
			Size:   entry.Size,
			Mode:   entry.Mode,
			Final:  true,
		}}, nil
	case m.ClassTypeIncremental:
		return p.planText(entry)
	default:
		return nil, nil
	}
}

func (p *planner) planText(entry m.SourceEntry) ([]m.Increment, error) {
	content, err := p.fsAdapter.ReadFile(entry.AbsPath)
	if err != nil {
		return nil, &PlanningError{Path: entry.RelPath, Err: err}
	}

	cuts := TypingCuts(content, p.opts, p.src)
	increments := make([]m.Increment, 0, len(cuts))

	for i, cut := range cuts {
		increments = append(increments, m.Increment{
			Target:  entry.RelPath,
			Source:  entry.AbsPath,
			Kind:    m.IncrementWrite,
			Content: content[:cut:cut],
			Size:    int64(cut),
			Mode:    entry.Mode,
			Index:   i,
			Final:   i == len(cuts)-1,
		})
	}

	return increments, nil
}
