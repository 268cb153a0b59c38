package model

import (
	"io/fs"
	"time"
)

// IncrementKind selects how an increment is materialized at the destination.
type IncrementKind string

const (
	// IncrementWrite writes Content to the target.
	IncrementWrite IncrementKind = "write"
	// IncrementCopy copies the source file to the target byte for byte.
	IncrementCopy IncrementKind = "copy"
)

// Increment is one discrete write toward a file's final content.
type Increment struct {
	Target  Path // relative to the destination root
	Source  Path // absolute source file
	Kind    IncrementKind
	Content []byte // prefix of the source content; nil for copies
	Size    int64
	Mode    fs.FileMode // zero falls back to 0644
	Index   int
	Final   bool
}

// FilePlan holds the ordered increments planned for a single source file.
type FilePlan struct {
	Entry      SourceEntry
	Increments []Increment
}

// ScheduledEvent stamps an increment with its offset from the session start.
type ScheduledEvent struct {
	Increment Increment
	Offset    time.Duration
}

// Timeline is the global, offset-ordered list of scheduled increments.
type Timeline []ScheduledEvent

// Duration returns the offset of the last event.
func (t Timeline) Duration() time.Duration {
	if len(t) == 0 {
		return 0
	}

	return t[len(t)-1].Offset
}
