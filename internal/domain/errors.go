package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/wakatimer/internal/model"
)

// ClassifierError reports a path that could not be read or classified.
// The entry is skipped and the walk continues.
type ClassifierError struct {
	Path m.Path
	Err  error
}

func (e *ClassifierError) Error() string {
	return fmt.Sprintf("classify %s: %v", e.Path, e.Err)
}

func (e *ClassifierError) Unwrap() error { return e.Err }

// IsClassifierError reports whether err carries a ClassifierError.
func IsClassifierError(err error) bool {
	var e *ClassifierError
	return errors.As(err, &e)
}

// PlanningError reports a source file whose content could not be planned.
// Only that file is dropped from the replay.
type PlanningError struct {
	Path m.Path
	Err  error
}

func (e *PlanningError) Error() string {
	return fmt.Sprintf("plan %s: %v", e.Path, e.Err)
}

func (e *PlanningError) Unwrap() error { return e.Err }

// IsPlanningError reports whether err carries a PlanningError.
func IsPlanningError(err error) bool {
	var e *PlanningError
	return errors.As(err, &e)
}

// SchedulingError reports an unusable session configuration. It is raised
// before anything is written.
type SchedulingError struct {
	Reason string
}

func (e *SchedulingError) Error() string {
	return "schedule: " + e.Reason
}

// IsSchedulingError reports whether err carries a SchedulingError.
func IsSchedulingError(err error) bool {
	var e *SchedulingError
	return errors.As(err, &e)
}

// ReplayIntegrityError reports a destination file whose final bytes differ
// from the source.
type ReplayIntegrityError struct {
	Path     m.Path
	Expected string
	Actual   string
}

func (e *ReplayIntegrityError) Error() string {
	return fmt.Sprintf("integrity check failed for %s: expected sha256 %s, got %s", e.Path, e.Expected, e.Actual)
}

// IsReplayIntegrityError reports whether err carries a ReplayIntegrityError.
func IsReplayIntegrityError(err error) bool {
	var e *ReplayIntegrityError
	return errors.As(err, &e)
}

// FilesystemError reports a failed write under the destination root.
type FilesystemError struct {
	Op   string
	Path m.Path
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// IsFilesystemError reports whether err carries a FilesystemError.
func IsFilesystemError(err error) bool {
	var e *FilesystemError
	return errors.As(err, &e)
}
