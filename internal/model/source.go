// Package model defines the data structures shared by the replay engine.
package model

import "io/fs"

// Path represents a file system path.
type Path string

// EntryKind tells files and directories apart.
type EntryKind string

const (
	// KindFile is a regular file.
	KindFile EntryKind = "file"
	// KindDir is a directory.
	KindDir EntryKind = "dir"
)

// Classification decides how an entry takes part in a replay.
type Classification int

const (
	// ClassSkip removes the entry (and, for directories, the whole subtree).
	ClassSkip Classification = iota
	// ClassCopyBinary copies the file verbatim in a single write.
	ClassCopyBinary
	// ClassTypeIncremental replays the file as a series of growing prefixes.
	// Directories carrying this class are descended into.
	ClassTypeIncremental
)

func (c Classification) String() string {
	switch c {
	case ClassSkip:
		return "skip"
	case ClassCopyBinary:
		return "binary"
	case ClassTypeIncremental:
		return "text"
	default:
		return "unknown"
	}
}

// SourceEntry is a snapshot of one walked path under the source root.
type SourceEntry struct {
	RelPath Path // relative to the source root, OS separators
	AbsPath Path
	Size    int64
	Mode    fs.FileMode // permission bits of the source file
	Kind    EntryKind
	Class   Classification
}

// IsDir reports whether the entry is a directory.
func (e SourceEntry) IsDir() bool {
	return e.Kind == KindDir
}
