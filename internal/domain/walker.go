package domain

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/wakatimer/internal/adapter"
	m "github.com/mouse-blink/wakatimer/internal/model"
)

// Walker enumerates a source tree depth-first in lexicographic order.
//
// Walk is lazy: nothing is read until the sequence is ranged over, and every
// call re-reads the filesystem. Directories classified as skipped are pruned
// without descent and skipped files are never yielded. Per-entry failures are
// yielded as *ClassifierError next to the offending entry and the walk goes
// on; any other error ends the sequence.
type Walker interface {
	Walk(ctx context.Context, root m.Path) iter.Seq2[m.SourceEntry, error]
}

type walker struct {
	fsAdapter  adapter.FSAdapter
	classifier Classifier
	exclude    []string
}

// NewWalker creates a Walker. Absolute paths in exclude (typically the
// destination root when it sits inside the source) are never entered.
func NewWalker(fsAdapter adapter.FSAdapter, classifier Classifier, exclude ...m.Path) Walker {
	cleaned := make([]string, 0, len(exclude))
	for _, p := range exclude {
		if p == "" {
			continue
		}

		cleaned = append(cleaned, filepath.Clean(string(p)))
	}

	return &walker{
		fsAdapter:  fsAdapter,
		classifier: classifier,
		exclude:    cleaned,
	}
}

func (w *walker) Walk(ctx context.Context, root m.Path) iter.Seq2[m.SourceEntry, error] {
	return func(yield func(m.SourceEntry, error) bool) {
		rootEntry := m.SourceEntry{AbsPath: root, Kind: m.KindDir}

		info, err := w.fsAdapter.FileInfo(root)
		if err != nil {
			yield(rootEntry, fmt.Errorf("root path error: %w", err))
			return
		}

		if !info.IsDir() {
			yield(rootEntry, fmt.Errorf("root path %s is not a directory", root))
			return
		}

		w.walkDir(ctx, root, "", yield)
	}
}

// walkDir returns false once the consumer or the context stops the walk.
func (w *walker) walkDir(ctx context.Context, root, rel m.Path, yield func(m.SourceEntry, error) bool) bool {
	dirAbs := w.fsAdapter.JoinPath(string(root), string(rel))

	entries, err := w.fsAdapter.ReadDir(dirAbs)
	if err != nil {
		return yield(m.SourceEntry{RelPath: rel, AbsPath: dirAbs, Kind: m.KindDir}, &ClassifierError{Path: rel, Err: err})
	}

	for _, de := range entries {
		if err := ctx.Err(); err != nil {
			yield(m.SourceEntry{}, err)
			return false
		}

		entry, ok, err := w.inspect(root, rel, de)
		if err != nil {
			if !yield(entry, err) {
				return false
			}

			continue
		}

		if !ok {
			continue
		}

		if !yield(entry, nil) {
			return false
		}

		if entry.IsDir() && !w.walkDir(ctx, root, entry.RelPath, yield) {
			return false
		}
	}

	return true
}

// inspect stats and classifies one directory entry. ok is false when the
// entry takes no part in the replay.
func (w *walker) inspect(root, rel m.Path, de fs.DirEntry) (m.SourceEntry, bool, error) {
	childRel := w.fsAdapter.JoinPath(string(rel), de.Name())
	childAbs := w.fsAdapter.JoinPath(string(root), string(childRel))

	if w.excluded(string(childAbs)) {
		return m.SourceEntry{}, false, nil
	}

	entry := m.SourceEntry{RelPath: childRel, AbsPath: childAbs, Kind: m.KindFile}

	info, err := w.fsAdapter.FileInfo(childAbs)
	if err != nil {
		return entry, false, &ClassifierError{Path: childRel, Err: err}
	}

	if info.IsDir() {
		// Symlinked directories may loop back into the tree.
		if de.Type()&fs.ModeSymlink != 0 {
			return entry, false, nil
		}

		entry.Kind = m.KindDir
	} else if !info.Mode().IsRegular() {
		return entry, false, nil
	}

	entry.Size = info.Size()
	entry.Mode = info.Mode().Perm()

	class, err := w.classifier.Classify(entry)
	if err != nil {
		return entry, false, err
	}

	entry.Class = class

	return entry, class != m.ClassSkip, nil
}

func (w *walker) excluded(abs string) bool {
	sep := string(filepath.Separator)

	for _, base := range w.exclude {
		if abs == base || strings.HasPrefix(abs, base+sep) {
			return true
		}
	}

	return false
}
