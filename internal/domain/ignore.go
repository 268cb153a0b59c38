package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/mouse-blink/wakatimer/internal/adapter"
	"github.com/mouse-blink/wakatimer/internal/config"
	m "github.com/mouse-blink/wakatimer/internal/model"
)

// IgnoreFileName is read from the source root when present. Each line holds
// one pattern: "name/" skips directories with that name, "a/b/" skips the
// directory at that relative path (globs allowed), anything else is a
// skip-file glob. Blank lines and lines starting with # are ignored.
const IgnoreFileName = ".wakatimerignore"

type ignoreRule struct {
	dirs  map[string]struct{}
	files []string
}

func (r ignoreRule) empty() bool {
	return len(r.dirs) == 0 && len(r.files) == 0
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.empty() {
		return
	}

	if dst.dirs == nil {
		dst.dirs = make(map[string]struct{}, len(src.dirs))
	}

	for name := range src.dirs {
		dst.dirs[name] = struct{}{}
	}

	dst.files = append(dst.files, src.files...)
}

func parseIgnoreLine(line string) (ignoreRule, bool) {
	s := strings.TrimSpace(line)
	if s == "" || strings.HasPrefix(s, "#") {
		return ignoreRule{}, false
	}

	if name, ok := strings.CutSuffix(s, "/"); ok {
		name = strings.Trim(name, "/")
		if name == "" {
			return ignoreRule{}, false
		}

		return ignoreRule{dirs: map[string]struct{}{name: {}}}, true
	}

	return ignoreRule{files: []string{strings.TrimPrefix(s, "/")}}, true
}

func parseIgnoreFile(content []byte) (ignoreRule, error) {
	var rule ignoreRule

	for i, line := range strings.Split(string(content), "\n") {
		r, ok := parseIgnoreLine(line)
		if !ok {
			continue
		}

		for _, pattern := range append(sortedKeys(r.dirs), r.files...) {
			if _, err := path.Match(pattern, ""); err != nil {
				return ignoreRule{}, fmt.Errorf("%s:%d: invalid pattern %q: %w", IgnoreFileName, i+1, pattern, err)
			}
		}

		mergeIgnoreRule(&rule, r)
	}

	return rule, nil
}

// loadIgnoreRule reads the ignore file under root. A missing file is an empty rule.
func loadIgnoreRule(fsAdapter adapter.FSAdapter, root m.Path) (ignoreRule, error) {
	content, err := fsAdapter.ReadFile(fsAdapter.JoinPath(string(root), IgnoreFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return ignoreRule{}, nil
	}

	if err != nil {
		return ignoreRule{}, fmt.Errorf("failed to read %s: %w", IgnoreFileName, err)
	}

	rule, err := parseIgnoreFile(content)
	if err != nil {
		return ignoreRule{}, err
	}

	// The ignore file describes the replay and is not part of it.
	rule.files = append(rule.files, IgnoreFileName)

	return rule, nil
}

// apply returns cfg extended with the rule's directories and patterns.
func (r ignoreRule) apply(cfg config.Classifier) config.Classifier {
	if r.empty() {
		return cfg
	}

	out := cfg
	out.SkipDirs = append(append([]string(nil), cfg.SkipDirs...), sortedKeys(r.dirs)...)
	out.SkipFiles = append(append([]string(nil), cfg.SkipFiles...), r.files...)

	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
