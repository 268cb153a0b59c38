package domain

import (
	"bytes"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/wakatimer/internal/adapter"
	"github.com/mouse-blink/wakatimer/internal/config"
	m "github.com/mouse-blink/wakatimer/internal/model"
)

// defaultTextExtensions are typed incrementally unless the probe finds a NUL byte.
var defaultTextExtensions = []string{
	".py", ".pyi", ".js", ".mjs", ".cjs", ".jsx", ".ts", ".tsx", ".go", ".rs",
	".java", ".kt", ".kts", ".scala", ".c", ".h", ".cc", ".cpp", ".hpp", ".cs",
	".rb", ".php", ".swift", ".m", ".lua", ".pl", ".r", ".dart", ".ex", ".exs",
	".erl", ".hs", ".clj", ".sh", ".bash", ".zsh", ".fish", ".ps1", ".bat",
	".html", ".htm", ".css", ".scss", ".sass", ".less", ".vue", ".svelte",
	".json", ".yaml", ".yml", ".toml", ".ini", ".cfg", ".conf", ".xml", ".svg",
	".md", ".rst", ".txt", ".csv", ".tsv", ".sql", ".graphql", ".proto",
	".tf", ".mod", ".sum", ".lock", ".gradle", ".properties", ".env",
}

// defaultBinaryExtensions are copied whole without probing.
var defaultBinaryExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico", ".webp", ".tiff", ".psd",
	".pdf", ".zip", ".gz", ".tgz", ".bz2", ".xz", ".7z", ".rar", ".tar", ".jar",
	".war", ".exe", ".dll", ".so", ".dylib", ".a", ".lib", ".bin", ".dat",
	".db", ".sqlite", ".woff", ".woff2", ".ttf", ".otf", ".eot", ".mp3",
	".mp4", ".wav", ".ogg", ".avi", ".mov", ".mkv", ".pyc", ".class", ".wasm",
}

// textNames are extension-less files that are still source text.
var textNames = []string{
	"Makefile", "Dockerfile", "Procfile", "Gemfile", "Rakefile", "Vagrantfile",
	"Jenkinsfile", "LICENSE", "README", "CHANGELOG", "AUTHORS", "CODEOWNERS",
	".gitignore", ".gitattributes", ".dockerignore", ".editorconfig",
	".npmrc", ".nvmrc", ".prettierrc", ".eslintrc", ".babelrc",
}

// Classifier decides whether an entry is skipped, copied or typed.
type Classifier interface {
	Classify(entry m.SourceEntry) (m.Classification, error)
}

type nameSet map[string]struct{}

func newNameSet(groups ...[]string) nameSet {
	set := make(nameSet)

	for _, names := range groups {
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}

			set[name] = struct{}{}
		}
	}

	return set
}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

type classifier struct {
	fsAdapter  adapter.FSAdapter
	skipDirs   nameSet
	dirPaths   []string
	skipFiles  []string
	textExts   nameSet
	binaryExts nameSet
	textNames  nameSet
	probeBytes int
}

// NewClassifier builds a Classifier from the classifier config. Skip-file
// patterns use path.Match syntax; patterns containing a slash are matched
// against the slash-separated relative path, the rest against the base name.
// Skip-dir entries without a slash are exact base names; entries with one
// are path.Match patterns over the relative path.
func NewClassifier(fsAdapter adapter.FSAdapter, cfg config.Classifier) (Classifier, error) {
	var names, dirPaths []string

	for _, dir := range cfg.SkipDirs {
		dir = strings.Trim(strings.TrimSpace(filepath.ToSlash(dir)), "/")
		if !strings.Contains(dir, "/") {
			names = append(names, dir)
			continue
		}

		if _, err := path.Match(dir, ""); err != nil {
			return nil, fmt.Errorf("invalid skip dir pattern %q: %w", dir, err)
		}

		dirPaths = append(dirPaths, dir)
	}

	for _, pattern := range cfg.SkipFiles {
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid skip pattern %q: %w", pattern, err)
		}
	}

	probe := cfg.ProbeBytes
	if probe <= 0 {
		probe = config.Default().Classifier.ProbeBytes
	}

	return &classifier{
		fsAdapter:  fsAdapter,
		skipDirs:   newNameSet(names),
		dirPaths:   dirPaths,
		skipFiles:  append([]string(nil), cfg.SkipFiles...),
		textExts:   newNameSet(defaultTextExtensions, lowerAll(cfg.TextExtensions)),
		binaryExts: newNameSet(defaultBinaryExtensions, lowerAll(cfg.BinaryExtensions)),
		textNames:  newNameSet(textNames),
		probeBytes: probe,
	}, nil
}

func (c *classifier) Classify(entry m.SourceEntry) (m.Classification, error) {
	name := filepath.Base(string(entry.RelPath))

	if entry.IsDir() {
		if c.skipDirs.has(name) || c.matchesDirPath(entry.RelPath) {
			return m.ClassSkip, nil
		}

		return m.ClassTypeIncremental, nil
	}

	if c.matchesSkipFile(entry.RelPath, name) {
		return m.ClassSkip, nil
	}

	ext := strings.ToLower(filepath.Ext(name))
	if c.binaryExts.has(ext) {
		return m.ClassCopyBinary, nil
	}

	if !c.textExts.has(ext) && !c.textNames.has(name) {
		return m.ClassCopyBinary, nil
	}

	head, err := c.fsAdapter.ReadHead(entry.AbsPath, c.probeBytes)
	if err != nil {
		return m.ClassSkip, &ClassifierError{Path: entry.RelPath, Err: err}
	}

	if bytes.IndexByte(head, 0) >= 0 {
		return m.ClassCopyBinary, nil
	}

	return m.ClassTypeIncremental, nil
}

func (c *classifier) matchesSkipFile(rel m.Path, name string) bool {
	slashed := filepath.ToSlash(string(rel))

	for _, pattern := range c.skipFiles {
		subject := name
		if strings.Contains(pattern, "/") {
			subject = slashed
		}

		if ok, _ := path.Match(pattern, subject); ok {
			return true
		}
	}

	return false
}

func (c *classifier) matchesDirPath(rel m.Path) bool {
	slashed := filepath.ToSlash(string(rel))

	for _, pattern := range c.dirPaths {
		if ok, _ := path.Match(pattern, slashed); ok {
			return true
		}
	}

	return false
}

func lowerAll(exts []string) []string {
	out := make([]string, 0, len(exts))

	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		out = append(out, ext)
	}

	return out
}
