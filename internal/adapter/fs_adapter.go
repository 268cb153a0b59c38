// Package adapter contains the infrastructure adapters used by the replay engine.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/wakatimer/internal/model"
)

// FSAdapter abstracts filesystem operations that the domain layer relies on
// when walking the source tree and materializing increments. It hides direct
// `os` access so the engine can be tested against fakes.
//
//nolint:interfacebloat // A richer interface keeps domain logic decoupled from os/fs.
type FSAdapter interface {
	// ReadDir lists a directory's entries sorted by name.
	ReadDir(path m.Path) ([]fs.DirEntry, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// ReadHead returns at most n leading bytes of a file.
	ReadHead(path m.Path, n int) ([]byte, error)

	// HashFile returns the hex SHA-256 of the file at path.
	HashFile(path m.Path) (string, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path) error

	// WriteFileAtomic replaces path with content via a temporary file and a
	// rename, so readers never observe a partially written file.
	WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error

	// CopyFileAtomic copies src over dst with the same guarantee.
	CopyFileAtomic(src, dst m.Path) error

	// NormalizeRoot expands ~ and returns an absolute, cleaned path.
	NormalizeRoot(path m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalFSAdapter implements FSAdapter on top of the local disk.
type LocalFSAdapter struct{}

// NewLocalFSAdapter constructs a LocalFSAdapter ready to be wired into the workflow.
func NewLocalFSAdapter() *LocalFSAdapter {
	return &LocalFSAdapter{}
}

// ReadDir lists entries sorted by filename.
func (a *LocalFSAdapter) ReadDir(path m.Path) ([]fs.DirEntry, error) {
	return os.ReadDir(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// ReadHead reads up to n bytes from the start of the file.
func (a *LocalFSAdapter) ReadHead(path m.Path, n int) ([]byte, error) {
	// #nosec G304 - path comes from walking the user's own source tree
	f, err := os.Open(string(path))
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.Close() }()

	buf := make([]byte, n)

	read, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}

	return buf[:read], nil
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// MkdirAll creates the directory tree.
func (a *LocalFSAdapter) MkdirAll(path m.Path) error {
	return os.MkdirAll(string(path), 0o750)
}

// WriteFileAtomic writes content next to path and renames it into place.
func (a *LocalFSAdapter) WriteFileAtomic(path m.Path, content []byte, perm os.FileMode) error {
	return a.writeAtomic(string(path), perm, func(w io.Writer) error {
		_, err := w.Write(content)
		return err
	})
}

// CopyFileAtomic copies a single file, keeping the source permissions.
func (a *LocalFSAdapter) CopyFileAtomic(src, dst m.Path) error {
	// #nosec G304 - src is a file from the walked source tree
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	info, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	return a.writeAtomic(string(dst), info.Mode().Perm(), func(w io.Writer) error {
		_, err := io.Copy(w, sourceFile)
		return err
	})
}

func (a *LocalFSAdapter) writeAtomic(dst string, perm os.FileMode, fill func(io.Writer) error) error {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	// The temp file lives in the target directory so the rename stays on one filesystem.
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dst)+".tmp-*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if err := fill(tmp); err != nil {
		return err
	}

	if err := tmp.Chmod(perm); err != nil {
		return err
	}

	if err := tmp.Sync(); err != nil {
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, dst)
}

// NormalizeRoot resolves ~ and relative paths to an absolute path.
func (a *LocalFSAdapter) NormalizeRoot(path m.Path) (m.Path, error) {
	rootStr := string(path)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
