package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/wakatimer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFSAdapter_ReadDirSorted(t *testing.T) {
	adapter := NewLocalFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "b.py"), "b")
	writeTestFile(t, filepath.Join(root, "a.py"), "a")
	mustMkdir(t, filepath.Join(root, "c"))

	entries, err := adapter.ReadDir(m.Path(root))
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	assert.Equal(t, []string{"a.py", "b.py", "c"}, names)
}

func TestLocalFSAdapter_ReadFileAndHead(t *testing.T) {
	adapter := NewLocalFSAdapter()

	path := filepath.Join(t.TempDir(), "main.py")
	content := "print('hello')\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, content, string(got))

	head, err := adapter.ReadHead(m.Path(path), 5)
	require.NoError(t, err)
	assert.Equal(t, "print", string(head))

	short, err := adapter.ReadHead(m.Path(path), 1024)
	require.NoError(t, err)
	assert.Equal(t, content, string(short))

	_, err = adapter.ReadHead(m.Path(filepath.Join(t.TempDir(), "missing")), 4)
	assert.Error(t, err)
}

func TestLocalFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalFSAdapter()

	path := filepath.Join(t.TempDir(), "main.go")
	content := []byte("package main\nfunc main() {}\n")
	writeTestBytes(t, path, content)

	expected := fmt.Sprintf("%x", sha256.Sum256(content))

	hash, err := adapter.HashFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, expected, hash)
}

func TestLocalFSAdapter_WriteFileAtomic(t *testing.T) {
	adapter := NewLocalFSAdapter()

	root := t.TempDir()
	target := filepath.Join(root, "nested", "deeper", "file.txt")

	require.NoError(t, adapter.WriteFileAtomic(m.Path(target), []byte("first"), 0o644))
	require.NoError(t, adapter.WriteFileAtomic(m.Path(target), []byte("second version"), 0o644))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second version", string(got))

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestLocalFSAdapter_CopyFileAtomic(t *testing.T) {
	adapter := NewLocalFSAdapter()

	src := filepath.Join(t.TempDir(), "image.png")
	payload := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}
	writeTestBytes(t, src, payload)

	dst := filepath.Join(t.TempDir(), "assets", "image.png")
	require.NoError(t, adapter.CopyFileAtomic(m.Path(src), m.Path(dst)))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	err = adapter.CopyFileAtomic(m.Path(filepath.Join(t.TempDir(), "absent")), m.Path(dst))
	assert.Error(t, err)
}

func TestLocalFSAdapter_FileInfoAndMkdirAll(t *testing.T) {
	adapter := NewLocalFSAdapter()

	root := t.TempDir()
	dir := filepath.Join(root, "a", "b")
	require.NoError(t, adapter.MkdirAll(m.Path(dir)))

	info, err := adapter.FileInfo(m.Path(dir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalFSAdapter_Paths(t *testing.T) {
	adapter := NewLocalFSAdapter()

	root := t.TempDir()
	rel, err := adapter.RelPath(m.Path(root), m.Path(filepath.Join(root, "lib", "helper.py")))
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("lib", "helper.py")), rel)

	assert.Equal(t, m.Path(filepath.Join(root, "x")), adapter.JoinPath(root, "x"))

	abs, err := adapter.NormalizeRoot(m.Path(root + string(os.PathSeparator) + "."))
	require.NoError(t, err)
	assert.Equal(t, m.Path(root), abs)

	home, err := os.UserHomeDir()
	if err == nil {
		got, err := adapter.NormalizeRoot("~/project")
		require.NoError(t, err)
		assert.Equal(t, m.Path(filepath.Join(home, "project")), got)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	writeTestBytes(t, path, []byte(content))
}

func writeTestBytes(t *testing.T, path string, content []byte) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}
