package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree creates files under root. A key ending in "/" creates a directory.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))

		if rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(full, 0o750))
			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o600))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func lines(n int, width int) string {
	line := make([]byte, 0, width+1)
	for i := range width {
		line = append(line, byte('a'+i%26))
	}

	line = append(line, '\n')

	out := make([]byte, 0, n*len(line))
	for range n {
		out = append(out, line...)
	}

	return string(out)
}
