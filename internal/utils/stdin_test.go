package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadFromPipe(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	go func() {
		_, _ = w.Write([]byte("  indented note\nsecond line\n\n"))
		_ = w.Close()
	}()

	text, err := readFrom(r)
	require.NoError(t, err)
	require.Equal(t, "  indented note\nsecond line", text)
}

func TestReadFromEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0600))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	text, err := readFrom(f)
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestIsInteractiveDisabledByEnv(t *testing.T) {
	t.Setenv("GITRAMBLE_TEST_NO_INTERACTIVE", "1")
	require.False(t, IsInteractive())
}
