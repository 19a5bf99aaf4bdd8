package runtime

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitramble.dev/gitramble/internal/config"
	ramblerrors "gitramble.dev/gitramble/internal/errors"
	"gitramble.dev/gitramble/internal/output"
	"gitramble.dev/gitramble/testhelpers"
)

func quietSplog(t *testing.T) *output.Splog {
	t.Helper()
	splog, err := output.NewSplogWithOptions(&bytes.Buffer{}, false, "")
	require.NoError(t, err)
	return splog
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("prepares the data directory from a subdirectory", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		sub := filepath.Join(scene.Dir, "pkg")
		require.NoError(t, os.MkdirAll(sub, 0750))

		ctx, err := Open(Options{Dir: sub, RepoURL: "https://example.com/r/", Splog: quietSplog(t)})
		require.NoError(t, err)
		require.Equal(t, scene.Dir, ctx.RepoRoot)
		require.Equal(t, "https://example.com/r", ctx.RepoURL)
		require.Equal(t, config.CommitsPath(scene.Dir), ctx.Store.Path())
		require.FileExists(t, filepath.Join(scene.Dir, ".gitramble", ".gitignore"))

		// The ignored data directory keeps the tree clean
		clean, err := ctx.Git.IsClean(context.Background())
		require.NoError(t, err)
		require.True(t, clean)

		// repo_url is remembered
		again, err := Open(Options{Dir: scene.Dir, Splog: quietSplog(t)})
		require.NoError(t, err)
		require.Equal(t, "https://example.com/r", again.RepoURL)
	})

	t.Run("both backends read the log", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.HistorySceneSetup("a", "b"))

		for _, backend := range []string{BackendCLI, BackendNative} {
			ctx, err := Open(Options{Dir: scene.Dir, Backend: backend, Splog: quietSplog(t)})
			require.NoError(t, err)
			entries, err := ctx.Git.Log(context.Background())
			require.NoError(t, err)
			require.Len(t, entries, 2, backend)
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		_, err := Open(Options{Dir: scene.Dir, Backend: "svn", Splog: quietSplog(t)})
		require.ErrorContains(t, err, "unknown backend")
	})

	t.Run("corrupt store is fatal and untouched", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, nil)
		_, err := config.EnsureDataDir(scene.Dir)
		require.NoError(t, err)
		corrupt := []byte("abbrev_hash,sequence\n\"a\",\"x\"\n")
		require.NoError(t, os.WriteFile(config.CommitsPath(scene.Dir), corrupt, 0600))

		_, err = Open(Options{Dir: scene.Dir, Splog: quietSplog(t)})
		require.ErrorIs(t, err, ramblerrors.ErrCorruptStore)

		data, err := os.ReadFile(config.CommitsPath(scene.Dir))
		require.NoError(t, err)
		require.Equal(t, corrupt, data)
	})

	t.Run("outside a repository", func(t *testing.T) {
		t.Parallel()
		_, err := Open(Options{Dir: t.TempDir(), Splog: quietSplog(t)})
		require.Error(t, err)
	})
}
