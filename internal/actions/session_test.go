package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"gitramble.dev/gitramble/internal/commits"
	ramblerrors "gitramble.dev/gitramble/internal/errors"
	"gitramble.dev/gitramble/internal/git"
)

func currentHashes(s *Session) []string {
	var hashes []string
	for _, rec := range s.Current() {
		hashes = append(hashes, rec.AbbrevHash)
	}
	return hashes
}

func TestSessionRefresh(t *testing.T) {
	t.Parallel()
	f := newFixture(t, logEntry("aaaaaaa", "one"), logEntry("bbbbbbb", "two"))
	require.Equal(t, []string{"aaaaaaa", "bbbbbbb"}, currentHashes(f.session))

	f.runner.branches["main"] = []git.LogEntry{logEntry("aaaaaaa", "one")}
	summary, err := f.session.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, commits.ReconcileSummary{Current: 1, Departed: 1}, summary)
	require.Equal(t, []string{"aaaaaaa"}, currentHashes(f.session))
}

func TestCreateBranch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates, checks out and refreshes", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, logEntry("aaaaaaa", "one"), logEntry("bbbbbbb", "two"), logEntry("ccccccc", "three"))

		name, err := f.session.CreateBranch(ctx, "bbb", false)
		require.NoError(t, err)
		require.Equal(t, "gitramble-00002-bbbbbbb", name)
		require.Equal(t, name, f.runner.current)
		require.Contains(t, f.runner.calls, "create gitramble-00002-bbbbbbb bbbbbbb")

		// The new branch ends at b, so c is no longer current but still known
		require.Equal(t, []string{"aaaaaaa", "bbbbbbb"}, currentHashes(f.session))
		rec, err := f.session.Resolve("ccccccc")
		require.NoError(t, err)
		require.False(t, rec.Current)
	})

	t.Run("refuses a dirty tree unless forced", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, logEntry("aaaaaaa", "one"))
		f.runner.clean = false

		_, err := f.session.CreateBranch(ctx, "aaaaaaa", false)
		require.ErrorIs(t, err, ramblerrors.ErrDirtyWorktree)
		require.Equal(t, "main", f.runner.current)

		_, err = f.session.CreateBranch(ctx, "aaaaaaa", true)
		require.NoError(t, err)
	})

	t.Run("unknown commit", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, logEntry("aaaaaaa", "one"))
		_, err := f.session.CreateBranch(ctx, "fffffff", false)
		require.ErrorIs(t, err, ramblerrors.ErrCommitNotFound)
	})
}

func TestAnnotatedBranches(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, logEntry("aaaaaaa", "one"), logEntry("bbbbbbb", "two"))

	_, err := f.session.CreateBranch(ctx, "aaaaaaa", false)
	require.NoError(t, err)
	require.NoError(t, f.runner.CheckoutBranch(ctx, "main"))
	_, err = f.session.CreateBranch(ctx, "bbbbbbb", false)
	require.NoError(t, err)
	f.session.SetNote("aaaaaaa", "first | idea")

	listing, err := f.session.AnnotatedBranches(ctx, false)
	require.NoError(t, err)
	require.Equal(t, []string{
		"gitramble-00001-aaaaaaa | first | idea",
		"* gitramble-00002-bbbbbbb | two",
	}, listing)

	listing, err = f.session.AnnotatedBranches(ctx, true)
	require.NoError(t, err)
	require.Contains(t, listing, "main")
}

func TestCheckoutBranch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, logEntry("aaaaaaa", "one"), logEntry("bbbbbbb", "two"))
	_, err := f.session.CreateBranch(ctx, "aaaaaaa", false)
	require.NoError(t, err)

	name, err := f.session.CheckoutBranch(ctx, "main", false)
	require.NoError(t, err)
	require.Equal(t, "main", name)
	require.Equal(t, []string{"aaaaaaa", "bbbbbbb"}, currentHashes(f.session))

	// Annotated entries are accepted as they come from the picker
	f.runner.clean = false
	_, err = f.session.CheckoutBranch(ctx, "gitramble-00001-aaaaaaa | one", false)
	require.ErrorIs(t, err, ramblerrors.ErrDirtyWorktree)

	name, err = f.session.CheckoutBranch(ctx, "gitramble-00001-aaaaaaa | one", true)
	require.NoError(t, err)
	require.Equal(t, "gitramble-00001-aaaaaaa", name)
	require.Equal(t, []string{"aaaaaaa"}, currentHashes(f.session))

	_, err = f.session.CheckoutBranch(ctx, "nope", true)
	require.ErrorIs(t, err, ramblerrors.ErrBranchNotFound)
}

func TestDeleteBranch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, logEntry("aaaaaaa", "one"))
	name, err := f.session.CreateBranch(ctx, "aaaaaaa", false)
	require.NoError(t, err)

	_, err = f.session.DeleteBranch(ctx, "* "+name+" | one")
	require.ErrorContains(t, err, "checked out")

	_, err = f.session.CheckoutBranch(ctx, "main", false)
	require.NoError(t, err)
	deleted, err := f.session.DeleteBranch(ctx, name+" | one")
	require.NoError(t, err)
	require.Equal(t, name, deleted)
	require.NotContains(t, f.runner.branches, name)

	_, err = f.session.DeleteBranch(ctx, name)
	var notFound *ramblerrors.BranchNotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestOpenCommit(t *testing.T) {
	f := newFixture(t, logEntry("aaaaaaa", "one"))

	var opened []string
	orig := openBrowser
	openBrowser = func(url string) error {
		opened = append(opened, url)
		return nil
	}
	t.Cleanup(func() { openBrowser = orig })

	url, err := f.session.OpenCommit("aaa")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/owner/repo/commit/aaaaaaa", url)
	require.Equal(t, []string{url}, opened)

	_, err = f.session.OpenCommit("fffffff")
	require.ErrorIs(t, err, ramblerrors.ErrCommitNotFound)
	require.Len(t, opened, 1)

	// A missing URL is reported before the hash is looked up
	f.ctx.RepoURL = ""
	_, err = f.session.OpenCommit("fffffff")
	require.ErrorIs(t, err, ramblerrors.ErrNoRepoURL)
	_, err = f.session.OpenCommit("aaa")
	require.ErrorIs(t, err, ramblerrors.ErrNoRepoURL)
	require.Len(t, opened, 1)
}
