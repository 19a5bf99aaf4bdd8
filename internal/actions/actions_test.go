package actions

import (
	"context"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	ramblerrors "gitramble.dev/gitramble/internal/errors"
	"gitramble.dev/gitramble/internal/git"
)

func TestLogAction(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	f := newFixture(t, logEntry("aaaaaaa", "one"), logEntry("bbbbbbb", "two"))

	_, err := f.session.CreateBranch(context.Background(), "aaaaaaa", false)
	require.NoError(t, err)
	f.out.Reset()

	// On the new branch only a is current
	require.NoError(t, LogAction(f.ctx, LogOptions{}))
	require.Equal(t, "    1 aaaaaaa 2024-05-01 12:00 [ ] gitramble-00001-aaaaaaa one\n", f.out.String())

	f.out.Reset()
	require.NoError(t, SelectAction(f.ctx, []string{"bbb"}, true))
	f.out.Reset()
	require.NoError(t, LogAction(f.ctx, LogOptions{All: true, Selected: true}))
	require.Equal(t, "    2 bbbbbbb 2024-05-01 12:00 [x] two (gone)\n", f.out.String())

	f.out.Reset()
	require.NoError(t, LogAction(f.ctx, LogOptions{Selected: true}))
	require.Equal(t, "No commits to show.\n", f.out.String())
}

func TestSelectAction(t *testing.T) {
	t.Parallel()
	f := newFixture(t, logEntry("abc0001", "one"), logEntry("abc0002", "two"))

	require.NoError(t, SelectAction(f.ctx, []string{"abc0001", "abc0002"}, true))
	require.Len(t, f.ctx.Store.Selected(), 2)

	// An ambiguous hash aborts before anything changes
	err := SelectAction(f.ctx, []string{"abc0001", "abc"}, false)
	require.ErrorIs(t, err, ramblerrors.ErrAmbiguousCommit)
	require.Len(t, f.ctx.Store.Selected(), 2)

	require.NoError(t, SelectAction(f.ctx, []string{"abc0001"}, false))
	require.Len(t, f.ctx.Store.Selected(), 1)
}

func TestNoteAction(t *testing.T) {
	t.Parallel()
	f := newFixture(t, logEntry("aaaaaaa", "one"))

	require.NoError(t, NoteAction(f.ctx, NoteOptions{Hash: "aaaaaaa", Text: "looks promising"}))
	require.False(t, f.ctx.Store.Dirty())
	rec, _ := f.ctx.Store.Get("aaaaaaa")
	require.Equal(t, "looks promising", rec.Note)

	require.Error(t, NoteAction(f.ctx, NoteOptions{Hash: "aaaaaaa"}))

	require.NoError(t, NoteAction(f.ctx, NoteOptions{Hash: "aaaaaaa", Clear: true}))
	rec, _ = f.ctx.Store.Get("aaaaaaa")
	require.Empty(t, rec.Note)
}

func TestCheckoutActionPicker(t *testing.T) {
	f := newFixture(t, logEntry("aaaaaaa", "one"), logEntry("bbbbbbb", "two"))
	_, err := f.session.CreateBranch(context.Background(), "aaaaaaa", false)
	require.NoError(t, err)
	_, err = f.session.CheckoutBranch(context.Background(), "main", false)
	require.NoError(t, err)

	var offered []string
	orig := selectPrompt
	selectPrompt = func(_ string, options []string, _ string) (string, error) {
		offered = options
		return options[0], nil
	}
	t.Cleanup(func() { selectPrompt = orig })

	require.NoError(t, CheckoutAction(f.ctx, CheckoutOptions{}))
	require.Equal(t, []string{"gitramble-00001-aaaaaaa | one"}, offered)
	require.Equal(t, "gitramble-00001-aaaaaaa", f.runner.current)
}

func TestDeleteActionConfirm(t *testing.T) {
	f := newFixture(t, logEntry("aaaaaaa", "one"))
	f.runner.branches["gitramble-00001-aaaaaaa"] = []git.LogEntry{logEntry("aaaaaaa", "one")}

	answer := false
	orig := confirmPrompt
	confirmPrompt = func(string) (bool, error) { return answer, nil }
	t.Cleanup(func() { confirmPrompt = orig })

	require.NoError(t, DeleteAction(f.ctx, DeleteOptions{BranchName: "gitramble-00001-aaaaaaa"}))
	require.Contains(t, f.runner.branches, "gitramble-00001-aaaaaaa")

	answer = true
	require.NoError(t, DeleteAction(f.ctx, DeleteOptions{BranchName: "gitramble-00001-aaaaaaa"}))
	require.NotContains(t, f.runner.branches, "gitramble-00001-aaaaaaa")
}

func TestInteractiveDisabled(t *testing.T) {
	t.Setenv("GITRAMBLE_TEST_NO_INTERACTIVE", "1")
	f := newFixture(t, logEntry("aaaaaaa", "one"))
	f.runner.branches["gitramble-00001-aaaaaaa"] = nil

	err := DeleteAction(f.ctx, DeleteOptions{BranchName: "gitramble-00001-aaaaaaa"})
	require.ErrorIs(t, err, ErrInteractiveDisabled)
}

func TestConfigActions(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	value, err := ConfigGetAction(root, ConfigKeyRepoURL)
	require.NoError(t, err)
	require.Empty(t, value)

	require.NoError(t, ConfigSetAction(root, ConfigKeyRepoURL, "https://example.com/x.git"))
	value, err = ConfigGetAction(root, ConfigKeyRepoURL)
	require.NoError(t, err)
	require.Equal(t, "https://example.com/x", value)

	_, err = ConfigGetAction(root, "trunk")
	require.Error(t, err)
}
