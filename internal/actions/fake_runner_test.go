package actions

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"gitramble.dev/gitramble/internal/commits"
	"gitramble.dev/gitramble/internal/git"
	"gitramble.dev/gitramble/internal/output"
	"gitramble.dev/gitramble/internal/runtime"
)

// fakeRunner is an in-memory repository: every branch is a list of log
// entries and checking out a branch changes what Log returns.
type fakeRunner struct {
	branches map[string][]git.LogEntry
	current  string
	clean    bool
	calls    []string
}

func newFakeRunner(log ...git.LogEntry) *fakeRunner {
	return &fakeRunner{
		branches: map[string][]git.LogEntry{"main": log},
		current:  "main",
		clean:    true,
	}
}

func (f *fakeRunner) Log(context.Context) ([]git.LogEntry, error) {
	f.calls = append(f.calls, "log")
	return slices.Clone(f.branches[f.current]), nil
}

func (f *fakeRunner) CurrentBranch(context.Context) (string, error) {
	return f.current, nil
}

func (f *fakeRunner) ListBranches(context.Context) ([]string, error) {
	names := make([]string, 0, len(f.branches))
	for name := range f.branches {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

func (f *fakeRunner) CreateBranchAt(_ context.Context, name, revision string) error {
	f.calls = append(f.calls, "create "+name+" "+revision)
	if _, exists := f.branches[name]; exists {
		return fmt.Errorf("branch %s already exists", name)
	}
	log := f.branches[f.current]
	for i, e := range log {
		if e.AbbrevHash == revision {
			f.branches[name] = slices.Clone(log[:i+1])
			f.current = name
			return nil
		}
	}
	return fmt.Errorf("unknown revision %s", revision)
}

func (f *fakeRunner) CheckoutBranch(_ context.Context, name string) error {
	f.calls = append(f.calls, "checkout "+name)
	if _, ok := f.branches[name]; !ok {
		return fmt.Errorf("no branch %s", name)
	}
	f.current = name
	return nil
}

func (f *fakeRunner) DeleteBranch(_ context.Context, name string) error {
	f.calls = append(f.calls, "delete "+name)
	delete(f.branches, name)
	return nil
}

func (f *fakeRunner) IsClean(context.Context) (bool, error) {
	return f.clean, nil
}

func logEntry(hash, subject string) git.LogEntry {
	return git.LogEntry{
		CommitHash: hash + "000000000000000000000000000000000",
		AbbrevHash: hash,
		AuthorDate: "2024-05-01T12:00:00+00:00",
		Subject:    subject,
	}
}

type fixture struct {
	ctx     *runtime.Context
	runner  *fakeRunner
	out     *bytes.Buffer
	session *Session
}

// newFixture builds a context over a fake runner and a store in a temp dir,
// refreshed once so the log is known
func newFixture(t *testing.T, log ...git.LogEntry) *fixture {
	t.Helper()

	out := &bytes.Buffer{}
	splog, err := output.NewSplogWithOptions(out, false, "")
	require.NoError(t, err)

	store, err := commits.Open(filepath.Join(t.TempDir(), "commits.csv"), splog)
	require.NoError(t, err)

	runner := newFakeRunner(log...)
	ctx := runtime.NewContext(store, runner, splog, t.TempDir())
	ctx.RepoURL = "https://example.com/owner/repo"

	f := &fixture{ctx: ctx, runner: runner, out: out, session: NewSession(ctx)}
	_, err = f.session.Refresh(context.Background())
	require.NoError(t, err)
	return f
}
