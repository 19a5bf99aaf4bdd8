package runtime

import (
	"fmt"

	"gitramble.dev/gitramble/internal/commits"
	"gitramble.dev/gitramble/internal/config"
	"gitramble.dev/gitramble/internal/git"
	"gitramble.dev/gitramble/internal/output"
)

// Log backends selectable with --backend
const (
	BackendCLI    = "cli"
	BackendNative = "native"
)

// Context provides access to the store, git and output for commands
type Context struct {
	Store    *commits.Store
	Git      git.Runner
	Splog    *output.Splog
	RepoRoot string
	RepoURL  string
}

// Options configures how a Context is opened
type Options struct {
	Dir     string // any directory inside the repository
	RepoURL string // overrides and replaces the stored repo_url
	Backend string // BackendCLI or BackendNative, BackendCLI when empty
	Splog   *output.Splog
}

// NewContext creates a context from already constructed parts
func NewContext(store *commits.Store, runner git.Runner, splog *output.Splog, repoRoot string) *Context {
	if splog == nil {
		splog = output.NewSplog()
	}
	return &Context{
		Store:    store,
		Git:      runner,
		Splog:    splog,
		RepoRoot: repoRoot,
	}
}

// Open locates the repository containing opts.Dir, prepares its data
// directory, loads the commit store and resolves the repository URL.
// A corrupt store is returned as an error and the file is left untouched.
func Open(opts Options) (*Context, error) {
	splog := opts.Splog
	if splog == nil {
		splog = output.NewSplog()
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	repo, err := git.OpenRepository(dir)
	if err != nil {
		return nil, err
	}
	repoRoot := repo.Root()

	runner, err := newRunner(opts.Backend, repo)
	if err != nil {
		return nil, err
	}

	if _, err := config.EnsureDataDir(repoRoot); err != nil {
		return nil, err
	}

	store, err := commits.Open(config.CommitsPath(repoRoot), splog)
	if err != nil {
		return nil, err
	}

	ctx := NewContext(store, runner, splog, repoRoot)

	repoURL, err := config.ResolveRepoURL(repoRoot, opts.RepoURL)
	if err != nil {
		splog.Warn("Ignoring repository settings: %v", err)
	}
	ctx.RepoURL = repoURL

	return ctx, nil
}

func newRunner(backend string, repo *git.Repository) (git.Runner, error) {
	switch backend {
	case "", BackendCLI:
		return git.NewRealRunner(repo.Root()), nil
	case BackendNative:
		return git.NewNativeRunner(repo), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (expected %s or %s)", backend, BackendCLI, BackendNative)
	}
}
