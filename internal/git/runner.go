package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	ramblerrors "gitramble.dev/gitramble/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands in one working directory
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, true, args...)
}

// RunRaw executes a git command and returns the output untouched
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, false, args...)
}

// RunLines executes a git command and returns output as lines
func (r *CommandRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

func (r *CommandRunner) runInternal(ctx context.Context, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", ramblerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", ramblerrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

// Runner defines the git operations gitramble needs.
// This allows actions to be used with both real git and fake implementations.
type Runner interface {
	LogSource

	// Branch Management
	CurrentBranch(ctx context.Context) (string, error)
	ListBranches(ctx context.Context) ([]string, error)
	CreateBranchAt(ctx context.Context, branchName, revision string) error
	CheckoutBranch(ctx context.Context, branchName string) error
	DeleteBranch(ctx context.Context, branchName string) error

	// Working tree state
	IsClean(ctx context.Context) (bool, error)
}

// realRunner implements Runner by shelling out to git, with the log read by
// the configured LogSource. When repo is set, read-only queries go through
// go-git instead.
type realRunner struct {
	cmd  *CommandRunner
	log  LogSource
	repo *Repository
}

// NewRealRunner creates a Runner in dir that reads the log with the git CLI
func NewRealRunner(dir string) Runner {
	cmd := NewCommandRunner(dir)
	return &realRunner{cmd: cmd, log: NewCLILogSource(cmd)}
}

// NewNativeRunner creates a Runner for repo that reads history and HEAD with
// go-git. Branch changes still use the git binary.
func NewNativeRunner(repo *Repository) Runner {
	return &realRunner{cmd: NewCommandRunner(repo.Root()), log: NewNativeLogSource(repo), repo: repo}
}

func (r *realRunner) Log(ctx context.Context) ([]LogEntry, error) {
	return r.log.Log(ctx)
}

func (r *realRunner) CurrentBranch(ctx context.Context) (string, error) {
	if r.repo != nil {
		return r.repo.CurrentBranch()
	}
	return CurrentBranch(ctx, r.cmd)
}

func (r *realRunner) ListBranches(ctx context.Context) ([]string, error) {
	return ListBranches(ctx, r.cmd)
}

func (r *realRunner) CreateBranchAt(ctx context.Context, branchName, revision string) error {
	return CreateBranchAt(ctx, r.cmd, branchName, revision)
}

func (r *realRunner) CheckoutBranch(ctx context.Context, branchName string) error {
	return CheckoutBranch(ctx, r.cmd, branchName)
}

func (r *realRunner) DeleteBranch(ctx context.Context, branchName string) error {
	return DeleteBranch(ctx, r.cmd, branchName)
}

func (r *realRunner) IsClean(ctx context.Context) (bool, error) {
	return IsClean(ctx, r.cmd)
}
