package git

import (
	"context"
	"fmt"
	"strings"
)

// CreateBranchAt creates branchName at revision and checks it out
func CreateBranchAt(ctx context.Context, runner *CommandRunner, branchName, revision string) error {
	_, err := runner.Run(ctx, "checkout", "-b", branchName, revision)
	if err != nil {
		return fmt.Errorf("failed to create branch %s at %s: %w", branchName, revision, err)
	}
	return nil
}

// CheckoutBranch checks out an existing branch
func CheckoutBranch(ctx context.Context, runner *CommandRunner, branchName string) error {
	_, err := runner.Run(ctx, "checkout", branchName)
	if err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", branchName, err)
	}
	return nil
}

// DeleteBranch force-deletes a branch
func DeleteBranch(ctx context.Context, runner *CommandRunner, branchName string) error {
	_, err := runner.Run(ctx, "branch", "-D", branchName)
	if err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", branchName, err)
	}
	return nil
}

// ListBranches returns local branch names, sorted by git
func ListBranches(ctx context.Context, runner *CommandRunner) ([]string, error) {
	lines, err := runner.RunLines(ctx, "branch", "--list", "--format=%(refname:short)")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	branches := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			branches = append(branches, line)
		}
	}
	return branches, nil
}

// CurrentBranch returns the checked out branch, or "" when HEAD is detached
func CurrentBranch(ctx context.Context, runner *CommandRunner) (string, error) {
	out, err := runner.Run(ctx, "symbolic-ref", "--quiet", "--short", "HEAD")
	if err != nil {
		// symbolic-ref exits 1 with no output on a detached HEAD
		if _, revErr := runner.Run(ctx, "rev-parse", "--verify", "--quiet", "HEAD"); revErr == nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return out, nil
}

// StatusPorcelain returns `git status --porcelain` output
func StatusPorcelain(ctx context.Context, runner *CommandRunner) (string, error) {
	out, err := runner.Run(ctx, "status", "--porcelain")
	if err != nil {
		return "", fmt.Errorf("failed to get status: %w", err)
	}
	return out, nil
}

// IsClean reports whether the working tree has no changes, untracked files included
func IsClean(ctx context.Context, runner *CommandRunner) (bool, error) {
	out, err := StatusPorcelain(ctx, runner)
	if err != nil {
		return false, err
	}
	return out == "", nil
}
