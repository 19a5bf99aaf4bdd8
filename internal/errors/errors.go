// Package errors provides sentinel errors and custom error types for the gitramble application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrCorruptStore indicates that the persisted commit store could not be parsed
	ErrCorruptStore = errors.New("corrupt commit store")

	// ErrCommitNotFound indicates that no known commit matches a hash
	ErrCommitNotFound = errors.New("commit not found")

	// ErrAmbiguousCommit indicates that a hash prefix matches more than one commit
	ErrAmbiguousCommit = errors.New("ambiguous commit")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrDirtyWorktree indicates the working tree has uncommitted changes
	ErrDirtyWorktree = errors.New("working tree has uncommitted changes")

	// ErrNoRepoURL indicates that no repository URL has been configured
	ErrNoRepoURL = errors.New("no repository URL configured")
)

// CorruptStoreError describes why a persisted commit store failed to load
type CorruptStoreError struct {
	Path   string
	Line   int
	Reason string
}

func (e *CorruptStoreError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("corrupt commit store %s (line %d): %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("corrupt commit store %s: %s", e.Path, e.Reason)
}

// Is returns true if the target error is ErrCorruptStore
func (e *CorruptStoreError) Is(target error) bool {
	return target == ErrCorruptStore
}

// NewCorruptStoreError creates a new CorruptStoreError
func NewCorruptStoreError(path string, line int, reason string) *CorruptStoreError {
	return &CorruptStoreError{Path: path, Line: line, Reason: reason}
}

// CommitNotFoundError represents an error when no stored commit matches a hash
type CommitNotFoundError struct {
	Hash string
}

func (e *CommitNotFoundError) Error() string {
	return fmt.Sprintf("no known commit matches %s", e.Hash)
}

// Is returns true if the target error is ErrCommitNotFound
func (e *CommitNotFoundError) Is(target error) bool {
	return target == ErrCommitNotFound
}

// NewCommitNotFoundError creates a new CommitNotFoundError
func NewCommitNotFoundError(hash string) *CommitNotFoundError {
	return &CommitNotFoundError{Hash: hash}
}

// AmbiguousCommitError represents a hash prefix that matches several commits
type AmbiguousCommitError struct {
	Prefix  string
	Matches []string
}

func (e *AmbiguousCommitError) Error() string {
	return fmt.Sprintf("%s is ambiguous, matches %v", e.Prefix, e.Matches)
}

// Is returns true if the target error is ErrAmbiguousCommit
func (e *AmbiguousCommitError) Is(target error) bool {
	return target == ErrAmbiguousCommit
}

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
