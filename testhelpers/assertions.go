// Package testhelpers provides testing utilities for gitramble,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected branches
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	branches, err := repo.GetLocalBranches()
	require.NoError(t, err, "Failed to list branches")

	sort.Strings(branches)
	expected = append([]string(nil), expected...)
	sort.Strings(expected)

	require.Equal(t, expected, branches, "Branches do not match")
}

// ExpectCurrentBranch asserts which branch is checked out
func ExpectCurrentBranch(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	branch, err := repo.CurrentBranchName()
	require.NoError(t, err)
	require.Equal(t, expected, branch)
}

// ExpectCommitSubjects asserts the subjects reachable from HEAD, oldest first
func ExpectCommitSubjects(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	output, err := repo.RunGitCommandAndGetOutput("log", "--reverse", "--pretty=format:%s")
	require.NoError(t, err)
	require.Equal(t, expected, splitLines(output))
}
