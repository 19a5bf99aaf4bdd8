// Package git provides low-level Git operations.
//
// It wraps git command execution and provides a Go-friendly interface for:
//   - Reading the current branch history (git CLI or go-git)
//   - Branch management (create at a commit, checkout, delete, list)
//   - Working tree state queries
//
// This package should be the only place where direct git commands are executed.
package git
