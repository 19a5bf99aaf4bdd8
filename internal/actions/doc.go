// Package actions provides high-level business logic for CLI commands and the TUI.
//
// Each action corresponds to a gitramble command (log, note, branch create, etc.)
// and orchestrates operations across the commit store and git.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Store, Git, Splog, and other dependencies
//   - Session wraps a runtime.Context for the interactive browser, which calls it from its update loop
//   - Every branch operation refreshes the store afterwards so the current flags follow HEAD
//
// Dependencies:
//   - commits: Commit store, reconciliation and branch naming
//   - git: Low-level git operations
//   - survey: Interactive prompts for commands run without arguments
package actions
