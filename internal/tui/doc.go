// Package tui provides the interactive commit browser.
//
// It handles:
//   - Listing the current commits with their selection and notes (bubbletea)
//   - Editing notes inline and picking branches from a modal list (bubbles)
//   - Terminal styling (lipgloss)
//   - Refreshing when the repository changes on disk (fsnotify)
//
// All store and git work happens inside the bubbletea update loop.
package tui
