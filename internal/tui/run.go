package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gitramble.dev/gitramble/internal/output"
)

// BrowseOptions configures RunBrowse
type BrowseOptions struct {
	Title    string
	RepoRoot string
	Watch    bool // refresh when the repository changes on disk
	Splog    *output.Splog
}

// RunBrowse runs the commit browser until the user quits. Console logging is
// silenced while the browser owns the terminal.
func RunBrowse(session Backend, opts BrowseOptions) error {
	splog := opts.Splog
	if splog == nil {
		splog = output.NewSplog()
	}
	title := opts.Title
	if title == "" {
		title = "gitramble"
	}

	wasQuiet := splog.IsQuiet()
	splog.SetQuiet(true)
	defer splog.SetQuiet(wasQuiet)

	p := tea.NewProgram(newBrowseModel(session, title),
		tea.WithInput(os.Stdin),
		tea.WithOutput(os.Stdout),
		tea.WithAltScreen(),
	)

	if opts.Watch {
		w, err := startRepoWatcher(opts.RepoRoot, splog, func() { p.Send(refreshMsg{}) })
		if err != nil {
			splog.Warn("Auto refresh disabled: %v", err)
		} else {
			defer func() { _ = w.Close() }()
		}
	}

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}

	if res, ok := finalModel.(browseModel); ok && res.err != nil {
		return res.err
	}
	return nil
}
