package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type pickerAction int

const (
	pickCheckout pickerAction = iota
	pickDelete
)

type pickerResult int

const (
	pickerPending pickerResult = iota
	pickerChosen
	pickerCanceled
)

// pickerModel is a modal list of annotated branch entries
type pickerModel struct {
	title   string
	entries []string
	cursor  int
	action  pickerAction
	keys    pickerKeyMap
}

// newPickerModel starts with the cursor on the checked out branch, if listed
func newPickerModel(title string, entries []string, action pickerAction) pickerModel {
	p := pickerModel{
		title:   title,
		entries: entries,
		action:  action,
		keys:    defaultPickerKeys,
	}
	for i, entry := range entries {
		if strings.HasPrefix(entry, "* ") {
			p.cursor = i
			break
		}
	}
	return p
}

func (p pickerModel) handleKey(msg tea.KeyMsg) (pickerModel, pickerResult) {
	switch {
	case key.Matches(msg, p.keys.Cancel):
		return p, pickerCanceled
	case key.Matches(msg, p.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, p.keys.Down):
		if p.cursor < len(p.entries)-1 {
			p.cursor++
		}
	case key.Matches(msg, p.keys.Confirm):
		if len(p.entries) > 0 {
			return p, pickerChosen
		}
	}
	return p, pickerPending
}

// chosen returns the entry under the cursor, annotation included
func (p pickerModel) chosen() string {
	if p.cursor < 0 || p.cursor >= len(p.entries) {
		return ""
	}
	return p.entries[p.cursor]
}

func (p pickerModel) view(styles browseStyles, h help.Model) string {
	var b strings.Builder
	b.WriteString(styles.title.Render(p.title))
	b.WriteString("\n\n")
	for i, entry := range p.entries {
		if i == p.cursor {
			b.WriteString(styles.cursor.Render("▸ "))
			b.WriteString(styles.selected.Render(entry))
		} else {
			b.WriteString("  ")
			b.WriteString(entry)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(h.View(p.keys))
	return styles.modal.Render(b.String())
}
