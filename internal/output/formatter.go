package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LogLine is one row of the `gitramble log` listing
type LogLine struct {
	Sequence int
	Hash     string
	When     string
	Branch   string // empty when no branch exists for the commit
	Label    string // note if set, otherwise subject
	HasNote  bool
	Selected bool
	Current  bool
}

// SequenceColor returns text styled with the palette entry for sequence
func SequenceColor(text string, sequence int) string {
	if len(SequenceColors) == 0 || sequence < 0 {
		return text
	}

	color := SequenceColors[sequence%len(SequenceColors)]
	hexColor := lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", color[0], color[1], color[2]))

	return lipgloss.NewStyle().Foreground(hexColor).Render(text)
}

// FormatLogLine renders a listing row:
// sequence, hash, date, selection mark, branch and label.
func FormatLogLine(line LogLine) string {
	mark := "[ ]"
	if line.Selected {
		mark = ColorMagenta("[x]")
	}

	parts := []string{
		SequenceColor(fmt.Sprintf("%5d", line.Sequence), line.Sequence),
		ColorHash(line.Hash),
		ColorDim(line.When),
		mark,
	}
	if line.Branch != "" {
		parts = append(parts, ColorBranchName(line.Branch, false))
	}

	label := line.Label
	if line.HasNote {
		label = ColorNote(label)
	}
	if !line.Current {
		label = ColorDim(label + " (gone)")
	}
	parts = append(parts, label)

	return strings.Join(parts, " ")
}

// ColorBranchName colors a branch name based on whether it's current
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Render(branchName + " (current)")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(branchName)
}

// ColorHash colors an abbreviated commit hash
func ColorHash(hash string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(hash)
}

// ColorNote highlights user-written notes
func ColorNote(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Italic(true).
		Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}

// ColorMagenta colors text magenta
func ColorMagenta(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("5")).
		Render(text)
}
