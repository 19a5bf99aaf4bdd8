package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"gitramble.dev/gitramble/internal/commits"
	ramblerrors "gitramble.dev/gitramble/internal/errors"
)

// Backend is what the browser needs from a repository session
type Backend interface {
	Current() []commits.Record
	SetSelected(hash string, selected bool) error
	SetNote(hash, note string)
	SavePendingChanges() error
	Refresh(ctx context.Context) (commits.ReconcileSummary, error)
	CreateBranch(ctx context.Context, hash string, force bool) (string, error)
	AnnotatedBranches(ctx context.Context, all bool) ([]string, error)
	CheckoutBranch(ctx context.Context, annotated string, force bool) (string, error)
	DeleteBranch(ctx context.Context, annotated string) (string, error)
	OpenCommit(hash string) (string, error)
}

// refreshMsg asks the browser to re-read the log, sent by the repository watcher
type refreshMsg struct{}

type browseMode int

const (
	modeList browseMode = iota
	modeNote
	modePicker
)

// chromeLines is the number of lines around the commit list: title, blank,
// blank, status and help
const chromeLines = 5

// browseModel is the bubbletea model for the commit browser
type browseModel struct {
	backend Backend
	title   string
	rows    []commits.Record
	cursor  int
	offset  int
	height  int
	width   int

	mode     browseMode
	note     textinput.Model
	noteHash string
	picker   pickerModel

	pendingRefresh bool // a refresh arrived while a note was being edited

	status    string
	statusErr bool
	err       error // returned from RunBrowse after quitting

	keys     browseKeyMap
	noteKeys noteKeyMap
	help     help.Model
	styles   browseStyles
	quitting bool
}

func newBrowseModel(backend Backend, title string) browseModel {
	note := textinput.New()
	note.Prompt = ""
	note.Placeholder = "note"
	note.CharLimit = 0

	m := browseModel{
		backend:  backend,
		title:    title,
		note:     note,
		keys:     defaultBrowseKeys,
		noteKeys: defaultNoteKeys,
		help:     help.New(),
		styles:   newBrowseStyles(),
	}
	m.reload()
	return m
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

// reload re-reads the rows, keeping the cursor on the same commit when it is still current
func (m *browseModel) reload() {
	var keep string
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		keep = m.rows[m.cursor].AbbrevHash
	}

	m.rows = m.backend.Current()

	m.cursor = min(m.cursor, len(m.rows)-1)
	for i, rec := range m.rows {
		if rec.AbbrevHash == keep {
			m.cursor = i
			break
		}
	}
	m.cursor = max(m.cursor, 0)
	m.scroll()
}

func (m *browseModel) scroll() {
	visible := m.visibleRows()
	if visible <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	m.offset = max(0, min(m.offset, len(m.rows)-visible))
}

func (m browseModel) visibleRows() int {
	if m.height == 0 {
		return len(m.rows)
	}
	return max(1, m.height-chromeLines)
}

func (m browseModel) selected() (commits.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return commits.Record{}, false
	}
	return m.rows[m.cursor], true
}

func (m *browseModel) setStatus(format string, args ...interface{}) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *browseModel) setError(err error) {
	m.status = describeError(err)
	m.statusErr = true
}

func describeError(err error) string {
	switch {
	case errors.Is(err, ramblerrors.ErrDirtyWorktree):
		return "Working tree has uncommitted changes; commit or stash them first."
	case errors.Is(err, ramblerrors.ErrNoRepoURL):
		return "No repository URL configured; run `gitramble config set repo-url <url>`."
	default:
		return firstErrorLine(err)
	}
}

// firstErrorLine keeps git's stderr from flooding the status line
func firstErrorLine(err error) string {
	msg := err.Error()
	if idx := strings.IndexByte(msg, '\n'); idx >= 0 {
		msg = msg[:idx]
	}
	return msg
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		m.help.Width = msg.Width
		m.note.Width = max(10, msg.Width-40)
		m.scroll()
		return m, nil

	case refreshMsg:
		if m.mode == modeNote {
			// Refreshing mid-edit would move rows under the editor
			m.pendingRefresh = true
			return m, nil
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeNote:
			return m.updateNote(msg)
		case modePicker:
			return m.updatePicker(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.mode == modeNote {
		var cmd tea.Cmd
		m.note, cmd = m.note.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(0, len(m.rows)-1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Refresh):
		m.refresh()

	case key.Matches(msg, m.keys.Toggle):
		rec, ok := m.selected()
		if !ok {
			break
		}
		if err := m.backend.SetSelected(rec.AbbrevHash, !rec.Selected); err != nil {
			m.setError(err)
		}
		m.reload()

	case key.Matches(msg, m.keys.Note):
		rec, ok := m.selected()
		if !ok {
			break
		}
		m.mode = modeNote
		m.noteHash = rec.AbbrevHash
		m.note.SetValue(rec.Note)
		m.note.CursorEnd()
		return m, m.note.Focus()

	case key.Matches(msg, m.keys.Create):
		rec, ok := m.selected()
		if !ok {
			break
		}
		name, err := m.backend.CreateBranch(ctx, rec.AbbrevHash, false)
		if err != nil {
			m.setError(err)
		} else {
			m.setStatus("Created and checked out %s", name)
		}
		m.reload()

	case key.Matches(msg, m.keys.Checkout):
		m.openPicker("Checkout a branch", pickCheckout)
	case key.Matches(msg, m.keys.Delete):
		m.openPicker("Delete a branch", pickDelete)

	case key.Matches(msg, m.keys.Open):
		rec, ok := m.selected()
		if !ok {
			break
		}
		url, err := m.backend.OpenCommit(rec.AbbrevHash)
		if err != nil {
			m.setError(err)
		} else {
			m.setStatus("Opened %s", url)
		}
	}

	m.scroll()
	return m, nil
}

func (m browseModel) updateNote(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.noteKeys.Quit):
		m.finishNote()
		return m.quit()
	case key.Matches(msg, m.noteKeys.Done):
		if m.finishNote() && m.pendingRefresh {
			m.pendingRefresh = false
			m.refresh()
		}
		return m, nil
	}

	before := m.note.Value()
	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	if after := m.note.Value(); after != before {
		m.backend.SetNote(m.noteHash, after)
		m.reload()
	}
	return m, cmd
}

// finishNote leaves note editing and saves, reporting whether the save succeeded
func (m *browseModel) finishNote() bool {
	m.mode = modeList
	m.note.Blur()
	if err := m.backend.SavePendingChanges(); err != nil {
		m.setError(err)
		return false
	}
	m.reload()
	return true
}

func (m *browseModel) openPicker(title string, action pickerAction) {
	entries, err := m.backend.AnnotatedBranches(context.Background(), false)
	if err != nil {
		m.setError(err)
		return
	}
	if len(entries) == 0 {
		m.setStatus("No gitramble branches yet; press c to create one")
		return
	}
	m.picker = newPickerModel(title, entries, action)
	m.mode = modePicker
}

func (m browseModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var result pickerResult
	m.picker, result = m.picker.handleKey(msg)

	switch result {
	case pickerCanceled:
		m.mode = modeList
	case pickerChosen:
		m.mode = modeList
		ctx := context.Background()
		entry := m.picker.chosen()
		switch m.picker.action {
		case pickCheckout:
			if name, err := m.backend.CheckoutBranch(ctx, entry, false); err != nil {
				m.setError(err)
			} else {
				m.setStatus("Checked out %s", name)
			}
		case pickDelete:
			if name, err := m.backend.DeleteBranch(ctx, entry); err != nil {
				m.setError(err)
			} else {
				m.setStatus("Deleted %s", name)
			}
		}
		m.reload()
	}
	return m, nil
}

func (m *browseModel) refresh() {
	summary, err := m.backend.Refresh(context.Background())
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus("%d commits, %d new", summary.Current, summary.Added)
	m.reload()
}

func (m browseModel) quit() (tea.Model, tea.Cmd) {
	if err := m.backend.SavePendingChanges(); err != nil {
		m.err = err
	}
	m.quitting = true
	return m, tea.Quit
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.title))
	b.WriteString("\n\n")

	if m.mode == modePicker {
		b.WriteString(m.picker.view(m.styles, m.help))
		b.WriteString("\n")
		return b.String()
	}

	if len(m.rows) == 0 {
		b.WriteString(m.styles.dim.Render("No commits on this branch yet."))
		b.WriteString("\n")
	}

	end := min(len(m.rows), m.offset+m.visibleRows())
	for i := m.offset; i < end; i++ {
		row := m.renderRow(i)
		if m.width > 0 {
			row = ansi.Truncate(row, m.width, "…")
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(m.styles.errorMsg.Render(m.status))
		} else {
			b.WriteString(m.styles.status.Render(m.status))
		}
	}
	b.WriteString("\n")

	if m.mode == modeNote {
		b.WriteString(m.help.ShortHelpView([]key.Binding{m.noteKeys.Done, m.noteKeys.Quit}))
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	b.WriteString("\n")
	return b.String()
}

func (m browseModel) renderRow(i int) string {
	rec := m.rows[i]

	cursor := "  "
	if i == m.cursor {
		cursor = m.styles.cursor.Render("▸ ")
	}

	mark := "[ ]"
	if rec.Selected {
		mark = m.styles.selected.Render("[x]")
	}

	var label string
	switch {
	case m.mode == modeNote && rec.AbbrevHash == m.noteHash:
		label = m.note.View()
	case strings.TrimSpace(rec.Note) != "":
		label = m.styles.note.Render(rec.Label())
	default:
		label = rec.Label()
	}

	return fmt.Sprintf("%s%s %s %s %s %s",
		cursor,
		mark,
		m.styles.dim.Render(rec.When()),
		m.styles.hash.Render(rec.AbbrevHash),
		m.styles.dim.Render(fmt.Sprintf("%5d", rec.Sequence)),
		label,
	)
}
