// Package ui provides the interactive terminal view over a task store.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskeasy/internal/store"
	"taskeasy/internal/task"
)

// ErrNotTTY is returned by Run when stdout is not a terminal.
var ErrNotTTY = errors.New("tui requires a TTY")

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	headerStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

// loadMsg asks Update to hydrate the store. Loading happens inside Update
// so the store is only touched from the program's event loop.
type loadMsg struct{}

// Model is the bubbletea model for the task view.
type Model struct {
	ctx         context.Context
	st          *store.Store
	unsubscribe func()

	snap   store.Snapshot
	cursor int

	mode   mode
	input  []rune
	editID string
	err    error
}

// NewModel creates a model bound to st and subscribes to its changes.
func NewModel(ctx context.Context, st *store.Store) *Model {
	m := &Model{ctx: ctx, st: st, snap: st.Snapshot()}
	m.unsubscribe = st.Subscribe(func(snap store.Snapshot) {
		m.snap = snap
		m.clampCursor()
	})
	return m
}

// Run starts the full-screen view on stdout and blocks until the user quits.
func Run(ctx context.Context, st *store.Store, out io.Writer) error {
	if !IsTTY(out) {
		return ErrNotTTY
	}
	m := NewModel(ctx, st)
	defer m.Close()

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(out))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// Close removes the store subscription.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) Init() tea.Cmd {
	if m.st.Ready() {
		return nil
	}
	return func() tea.Msg { return loadMsg{} }
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadMsg:
		m.st.Load(m.ctx)
		m.snap = m.st.Snapshot()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Close()
			return m, tea.Quit
		}
		if m.mode != modeBrowse {
			return m, m.updateInput(msg)
		}
		return m, m.updateBrowse(msg)
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		m.Close()
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.snap.Total()-1 {
			m.cursor++
		}
	case " ", "x", "enter":
		if t, ok := m.selected(); ok {
			m.err = m.st.Toggle(m.ctx, t.ID)
		}
	case "d":
		if t, ok := m.selected(); ok {
			m.err = m.st.Remove(m.ctx, t.ID)
		}
	case "a":
		m.mode = modeAdd
		m.input = nil
		m.err = nil
	case "e":
		if t, ok := m.selected(); ok {
			m.mode = modeEdit
			m.editID = t.ID
			m.input = []rune(t.Title)
			m.err = nil
		}
	}
	return nil
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.resetInput()
	case tea.KeyEnter:
		m.submit()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	}
	return nil
}

// submit applies the input. A rejected title keeps the input open so it
// can be corrected.
func (m *Model) submit() {
	var err error
	if m.mode == modeAdd {
		_, err = m.st.Create(m.ctx, string(m.input))
		if err == nil {
			m.cursor = 0
		}
	} else {
		err = m.st.Rename(m.ctx, m.editID, string(m.input))
	}
	if err != nil {
		m.err = err
		return
	}
	m.resetInput()
}

func (m *Model) resetInput() {
	m.mode = modeBrowse
	m.input = nil
	m.editID = ""
	m.err = nil
}

// selected returns the task under the cursor. Rows are pending tasks
// followed by completed tasks.
func (m *Model) selected() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= m.snap.Total() {
		return task.Task{}, false
	}
	if m.cursor < len(m.snap.Pending) {
		return m.snap.Pending[m.cursor], true
	}
	return m.snap.Completed[m.cursor-len(m.snap.Pending)], true
}

func (m *Model) clampCursor() {
	if m.cursor >= m.snap.Total() {
		m.cursor = m.snap.Total() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	var b strings.Builder
	writeTitle(&b)

	if m.snap.State != store.Ready {
		b.WriteString("Loading...\n")
		return b.String()
	}

	if m.snap.Total() == 0 {
		b.WriteString("  No tasks yet. Press a to add one.\n\n")
	} else {
		if len(m.snap.Pending) > 0 {
			m.writeSection(&b, "Pending", m.snap.Pending, 0)
		}
		if len(m.snap.Completed) > 0 {
			m.writeSection(&b, "Completed", m.snap.Completed, len(m.snap.Pending))
		}
	}

	switch m.mode {
	case modeAdd:
		fmt.Fprintf(&b, "New task: %s_\n", string(m.input))
	case modeEdit:
		fmt.Fprintf(&b, "Edit task: %s_\n", string(m.input))
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n")
	writeFooter(&b, m.mode)
	return b.String()
}

func (m *Model) writeSection(b *strings.Builder, name string, tasks []task.Task, offset int) {
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%d)", name, len(tasks))) + "\n\n")
	for i, t := range tasks {
		b.WriteString(m.formatRow(t, offset+i) + "\n")
	}
	b.WriteString("\n")
}

func (m *Model) formatRow(t task.Task, row int) string {
	check := "[ ]"
	title := t.Title
	if t.Completed {
		check = "[x]"
		title = completedStyle.Render(title)
	}
	line := fmt.Sprintf("%s %s", check, title)
	if row == m.cursor && m.mode == modeBrowse {
		return cursorStyle.Render(">") + " " + line
	}
	return "  " + line
}

func writeTitle(b *strings.Builder) {
	title := "taskeasy"
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeFooter(b *strings.Builder, md mode) {
	if md != modeBrowse {
		b.WriteString(helpStyle.Render("enter save | esc cancel") + "\n")
		return
	}
	b.WriteString(helpStyle.Render("j/k move | x toggle | a add | e edit | d delete | q quit") + "\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
