package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"taskeasy/internal/storage"
	"taskeasy/internal/store"
	"taskeasy/internal/testutil"
)

func newTestModel(t *testing.T, data string) (*Model, *store.Store, *testutil.FaultyBackend) {
	t.Helper()
	backend := testutil.NewFaultyBackend()
	if data != "" {
		backend.Seed(storage.DefaultKey, data)
	}
	st := store.New(storage.NewBridge(backend, "", nil))
	m := NewModel(context.Background(), st)
	t.Cleanup(m.Close)
	return m, st, backend
}

// load runs the Init command through Update.
func load(t *testing.T, m *Model) {
	t.Helper()
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	m.Update(cmd())
}

func keys(m *Model, s string) {
	for _, r := range s {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func key(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

const twoTasks = `[
  {"id": "a", "title": "Walk dog", "completed": false},
  {"id": "b", "title": "Buy milk", "completed": true}
]`

func TestModel_ShowsLoadingUntilLoaded(t *testing.T) {
	m, st, _ := newTestModel(t, twoTasks)

	if !strings.Contains(m.View(), "Loading...") {
		t.Errorf("expected loading view, got %q", m.View())
	}
	if st.Ready() {
		t.Fatal("store should not load before the program starts")
	}

	load(t, m)

	view := m.View()
	if strings.Contains(view, "Loading...") {
		t.Errorf("expected loaded view, got %q", view)
	}
	for _, want := range []string{"Pending (1)", "Completed (1)", "Walk dog", "Buy milk"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q, got %q", want, view)
		}
	}
}

func TestModel_InitOnReadyStore(t *testing.T) {
	m, st, _ := newTestModel(t, "")
	st.Load(context.Background())

	if cmd := m.Init(); cmd != nil {
		t.Error("expected no load command for a ready store")
	}
}

func TestModel_AddTask(t *testing.T) {
	m, st, backend := newTestModel(t, "")
	load(t, m)

	keys(m, "a")
	keys(m, "Buy milk")
	if !strings.Contains(m.View(), "New task: Buy milk") {
		t.Errorf("expected input in view, got %q", m.View())
	}
	key(m, tea.KeyEnter)

	pending, _ := st.Partition()
	if len(pending) != 1 || pending[0].Title != "Buy milk" {
		t.Fatalf("expected one pending task, got %+v", pending)
	}
	if m.mode != modeBrowse {
		t.Error("expected browse mode after submit")
	}
	if raw, _ := backend.Raw(storage.DefaultKey); !strings.Contains(raw, "Buy milk") {
		t.Errorf("expected task to be saved, got %q", raw)
	}
}

func TestModel_AddRejectsShortTitle(t *testing.T) {
	m, st, _ := newTestModel(t, "")
	load(t, m)

	keys(m, "ahi")
	key(m, tea.KeyEnter)

	if st.Snapshot().Total() != 0 {
		t.Error("expected no task to be created")
	}
	if m.mode != modeAdd {
		t.Error("expected input to stay open after rejection")
	}
	if !strings.Contains(m.View(), "at least 3 characters") {
		t.Errorf("expected validation message, got %q", m.View())
	}

	keys(m, "!")
	key(m, tea.KeyEnter)
	if st.Snapshot().Total() != 1 {
		t.Error("expected corrected title to be accepted")
	}
}

func TestModel_EscCancelsInput(t *testing.T) {
	m, st, _ := newTestModel(t, "")
	load(t, m)

	keys(m, "aWalk dog")
	key(m, tea.KeyEsc)

	if m.mode != modeBrowse {
		t.Error("expected browse mode after esc")
	}
	if st.Snapshot().Total() != 0 {
		t.Error("expected nothing created")
	}
}

func TestModel_Backspace(t *testing.T) {
	m, _, _ := newTestModel(t, "")
	load(t, m)

	keys(m, "aWalk dogs")
	key(m, tea.KeyBackspace)

	if string(m.input) != "Walk dog" {
		t.Errorf("expected %q, got %q", "Walk dog", string(m.input))
	}
}

func TestModel_ToggleMovesTask(t *testing.T) {
	m, st, _ := newTestModel(t, twoTasks)
	load(t, m)

	keys(m, "x")

	pending, completed := st.Partition()
	if len(pending) != 0 || len(completed) != 2 {
		t.Fatalf("expected both tasks completed, got %d pending %d completed", len(pending), len(completed))
	}
	if !strings.Contains(m.View(), "Completed (2)") {
		t.Errorf("expected view to follow the store, got %q", m.View())
	}
	if strings.Contains(m.View(), "Pending") {
		t.Errorf("expected empty pending section to be hidden, got %q", m.View())
	}
}

func TestModel_CursorAndDelete(t *testing.T) {
	m, st, _ := newTestModel(t, twoTasks)
	load(t, m)

	keys(m, "j")
	if task, ok := m.selected(); !ok || task.ID != "b" {
		t.Fatalf("expected cursor on completed task, got %+v", task)
	}
	keys(m, "j")
	if m.cursor != 1 {
		t.Errorf("expected cursor to stop at last row, got %d", m.cursor)
	}

	keys(m, "d")
	if _, ok := st.Get("b"); ok {
		t.Error("expected task b to be removed")
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", m.cursor)
	}

	keys(m, "k")
	if m.cursor != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", m.cursor)
	}
}

func TestModel_Edit(t *testing.T) {
	m, st, _ := newTestModel(t, twoTasks)
	load(t, m)

	keys(m, "e")
	if string(m.input) != "Walk dog" {
		t.Fatalf("expected input prefilled, got %q", string(m.input))
	}
	key(m, tea.KeyBackspace)
	key(m, tea.KeyBackspace)
	key(m, tea.KeyBackspace)
	keys(m, "cat")
	key(m, tea.KeyEnter)

	got, _ := st.Get("a")
	if got.Title != "Walk cat" {
		t.Errorf("expected renamed title, got %q", got.Title)
	}
}

func TestModel_EmptyStore(t *testing.T) {
	m, _, _ := newTestModel(t, "")
	load(t, m)

	if !strings.Contains(m.View(), "No tasks yet") {
		t.Errorf("expected empty message, got %q", m.View())
	}
	keys(m, "xde")
	if m.mode != modeBrowse || m.err != nil {
		t.Error("expected actions on an empty list to do nothing")
	}
}

func TestModel_Quit(t *testing.T) {
	m, st, _ := newTestModel(t, "")
	load(t, m)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}

	// Unsubscribed: later store changes no longer reach the model.
	if _, err := st.Create(context.Background(), "Walk dog"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.snap.Total() != 0 {
		t.Error("expected model to be unsubscribed after quit")
	}
}

func TestModel_QuitKeyIsTextInInputMode(t *testing.T) {
	m, _, _ := newTestModel(t, "")
	load(t, m)

	keys(m, "aq")
	if m.mode != modeAdd || string(m.input) != "q" {
		t.Errorf("expected q to be typed, got mode %d input %q", m.mode, string(m.input))
	}
	if cmd := key(m, tea.KeyCtrlC); cmd == nil {
		t.Error("expected ctrl+c to quit from input mode")
	}
}

func TestRun_RequiresTTY(t *testing.T) {
	_, st, _ := newTestModel(t, "")
	if err := Run(context.Background(), st, &bytes.Buffer{}); err != ErrNotTTY {
		t.Errorf("expected ErrNotTTY, got %v", err)
	}
}
