package controller

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scopegate/internal/model"
)

// stubSession is a scripted ViewerSession. States are returned in order and the
// last one repeats.
type stubSession struct {
	states   []m.ViewerState
	handled  bool
	pressErr error
	undoErr  error
	redoErr  error
	saveErr  error

	pressed []m.KeyEvent
	toggled []m.ScenePath
	undos   int
	redos   int
	saves   int
	saveCtx context.Context
}

func newStubSession(states ...m.ViewerState) *stubSession {
	return &stubSession{states: states, handled: true}
}

func (s *stubSession) State() m.ViewerState {
	state := s.states[0]
	if len(s.states) > 1 {
		s.states = s.states[1:]
	}

	return state
}

func (s *stubSession) Toggle(path m.ScenePath) {
	s.toggled = append(s.toggled, path)
}

func (s *stubSession) Press(event m.KeyEvent) (bool, error) {
	s.pressed = append(s.pressed, event)
	return s.handled, s.pressErr
}

func (s *stubSession) Undo() error {
	s.undos++
	return s.undoErr
}

func (s *stubSession) Redo() error {
	s.redos++
	return s.redoErr
}

func (s *stubSession) Save(ctx context.Context) error {
	s.saves++
	s.saveCtx = ctx
	return s.saveErr
}

func viewerTestState() m.ViewerState {
	return m.ViewerState{
		Document: "shot.yaml",
		Scope:    "Layout",
		Viewed:   "Grade",
		Locations: []m.LocationState{
			{Path: m.ParsePath("/world"), Depth: 0},
			{Path: m.ParsePath("/world/set"), Depth: 1, Pruned: true},
			{Path: m.ParsePath("/world/chars"), Depth: 1, Selected: true},
		},
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, vm viewerModel, msg tea.Msg) (viewerModel, tea.Cmd) {
	t.Helper()

	next, cmd := vm.Update(msg)

	updated, ok := next.(viewerModel)
	require.True(t, ok)

	return updated, cmd
}

func TestViewerModel_PruneKeys(t *testing.T) {
	tests := []struct {
		name      string
		pruneKeys []string
		msg       tea.KeyMsg
		want      m.KeyEvent
	}{
		{name: "delete", msg: tea.KeyMsg{Type: tea.KeyDelete}, want: m.KeyEvent{Key: m.KeyDelete}},
		{name: "backspace", msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: m.KeyEvent{Key: m.KeyBackspace}},
		{name: "custom key maps to delete", pruneKeys: []string{"x"}, msg: runeKey("x"), want: m.KeyEvent{Key: m.KeyDelete}},
		{name: "del alias", pruneKeys: []string{"del"}, msg: tea.KeyMsg{Type: tea.KeyDelete}, want: m.KeyEvent{Key: m.KeyDelete}},
		{name: "capitalized name", pruneKeys: []string{"Backspace"}, msg: tea.KeyMsg{Type: tea.KeyBackspace}, want: m.KeyEvent{Key: m.KeyBackspace}},
		{
			name:      "alt chord carries the modifier",
			pruneKeys: []string{"Option+Del"},
			msg:       tea.KeyMsg{Type: tea.KeyDelete, Alt: true},
			want:      m.KeyEvent{Key: m.KeyDelete, Modifiers: m.ModAlt},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newStubSession(viewerTestState())

			vm := newViewerModel(context.Background(), session, tt.pruneKeys)
			vm, cmd := update(t, vm, tt.msg)

			assert.Nil(t, cmd)
			assert.False(t, vm.statusErr)
			assert.Equal(t, []m.KeyEvent{tt.want}, session.pressed)
		})
	}

	t.Run("plain binding ignores alt", func(t *testing.T) {
		session := newStubSession(viewerTestState())

		vm := newViewerModel(context.Background(), session, []string{"del"})
		_, _ = update(t, vm, tea.KeyMsg{Type: tea.KeyDelete, Alt: true})

		assert.Empty(t, session.pressed)
	})
}

func TestBindingName(t *testing.T) {
	tests := []struct {
		chord string
		name  string
		event m.KeyEvent
	}{
		{chord: "del", name: "delete", event: m.KeyEvent{Key: m.KeyDelete}},
		{chord: "BACKSPACE", name: "backspace", event: m.KeyEvent{Key: m.KeyBackspace}},
		{chord: "alt+delete", name: "alt+delete", event: m.KeyEvent{Key: m.KeyDelete, Modifiers: m.ModAlt}},
		{chord: "shift+alt+del", name: "alt+shift+delete", event: m.KeyEvent{Key: m.KeyDelete, Modifiers: m.ModAlt | m.ModShift}},
		{chord: "ctrl+h", name: "ctrl+h", event: m.KeyEvent{Key: m.KeyDelete, Modifiers: m.ModControl}},
		{chord: "X", name: "X", event: m.KeyEvent{Key: m.KeyDelete}},
		{chord: "Escape", name: "esc", event: m.KeyEvent{Key: m.KeyDelete}},
	}

	for _, tt := range tests {
		t.Run(tt.chord, func(t *testing.T) {
			name, event := bindingName(tt.chord)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.event, event)
		})
	}
}

func TestViewerModel_PressFeedback(t *testing.T) {
	t.Run("unhandled keys are reported", func(t *testing.T) {
		session := newStubSession(viewerTestState())
		session.handled = false

		vm := newViewerModel(context.Background(), session, nil)
		vm, _ = update(t, vm, tea.KeyMsg{Type: tea.KeyDelete})

		assert.Equal(t, "Delete not handled", vm.status)
		assert.True(t, vm.statusErr)
	})

	t.Run("errors are reported", func(t *testing.T) {
		session := newStubSession(viewerTestState())
		session.pressErr = errors.New("prune Layout: boom")

		vm := newViewerModel(context.Background(), session, nil)
		vm, _ = update(t, vm, tea.KeyMsg{Type: tea.KeyDelete})

		assert.Equal(t, "prune Layout: boom", vm.status)
		assert.True(t, vm.statusErr)
		assert.Contains(t, vm.View(), "prune Layout: boom")
	})

	t.Run("session status is shown", func(t *testing.T) {
		blocked := viewerTestState()
		blocked.Status = "edit scope Layout is read-only"

		session := newStubSession(viewerTestState(), blocked)

		vm := newViewerModel(context.Background(), session, nil)
		vm, _ = update(t, vm, tea.KeyMsg{Type: tea.KeyDelete})

		assert.Equal(t, "edit scope Layout is read-only", vm.status)
		assert.False(t, vm.statusErr)
	})

	t.Run("other keys do not reach the session", func(t *testing.T) {
		session := newStubSession(viewerTestState())

		vm := newViewerModel(context.Background(), session, nil)
		_, _ = update(t, vm, runeKey("z"))

		assert.Empty(t, session.pressed)
	})
}

func TestViewerModel_Toggle(t *testing.T) {
	session := newStubSession(viewerTestState())

	vm := newViewerModel(context.Background(), session, nil)
	vm, cmd := update(t, vm, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})

	assert.Nil(t, cmd)
	assert.Equal(t, []m.ScenePath{m.ParsePath("/world")}, session.toggled)
	assert.Equal(t, 0, vm.locations.Index())
}

func TestViewerModel_History(t *testing.T) {
	session := newStubSession(viewerTestState())
	session.undoErr = errors.New("nothing to undo")

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "browse")

	vm := newViewerModel(ctx, session, nil)

	vm, _ = update(t, vm, runeKey("u"))
	assert.Equal(t, "nothing to undo", vm.status)
	assert.True(t, vm.statusErr)

	vm, _ = update(t, vm, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, "redone", vm.status)
	assert.False(t, vm.statusErr)

	vm, _ = update(t, vm, runeKey("w"))
	assert.Equal(t, "saved", vm.status)

	assert.Equal(t, 1, session.undos)
	assert.Equal(t, 1, session.redos)
	assert.Equal(t, 1, session.saves)
	assert.Equal(t, ctx, session.saveCtx, "saves run under the browse context")
}

func TestViewerModel_Quit(t *testing.T) {
	vm := newViewerModel(context.Background(), newStubSession(viewerTestState()), nil)
	vm, cmd := update(t, vm, runeKey("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, vm.quitting)
	assert.Empty(t, vm.View())
}

func TestViewerModel_View(t *testing.T) {
	t.Run("renders header and locations", func(t *testing.T) {
		state := viewerTestState()
		state.Dirty = true
		state.ReadOnly = true

		vm := newViewerModel(context.Background(), newStubSession(state), nil)
		vm, _ = update(t, vm, tea.WindowSizeMsg{Width: 100, Height: 30})

		view := vm.View()
		for _, want := range []string{"shot.yaml *", "Layout", "Grade", "read-only", "[x]", "chars", "pruned"} {
			assert.Contains(t, view, want)
		}
	})

	t.Run("renders an empty scene", func(t *testing.T) {
		vm := newViewerModel(context.Background(), newStubSession(m.ViewerState{Document: "empty.yaml"}), nil)

		view := vm.View()
		assert.Contains(t, view, "nothing to show")
		assert.Contains(t, view, "none")
	})
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "", truncateToWidth("location", 0))
	assert.Equal(t, "…", truncateToWidth("location", 1))
	assert.Equal(t, "loc…", truncateToWidth("location", 4))
	assert.Equal(t, "location", truncateToWidth("location", 20))
}

func TestLocationItem_FilterValue(t *testing.T) {
	item := locationItem{state: m.LocationState{Path: m.ParsePath("/world/set")}}

	assert.Equal(t, "/world/set", item.FilterValue())
}
