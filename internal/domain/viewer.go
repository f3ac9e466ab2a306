package domain

import (
	m "github.com/mouse-blink/scopegate/internal/model"
)

// View is whatever a Viewer is currently showing.
type View interface {
	Name() string
}

// SceneView is a View that displays a scene and can attribute edits to an edit scope.
type SceneView interface {
	View
	// EditScope returns the scope edits are recorded into, or nil.
	EditScope() *Node
	// ViewedNode returns the node driving the view's input, or nil.
	ViewedNode() *Node
	// Selection returns the locations currently picked in the view.
	Selection() m.Selection
}

// SceneViewer is the SceneView used by the CLI and the interactive viewer.
type SceneViewer struct {
	name      string
	editScope *Node
	viewed    *Node
	selection m.Selection
}

// NewSceneViewer creates a SceneViewer with nothing viewed.
func NewSceneViewer(name string) *SceneViewer {
	return &SceneViewer{name: name}
}

// Name implements View.
func (v *SceneViewer) Name() string { return v.name }

// EditScope implements SceneView.
func (v *SceneViewer) EditScope() *Node { return v.editScope }

// ViewedNode implements SceneView.
func (v *SceneViewer) ViewedNode() *Node { return v.viewed }

// Selection implements SceneView.
func (v *SceneViewer) Selection() m.Selection { return v.selection }

// SetEditScope chooses the scope edits are recorded into. nil clears it.
func (v *SceneViewer) SetEditScope(scope *Node) { v.editScope = scope }

// SetViewedNode connects the view's input to n.
func (v *SceneViewer) SetViewedNode(n *Node) { v.viewed = n }

// SetSelection replaces the selection.
func (v *SceneViewer) SetSelection(sel m.Selection) { v.selection = sel }

// ToggleSelected adds p to the selection, or removes it if already selected.
func (v *SceneViewer) ToggleSelected(p m.ScenePath) {
	v.selection = v.selection.Toggle(p)
}

// KeyHandler handles a key press delivered to a view.
// It returns true when the key was consumed.
type KeyHandler func(view View, event m.KeyEvent) (bool, error)

type keySlot struct {
	id      int
	handler KeyHandler
}

// KeySignal delivers key presses to connected handlers, in connection order,
// until one of them consumes the key. Delivery is synchronous.
type KeySignal struct {
	nextID int
	slots  []keySlot
}

// Connection is returned by KeySignal.Connect.
type Connection struct {
	signal *KeySignal
	id     int
}

// Connect registers h and returns a Connection that can remove it again.
func (s *KeySignal) Connect(h KeyHandler) *Connection {
	s.nextID++
	s.slots = append(s.slots, keySlot{id: s.nextID, handler: h})

	return &Connection{signal: s, id: s.nextID}
}

// Emit delivers event to the handlers. It stops at the first handler that consumes
// the key or returns an error, and returns that handler's result.
func (s *KeySignal) Emit(view View, event m.KeyEvent) (bool, error) {
	slots := append([]keySlot(nil), s.slots...)

	for _, slot := range slots {
		handled, err := slot.handler(view, event)
		if err != nil || handled {
			return handled, err
		}
	}

	return false, nil
}

// Len returns the number of connected handlers.
func (s *KeySignal) Len() int {
	return len(s.slots)
}

// Disconnect removes the handler. Calling it twice is a no-op.
func (c *Connection) Disconnect() {
	if c == nil || c.signal == nil {
		return
	}

	slots := c.signal.slots
	for i, slot := range slots {
		if slot.id == c.id {
			c.signal.slots = append(slots[:i:i], slots[i+1:]...)
			break
		}
	}

	c.signal = nil
}

// Connected reports whether the handler is still registered.
func (c *Connection) Connected() bool {
	return c != nil && c.signal != nil
}

// Editor is any panel hosting a view.
type Editor interface {
	Name() string
}

// KeyPressSource is an Editor that publishes key presses for its current view.
type KeyPressSource interface {
	Editor
	KeyPressSignal() *KeySignal
	View() View
}

// Viewer is an Editor that displays a single View and publishes its key presses.
type Viewer struct {
	name   string
	view   View
	signal KeySignal
}

// NewViewer creates a Viewer showing view.
func NewViewer(name string, view View) *Viewer {
	return &Viewer{name: name, view: view}
}

// Name implements Editor.
func (v *Viewer) Name() string { return v.name }

// View returns the view currently shown.
func (v *Viewer) View() View { return v.view }

// SetView replaces the view currently shown.
func (v *Viewer) SetView(view View) { v.view = view }

// KeyPressSignal returns the signal key presses are published on.
func (v *Viewer) KeyPressSignal() *KeySignal { return &v.signal }

// KeyPress publishes event for the current view and reports whether it was consumed.
func (v *Viewer) KeyPress(event m.KeyEvent) (bool, error) {
	return v.signal.Emit(v.view, event)
}

// AddPruningActions connects gate to editor's key presses.
// It returns nil when editor does not publish key presses.
func AddPruningActions(editor Editor, gate *EditGate) *Connection {
	source, ok := editor.(KeyPressSource)
	if !ok {
		return nil
	}

	return source.KeyPressSignal().Connect(gate.HandlePruneKey)
}
