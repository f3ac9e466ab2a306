package domain

import (
	"fmt"
	"log/slog"

	m "github.com/mouse-blink/scopegate/internal/model"
)

// NoticeKind classifies a Notice.
type NoticeKind string

// Available NoticeKind values.
const (
	NoticeBlocked   NoticeKind = "blocked"
	NoticeEmpty     NoticeKind = "empty"
	NoticePruned    NoticeKind = "pruned"
	NoticeUnchanged NoticeKind = "unchanged"
)

// Notice describes what the gate did with a prune key.
type Notice struct {
	Kind  NoticeKind
	Scope string
	// ScopeID identifies the edit scope across renames. Empty when there is none.
	ScopeID m.NodeID
	Viewed  string
	Message string
	// Paths are the requested locations for NoticePruned and NoticeUnchanged.
	Paths []string
}

// GateOption configures an EditGate.
type GateOption func(*EditGate)

// WithLogger sets the logger used for gate decisions.
func WithLogger(logger *slog.Logger) GateOption {
	return func(g *EditGate) {
		g.logger = logger
	}
}

// WithNotifier registers a callback that receives a Notice for every prune key the gate consumes.
func WithNotifier(notify func(Notice)) GateOption {
	return func(g *EditGate) {
		g.notify = notify
	}
}

// EditGate turns Delete and Backspace presses in a scene view into prunes
// recorded in the view's edit scope.
type EditGate struct {
	logger   *slog.Logger
	notify   func(Notice)
	transact func(*Script, func() error) error
}

// NewEditGate creates an EditGate.
func NewEditGate(options ...GateOption) *EditGate {
	g := &EditGate{
		logger:   slog.New(slog.DiscardHandler),
		transact: (*Script).WithUndo,
	}
	for _, option := range options {
		option(g)
	}

	return g
}

// HandlePruneKey prunes the selection of view into its edit scope.
//
// Keys other than Delete and Backspace, and views that do not show a scene, are
// left unhandled. Once the view is a scene view the key is always consumed, even
// when the prune is refused, so it cannot fall through to node deletion.
// The write is refused when the edit scope is missing, read-only, or not the
// viewed node or upstream of it. An empty selection writes nothing.
func (g *EditGate) HandlePruneKey(view View, event m.KeyEvent) (bool, error) {
	if !event.IsPrune() {
		return false, nil
	}

	sceneView, ok := view.(SceneView)
	if !ok {
		return false, nil
	}

	editScope := sceneView.EditScope()
	if editScope == nil {
		g.blocked(nil, nil, "no edit scope selected")
		return true, nil
	}

	if ReadOnly(editScope) {
		g.blocked(editScope, nil, fmt.Sprintf("edit scope %s is read-only", editScope.Name()))
		return true, nil
	}

	viewed := sceneView.ViewedNode()
	if !IsUpstreamOrSelf(editScope, viewed) {
		g.blocked(editScope, viewed, fmt.Sprintf("edit scope %s is downstream of the viewed node", editScope.Name()))
		return true, nil
	}

	selection := sceneView.Selection()
	if selection.IsEmpty() {
		g.emit(Notice{
			Kind:    NoticeEmpty,
			Scope:   editScope.Name(),
			ScopeID: editScope.ID(),
			Viewed:  viewed.Name(),
			Message: "nothing selected",
		})

		return true, nil
	}

	script := editScope.Script()
	if script == nil {
		return true, fmt.Errorf("prune %s: %w", editScope.Name(), ErrDetached)
	}

	before := Pruned(editScope)

	err := g.transact(script, func() error {
		return SetPruned(editScope, selection, true)
	})
	if err != nil {
		return true, fmt.Errorf("prune %s: %w", editScope.Name(), err)
	}

	notice := Notice{
		Kind:    NoticePruned,
		Scope:   editScope.Name(),
		ScopeID: editScope.ID(),
		Viewed:  viewed.Name(),
		Message: fmt.Sprintf("pruned %d location(s) in %s", selection.Len(), editScope.Name()),
		Paths:   selection.Strings(),
	}

	if Pruned(editScope).Equal(before) {
		notice.Kind = NoticeUnchanged
		notice.Message = fmt.Sprintf("locations already pruned in %s", editScope.Name())
		g.logger.Debug("prune unchanged",
			"scope", editScope.Name(),
			"scope_id", editScope.ID(),
			"viewed", viewed.Name(),
		)
	} else {
		g.logger.Info("pruned locations",
			"scope", editScope.Name(),
			"scope_id", editScope.ID(),
			"viewed", viewed.Name(),
			"count", selection.Len(),
		)
	}

	g.emit(notice)

	return true, nil
}

func (g *EditGate) blocked(scope, viewed *Node, reason string) {
	notice := Notice{Kind: NoticeBlocked, Message: reason}
	if scope != nil {
		notice.Scope = scope.Name()
		notice.ScopeID = scope.ID()
	}

	if viewed != nil {
		notice.Viewed = viewed.Name()
	}

	g.logger.Debug("prune blocked",
		"scope", notice.Scope,
		"scope_id", notice.ScopeID,
		"viewed", notice.Viewed,
		"reason", reason,
	)
	g.emit(notice)
}

func (g *EditGate) emit(notice Notice) {
	if g.notify != nil {
		g.notify(notice)
	}
}
