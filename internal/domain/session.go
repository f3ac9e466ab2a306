package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/scopegate/internal/adapter"
	m "github.com/mouse-blink/scopegate/internal/model"
)

// viewerSession backs the interactive viewer with a loaded script.
type viewerSession struct {
	location m.Path
	store    adapter.DocumentStore
	script   *Script
	view     *SceneViewer
	viewer   *Viewer
	saved    uint64
	status   string
	logger   *slog.Logger
}

func newViewerSession(
	location m.Path,
	store adapter.DocumentStore,
	script *Script,
	view *SceneViewer,
	logger *slog.Logger,
) (*viewerSession, error) {
	s := &viewerSession{
		location: location,
		store:    store,
		script:   script,
		view:     view,
		viewer:   NewViewer(string(location), view),
		logger:   logger,
	}

	gate := NewEditGate(WithLogger(logger), WithNotifier(s.notice))
	AddPruningActions(s.viewer, gate)

	saved, err := adapter.Fingerprint(Snapshot(script, view))
	if err != nil {
		return nil, fmt.Errorf("fingerprint %s: %w", location, err)
	}

	s.saved = saved

	return s, nil
}

func (s *viewerSession) notice(n Notice) {
	s.status = n.Message
}

// State implements controller.ViewerSession.
func (s *viewerSession) State() m.ViewerState {
	scope := s.view.EditScope()
	viewed := s.view.ViewedNode()

	state := m.ViewerState{
		Document: s.location,
		Status:   s.status,
		CanUndo:  s.script.CanUndo(),
		CanRedo:  s.script.CanRedo(),
	}

	if scope != nil {
		state.Scope = scope.Name()
		state.ReadOnly = ReadOnly(scope)
	}

	if fingerprint, err := adapter.Fingerprint(Snapshot(s.script, s.view)); err == nil {
		state.Dirty = fingerprint != s.saved
	}

	if viewed == nil {
		return state
	}

	state.Viewed = viewed.Name()

	all := Evaluate(viewed)
	if scope != nil && IsUpstreamOrSelf(scope, viewed) {
		all = EvaluateBypassing(viewed, scope)
	}

	visible := m.NewSelection(Evaluate(viewed)...)
	selection := s.view.Selection()

	for _, p := range all {
		state.Locations = append(state.Locations, m.LocationState{
			Path:     p,
			Depth:    len(p) - 1,
			Selected: selection.Contains(p),
			Pruned:   !visible.Contains(p),
		})
	}

	return state
}

// Toggle implements controller.ViewerSession.
func (s *viewerSession) Toggle(path m.ScenePath) {
	s.view.ToggleSelected(path)
}

// Press implements controller.ViewerSession.
func (s *viewerSession) Press(event m.KeyEvent) (bool, error) {
	s.status = ""
	return s.viewer.KeyPress(event)
}

// Undo implements controller.ViewerSession.
func (s *viewerSession) Undo() error {
	s.status = ""
	return s.script.Undo()
}

// Redo implements controller.ViewerSession.
func (s *viewerSession) Redo() error {
	s.status = ""
	return s.script.Redo()
}

// Save implements controller.ViewerSession.
func (s *viewerSession) Save(ctx context.Context) error {
	doc := Snapshot(s.script, s.view)

	fingerprint, err := adapter.Fingerprint(doc)
	if err != nil {
		return err
	}

	if err := s.store.Save(ctx, s.location, doc); err != nil {
		return err
	}

	s.saved = fingerprint
	s.logger.Info("saved document", "document", s.location)

	return nil
}
