package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/scopegate/internal/adapter"
	"github.com/mouse-blink/scopegate/internal/controller"
	m "github.com/mouse-blink/scopegate/internal/model"
)

// maxConcurrentLoads bounds the documents List reads at once.
const maxConcurrentLoads = 8

// ListArgs are the arguments of Workflow.List.
type ListArgs struct {
	// Documents are document locations or directories holding documents.
	Documents []m.Path
}

// ViewerArgs override the viewer settings saved in a document.
// Empty fields keep the saved value.
type ViewerArgs struct {
	Scope  string
	Viewed string
}

// PruneArgs are the arguments of Workflow.Prune.
type PruneArgs struct {
	ViewerArgs
	Document m.Path
	// Paths replace the saved selection when not empty.
	Paths []string
	// Key is the key delivered to the viewer. Empty means Delete.
	Key m.Key
	// Modifiers are held while Key is pressed.
	Modifiers m.Modifier
	// Save writes the document back when a prune changed an override.
	Save bool
}

// ViewArgs are the arguments of Workflow.View.
type ViewArgs struct {
	ViewerArgs
	Document m.Path
}

// Workflow defines the scopegate use cases.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Prune(ctx context.Context, args PruneArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	store  adapter.DocumentStore
	ui     controller.UI
	logger *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(store adapter.DocumentStore, ui controller.UI, logger *slog.Logger) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		store:  store,
		ui:     ui,
		logger: logger,
	}
}

// List reads every document concurrently and displays their prune overrides.
// Rows keep the order of the resolved documents.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	documents, err := w.store.Resolve(ctx, args.Documents...)
	if err != nil {
		return err
	}

	perDocument := make([][]m.OverrideRow, len(documents))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentLoads)

	for i, location := range documents {
		group.Go(func() error {
			script, _, err := w.load(groupCtx, location)
			if err != nil {
				return err
			}

			perDocument[i] = overrideRows(location, script)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	var rows []m.OverrideRow
	for _, documentRows := range perDocument {
		rows = append(rows, documentRows...)
	}

	return w.ui.DisplayOverrides(rows)
}

// Prune delivers a single key to a headless viewer on the document and reports what the gate did.
func (w *workflow) Prune(ctx context.Context, args PruneArgs) error {
	doc, err := w.store.Load(ctx, args.Document)
	if err != nil {
		return err
	}

	script, view, err := BuildScript(doc)
	if err != nil {
		return fmt.Errorf("build %s: %w", args.Document, err)
	}

	if err := applyViewerArgs(script, view, args.ViewerArgs); err != nil {
		return err
	}

	if len(args.Paths) > 0 {
		view.SetSelection(m.ParseSelection(args.Paths...))
	}

	event := m.KeyEvent{Key: args.Key, Modifiers: args.Modifiers}
	if event.Key == "" {
		event.Key = m.KeyDelete
	}

	result := m.PruneResult{
		Document:  args.Document,
		Key:       event.Key,
		Requested: view.Selection().Strings(),
	}

	gate := NewEditGate(WithLogger(w.logger), WithNotifier(func(n Notice) {
		result.Applied = n.Kind == NoticePruned
	}))

	viewer := NewViewer(string(args.Document), view)
	AddPruningActions(viewer, gate)

	handled, err := viewer.KeyPress(event)
	if err != nil {
		return err
	}

	result.Handled = handled

	if scope := view.EditScope(); scope != nil {
		result.Scope = scope.Name()
		result.Pruned = Pruned(scope).Strings()
	}

	if viewed := view.ViewedNode(); viewed != nil {
		result.Viewed = viewed.Name()
	}

	switch {
	case args.Save && result.Applied:
		if err := w.save(ctx, args.Document, doc, script); err != nil {
			return err
		}

		result.Saved = true
	case args.Save:
		w.logger.Debug("document unchanged, skipping save", "document", args.Document)
	}

	return w.ui.DisplayPruneResult(result)
}

// save writes script back to location, keeping the viewer settings of the loaded document.
func (w *workflow) save(ctx context.Context, location m.Path, loaded m.Document, script *Script) error {
	doc := Snapshot(script, nil)
	doc.Viewer = loaded.Viewer

	if err := w.store.Save(ctx, location, doc); err != nil {
		return err
	}

	w.logger.Info("saved document", "document", location)

	return nil
}

// View opens the interactive viewer on a document.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	script, view, err := w.load(ctx, args.Document)
	if err != nil {
		return err
	}

	if err := applyViewerArgs(script, view, args.ViewerArgs); err != nil {
		return err
	}

	session, err := newViewerSession(args.Document, w.store, script, view, w.logger)
	if err != nil {
		return err
	}

	return w.ui.Browse(ctx, session)
}

func (w *workflow) load(ctx context.Context, location m.Path) (*Script, *SceneViewer, error) {
	doc, err := w.store.Load(ctx, location)
	if err != nil {
		return nil, nil, err
	}

	script, view, err := BuildScript(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("build %s: %w", location, err)
	}

	w.logger.Debug("loaded document", "document", location, "nodes", len(script.nodes))

	return script, view, nil
}

func applyViewerArgs(script *Script, view *SceneViewer, args ViewerArgs) error {
	if args.Scope != "" {
		scope, err := script.Lookup(args.Scope)
		if err != nil {
			return fmt.Errorf("edit scope: %w", err)
		}

		view.SetEditScope(scope)
	}

	if args.Viewed != "" {
		viewed, err := script.Lookup(args.Viewed)
		if err != nil {
			return fmt.Errorf("viewed node: %w", err)
		}

		view.SetViewedNode(viewed)
	}

	return nil
}

func overrideRows(location m.Path, script *Script) []m.OverrideRow {
	var rows []m.OverrideRow

	for _, override := range PruneOverrides(script) {
		readOnly := ReadOnly(override.Scope)

		for _, path := range override.Paths.Strings() {
			rows = append(rows, m.OverrideRow{
				Document: location,
				Scope:    override.Scope.Name(),
				Path:     path,
				ReadOnly: readOnly,
			})
		}
	}

	return rows
}

