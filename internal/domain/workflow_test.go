package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/scopegate/internal/adapter"
	adaptermocks "github.com/mouse-blink/scopegate/internal/adapter/mocks"
	"github.com/mouse-blink/scopegate/internal/controller"
	controllermocks "github.com/mouse-blink/scopegate/internal/controller/mocks"
	m "github.com/mouse-blink/scopegate/internal/model"
)

func TestWorkflow_List(t *testing.T) {
	t.Run("displays overrides of every document in order", func(t *testing.T) {
		store := adaptermocks.NewMockDocumentStore(t)
		ui := controllermocks.NewMockUI(t)

		locked := testDocument()
		locked.Nodes[4].Pruned = []string{"/world/chars"}

		store.EXPECT().Resolve(mock.Anything, m.Path("scenes")).Return([]m.Path{"scenes/a.yaml", "scenes/b.yaml"}, nil)
		store.EXPECT().Load(mock.Anything, m.Path("scenes/a.yaml")).Return(testDocument(), nil)
		store.EXPECT().Load(mock.Anything, m.Path("scenes/b.yaml")).Return(locked, nil)
		ui.EXPECT().DisplayOverrides([]m.OverrideRow{
			{Document: "scenes/a.yaml", Scope: "Layout", Path: "/world/set"},
			{Document: "scenes/b.yaml", Scope: "Layout", Path: "/world/set"},
			{Document: "scenes/b.yaml", Scope: "Approved", Path: "/world/chars", ReadOnly: true},
		}).Return(nil)

		wf := NewWorkflow(store, ui, nil)

		err := wf.List(context.Background(), ListArgs{Documents: []m.Path{"scenes"}})
		require.NoError(t, err)
	})

	t.Run("fails when a location cannot be resolved", func(t *testing.T) {
		store := adaptermocks.NewMockDocumentStore(t)
		ui := controllermocks.NewMockUI(t)

		boom := errors.New("no such directory")
		store.EXPECT().Resolve(mock.Anything, m.Path("missing")).Return(nil, boom)

		wf := NewWorkflow(store, ui, nil)

		err := wf.List(context.Background(), ListArgs{Documents: []m.Path{"missing"}})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("fails when a document is broken", func(t *testing.T) {
		store := adaptermocks.NewMockDocumentStore(t)
		ui := controllermocks.NewMockUI(t)

		broken := testDocument()
		broken.Nodes[2].Inputs = []string{"Nowhere"}

		store.EXPECT().Resolve(mock.Anything, m.Path("a.yaml")).Return([]m.Path{"a.yaml"}, nil)
		store.EXPECT().Load(mock.Anything, m.Path("a.yaml")).Return(broken, nil)

		wf := NewWorkflow(store, ui, nil)

		err := wf.List(context.Background(), ListArgs{Documents: []m.Path{"a.yaml"}})
		assert.ErrorIs(t, err, ErrUnknownNode)
		assert.Contains(t, err.Error(), "build a.yaml")
	})
}

func TestWorkflow_Prune(t *testing.T) {
	t.Run("prunes the selection and saves the document", func(t *testing.T) {
		store := adaptermocks.NewMockDocumentStore(t)
		ui := controllermocks.NewMockUI(t)

		doc := testDocument()
		expected := testDocument()
		expected.Nodes[1].Pruned = []string{"/world/chars", "/world/set"}

		store.EXPECT().Load(mock.Anything, m.Path("shot.yaml")).Return(doc, nil)
		store.EXPECT().Save(mock.Anything, m.Path("shot.yaml"), expected).Return(nil)
		ui.EXPECT().DisplayPruneResult(m.PruneResult{
			Document:  "shot.yaml",
			Key:       m.KeyDelete,
			Handled:   true,
			Applied:   true,
			Scope:     "Layout",
			Viewed:    "Grade",
			Requested: []string{"/world/chars"},
			Pruned:    []string{"/world/chars", "/world/set"},
			Saved:     true,
		}).Return(nil)

		wf := NewWorkflow(store, ui, nil)

		err := wf.Prune(context.Background(), PruneArgs{
			Document: "shot.yaml",
			Paths:    []string{"/world/chars"},
			Save:     true,
		})
		require.NoError(t, err)
	})

	t.Run("blocked prunes are handled but not saved", func(t *testing.T) {
		store := adaptermocks.NewMockDocumentStore(t)
		ui := controllermocks.NewMockUI(t)

		store.EXPECT().Load(mock.Anything, m.Path("shot.yaml")).Return(testDocument(), nil)
		ui.EXPECT().DisplayPruneResult(mock.Anything).Run(func(result m.PruneResult) {
			assert.True(t, result.Handled)
			assert.False(t, result.Applied)
			assert.False(t, result.Saved)
			assert.Equal(t, "Approved", result.Scope)
			assert.Empty(t, result.Pruned)
			assert.Equal(t, m.KeyBackspace, result.Key)
		}).Return(nil)

		wf := NewWorkflow(store, ui, nil)

		err := wf.Prune(context.Background(), PruneArgs{
			ViewerArgs: ViewerArgs{Scope: "Approved"},
			Document:   "shot.yaml",
			Key:        m.KeyBackspace,
			Save:       true,
		})
		require.NoError(t, err)
	})

	t.Run("other keys are not handled", func(t *testing.T) {
		store := adaptermocks.NewMockDocumentStore(t)
		ui := controllermocks.NewMockUI(t)

		store.EXPECT().Load(mock.Anything, m.Path("shot.yaml")).Return(testDocument(), nil)
		ui.EXPECT().DisplayPruneResult(mock.Anything).Run(func(result m.PruneResult) {
			assert.False(t, result.Handled)
			assert.False(t, result.Applied)
			assert.Equal(t, []string{"/world/set"}, result.Pruned)
		}).Return(nil)

		wf := NewWorkflow(store, ui, nil)

		err := wf.Prune(context.Background(), PruneArgs{Document: "shot.yaml", Key: "x", Save: true})
		require.NoError(t, err)
	})

	t.Run("does not save without being asked", func(t *testing.T) {
		store := adaptermocks.NewMockDocumentStore(t)
		ui := controllermocks.NewMockUI(t)

		store.EXPECT().Load(mock.Anything, m.Path("shot.yaml")).Return(testDocument(), nil)
		ui.EXPECT().DisplayPruneResult(mock.Anything).Run(func(result m.PruneResult) {
			assert.True(t, result.Applied)
			assert.False(t, result.Saved)
			assert.Equal(t, []string{"/world/chars/hero", "/world/set"}, result.Pruned)
		}).Return(nil)

		wf := NewWorkflow(store, ui, nil)

		err := wf.Prune(context.Background(), PruneArgs{Document: "shot.yaml"})
		require.NoError(t, err)
	})

	t.Run("skips saving when nothing changed", func(t *testing.T) {
		store := adaptermocks.NewMockDocumentStore(t)
		ui := controllermocks.NewMockUI(t)

		store.EXPECT().Load(mock.Anything, m.Path("shot.yaml")).Return(testDocument(), nil)
		ui.EXPECT().DisplayPruneResult(mock.Anything).Run(func(result m.PruneResult) {
			assert.True(t, result.Handled)
			assert.False(t, result.Applied, "re-pruning a pruned location changes nothing")
			assert.False(t, result.Saved)
			assert.Equal(t, []string{"/world/set"}, result.Pruned)
		}).Return(nil)

		wf := NewWorkflow(store, ui, nil)

		err := wf.Prune(context.Background(), PruneArgs{
			Document: "shot.yaml",
			Paths:    []string{"/world/set"},
			Save:     true,
		})
		require.NoError(t, err)
	})

	t.Run("delivers held modifiers to the viewer", func(t *testing.T) {
		store := adaptermocks.NewMockDocumentStore(t)
		ui := controllermocks.NewMockUI(t)

		store.EXPECT().Load(mock.Anything, m.Path("shot.yaml")).Return(testDocument(), nil)
		ui.EXPECT().DisplayPruneResult(mock.Anything).Run(func(result m.PruneResult) {
			assert.True(t, result.Handled)
			assert.True(t, result.Applied)
			assert.Equal(t, m.KeyBackspace, result.Key)
		}).Return(nil)

		wf := NewWorkflow(store, ui, nil)

		err := wf.Prune(context.Background(), PruneArgs{
			Document:  "shot.yaml",
			Key:       m.KeyBackspace,
			Modifiers: m.ModControl | m.ModShift,
		})
		require.NoError(t, err)
	})

	t.Run("rejects unknown viewer nodes", func(t *testing.T) {
		store := adaptermocks.NewMockDocumentStore(t)
		ui := controllermocks.NewMockUI(t)

		store.EXPECT().Load(mock.Anything, m.Path("shot.yaml")).Return(testDocument(), nil)

		wf := NewWorkflow(store, ui, nil)

		err := wf.Prune(context.Background(), PruneArgs{
			ViewerArgs: ViewerArgs{Viewed: "Missing"},
			Document:   "shot.yaml",
		})
		assert.ErrorIs(t, err, ErrUnknownNode)
	})

	t.Run("reports save failures", func(t *testing.T) {
		store := adaptermocks.NewMockDocumentStore(t)
		ui := controllermocks.NewMockUI(t)

		boom := errors.New("disk full")
		store.EXPECT().Load(mock.Anything, m.Path("shot.yaml")).Return(testDocument(), nil)
		store.EXPECT().Save(mock.Anything, m.Path("shot.yaml"), mock.Anything).Return(boom)

		wf := NewWorkflow(store, ui, nil)

		err := wf.Prune(context.Background(), PruneArgs{Document: "shot.yaml", Save: true})
		assert.ErrorIs(t, err, boom)
	})
}

func TestWorkflow_View(t *testing.T) {
	t.Run("browses a session on the document", func(t *testing.T) {
		store := adaptermocks.NewMockDocumentStore(t)
		ui := controllermocks.NewMockUI(t)

		store.EXPECT().Load(mock.Anything, m.Path("shot.yaml")).Return(testDocument(), nil)
		ui.EXPECT().Browse(mock.Anything, mock.Anything).Run(func(_ context.Context, session controller.ViewerSession) {
			state := session.State()
			assert.Equal(t, m.Path("shot.yaml"), state.Document)
			assert.Equal(t, "Layout", state.Scope)
			assert.Equal(t, "Scene", state.Viewed)
			assert.False(t, state.Dirty)
		}).Return(nil)

		wf := NewWorkflow(store, ui, nil)

		err := wf.View(context.Background(), ViewArgs{
			ViewerArgs: ViewerArgs{Viewed: "Scene"},
			Document:   "shot.yaml",
		})
		require.NoError(t, err)
	})

	t.Run("passes load errors through", func(t *testing.T) {
		store := adaptermocks.NewMockDocumentStore(t)
		ui := controllermocks.NewMockUI(t)

		boom := errors.New("unreadable")
		store.EXPECT().Load(mock.Anything, m.Path("shot.yaml")).Return(m.Document{}, boom)

		wf := NewWorkflow(store, ui, nil)

		err := wf.View(context.Background(), ViewArgs{Document: "shot.yaml"})
		assert.ErrorIs(t, err, boom)
	})
}

func TestWorkflow_PruneExampleScene(t *testing.T) {
	data, err := os.ReadFile("../../examples/scenes/shot010.yaml")
	require.NoError(t, err)

	location := m.Path(filepath.Join(t.TempDir(), "shot010.yaml"))
	require.NoError(t, os.WriteFile(string(location), data, 0o644))

	store := adapter.NewLocalDocumentStore()
	ui := controllermocks.NewMockUI(t)
	ui.EXPECT().DisplayPruneResult(mock.Anything).Run(func(result m.PruneResult) {
		assert.True(t, result.Applied)
		assert.True(t, result.Saved)
		assert.Equal(t, []string{"/world/chars/sidekick"}, result.Requested)
	}).Return(nil)

	wf := NewWorkflow(store, ui, nil)
	require.NoError(t, wf.Prune(context.Background(), PruneArgs{Document: location, Save: true}))

	doc, err := store.Load(context.Background(), location)
	require.NoError(t, err)

	script, view, err := BuildScript(doc)
	require.NoError(t, err)

	layout, err := script.Lookup("Layout")
	require.NoError(t, err)
	assert.Equal(t, []string{"/world/chars/sidekick", "/world/set/rock"}, Pruned(layout).Strings())
	assert.Equal(t, []string{"/world/chars/sidekick"}, view.Selection().Strings(), "viewer settings are kept")
}
