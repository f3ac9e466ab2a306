package domain

import (
	"fmt"

	m "github.com/mouse-blink/scopegate/internal/model"
)

// BuildScript creates a Script from doc, along with a SceneViewer holding the
// viewer settings saved in doc. Parents must be listed before their children.
// Saved prune overrides are restored without touching undo history. Nodes keep
// their saved ids; nodes saved without one get a fresh id.
func BuildScript(doc m.Document) (*Script, *SceneViewer, error) {
	script := NewScript(doc.Name)

	for _, spec := range doc.Nodes {
		var parent *Node

		if spec.Parent != "" && spec.Parent != doc.Name {
			p, ok := script.Node(spec.Parent)
			if !ok {
				return nil, nil, fmt.Errorf("%w: parent %q of %q", ErrUnknownNode, spec.Parent, spec.Name)
			}

			parent = p
		}

		id := m.NewNodeID()
		if spec.ID != "" {
			parsed, err := m.ParseNodeID(spec.ID)
			if err != nil {
				return nil, nil, fmt.Errorf("node %q: %w", spec.Name, err)
			}

			id = parsed
		}

		n, err := script.addNode(id, spec.Name, spec.Kind, parent)
		if err != nil {
			return nil, nil, err
		}

		for _, location := range spec.Locations {
			n.locations = append(n.locations, m.ParsePath(location))
		}

		if len(spec.Pruned) > 0 {
			n.pruned = m.ParseSelection(spec.Pruned...)
		}
	}

	for _, spec := range doc.Nodes {
		n, _ := script.Node(spec.Name)

		for _, input := range spec.Inputs {
			src, err := script.Lookup(input)
			if err != nil {
				return nil, nil, fmt.Errorf("input of %q: %w", spec.Name, err)
			}

			if err := n.SetInput(src); err != nil {
				return nil, nil, err
			}
		}

		n.readOnly = spec.ReadOnly
	}

	viewer := NewSceneViewer(doc.Name)
	if doc.Viewer == nil {
		return script, viewer, nil
	}

	if doc.Viewer.EditScope != "" {
		scope, err := script.Lookup(doc.Viewer.EditScope)
		if err != nil {
			return nil, nil, fmt.Errorf("viewer edit scope: %w", err)
		}

		viewer.SetEditScope(scope)
	}

	if doc.Viewer.Viewed != "" {
		viewed, err := script.Lookup(doc.Viewer.Viewed)
		if err != nil {
			return nil, nil, fmt.Errorf("viewer input: %w", err)
		}

		viewer.SetViewedNode(viewed)
	}

	viewer.SetSelection(m.ParseSelection(doc.Viewer.Selection...))

	return script, viewer, nil
}

// Snapshot converts script and the viewer settings back into a Document.
// viewer may be nil.
func Snapshot(script *Script, viewer *SceneViewer) m.Document {
	doc := m.Document{
		Name:  script.Name(),
		Nodes: make([]m.NodeSpec, 0, len(script.nodes)),
	}

	for _, n := range script.nodes {
		spec := m.NodeSpec{
			ID:       string(n.id),
			Name:     n.name,
			Kind:     n.kind,
			ReadOnly: n.readOnly,
			Pruned:   n.pruned.Strings(),
		}

		if n.parent != nil && n.parent != script.root {
			spec.Parent = n.parent.name
		}

		for _, in := range n.inputs {
			spec.Inputs = append(spec.Inputs, in.name)
		}

		for _, location := range n.locations {
			spec.Locations = append(spec.Locations, location.String())
		}

		if len(spec.Pruned) == 0 {
			spec.Pruned = nil
		}

		doc.Nodes = append(doc.Nodes, spec)
	}

	if viewer == nil {
		return doc
	}

	spec := &m.ViewerSpec{Selection: viewer.Selection().Strings()}
	if scope := viewer.EditScope(); scope != nil {
		spec.EditScope = scope.Name()
	}

	if viewed := viewer.ViewedNode(); viewed != nil {
		spec.Viewed = viewed.Name()
	}

	if len(spec.Selection) == 0 {
		spec.Selection = nil
	}

	doc.Viewer = spec

	return doc
}
