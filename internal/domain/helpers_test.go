package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scopegate/internal/model"
)

// testGraph is Scene -> Layout -> Grade -> Lighting, plus a read-only box
// holding the Approved edit scope fed by Grade.
type testGraph struct {
	script   *Script
	scene    *Node
	layout   *Node
	grade    *Node
	lighting *Node
	publish  *Node
	approved *Node
}

func newTestGraph(t *testing.T) testGraph {
	t.Helper()

	script := NewScript("shot")
	g := testGraph{script: script}

	add := func(name string, kind m.NodeKind, parent *Node, inputs ...*Node) *Node {
		n, err := script.AddNode(name, kind, parent)
		require.NoError(t, err)

		for _, in := range inputs {
			require.NoError(t, n.SetInput(in))
		}

		return n
	}

	g.scene = add("Scene", m.KindSource, nil)
	g.scene.SetLocations(m.ParsePath("/world/set/tree"), m.ParsePath("/world/set/rock"), m.ParsePath("/world/chars/hero"))
	g.layout = add("Layout", m.KindEditScope, nil, g.scene)
	g.grade = add("Grade", m.KindProcessor, nil, g.layout)
	g.lighting = add("Lighting", m.KindEditScope, nil, g.grade)
	g.publish = add("Publish", m.KindBox, nil)
	g.approved = add("Approved", m.KindEditScope, g.publish, g.grade)
	g.publish.SetReadOnly(true)

	return g
}

func pathStrings(paths []m.ScenePath) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, p.String())
	}

	return out
}
