package domain

import (
	"fmt"

	m "github.com/mouse-blink/scopegate/internal/model"
)

// Node is a single node in a Script's graph.
type Node struct {
	id       m.NodeID
	name     string
	kind     m.NodeKind
	script   *Script
	parent   *Node
	children []*Node
	inputs   []*Node
	readOnly bool

	locations []m.ScenePath
	pruned    m.Selection
}

// ID returns the node identity.
func (n *Node) ID() m.NodeID { return n.id }

// Name returns the node name, unique within its script.
func (n *Node) Name() string { return n.name }

// Kind returns the node kind.
func (n *Node) Kind() m.NodeKind { return n.kind }

// Parent returns the enclosing node, or nil for the script root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the nodes directly enclosed by n.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// Inputs returns the upstream connections of n in connection order.
func (n *Node) Inputs() []*Node {
	return append([]*Node(nil), n.inputs...)
}

// Ancestor returns the nearest strict ancestor of the given kind, or nil.
func (n *Node) Ancestor(kind m.NodeKind) *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.kind == kind {
			return p
		}
	}

	return nil
}

// Script returns the script that contains n.
// It returns nil for nodes that have no script ancestor.
func (n *Node) Script() *Script {
	root := n
	if n.kind != m.KindScript {
		root = n.Ancestor(m.KindScript)
	}

	if root == nil {
		return nil
	}

	return root.script
}

// SetReadOnly flags n as read-only. The flag also applies to everything n encloses.
func (n *Node) SetReadOnly(readOnly bool) {
	n.readOnly = readOnly
}

// ReadOnlyFlag returns the flag set on n itself, ignoring ancestors.
func (n *Node) ReadOnlyFlag() bool {
	return n.readOnly
}

// SetLocations replaces the locations emitted by a source node.
func (n *Node) SetLocations(paths ...m.ScenePath) {
	n.locations = append([]m.ScenePath(nil), paths...)
}

// Locations returns the locations emitted by a source node.
func (n *Node) Locations() []m.ScenePath {
	return append([]m.ScenePath(nil), n.locations...)
}

// SetInput connects src as an upstream input of n.
// Connecting the same input twice is a no-op.
func (n *Node) SetInput(src *Node) error {
	if src == nil {
		return fmt.Errorf("%w: nil input for %s", ErrUnknownNode, n.name)
	}

	if src.script != n.script {
		return fmt.Errorf("%w: %s -> %s", ErrForeignNode, src.name, n.name)
	}

	if src == n || containsNode(UpstreamNodes(src), n) {
		return fmt.Errorf("%w: %s -> %s", ErrCycle, src.name, n.name)
	}

	if containsNode(n.inputs, src) {
		return nil
	}

	n.inputs = append(n.inputs, src)

	return nil
}

// UpstreamNodes returns every node n depends on, nearest first.
// The result does not include n.
func UpstreamNodes(n *Node) []*Node {
	if n == nil {
		return nil
	}

	seen := map[*Node]bool{n: true}
	queue := append([]*Node(nil), n.inputs...)

	var out []*Node

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		if seen[next] {
			continue
		}

		seen[next] = true
		out = append(out, next)
		queue = append(queue, next.inputs...)
	}

	return out
}

// IsUpstreamOrSelf reports whether candidate is node or one of its upstream nodes.
func IsUpstreamOrSelf(candidate, node *Node) bool {
	if candidate == nil || node == nil {
		return false
	}

	return candidate == node || containsNode(UpstreamNodes(node), candidate)
}

// ReadOnly reports whether n or any node enclosing it is flagged read-only.
func ReadOnly(n *Node) bool {
	for p := n; p != nil; p = p.parent {
		if p.readOnly {
			return true
		}
	}

	return false
}

func containsNode(nodes []*Node, n *Node) bool {
	for _, candidate := range nodes {
		if candidate == n {
			return true
		}
	}

	return false
}

// Script is the root of a node graph. It owns the undo history for every node it contains.
type Script struct {
	root   *Node
	nodes  []*Node
	byName map[string]*Node
	byID   map[m.NodeID]*Node
	undo   undoStack
}

// NewScript creates an empty script.
func NewScript(name string) *Script {
	s := &Script{
		byName: make(map[string]*Node),
		byID:   make(map[m.NodeID]*Node),
	}
	s.root = &Node{
		id:     m.NewNodeID(),
		name:   name,
		kind:   m.KindScript,
		script: s,
	}
	s.byID[s.root.id] = s.root

	return s
}

// Name returns the script name.
func (s *Script) Name() string { return s.root.name }

// Root returns the script's root node.
func (s *Script) Root() *Node { return s.root }

// AddNode creates a node named name inside parent. A nil parent means the script root.
func (s *Script) AddNode(name string, kind m.NodeKind, parent *Node) (*Node, error) {
	return s.addNode(m.NewNodeID(), name, kind, parent)
}

func (s *Script) addNode(id m.NodeID, name string, kind m.NodeKind, parent *Node) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownNode)
	}

	if !kind.Valid() || kind == m.KindScript {
		return nil, fmt.Errorf("invalid node kind %q for %s", kind, name)
	}

	if _, exists := s.byName[name]; exists || name == s.root.name {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, name)
	}

	if _, exists := s.byID[id]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	if parent == nil {
		parent = s.root
	}

	if parent.script != s {
		return nil, fmt.Errorf("%w: %s", ErrForeignNode, parent.name)
	}

	if parent.kind != m.KindScript && parent.kind != m.KindBox {
		return nil, fmt.Errorf("%w: %s", ErrNotContainer, parent.name)
	}

	n := &Node{
		id:     id,
		name:   name,
		kind:   kind,
		script: s,
		parent: parent,
	}
	parent.children = append(parent.children, n)
	s.nodes = append(s.nodes, n)
	s.byName[name] = n
	s.byID[id] = n

	return n, nil
}

// Node looks a node up by name.
func (s *Script) Node(name string) (*Node, bool) {
	n, ok := s.byName[name]
	return n, ok
}

// NodeByID looks a node up by its identity.
func (s *Script) NodeByID(id m.NodeID) (*Node, bool) {
	n, ok := s.byID[id]
	return n, ok
}

// Lookup looks a node up by name and returns ErrUnknownNode when it is missing.
func (s *Script) Lookup(name string) (*Node, error) {
	n, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, name)
	}

	return n, nil
}

// Nodes returns all nodes except the root, in creation order.
func (s *Script) Nodes() []*Node {
	return append([]*Node(nil), s.nodes...)
}
