package model

// Document is the on-disk form of a node graph.
type Document struct {
	Name   string      `yaml:"name"`
	Nodes  []NodeSpec  `yaml:"nodes"`
	Viewer *ViewerSpec `yaml:"viewer,omitempty"`
}

// NodeSpec describes one node of a Document.
type NodeSpec struct {
	// ID keeps a node's identity across renames. A fresh one is assigned when empty.
	ID     string   `yaml:"id,omitempty"`
	Name   string   `yaml:"name"`
	Kind   NodeKind `yaml:"kind"`
	Parent string   `yaml:"parent,omitempty"`
	// Inputs name upstream nodes in connection order.
	Inputs   []string `yaml:"inputs,omitempty"`
	ReadOnly bool     `yaml:"readOnly,omitempty"`
	// Locations are emitted by source nodes.
	Locations []string `yaml:"locations,omitempty"`
	// Pruned holds the prune override of an edit scope.
	Pruned []string `yaml:"pruned,omitempty"`
}

// ViewerSpec stores the viewer settings saved with a Document.
type ViewerSpec struct {
	EditScope string   `yaml:"editScope,omitempty"`
	Viewed    string   `yaml:"viewed,omitempty"`
	Selection []string `yaml:"selection,omitempty"`
}
