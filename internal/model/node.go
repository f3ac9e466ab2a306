package model

import (
	"fmt"

	"github.com/google/uuid"
)

// NodeID identifies a node independently of its name.
type NodeID string

// NewNodeID returns a fresh random NodeID.
func NewNodeID() NodeID {
	return NodeID(uuid.NewString())
}

// ParseNodeID validates a NodeID read from a document.
func ParseNodeID(s string) (NodeID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("node id %q: %w", s, err)
	}

	return NodeID(id.String()), nil
}

// NodeKind classifies nodes in the graph.
type NodeKind string

const (
	// KindScript is the root document node. It owns undo history.
	KindScript NodeKind = "script"
	// KindBox groups nodes. A read-only box makes all of its children read-only.
	KindBox NodeKind = "box"
	// KindSource emits scene locations.
	KindSource NodeKind = "source"
	// KindEditScope records non-destructive overrides such as prunes.
	KindEditScope NodeKind = "editScope"
	// KindProcessor passes its inputs through unchanged.
	KindProcessor NodeKind = "processor"
)

// Valid reports whether k is a known kind.
func (k NodeKind) Valid() bool {
	switch k {
	case KindScript, KindBox, KindSource, KindEditScope, KindProcessor:
		return true
	}

	return false
}
