package domain

import "errors"

// Sentinel errors returned by the graph, undo and edit scope operations.
var (
	ErrReadOnly      = errors.New("node is read-only")
	ErrNotEditScope  = errors.New("node is not an edit scope")
	ErrNotContainer  = errors.New("node cannot hold children")
	ErrCycle         = errors.New("connection would create a cycle")
	ErrUnknownNode   = errors.New("unknown node")
	ErrDuplicateNode = errors.New("duplicate node name")
	ErrDuplicateID   = errors.New("duplicate node id")
	ErrForeignNode   = errors.New("node belongs to another script")
	ErrDetached      = errors.New("node is not part of a script")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	ErrUndoScopeOpen = errors.New("undo scope is open")
)
