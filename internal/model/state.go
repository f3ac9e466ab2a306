package model

// OverrideRow is one pruned location of an edit scope, flattened for display.
type OverrideRow struct {
	Document Path
	Scope    string
	Path     string
	ReadOnly bool
}

// PruneResult reports the outcome of a single prune request.
type PruneResult struct {
	Document Path
	Key      Key
	// Handled is true when the key was consumed by the viewer.
	Handled bool
	// Applied is true when the prune changed the edit scope's override.
	// Pruning locations that are already pruned leaves it false.
	Applied bool
	Scope   string
	Viewed  string
	// Requested are the selected locations sent with the key.
	Requested []string
	// Pruned is the full override of Scope after the request.
	Pruned []string
	Saved  bool
}

// LocationState is one row of the interactive viewer.
type LocationState struct {
	Path     ScenePath
	Depth    int
	Selected bool
	// Pruned is true when the location is hidden at the viewed node.
	Pruned bool
}

// ViewerState is a snapshot of the interactive viewer.
type ViewerState struct {
	Document  Path
	Scope     string
	Viewed    string
	ReadOnly  bool
	Locations []LocationState
	Status    string
	CanUndo   bool
	CanRedo   bool
	Dirty     bool
}
