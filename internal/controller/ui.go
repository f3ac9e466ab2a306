// Package controller provides the plain-text and interactive front ends of scopegate.
package controller

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/mouse-blink/scopegate/internal/model"
)

// ErrInteractiveUnavailable is returned by Browse when output is not a terminal.
var ErrInteractiveUnavailable = errors.New("interactive viewer requires a terminal")

// ViewerSession is the document state the interactive viewer works on.
// Implementations are driven from a single goroutine.
type ViewerSession interface {
	// State returns a snapshot for rendering.
	State() m.ViewerState
	// Toggle selects or deselects a location.
	Toggle(path m.ScenePath)
	// Press delivers a key to the viewer and reports whether it was consumed.
	Press(event m.KeyEvent) (bool, error)
	Undo() error
	Redo() error
	// Save writes the document back to where it was loaded from.
	Save(ctx context.Context) error
}

// UI defines the output of the scopegate commands.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayOverrides(rows []m.OverrideRow) error
	DisplayPruneResult(result m.PruneResult) error
	// Browse runs the interactive viewer on session until the user quits or ctx is done.
	Browse(ctx context.Context, session ViewerSession) error
}

// NewUI returns a TUI when useTTY is true and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, useTTY bool, pruneKeys []string) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout(), pruneKeys)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
