package controller

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/scopegate/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output    io.Writer
	pruneKeys []string
	options   []tea.ProgramOption
}

// NewTUI creates a new TUI. pruneKeys are terminal key names that send a prune
// to the viewer; nil uses delete and backspace.
func NewTUI(output io.Writer, pruneKeys []string) *TUI {
	return &TUI{
		output:    output,
		pruneKeys: pruneKeys,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}
}

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))

// DisplayOverrides prints the overrides table under a styled heading.
func (t *TUI) DisplayOverrides(rows []m.OverrideRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(t.output, headingStyle.Render("No prune overrides found"))
		return err
	}

	_, err := fmt.Fprintf(t.output, "%s\n\n%s", headingStyle.Render("Prune overrides"), renderOverrideTable(rows))

	return err
}

// DisplayPruneResult prints the outcome of a prune request.
func (t *TUI) DisplayPruneResult(result m.PruneResult) error {
	style := statusStyle
	if !result.Applied {
		style = warningStyle
	}

	_, err := fmt.Fprintf(t.output, "%s\n", style.Render(renderPruneResult(result)))

	return err
}

// Browse runs the interactive viewer until the user quits.
func (t *TUI) Browse(ctx context.Context, session ViewerSession) error {
	model := newViewerModel(ctx, session, t.pruneKeys)

	options := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(t.output)}, t.options...)
	program := tea.NewProgram(model, options...)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}

	return nil
}
