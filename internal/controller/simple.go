package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/scopegate/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayOverrides prints one table row per pruned location.
func (s *SimpleUI) DisplayOverrides(rows []m.OverrideRow) error {
	if len(rows) == 0 {
		s.printf("No prune overrides found\n")
		return nil
	}

	s.printf("%s", renderOverrideTable(rows))

	return nil
}

// DisplayPruneResult prints the outcome of a prune request.
func (s *SimpleUI) DisplayPruneResult(result m.PruneResult) error {
	s.printf("%s", renderPruneResult(result))
	return nil
}

// Browse is not available without a terminal.
func (s *SimpleUI) Browse(_ context.Context, _ ViewerSession) error {
	return ErrInteractiveUnavailable
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
