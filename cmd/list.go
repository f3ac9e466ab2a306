package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/scopegate/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list DOCUMENT...",
		Short: "List prune overrides",
		Long:  "List the prune override of every edit scope in the given documents or directories of documents.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{Documents: parsePaths(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
