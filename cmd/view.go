package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/scopegate/internal/domain"
	m "github.com/mouse-blink/scopegate/internal/model"
)

var viewScopeFlag string
var viewViewedFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view DOCUMENT",
		Short: "Browse a document and prune interactively",
		Long:  "Open an interactive viewer on a document. Select locations with space and prune them with delete or backspace.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{
				ViewerArgs: domain.ViewerArgs{
					Scope:  viewScopeFlag,
					Viewed: viewViewedFlag,
				},
				Document: m.Path(args[0]),
			})
		},
	}
	cmd.Flags().StringVarP(&viewScopeFlag, "scope", "s", "", "edit scope to record prunes in (default: saved viewer scope)")
	cmd.Flags().StringVarP(&viewViewedFlag, "viewed", "v", "", "node to view (default: saved viewer input)")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
