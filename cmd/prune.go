package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/scopegate/internal/domain"
	m "github.com/mouse-blink/scopegate/internal/model"
)

var pruneScopeFlag string
var pruneViewedFlag string
var pruneKeyFlag string
var pruneNoSaveFlag bool

// pruneCmd represents the prune command.
var pruneCmd = newPruneCmd()

func newPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune DOCUMENT [LOCATION...]",
		Short: "Prune locations through an edit scope",
		Long: `Send a prune key to a viewer on DOCUMENT. LOCATIONs replace the selection
saved in the document. The prune is recorded in the edit scope only when the
scope is writable and is the viewed node or upstream of it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			event := m.ParseKeyEvent(pruneKeyFlag)

			return workflow.Prune(cmd.Context(), domain.PruneArgs{
				ViewerArgs: domain.ViewerArgs{
					Scope:  pruneScopeFlag,
					Viewed: pruneViewedFlag,
				},
				Document:  m.Path(args[0]),
				Paths:     args[1:],
				Key:       event.Key,
				Modifiers: event.Modifiers,
				Save:      cfg.AutoSave && !pruneNoSaveFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&pruneScopeFlag, "scope", "s", "", "edit scope to record the prune in (default: saved viewer scope)")
	cmd.Flags().StringVarP(&pruneViewedFlag, "viewed", "v", "", "node the viewer is looking at (default: saved viewer input)")
	cmd.Flags().StringVarP(&pruneKeyFlag, "key", "k", "delete", "key to send to the viewer, optionally with shift+, ctrl+ or alt+ prefixes")
	cmd.Flags().BoolVar(&pruneNoSaveFlag, "no-save", false, "do not write the document back")

	return cmd
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}
