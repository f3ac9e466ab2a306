// Package cmd provides the root command and CLI setup for scopegate.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/scopegate/internal/adapter"
	"github.com/mouse-blink/scopegate/internal/config"
	"github.com/mouse-blink/scopegate/internal/controller"
	"github.com/mouse-blink/scopegate/internal/domain"
	"github.com/mouse-blink/scopegate/internal/logging"
	m "github.com/mouse-blink/scopegate/internal/model"
)

var cfg = config.Default()
var workflow domain.Workflow

// newWorkflow builds the workflow once flags and config are known.
var newWorkflow = defaultWorkflow

var configFlag string
var logLevelFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scopegate",
		Short: "Prune scene locations through edit scopes",
		Long: `Scopegate records prunes of scene locations as undoable overrides inside an
edit scope, instead of deleting anything from the node graph.

A prune is only written when the edit scope is writable and is the viewed
node or upstream of it. Documents are YAML node graphs:
  - scopegate list ./shots        show every prune override
  - scopegate prune shot.yaml /a   prune /a through the saved edit scope
  - scopegate view shot.yaml       browse and prune interactively`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(configFlag)
			if err != nil {
				return err
			}

			if logLevelFlag != "" {
				loaded.LogLevel = logLevelFlag
			}

			cfg = loaded
			workflow = newWorkflow(cmd, cfg)

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default $SCOPEGATE_CONFIG or ~/.scopegate/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn or error")

	return cmd
}

func defaultWorkflow(cmd *cobra.Command, cfg *config.Config) domain.Workflow {
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()), cfg.PruneKeys)

	return domain.NewWorkflow(adapter.NewLocalDocumentStore(), ui, logger)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
