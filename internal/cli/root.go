// Package cli is the dockmenu command tree.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/atomicstack/dockmenu/internal/config"
	"github.com/atomicstack/dockmenu/internal/logging"
	"github.com/atomicstack/dockmenu/internal/logging/events"
)

// options is filled by the root command before any subcommand runs.
type options struct {
	values *config.Values
	cfg    config.Config
}

func newRootCmd(environ []string) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "dockmenu",
		Short: "Draw, import and preview dock menus",
		Long: `dockmenu turns a declarative menu definition into nested list markup,
imports such markup back into a definition, and previews a drawn menu in
the terminal with its hover and click behaviour.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.values.Config(os.Args[1:])
			if err != nil {
				return err
			}
			opts.cfg = cfg
			logging.Configure(cfg.Logging.FilePath)
			logging.SetTraceEnabled(cfg.Logging.Trace)
			events.App.Start(startupTracePayload(cfg, cmd.CommandPath()))
			return nil
		},
	}
	opts.values = config.Register(root.PersistentFlags(), environ)

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newImportCmd(opts))
	root.AddCommand(newPreviewCmd(opts))
	return root
}

// Execute runs the command tree against the process arguments.
func Execute() {
	if err := newRootCmd(os.Environ()).Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
