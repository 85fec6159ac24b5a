package cli

import (
	"github.com/spf13/cobra"

	"github.com/atomicstack/dockmenu/internal/app"
	"github.com/atomicstack/dockmenu/internal/config"
	"github.com/atomicstack/dockmenu/internal/logging"
)

func newPreviewCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Preview a drawn menu in the terminal",
		Long: `Preview draws a menu from --file, or imports it from the --container of
the --html page, and shows it in an interactive terminal view. Moving the
cursor hovers items; enter opens a submenu or clicks the item and reports
where the click was routed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Validate(opts.cfg); err != nil {
				return err
			}
			if err := app.Run(opts.cfg.App); err != nil {
				logging.Error(err)
				return err
			}
			return nil
		},
	}
}
