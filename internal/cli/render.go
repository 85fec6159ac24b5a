package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atomicstack/dockmenu/internal/app"
)

func newRenderCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a menu definition to HTML",
		Long: `Render draws the menu definition given with --file into its container and
prints the container markup. --container overrides the container id.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			acfg := opts.cfg.App
			if acfg.MenuFile == "" {
				return errors.New("--file is required")
			}
			if output == "" {
				return app.Render(acfg.MenuFile, acfg.Container, cmd.OutOrStdout())
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if err := app.Render(acfg.MenuFile, acfg.Container, f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the markup to this file instead of stdout")
	return cmd
}
