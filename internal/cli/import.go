package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atomicstack/dockmenu/internal/app"
	"github.com/atomicstack/dockmenu/internal/format/table"
	"github.com/atomicstack/dockmenu/internal/menu"
)

const (
	formatYAML  = "yaml"
	formatTable = "table"
)

func newImportCmd(opts *options) *cobra.Command {
	format := formatYAML
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import the list inside a page container",
		Long: `Import reads the page given with --html, finds the element named by
--container (or the first list when no container is given) and prints the
items it holds, as a YAML definition or as an outline table.

Only label text, url, target, nesting and divider boundaries survive markup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			acfg := opts.cfg.App
			if acfg.HTMLFile == "" {
				return errors.New("--html is required")
			}
			items, err := app.Import(acfg.HTMLFile, acfg.Container)
			if err != nil {
				return err
			}
			switch format {
			case formatYAML:
				return menu.Encode(cmd.OutOrStdout(), items)
			case formatTable:
				return writeOutline(cmd.OutOrStdout(), items)
			default:
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatYAML, formatTable)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", format, "output format: yaml or table")
	return cmd
}

// writeOutline prints one row per item, indented by depth.
func writeOutline(w io.Writer, items []menu.Item) error {
	rows := [][]string{{"TEXT", "URL", "TARGET"}}
	menu.Walk(items, func(path []int, item *menu.Item) bool {
		indent := strings.Repeat("  ", len(path)-1)
		text := item.Text
		if item.IsDivider() {
			text = "──"
		}
		rows = append(rows, []string{indent + text, item.URL, item.Target})
		return true
	})
	for _, line := range table.Format(rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
