package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/schemer/internal/cli/styles"
	"github.com/bnema/schemer/internal/ui/listmodel"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the available color schemes",
	Long:    `Show every scheme in display order with the current one checked.`,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	theme := styles.NewTheme(a.Resolver.Current())
	rows := make([]styles.SchemeRow, 0, a.Model.RowCount())
	for row := 0; row < a.Model.RowCount(); row++ {
		rows = append(rows, styles.SchemeRow{
			Label:   fmt.Sprintf("%-8s %s", a.Model.Label(row), theme.Subtle.Render(a.Model.Scheme(row).String())),
			Checked: a.Model.CheckState(row) == listmodel.Checked,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), theme.RenderSchemeList(rows))
	return nil
}
