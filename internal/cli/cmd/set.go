package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/schemer/internal/cli/styles"
	"github.com/bnema/schemer/internal/domain/entity"
	"github.com/bnema/schemer/internal/infrastructure/i18n"
)

var setCmd = &cobra.Command{
	Use:   "set <system|day|night>",
	Short: "Select and store a color scheme",
	Long: `Select a scheme and store it. Aliases light/dark and default/auto are accepted.

Examples:
  schemer set night
  schemer set light    # same as day`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"system", "day", "night"},
	RunE:      runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	scheme, err := entity.ParseColorScheme(args[0])
	if err != nil {
		return err
	}

	effective, err := a.Select(scheme)
	if err != nil {
		return err
	}

	theme := styles.NewTheme(effective)
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n",
		theme.SuccessStyle.Render(a.Translator.Tr(i18n.KeySaved)),
		theme.Highlight.Render(a.Model.CurrentLabel()),
		theme.EffectiveBadge(effective),
	)
	return nil
}
