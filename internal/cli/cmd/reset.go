package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/schemer/internal/infrastructure/i18n"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the stored scheme",
	Long:  `Remove the stored selection so the configured appearance.color_scheme applies again.`,
	RunE:  runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	fallback, err := a.Reset()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", a.Translator.Tr(i18n.KeyReset), fallback)
	return nil
}
