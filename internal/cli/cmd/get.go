package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var getJSON bool

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current color scheme",
	Long: `Print the selected scheme and the palette it resolves to.

Examples:
  schemer get          # night (effective: night, selection)
  schemer get --json   # machine readable`,
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&getJSON, "json", false, "output as JSON")
}

type getOutput struct {
	Scheme    string `json:"scheme"`
	Label     string `json:"label"`
	Effective string `json:"effective"`
	Source    string `json:"source"`
	Stored    bool   `json:"stored"`
}

func runGet(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	_, stored, err := a.SchemeUC.Load(a.Ctx())
	if err != nil {
		return err
	}

	scheme := a.Model.CurrentScheme()
	effective := a.SchemeUC.Effective(scheme)
	out := getOutput{
		Scheme:    scheme.String(),
		Label:     a.Model.CurrentLabel(),
		Effective: effective.Name(),
		Source:    effective.Source,
		Stored:    stored,
	}

	if getJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (effective: %s, %s)\n", out.Scheme, out.Effective, out.Source)
	return nil
}
