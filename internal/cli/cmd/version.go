package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/schemer/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "schemer %s (%s, built %s, %s)\n",
			buildInfo.Version, buildInfo.Commit, buildInfo.BuildDate, buildInfo.GoVersion)
		fmt.Fprintln(cmd.OutOrStdout(), build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
