package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/schemer/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config and database file paths",
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of config.toml",
	Long:  `Print a JSON Schema for editor completion and validation of config.toml.`,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "config:   %s\n", a.ConfigManager.GetConfigFile())
	fmt.Fprintf(cmd.OutOrStdout(), "database: %s\n", a.Config.Database.Path)
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.JSONSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return nil
}
