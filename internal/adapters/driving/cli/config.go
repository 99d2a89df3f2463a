package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pdfwords/internal/core/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change configuration",
	Long: `Values are stored in config.toml inside the configuration directory.
Environment variables (PDFWORDS_*) override stored values, and extract flags
override both.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show stored configuration values",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configService == nil {
			return errors.New("config service not configured")
		}
		cmd.Println(configService.Path())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Sets a configuration value. List values are comma separated.

Example:
  pdfwords config set input.categories "Annual Assurance Reports,Service Inquiries"`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configService == nil {
		return errors.New("config service not configured")
	}

	cmd.Printf("Config file: %s\n\n", configService.Path())
	for _, key := range domain.ConfigKeys() {
		value, ok, err := configService.Get(key.Name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key.Name, err)
		}
		if !ok {
			value = "(not set)"
		}
		cmd.Printf("  %-22s %s\n", key.Name, value)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configService == nil {
		return errors.New("config service not configured")
	}
	if err := configService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}
