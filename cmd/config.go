package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

// ConfigCmd is the top-level config command.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage riddlechain settings",
	Long: `Provides commands for managing the settings file.

Settings control the size limits applied to each embedded step, the base
path of generated links, and the defaults for node count and completion
message.

Examples:
  # Write a settings file with the defaults
  riddlechain config init

  # Show the settings in effect
  riddlechain config show`,
}

func init() {
	ConfigCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file to use instead of the user settings")

	ConfigCmd.AddCommand(configInitCmd)
	ConfigCmd.AddCommand(configShowCmd)
}

// GetConfigCmd returns the ConfigCmd for testing.
func GetConfigCmd() *cobra.Command {
	return ConfigCmd
}

// resetConfigState resets all config command global variables to their default values for testing.
func resetConfigState() {
	configPath = ""
	resetConfigInitState()
	resetConfigShowState()
}
