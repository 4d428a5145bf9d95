package cmd

import (
	"github.com/PolarWolf314/riddlechain/internal/ui"
	"github.com/PolarWolf314/riddlechain/internal/utils"
	"github.com/PolarWolf314/riddlechain/internal/workflows"
	"github.com/spf13/cobra"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing settings file")
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the defaults",
	Long: `Writes the default settings to the user settings file so they can be
edited. An existing file is kept unless --force is given.

Examples:
  riddlechain config init
  riddlechain config init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config init command")

		spinner, cleanup := startSpinner("Writing settings...", verbose)
		defer cleanup()

		result, err := workflows.ConfigInit(commandContext(cmd), workflows.ConfigInitOptions{
			Path:  configPath,
			Force: configInitForce,
		})
		if err != nil {
			Logger.Errorf("Config init failed: %v", err)
			return err
		}

		Logger.Infof("Settings written to %s", result.Path)
		spinner.FinalMSG = ui.SuccessLine("Settings written to:") + utils.FormatPaths([]string{result.Path}) +
			ui.HintLine("Edit the file, then run "+ui.Code.Sprint("riddlechain config show")+" to check it")
		return nil
	},
}
