package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PolarWolf314/riddlechain/internal/ui"
	"github.com/PolarWolf314/riddlechain/internal/workflows"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the settings in effect",
	Long: `Displays the settings riddlechain uses. When no settings file exists the
defaults are shown.

Examples:
  riddlechain config show
  riddlechain config show --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		result, err := workflows.ConfigShow(commandContext(cmd), configPath)
		if err != nil {
			Logger.Errorf("Config show failed: %v", err)
			return err
		}

		if configShowJSON {
			data, err := json.MarshalIndent(result.Config, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal settings to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Print(formatConfig(result))
		return nil
	},
}

func formatConfig(result *workflows.ConfigResult) string {
	c := result.Config

	var b strings.Builder
	source := ui.Path.Sprint(result.Path)
	if !result.Exists {
		source += " " + ui.Muted.Sprint("not found, showing defaults")
	}
	fmt.Fprintf(&b, "Settings: %s\n\n", source)

	b.WriteString(ui.Info.Sprint("[limits]"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  soft:               %d\n", c.Limits.Soft)
	fmt.Fprintf(&b, "  hard:               %d\n", c.Limits.Hard)
	fmt.Fprintf(&b, "  url_warn:           %d\n", c.Limits.URLWarn)
	b.WriteString("\n")

	b.WriteString(ui.Info.Sprint("[chain]"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  base_path:          %s\n", c.Chain.BasePath)
	fmt.Fprintf(&b, "  completion_message: %s\n", c.Chain.CompletionMessage)
	fmt.Fprintf(&b, "  node_count:         %d\n", c.Chain.NodeCount)
	return b.String()
}
