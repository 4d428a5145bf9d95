package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/riddlechain/internal/ui"
	"github.com/PolarWolf314/riddlechain/internal/utils"
	"github.com/PolarWolf314/riddlechain/internal/workflows"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <url>",
	Short: "Decode a puzzle link without answering it",
	Long: `Decodes the parameters of a puzzle link and shows its question, share
count and encoding. Nothing is decrypted, so later questions stay hidden.

Examples:
  riddlechain inspect '/puzzle?s=...&q=...'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting inspect command")

		result, err := workflows.Inspect(commandContext(cmd), workflows.InspectOptions{URL: args[0]})
		if err != nil {
			Logger.Errorf("Inspect failed: %v", err)
			return err
		}

		fmt.Print(formatInspectResult(result))
		return nil
	},
}

func formatInspectResult(result *workflows.InspectResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question:    %s\n", ui.Question.Sprint(result.Question))
	fmt.Fprintf(&b, "Final step:  %t\n", result.IsFinal)
	fmt.Fprintf(&b, "Encoding:    %s\n", result.Mode)
	fmt.Fprintf(&b, "Nodes:       %d\n", result.Nodes)
	fmt.Fprintf(&b, "Link length: %d chars (s is %d)\n", result.URLLength, result.EncodedSize)
	for i, share := range result.Shares {
		fmt.Fprintf(&b, "Share %d:     %s\n", i+1, ui.Muted.Sprint(utils.Truncate(share, 48)))
	}
	return b.String()
}
