package cmd

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/riddlechain/internal/ui"
	"github.com/PolarWolf314/riddlechain/internal/utils"
	"github.com/PolarWolf314/riddlechain/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	buildForce      bool
	buildBaseURL    string
	buildConfigPath string
)

func init() {
	buildCmd.Flags().BoolVarP(&buildForce, "force", "f", false, "overwrite the output file if it exists")
	buildCmd.Flags().StringVar(&buildBaseURL, "base-url", "", "prefix for the starting link (default from settings, /puzzle)")
	buildCmd.Flags().StringVar(&buildConfigPath, "config", "", "settings file to use instead of the user settings")
}

// resetBuildCommandState resets the build command's global state for testing.
func resetBuildCommandState() {
	buildForce = false
	buildBaseURL = ""
	buildConfigPath = ""
}

var buildCmd = &cobra.Command{
	Use:   "build <input> <output>",
	Short: "Build a puzzle chain from a specification",
	Long: `Builds a puzzle chain from a JSON, JSONC or YAML specification and writes
the chain document with the starting link.

The specification lists up to 5 steps, each with a question (max 80
characters) and an answer (max 20 characters). Answers are compared
case-insensitively with surrounding spaces removed.

Nothing is written unless the whole chain fits. Validation problems are
all reported at once.

Examples:
  riddlechain build chain.json puzzle.json
  riddlechain build chain.yaml puzzle.json --base-url https://example.com/puzzle
  riddlechain build chain.json puzzle.json --force`,
	Args: cobra.ExactArgs(2),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting build command")
	Logger.Debugf("Input: %s, output: %s, force: %t, base URL: %q", args[0], args[1], buildForce, buildBaseURL)

	spinner, cleanup := startSpinner("Building puzzle chain...", verbose)
	defer cleanup()

	result, err := workflows.Build(commandContext(cmd), workflows.BuildOptions{
		InputPath:  args[0],
		OutputPath: args[1],
		Force:      buildForce,
		BaseURL:    buildBaseURL,
		ConfigPath: buildConfigPath,
	})
	if err != nil {
		Logger.Errorf("Build failed: %v", err)
		return err
	}

	for _, r := range result.Reports {
		Logger.Debugf("Step %d: %d share(s), %s encoding, embedded size %d", r.Step, r.Shares, r.Mode, r.EmbeddedSize)
	}
	if result.Overwrote {
		Logger.Infof("Overwrote existing output %s", result.OutputPath)
	}

	spinner.FinalMSG = formatBuildResult(result)
	return nil
}

func formatBuildResult(result *workflows.BuildResult) string {
	out := result.Output
	url := out.StartingURL

	var b strings.Builder
	b.WriteString(ui.SuccessLine("Puzzle chain generated successfully!"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "    Total steps: %d\n", out.Metadata.TotalSteps)
	fmt.Fprintf(&b, "    Node count: %d\n", out.Metadata.NodeCount)
	fmt.Fprintf(&b, "    Starting question: %s\n", ui.Question.Sprint(out.StartingQuestion))
	fmt.Fprintf(&b, "    Chain ID: %s\n", ui.Muted.Sprint(out.Metadata.ChainID))
	b.WriteString("    Output file:")
	b.WriteString(utils.FormatPaths([]string{result.OutputPath}))
	b.WriteString("\n")
	b.WriteString(ui.Info.Sprint("Starting URL:"))
	b.WriteString("\n    ")
	b.WriteString(ui.Link.Sprint(url))
	b.WriteString("\n")

	for _, step := range result.SoftLimitSteps {
		b.WriteString(ui.Warning.Sprint("⚠"))
		fmt.Fprintf(&b, " Step %d is close to the size limit\n", step)
	}

	if result.URLTooLong {
		b.WriteString(ui.Warning.Sprint("⚠"))
		fmt.Fprintf(&b, " URL is quite long (%d chars, above %d). Consider fewer nodes or shorter questions\n", len(url), result.URLWarnLength)
	} else {
		b.WriteString(ui.SuccessLine(fmt.Sprintf("URL length (%d chars) is reasonable", len(url))))
		b.WriteString("\n")
	}

	b.WriteString(ui.HintLine("Run " + ui.Code.Sprint("riddlechain solve '<url>'") + " to try it"))
	return b.String()
}
