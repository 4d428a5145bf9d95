package cmd

import (
	"context"
	"fmt"
	"os"

	logger "github.com/PolarWolf314/riddlechain/internal/logging"
	"github.com/PolarWolf314/riddlechain/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	// RootCmd is the riddlechain command.
	RootCmd = &cobra.Command{
		Use:   "riddlechain",
		Short: "Build and solve chains of encrypted puzzle links",
		Long: `riddlechain builds chains of questions where each correct answer
unlocks the next step. The whole chain travels inside a single link: every
step is encrypted with a key derived from the answer to the step before it.

Usage:
  riddlechain <command> [flags]

Available Commands:
  build      Build a chain from a JSON or YAML specification
  solve      Answer a chain from its link
  inspect    Decode a link without decrypting it
  log        Show the build history
  config     Manage settings

Run 'riddlechain help <command>' for more details on a specific command.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(buildCmd)
	RootCmd.AddCommand(solveCmd)
	RootCmd.AddCommand(inspectCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(ConfigCmd)
}

// Execute runs the root command and returns the process exit code. Errors
// are printed to stderr.
func Execute() int {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, ui.EnsureNewline(formatError(err)))
		return 1
	}
	return 0
}

// commandContext returns the command's context, or a background context
// when the command was not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetBuildCommandState()
	resetSolveCommandState()
	resetLogCommandState()
	resetConfigState()
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState clears the changed marks cobra keeps between runs.
func resetCobraFlagState(c *cobra.Command) {
	c.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	c.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, sub := range c.Commands() {
		resetCobraFlagState(sub)
	}
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
