package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PolarWolf314/riddlechain/internal/audit"
	kerrors "github.com/PolarWolf314/riddlechain/internal/errors"
	"github.com/PolarWolf314/riddlechain/internal/ui"
	"github.com/PolarWolf314/riddlechain/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit int
	logSince string
	logUntil string
	logJSON  bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().StringVar(&logSince, "since", "", "show entries after date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logUntil, "until", "", "show entries before date (YYYY-MM-DD)")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

// resetLogCommandState resets the log command's global state for testing.
func resetLogCommandState() {
	logLimit = 0
	logSince = ""
	logUntil = ""
	logJSON = false
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the build history",
	Long: `Displays the chains you have built, most recent first.

Only metadata is recorded: chain ID, step and node counts, encodings and
paths. Questions, answers and links are never stored.

Examples:
  riddlechain log                     # View full history
  riddlechain log -n 10               # Last 10 builds
  riddlechain log --since 2024-01-01  # Filter by date
  riddlechain log --json              # JSON output`,
	RunE: runLog,
}

func runLog(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting log command")

	spinner, cleanup := startSpinner("Loading build history...", verbose)
	defer cleanup()

	result, err := workflows.Log(commandContext(cmd), workflows.LogOptions{
		Limit: logLimit,
		Since: logSince,
		Until: logUntil,
	})
	if err != nil {
		if errors.Is(err, kerrors.ErrNoHistory) {
			spinner.FinalMSG = ui.Info.Sprint("ℹ") + " No builds recorded yet. Run " + ui.Code.Sprint("riddlechain build") + " to create one."
			return nil
		}
		return err
	}

	Logger.Debugf("Parsed %d entries from build history", result.TotalEntriesBeforeFilter)
	Logger.Debugf("After filtering: %d entries", len(result.Entries))

	if len(result.Entries) == 0 {
		spinner.FinalMSG = "No builds found matching the filters."
		return nil
	}

	if logJSON {
		data, err := json.MarshalIndent(result.Entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal entries to JSON: %w", err)
		}
		spinner.FinalMSG = string(data)
		return nil
	}

	spinner.FinalMSG = formatLogEntries(result.Entries)
	return nil
}

func formatLogEntries(entries []audit.Entry) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%-16s  %s  %d step(s), %d node(s)  %s\n",
			workflows.FormatDate(e.Timestamp),
			ui.Muted.Sprint(e.ChainID),
			e.Steps, e.Nodes,
			ui.Path.Sprint(e.OutputPath))
	}
	return b.String()
}
