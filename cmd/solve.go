package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PolarWolf314/riddlechain/internal/ui"
	"github.com/PolarWolf314/riddlechain/internal/utils"
	"github.com/PolarWolf314/riddlechain/internal/workflows"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	solveAnswers []string
	solveFollow  bool
	solveHide    bool
)

func init() {
	solveCmd.Flags().StringArrayVarP(&solveAnswers, "answer", "a", nil, "answer to try, once per step (repeatable)")
	solveCmd.Flags().BoolVar(&solveFollow, "follow", false, "keep going until the chain is complete")
	solveCmd.Flags().BoolVar(&solveHide, "hide", false, "do not echo answers typed at the prompt")
}

// resetSolveCommandState resets the solve command's global state for testing.
func resetSolveCommandState() {
	solveAnswers = nil
	solveFollow = false
	solveHide = false
}

var solveCmd = &cobra.Command{
	Use:   "solve <url>",
	Short: "Answer a puzzle chain from its link",
	Long: `Opens a puzzle link and asks for the answer to its question. A correct
answer reveals the link of the next step, or the completion message at the
end of the chain.

Answers can be given with --answer, once per step in order. Without them
you are prompted; a wrong answer can be retried. Pass "-" as the link to
read it from stdin.

Examples:
  riddlechain solve '/puzzle?s=...&q=...'
  riddlechain solve '/puzzle?s=...&q=...' --follow
  riddlechain solve '/puzzle?s=...&q=...' -a four -a purple --follow
  pbpaste | riddlechain solve - -a four`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting solve command")

	link := args[0]
	stdinUsed := false
	if link == "-" {
		data, err := utils.ReadStdin()
		if err != nil {
			return err
		}
		link = strings.TrimSpace(string(data))
		stdinUsed = true
	}
	Logger.Debugf("Link length: %d, scripted answers: %d, follow: %t", len(link), len(solveAnswers), solveFollow)

	opts := workflows.SolveOptions{
		URL:     link,
		Answers: solveAnswers,
		Follow:  solveFollow,
	}
	if !stdinUsed {
		opts.Prompt = answerPrompt(solveHide)
	}

	result, err := workflows.Solve(commandContext(cmd), opts)
	if errors.Is(err, io.EOF) && result != nil {
		// Input ran out at a prompt.
		fmt.Fprintln(os.Stderr)
		err = nil
	}
	if err != nil {
		Logger.Errorf("Solve stopped: %v", err)
		return err
	}

	fmt.Print(formatSolveResult(result))
	return nil
}

// answerPrompt asks for answers on the terminal, or reads them one per
// line when stdin is piped.
func answerPrompt(hide bool) workflows.AnswerFunc {
	reader := bufio.NewReader(os.Stdin)
	return func(question string, lastErr error) (string, error) {
		if lastErr != nil {
			fmt.Fprintln(os.Stderr, formatError(lastErr))
		} else {
			fmt.Fprintln(os.Stderr, ui.Question.Sprint(question))
		}

		if hide {
			return utils.ReadHidden("Answer: ")
		}
		return utils.ReadLine(reader, "Answer: ")
	}
}

func formatSolveResult(result *workflows.SolveResult) string {
	var b strings.Builder

	for _, step := range result.Solved {
		b.WriteString(ui.SuccessLine("Correct! " + ui.Muted.Sprint(step.Question)))
		b.WriteString("\n")
	}

	switch {
	case result.Completed:
		b.WriteString("\n")
		if utils.IsOutputTerminal() {
			b.WriteString(ui.Success.Sprint(figure.NewFigure("Solved!", "", true).String()))
			b.WriteString("\n")
		}
		b.WriteString(result.Message)
		b.WriteString("\n")

	case len(result.Solved) > 0:
		b.WriteString(ui.Info.Sprint("Next question: "))
		b.WriteString(ui.Question.Sprint(result.NextQuestion))
		b.WriteString("\n")
		b.WriteString(ui.HintLine("Continue at " + ui.Link.Sprint(result.NextURL)))
		b.WriteString("\n")

	default:
		b.WriteString(ui.Info.Sprint("Question: "))
		b.WriteString(ui.Question.Sprint(result.NextQuestion))
		b.WriteString("\n")
		b.WriteString(ui.HintLine("Pass " + ui.Flag.Sprint("--answer") + " or run without piping to be prompted"))
		b.WriteString("\n")
	}

	return b.String()
}
