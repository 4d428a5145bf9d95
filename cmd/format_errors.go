package cmd

import (
	"errors"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/riddlechain/internal/errors"
	"github.com/PolarWolf314/riddlechain/internal/ui"
)

// formatError renders a command error for stderr.
func formatError(err error) string {
	var validationErr *kerrors.ValidationError
	var sizeErr *kerrors.SizeExceededError
	var decodeErr *kerrors.DecodeError

	switch {
	case errors.As(err, &validationErr):
		var b strings.Builder
		b.WriteString(ui.ErrorLine("Chain specification is invalid:"))
		b.WriteString("\n")
		for _, p := range validationErr.Problems {
			b.WriteString("    - ")
			b.WriteString(p.String())
			b.WriteString("\n")
		}
		b.WriteString(ui.HintLine("Fix the problems above and run " + ui.Code.Sprint("riddlechain build") + " again"))
		return b.String()

	case errors.As(err, &sizeErr):
		return ui.ErrorLine(fmt.Sprintf("Step %d is too large to embed: %d bytes as JSON, %d as base64, limit %d",
			sizeErr.Step, sizeErr.JSONSize, sizeErr.Base64Size, sizeErr.Limit)) + "\n" +
			ui.HintLine("Try fewer nodes or shorter questions")

	case errors.Is(err, kerrors.ErrOutputExists):
		return ui.ErrorLine(err.Error()) + "\n" +
			ui.HintLine("Pass "+ui.Flag.Sprint("--force")+" to overwrite it")

	case errors.Is(err, kerrors.ErrInputNotFound):
		return ui.ErrorLine(err.Error())

	case errors.Is(err, kerrors.ErrInvalidSettings):
		return ui.ErrorLine(err.Error()) + "\n" +
			ui.HintLine("Run "+ui.Code.Sprint("riddlechain config show")+" to see the settings in effect")

	case errors.Is(err, kerrors.ErrNoPuzzle):
		return ui.ErrorLine("No active puzzle in this link")

	case errors.Is(err, kerrors.ErrIncompletePayload):
		return ui.ErrorLine("Incomplete puzzle link") + "\n" +
			ui.HintLine("Make sure the whole link was copied")

	case errors.As(err, &decodeErr):
		Logger.Debugf("Decode failure on %s: %v", decodeErr.Param, decodeErr.Cause)
		return ui.ErrorLine("Invalid puzzle link")

	case errors.Is(err, kerrors.ErrAnswerMismatch):
		return ui.ErrorLine(err.Error())

	case errors.Is(err, kerrors.ErrEmptyAnswer):
		return ui.ErrorLine("Please enter your answer")

	default:
		return ui.ErrorLine(err.Error())
	}
}
