package workflows

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PolarWolf314/riddlechain/internal/chain"
	kerrors "github.com/PolarWolf314/riddlechain/internal/errors"
)

// AnswerFunc supplies an answer for question. lastErr is the error the
// previous answer to the same question produced, or nil on the first try.
type AnswerFunc func(question string, lastErr error) (string, error)

// SolveOptions configures the solve workflow.
type SolveOptions struct {
	// URL is the puzzle link to start from.
	URL string

	// Answers are tried in order, one per step. Once they run out, Prompt
	// is asked.
	Answers []string

	// Prompt supplies answers interactively. If nil, solving stops when
	// Answers run out.
	Prompt AnswerFunc

	// Follow continues to the next step after each correct answer. Without
	// it solving stops after one step.
	Follow bool

	// BasePath is used for the links of later steps. Defaults to the path
	// of URL.
	BasePath string
}

// SolvedStep records one answered step.
type SolvedStep struct {
	Question string
	Final    bool
}

// SolveResult contains the outcome of a solve operation.
type SolveResult struct {
	// Solved lists the steps answered correctly, in order.
	Solved []SolvedStep

	// Completed is set when the chain's final message was reached.
	Completed bool

	// Message is the completion message when Completed is set.
	Message string

	// NextQuestion and NextURL point at the first unanswered step.
	NextQuestion string
	NextURL      string
}

// Solve answers a chain starting from a link.
//
// Scripted answers are tried once each. Interactive answers are retried
// after a wrong or empty answer until Prompt returns an error.
//
// Returns ErrNoPuzzle, ErrIncompletePayload or a *DecodeError for links
// that do not hold a puzzle.
// Returns an *AnswerMismatchError when a scripted answer is wrong.
func Solve(ctx context.Context, opts SolveOptions) (*SolveResult, error) {
	basePath := opts.BasePath
	if basePath == "" {
		basePath = baseOf(opts.URL)
	}

	resolver, err := chain.Open(opts.URL, basePath)
	if err != nil {
		return nil, err
	}

	result := &SolveResult{}
	next := 0

	for {
		question := resolver.Question()
		result.NextQuestion = question
		result.NextURL = resolver.Link()

		outcome, err := answerStep(ctx, resolver, opts, &next)
		if err != nil {
			return result, err
		}
		if outcome == nil {
			return result, nil
		}

		result.Solved = append(result.Solved, SolvedStep{Question: question, Final: resolver.IsFinal()})

		switch outcome.State {
		case chain.StateTerminal:
			result.Completed = true
			result.Message = outcome.Message
			result.NextQuestion = ""
			result.NextURL = ""
			return result, nil
		case chain.StateIntermediate:
			result.NextQuestion = outcome.NextQuestion
			result.NextURL = outcome.NextURL
			if !opts.Follow {
				return result, nil
			}
			if err := resolver.Continue(); err != nil {
				return result, err
			}
		default:
			return result, fmt.Errorf("unexpected resolver state %s", outcome.State)
		}
	}
}

// answerStep submits answers until one opens the current step. It returns
// a nil outcome when no answers are left.
func answerStep(ctx context.Context, resolver *chain.Resolver, opts SolveOptions, next *int) (*chain.Outcome, error) {
	if *next < len(opts.Answers) {
		answer := opts.Answers[*next]
		*next++
		outcome, err := resolver.Submit(ctx, answer)
		if err != nil {
			return nil, err
		}
		return &outcome, nil
	}

	if opts.Prompt == nil {
		return nil, nil
	}

	var lastErr error
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		answer, err := opts.Prompt(resolver.Question(), lastErr)
		if err != nil {
			return nil, err
		}

		outcome, err := resolver.Submit(ctx, answer)
		switch {
		case err == nil:
			return &outcome, nil
		case errors.Is(err, kerrors.ErrEmptyAnswer), errors.Is(err, kerrors.ErrAnswerMismatch):
			lastErr = err
		default:
			return nil, err
		}
	}
}

// baseOf returns the part of link before its query, or the default path
// for a bare query string.
func baseOf(link string) string {
	link = strings.TrimSpace(link)
	if i := strings.IndexByte(link, '?'); i > 0 {
		return link[:i]
	}
	return chain.DefaultBasePath
}
