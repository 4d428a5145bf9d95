package chain

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/riddlechain/internal/blindfold"
	"github.com/PolarWolf314/riddlechain/internal/codec"
	kerrors "github.com/PolarWolf314/riddlechain/internal/errors"
	"github.com/PolarWolf314/riddlechain/internal/puzzle"
)

// State is the resolver's position in the answer flow.
type State int

const (
	StateAwaitingAnswer State = iota
	StateDecrypting
	StateIntermediate
	StateTerminal
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateAwaitingAnswer:
		return "awaiting-answer"
	case StateDecrypting:
		return "decrypting"
	case StateIntermediate:
		return "intermediate"
	case StateTerminal:
		return "terminal"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is the result of a successful Submit.
type Outcome struct {
	State State

	// Set when State is StateIntermediate.
	NextQuestion string
	NextURL      string
	Next         codec.Params

	// Set when State is StateTerminal.
	Message string
}

// Resolver answers one step at a time, starting from a link. A Resolver
// is not safe for concurrent use.
type Resolver struct {
	basePath string
	link     string
	payload  codec.StepPayload
	state    State
	outcome  Outcome
}

// Open parses link and returns a Resolver waiting for the answer to its
// question. basePath is used for the links of later steps; empty means
// DefaultBasePath.
func Open(link, basePath string) (*Resolver, error) {
	if basePath == "" {
		basePath = DefaultBasePath
	}
	r := &Resolver{basePath: basePath}
	if err := r.Navigate(link); err != nil {
		return nil, err
	}
	return r, nil
}

// Navigate replaces the current step with the one in link and resets the
// state. On error the resolver is left unchanged.
func (r *Resolver) Navigate(link string) error {
	params, err := codec.ParseURL(link)
	if err != nil {
		return err
	}
	payload, err := codec.Decode(params)
	if err != nil {
		return err
	}

	r.link = link
	r.payload = payload
	r.state = StateAwaitingAnswer
	r.outcome = Outcome{}
	return nil
}

// Continue moves to the step unlocked by the last Submit.
func (r *Resolver) Continue() error {
	if r.state != StateIntermediate {
		return fmt.Errorf("no next step to continue to (state %s)", r.state)
	}
	return r.Navigate(r.outcome.NextURL)
}

// Question returns the current step's question.
func (r *Resolver) Question() string { return r.payload.Question }

// IsFinal reports whether the current step is the last in its chain.
func (r *Resolver) IsFinal() bool { return r.payload.IsFinal }

// Payload returns the current step as decoded from its link.
func (r *Resolver) Payload() codec.StepPayload { return r.payload }

// Link returns the link the current step was opened from.
func (r *Resolver) Link() string { return r.link }

// State returns the current state.
func (r *Resolver) State() State { return r.state }

// Outcome returns the result of the last successful Submit.
func (r *Resolver) Outcome() Outcome { return r.outcome }

// Submit tries answer against the current step. An empty answer returns
// ErrEmptyAnswer and changes nothing. Any decryption failure returns an
// *AnswerMismatchError; the step stays loaded so another answer can be
// tried. Submitting again after success re-derives the same outcome.
func (r *Resolver) Submit(ctx context.Context, answer string) (Outcome, error) {
	if r.payload.Shares == nil {
		return Outcome{}, kerrors.ErrNoPuzzle
	}
	if strings.TrimSpace(answer) == "" {
		return Outcome{}, kerrors.ErrEmptyAnswer
	}
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	r.state = StateDecrypting

	plaintext, err := open(r.payload, answer)
	if err != nil {
		r.state = StateFailed
		r.outcome = Outcome{State: StateFailed}
		return r.outcome, &kerrors.AnswerMismatchError{}
	}

	r.outcome = r.classify(plaintext)
	r.state = r.outcome.State
	return r.outcome, nil
}

// open re-derives the step key from the answer. The node count comes from
// the shape of the shares.
func open(payload codec.StepPayload, answer string) (string, error) {
	shares := payload.Shares.Values()
	key, err := blindfold.GenerateSecretKey(
		blindfold.NewCluster(len(shares)),
		storeOnly,
		[]byte(puzzle.NormalizeAnswer(answer)),
	)
	if err != nil {
		return "", err
	}
	return blindfold.Decrypt(key, blindfold.Ciphertext{Shares: shares})
}

// classify decides whether plaintext leads to another step. A final step,
// or a plaintext that does not decode as one, is terminal and shown as is.
func (r *Resolver) classify(plaintext string) Outcome {
	if !r.payload.IsFinal {
		if next, ok := codec.ParseMessage(plaintext); ok {
			if payload, err := codec.Decode(next); err == nil {
				return Outcome{
					State:        StateIntermediate,
					NextQuestion: payload.Question,
					NextURL:      next.URL(r.basePath),
					Next:         next,
				}
			}
		}
	}
	return Outcome{State: StateTerminal, Message: plaintext}
}
