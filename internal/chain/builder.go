package chain

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/riddlechain/internal/blindfold"
	"github.com/PolarWolf314/riddlechain/internal/codec"
	"github.com/PolarWolf314/riddlechain/internal/puzzle"
)

// DefaultBasePath is the path puzzle links point at.
const DefaultBasePath = "/puzzle"

// storeOnly is the capability set every chain key is derived with.
var storeOnly = blindfold.Capabilities{Store: true}

// BuilderOptions configures a Builder.
type BuilderOptions struct {
	// BasePath prefixes the starting URL. Defaults to DefaultBasePath.
	BasePath string
	// Limits bounds each embedded message. Defaults to codec.DefaultLimits.
	Limits codec.Limits
}

// Builder constructs chains from validated specifications.
type Builder struct {
	basePath string
	limits   codec.Limits
}

// StepReport describes how one step was encoded. It never holds content.
type StepReport struct {
	// Step is the 1-based step number.
	Step   int
	Shares int
	Mode   codec.Mode
	// EmbeddedSize is the size of the message carried by the previous
	// step's plaintext, or 0 for the first step.
	EmbeddedSize int
	OverSoft     bool
}

// Result is the outcome of a build. Only the starting link is public.
type Result struct {
	StartingURL      string
	Start            codec.Params
	StartingQuestion string
	Reports          []StepReport
}

// NewBuilder returns a Builder after checking the limits against the
// encryption library's plaintext ceiling.
func NewBuilder(opts BuilderOptions) (*Builder, error) {
	if opts.BasePath == "" {
		opts.BasePath = DefaultBasePath
	}
	if opts.Limits == (codec.Limits{}) {
		opts.Limits = codec.DefaultLimits()
	}
	if err := opts.Limits.Validate(blindfold.MaxPlaintextSize); err != nil {
		return nil, err
	}
	return &Builder{basePath: opts.BasePath, limits: opts.Limits}, nil
}

// Build folds the steps from last to first. The accumulator starts as the
// completion message; each later step's encoded link parameters become the
// plaintext of the step before it, so no step can be opened without the
// answers to all earlier ones.
func (b *Builder) Build(ctx context.Context, spec *puzzle.Spec) (*Result, error) {
	if len(spec.Steps) == 0 {
		return nil, fmt.Errorf("chain has no steps")
	}

	cluster := blindfold.NewCluster(spec.NodeCount)
	reports := make([]StepReport, len(spec.Steps))
	acc := spec.CompletionMessage

	for i := spec.Last(); i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		payload, err := sealStep(cluster, spec.Steps[i], acc, i == spec.Last())
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}

		if i == 0 {
			start, err := codec.Encode(payload)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
			reports[i] = StepReport{Step: 1, Shares: spec.NodeCount, Mode: start.Mode()}
			return &Result{
				StartingURL:      start.URL(b.basePath),
				Start:            start,
				StartingQuestion: spec.Steps[0].Question,
				Reports:          reports,
			}, nil
		}

		fitted, err := b.limits.Fit(i+1, payload)
		if err != nil {
			return nil, err
		}
		reports[i] = StepReport{
			Step:         i + 1,
			Shares:       spec.NodeCount,
			Mode:         fitted.Params.Mode(),
			EmbeddedSize: len(fitted.Message),
			OverSoft:     fitted.OverSoft,
		}
		acc = string(fitted.Message)
	}

	// Unreachable: the loop returns at i == 0.
	return nil, fmt.Errorf("chain has no steps")
}

// sealStep encrypts plaintext under the key seeded by the step's answer.
func sealStep(cluster blindfold.Cluster, step puzzle.Step, plaintext string, final bool) (codec.StepPayload, error) {
	key, err := blindfold.GenerateSecretKey(cluster, storeOnly, []byte(puzzle.NormalizeAnswer(step.Answer)))
	if err != nil {
		return codec.StepPayload{}, fmt.Errorf("deriving key: %w", err)
	}

	ct, err := blindfold.Encrypt(key, plaintext)
	if err != nil {
		return codec.StepPayload{}, fmt.Errorf("encrypting: %w", err)
	}

	return codec.StepPayload{
		Shares:   sharesOf(ct),
		Question: step.Question,
		IsFinal:  final,
	}, nil
}

func sharesOf(ct blindfold.Ciphertext) codec.Shares {
	if ct.Single() {
		return codec.Single(ct.Shares[0])
	}
	return codec.Sharded(ct.Shares)
}
