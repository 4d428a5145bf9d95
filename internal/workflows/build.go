package workflows

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/PolarWolf314/riddlechain/internal/audit"
	"github.com/PolarWolf314/riddlechain/internal/chain"
	"github.com/PolarWolf314/riddlechain/internal/configs"
	kerrors "github.com/PolarWolf314/riddlechain/internal/errors"
	"github.com/PolarWolf314/riddlechain/internal/puzzle"
	"github.com/PolarWolf314/riddlechain/internal/utils"
)

// Generator identifies this tool in output metadata.
const Generator = "riddlechain v1.0"

// BuildOptions configures the build workflow.
type BuildOptions struct {
	// InputPath is the chain specification (JSON, JSONC or YAML).
	InputPath string

	// OutputPath is where the chain document is written.
	OutputPath string

	// Force overwrites an existing output file.
	Force bool

	// BaseURL prefixes the starting URL. Overrides the settings file when set.
	BaseURL string

	// ConfigPath is the settings file. Defaults to the user config path.
	ConfigPath string
}

// BuildResult contains the outcome of a build operation.
type BuildResult struct {
	// Output is the document that was written.
	Output Output

	// OutputPath is the absolute path of the written document.
	OutputPath string

	// Reports describes how each step was encoded, in step order.
	Reports []chain.StepReport

	// SoftLimitSteps lists steps whose embedded message is above the soft limit.
	SoftLimitSteps []int

	// URLTooLong is set when the starting URL is above the warning length.
	URLTooLong bool

	// URLWarnLength is the configured warning length.
	URLWarnLength int

	// Overwrote is set when an existing output file was replaced.
	Overwrote bool
}

// Output is the chain document written by Build.
type Output struct {
	Metadata          Metadata     `json:"metadata"`
	StartingURL       string       `json:"startingUrl"`
	StartingQuestion  string       `json:"startingQuestion"`
	CompletionMessage string       `json:"completionMessage"`
	Instructions      Instructions `json:"instructions"`
}

// Metadata describes a generated chain without revealing any step.
type Metadata struct {
	ChainID     string `json:"chainId"`
	GeneratedAt string `json:"generatedAt"`
	NodeCount   int    `json:"nodeCount"`
	KeyType     string `json:"keyType"`
	TotalSteps  int    `json:"totalSteps"`
	Generator   string `json:"generator"`
}

// Instructions tells the reader of the document how to use the link.
type Instructions struct {
	Usage     string            `json:"usage"`
	Note      string            `json:"note"`
	URLParams map[string]string `json:"urlParams"`
}

// urlParams documents the link parameters.
var urlParams = map[string]string{
	"s":   "shares (URL encoded JSON or base64)",
	"q":   "question (URL encoded)",
	"f":   "final question flag (1 if true)",
	"b64": "base64 encoding flag (1 if shares are base64 encoded)",
}

// Build validates a chain specification, constructs the chain and writes
// the chain document.
//
// Nothing is written unless the whole chain builds. The document is
// written to a temporary file and renamed into place.
//
// Returns ErrInputNotFound if the input file does not exist.
// Returns ErrOutputExists if the output exists and Force is not set.
// Returns a *ValidationError listing every problem in the chain file.
// Returns a *SizeExceededError naming the first step that does not fit.
// Returns ErrInvalidSettings if the settings file holds unusable values.
func Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = configs.DefaultConfigPath()
	}
	config, err := configs.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	outputPath, err := filepath.Abs(opts.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("resolving output path: %w", err)
	}
	exists, err := utils.FileExists(outputPath)
	if err != nil {
		return nil, err
	}
	if exists && !opts.Force {
		return nil, fmt.Errorf("%w: %s (use --force to overwrite)", kerrors.ErrOutputExists, opts.OutputPath)
	}

	raw, err := puzzle.Load(opts.InputPath)
	if err != nil {
		return nil, err
	}

	spec, err := puzzle.Validate(raw, config.Defaults())
	if err != nil {
		return nil, err
	}

	basePath := config.Chain.BasePath
	if opts.BaseURL != "" {
		basePath = opts.BaseURL
	}

	builder, err := chain.NewBuilder(chain.BuilderOptions{
		BasePath: basePath,
		Limits:   config.CodecLimits(),
	})
	if err != nil {
		return nil, err
	}

	built, err := builder.Build(ctx, spec)
	if err != nil {
		return nil, err
	}

	output := Output{
		Metadata: Metadata{
			ChainID:     uuid.New().String(),
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			NodeCount:   spec.NodeCount,
			KeyType:     spec.KeyType,
			TotalSteps:  len(spec.Steps),
			Generator:   Generator,
		},
		StartingURL:       built.StartingURL,
		StartingQuestion:  built.StartingQuestion,
		CompletionMessage: spec.CompletionMessage,
		Instructions: Instructions{
			Usage:     "Visit the startingUrl to begin the puzzle chain",
			Note:      "Each correct answer reveals the next step with minimal data transfer",
			URLParams: urlParams,
		},
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding output: %w", err)
	}

	if err := utils.WriteFileAtomic(outputPath, append(data, '\n'), 0644); err != nil {
		return nil, err
	}

	result := &BuildResult{
		Output:        output,
		OutputPath:    outputPath,
		Reports:       built.Reports,
		URLWarnLength: config.Limits.URLWarn,
		URLTooLong:    config.Limits.URLWarn > 0 && len(built.StartingURL) > config.Limits.URLWarn,
		Overwrote:     exists,
	}

	modes := make([]string, len(built.Reports))
	for i, r := range built.Reports {
		modes[i] = r.Mode.String()
		if r.OverSoft {
			result.SoftLimitSteps = append(result.SoftLimitSteps, r.Step)
		}
	}

	audit.Log(audit.Entry{
		Operation:  "build",
		ChainID:    output.Metadata.ChainID,
		InputPath:  opts.InputPath,
		OutputPath: outputPath,
		Steps:      len(spec.Steps),
		Nodes:      spec.NodeCount,
		Modes:      modes,
		URLLength:  len(built.StartingURL),
		Overwrote:  exists,
	})

	return result, nil
}
