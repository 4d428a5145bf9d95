// Package workflows provides high-level orchestration for riddlechain commands.
//
// Workflows coordinate the chain, configs and audit packages to implement
// complete user-facing features. Each workflow handles a single command's
// business logic, independent of CLI concerns like flag parsing, spinners,
// and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Loading settings
//   - Reading and validating chain specifications
//   - Building or resolving chains
//   - Recording build history
//
// # Available Workflows
//
//   - Build: Validates a specification and writes a chain document
//   - Solve: Answers a chain from a link, optionally following it to the end
//   - Inspect: Decodes a link without decrypting it
//   - Log: Reads the build history
//   - ConfigInit, ConfigShow: Manage the settings file
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching. Use errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Build(ctx, opts)
//	if errors.Is(err, kerrors.ErrOutputExists) {
//	    // Suggest --force
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
// Build checks it between steps.
package workflows
