// Package ui provides semantic text formatting for CLI output.
//
// This package defines formatters for different types of content (code,
// paths, errors, etc.) that render appropriately based on terminal
// capabilities. When colors are available, content is colorized. When
// NO_COLOR is set or the terminal doesn't support colors, text-based
// decorations (backticks, quotes) are used instead.
//
// # Semantic Formatters
//
// Use the appropriate formatter for the content type:
//
//	ui.Code.Sprint("riddlechain build")       // Commands and code
//	ui.Path.Sprint("chain.json")              // File paths
//	ui.Question.Sprint("2+2?")                // Puzzle questions
//	ui.Link.Sprint(startingURL)               // Puzzle links
//	ui.Success.Sprint("✓")                     // Success indicators
//	ui.Error.Sprint("✗")                       // Error indicators
//	ui.Warning.Sprint("[soft limit]")          // Warnings
//	ui.Info.Sprint("→")                        // Informational hints
//	ui.Highlight.Sprint(chainID)              // User values
//	ui.Muted.Sprint("optional")               // De-emphasized text
//
// # Color Behavior
//
// Colors are disabled when:
//   - NO_COLOR environment variable is set (any value)
//   - Terminal doesn't support colors (TERM=dumb, not a TTY)
//
// When colors are disabled, formatters apply text decorations:
//   - Code: `backticks`
//   - Highlight: 'single quotes'
//   - Question: "double quotes"
//   - Muted: (parentheses)
//   - Others: no decoration (self-evident from context)
package ui
