// Package utils provides shared helpers for the riddlechain commands.
//
// # Filesystem Utilities
//
//   - FileExists: reports whether a path exists
//   - WriteFileAtomic: writes through a temporary file and rename
//
// # String Utilities
//
//   - FormatPaths: formats file paths for human-readable output
//   - Truncate: shortens long values such as shares for display
//
// # I/O Utilities
//
//   - ReadStdin: reads a piped puzzle link
//
// # Terminal Utilities
//
//   - ReadHidden: reads an answer without echo
//   - ReadLine: reads a visible answer
//   - IsTerminal, IsOutputTerminal: terminal detection
package utils
