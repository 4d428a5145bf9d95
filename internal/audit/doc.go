// Package audit keeps the build history for riddlechain.
//
// Every successful build is recorded so users can find the chains they
// generated and where they wrote them. Only metadata is recorded: the
// chain ID, step and node counts, share encodings and paths. Questions,
// answers and links are never written.
//
// # Log Format
//
// The history is stored as JSON Lines (one JSON object per line) in the
// user data directory:
//
//	$XDG_DATA_HOME/riddlechain/history.log
//
// # Failure Handling
//
// History logging is best-effort. If it fails the build still succeeds.
//
// # Reading Logs
//
// Use ReadEntries() to parse the log for display. Malformed entries are
// skipped to handle partial writes.
package audit
