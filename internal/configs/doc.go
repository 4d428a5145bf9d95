// Package configs manages riddlechain's user settings.
//
// Settings are stored in TOML at $XDG_CONFIG_HOME/riddlechain/config.toml
// (or the platform equivalent):
//
//	[limits]
//	soft = 3500
//	hard = 4000
//	url_warn = 2000
//
//	[chain]
//	base_path = "/puzzle"
//	completion_message = "🎉 Puzzle Complete!"
//	node_count = 3
//
// Keys missing from the file keep their defaults. Unknown keys are
// rejected so typos do not silently fall back.
//
// The hard limit is checked against the encryption library's plaintext
// ceiling every time settings are loaded.
//
// # Settings
//
// UserRiddlechainSettings holds the config and data directories. It is
// initialized at startup and tests may point it at temporary directories.
package configs
