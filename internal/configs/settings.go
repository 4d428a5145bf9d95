package configs

import (
	"log"
	"os"
	"path/filepath"
)

// UserSettings holds per-user paths. They do not depend on the working
// directory, so they are resolved once at startup.
type UserSettings struct {
	UserConfigsPath string
	UserDataPath    string
}

var UserRiddlechainSettings *UserSettings

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	UserRiddlechainSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "riddlechain"),
		UserDataPath:    filepath.Join(dataDir, "riddlechain"),
	}
}

// DefaultConfigPath returns the settings file used when --config is not given.
func DefaultConfigPath() string {
	return filepath.Join(UserRiddlechainSettings.UserConfigsPath, "config.toml")
}

// HistoryPath returns the build history log.
func HistoryPath() string {
	return filepath.Join(UserRiddlechainSettings.UserDataPath, "history.log")
}
