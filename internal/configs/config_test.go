package configs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/riddlechain/internal/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := DefaultConfig()
	if *config != *want {
		t.Errorf("Expected defaults %+v, got %+v", want, config)
	}
	if config.Limits.Soft != 3500 || config.Limits.Hard != 4000 || config.Limits.URLWarn != 2000 {
		t.Errorf("Unexpected default limits %+v", config.Limits)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "[limits]\nhard = 3800\n\n[chain]\nbase_path = \"https://example.com/p\"\n")

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if config.Limits.Hard != 3800 {
		t.Errorf("Expected hard 3800, got %d", config.Limits.Hard)
	}
	if config.Limits.Soft != 3500 {
		t.Errorf("Expected soft to keep default 3500, got %d", config.Limits.Soft)
	}
	if config.Chain.BasePath != "https://example.com/p" {
		t.Errorf("Unexpected base path %q", config.Chain.BasePath)
	}
	if config.Chain.NodeCount != 3 {
		t.Errorf("Expected node count to keep default 3, got %d", config.Chain.NodeCount)
	}
}

func TestLoadConfigRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"hard above ceiling", "[limits]\nhard = 5000\n"},
		{"soft above hard", "[limits]\nsoft = 3900\nhard = 3000\n"},
		{"negative url warning", "[limits]\nurl_warn = -1\n"},
		{"node count zero", "[chain]\nnode_count = 0\n"},
		{"node count four", "[chain]\nnode_count = 4\n"},
		{"empty base path", "[chain]\nbase_path = \"\"\n"},
		{"unknown key", "[limits]\nsoftt = 100\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.content))
			if !errors.Is(err, kerrors.ErrInvalidSettings) {
				t.Errorf("Expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "[limits\nsoft = "))
	if err == nil {
		t.Fatal("Expected error for malformed TOML")
	}
	if !strings.Contains(err.Error(), "failed to load settings") {
		t.Errorf("Unexpected error %v", err)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riddlechain", "config.toml")

	config := DefaultConfig()
	config.Limits.Soft = 3000
	config.Chain.CompletionMessage = "Well done"
	config.Chain.NodeCount = 2

	if err := SaveConfig(path, config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *loaded != *config {
		t.Errorf("Expected %+v, got %+v", config, loaded)
	}
}

func TestSaveConfigRejectsInvalid(t *testing.T) {
	config := DefaultConfig()
	config.Limits.Hard = 0

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveConfig(path, config); !errors.Is(err, kerrors.ErrInvalidSettings) {
		t.Errorf("Expected ErrInvalidSettings, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Invalid settings should not be written")
	}
}

func TestDefaultsFallBackToStandardCompletion(t *testing.T) {
	config := DefaultConfig()
	config.Chain.CompletionMessage = ""
	config.Chain.NodeCount = 1

	defaults := config.Defaults()
	if defaults.CompletionMessage != "🎉 Puzzle Complete!" {
		t.Errorf("Unexpected completion message %q", defaults.CompletionMessage)
	}
	if defaults.NodeCount != 1 {
		t.Errorf("Expected node count 1, got %d", defaults.NodeCount)
	}
}

func TestSettingsPaths(t *testing.T) {
	old := *UserRiddlechainSettings
	defer func() { *UserRiddlechainSettings = old }()

	UserRiddlechainSettings.UserConfigsPath = "/cfg"
	UserRiddlechainSettings.UserDataPath = "/data"

	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "config.toml") {
		t.Errorf("Unexpected config path %q", got)
	}
	if got := HistoryPath(); got != filepath.Join("/data", "history.log") {
		t.Errorf("Unexpected history path %q", got)
	}
}
