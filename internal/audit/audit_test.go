package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/riddlechain/internal/configs"
)

// withDataDir points the history log at a temporary directory.
func withDataDir(t *testing.T) string {
	t.Helper()
	dataDir := filepath.Join(t.TempDir(), "riddlechain")

	original := configs.UserRiddlechainSettings.UserDataPath
	configs.UserRiddlechainSettings.UserDataPath = dataDir
	t.Cleanup(func() {
		configs.UserRiddlechainSettings.UserDataPath = original
	})

	return dataDir
}

func TestLog_CreatesFileAndDirectory(t *testing.T) {
	dataDir := withDataDir(t)

	Log(Entry{Operation: "build", ChainID: "chain-1", Steps: 2, Nodes: 3})

	if _, err := os.Stat(filepath.Join(dataDir, "history.log")); os.IsNotExist(err) {
		t.Fatalf("History log file was not created")
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	withDataDir(t)

	Log(Entry{Operation: "build", ChainID: "a"})
	Log(Entry{Operation: "build", ChainID: "b"})
	Log(Entry{Operation: "build", ChainID: "c"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"a", "b", "c"} {
		if entries[i].ChainID != want {
			t.Errorf("Entry %d: expected chain %q, got %q", i, want, entries[i].ChainID)
		}
	}
}

func TestLog_TimestampFormat(t *testing.T) {
	dataDir := withDataDir(t)

	Log(Entry{Operation: "build", ChainID: "x"})

	data, err := os.ReadFile(filepath.Join(dataDir, "history.log"))
	if err != nil {
		t.Fatalf("Failed to read history log: %v", err)
	}

	var parsed Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &parsed); err != nil {
		t.Fatalf("Entry is not valid JSON: %v", err)
	}

	if !strings.HasSuffix(parsed.Timestamp, "Z") {
		t.Errorf("Timestamp should end with Z, got %s", parsed.Timestamp)
	}
	if !strings.Contains(parsed.Timestamp, ".") {
		t.Errorf("Timestamp should contain microseconds, got %s", parsed.Timestamp)
	}
}

func TestLog_OmitsEmptyFields(t *testing.T) {
	dataDir := withDataDir(t)

	Log(Entry{Operation: "build", ChainID: "x"})

	data, err := os.ReadFile(filepath.Join(dataDir, "history.log"))
	if err != nil {
		t.Fatalf("Failed to read history log: %v", err)
	}

	line := strings.TrimSpace(string(data))
	for _, field := range []string{`"modes"`, `"output_path"`, `"overwrote"`} {
		if strings.Contains(line, field) {
			t.Errorf("Empty %s field should be omitted", field)
		}
	}
}

func TestLog_KeepsOptionalFields(t *testing.T) {
	withDataDir(t)

	Log(Entry{
		Operation:  "build",
		ChainID:    "x",
		InputPath:  "chain.yaml",
		OutputPath: "puzzle.json",
		Steps:      2,
		Nodes:      3,
		URLLength:  512,
		Overwrote:  true,
		Modes:      []string{"base64", "json"},
	})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.InputPath != "chain.yaml" || e.OutputPath != "puzzle.json" {
		t.Errorf("Unexpected paths: %q, %q", e.InputPath, e.OutputPath)
	}
	if e.Steps != 2 || e.Nodes != 3 || e.URLLength != 512 || !e.Overwrote {
		t.Errorf("Unexpected counts: %+v", e)
	}
	if len(e.Modes) != 2 || e.Modes[0] != "base64" || e.Modes[1] != "json" {
		t.Errorf("Unexpected modes: %v", e.Modes)
	}
}

func TestReadEntries_NoLog(t *testing.T) {
	withDataDir(t)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"ts":"2024-01-01T00:00:00.000000Z","op":"build","chain_id":"a"}
not json
{"ts":"2024-01-02T00:00:00.000000Z","op":"build","chain_id":"b","steps":2}
`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[1].Steps != 2 {
		t.Errorf("Expected 2 steps, got %d", entries[1].Steps)
	}
}

func TestParseEntries_EmptyData(t *testing.T) {
	entries, err := ParseEntries(nil)
	if err != nil || entries != nil {
		t.Errorf("Expected nil, nil; got %v, %v", entries, err)
	}
}

func TestLast(t *testing.T) {
	entries := []Entry{{ChainID: "a"}, {ChainID: "b"}, {ChainID: "c"}}

	tests := []struct {
		n    int
		want []string
	}{
		{0, []string{"c", "b", "a"}},
		{2, []string{"c", "b"}},
		{10, []string{"c", "b", "a"}},
	}

	for _, tt := range tests {
		got := Last(entries, tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("Last(%d): expected %d entries, got %d", tt.n, len(tt.want), len(got))
		}
		for i := range got {
			if got[i].ChainID != tt.want[i] {
				t.Errorf("Last(%d)[%d] = %q, want %q", tt.n, i, got[i].ChainID, tt.want[i])
			}
		}
	}
}
