package puzzle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/riddlechain/internal/errors"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Raw is a chain specification as read from disk. Pointer fields
// distinguish absent values from zero values.
type Raw struct {
	Steps             []RawStep `json:"steps" yaml:"steps"`
	NodeCount         *int      `json:"nodeCount,omitempty" yaml:"nodeCount,omitempty"`
	KeyType           *string   `json:"keyType,omitempty" yaml:"keyType,omitempty"`
	CompletionMessage *string   `json:"completionMessage,omitempty" yaml:"completionMessage,omitempty"`
}

// RawStep is one step as read from disk.
type RawStep struct {
	Question *string `json:"question" yaml:"question"`
	Answer   *string `json:"answer" yaml:"answer"`
}

// Format is an input file syntax.
type Format int

const (
	// FormatJSON accepts plain JSON and JSON with comments and trailing commas.
	FormatJSON Format = iota
	FormatYAML
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes a raw chain specification.
func Parse(data []byte, format Format) (Raw, error) {
	var raw Raw
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Raw{}, fmt.Errorf("parsing chain spec: %w", err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return Raw{}, fmt.Errorf("parsing chain spec: %w", err)
		}
	}
	return raw, nil
}

// Load reads and parses the chain specification at path.
func Load(path string) (Raw, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Raw{}, fmt.Errorf("%w: %s", kerrors.ErrInputNotFound, path)
	}
	if err != nil {
		return Raw{}, fmt.Errorf("reading %s: %w", path, err)
	}

	raw, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return Raw{}, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}
