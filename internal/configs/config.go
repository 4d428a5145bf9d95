package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/PolarWolf314/riddlechain/internal/blindfold"
	"github.com/PolarWolf314/riddlechain/internal/chain"
	"github.com/PolarWolf314/riddlechain/internal/codec"
	kerrors "github.com/PolarWolf314/riddlechain/internal/errors"
	"github.com/PolarWolf314/riddlechain/internal/puzzle"
)

// Config is the user settings file.
type Config struct {
	Limits Limits      `toml:"limits" json:"limits"`
	Chain  ChainConfig `toml:"chain" json:"chain"`
}

// Limits bounds the size of embedded step messages.
type Limits struct {
	Soft    int `toml:"soft" json:"soft"`
	Hard    int `toml:"hard" json:"hard"`
	URLWarn int `toml:"url_warn" json:"url_warn"`
}

// ChainConfig holds build defaults.
type ChainConfig struct {
	BasePath          string `toml:"base_path" json:"base_path"`
	CompletionMessage string `toml:"completion_message" json:"completion_message"`
	NodeCount         int    `toml:"node_count" json:"node_count"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	limits := codec.DefaultLimits()
	defaults := puzzle.StandardDefaults()
	return &Config{
		Limits: Limits{Soft: limits.Soft, Hard: limits.Hard, URLWarn: limits.URLWarn},
		Chain: ChainConfig{
			BasePath:          chain.DefaultBasePath,
			CompletionMessage: defaults.CompletionMessage,
			NodeCount:         defaults.NodeCount,
		},
	}
}

// LoadConfig reads the settings at path on top of the defaults. A missing
// file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	meta, err := LoadTOML(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", kerrors.ErrInvalidSettings, path, strings.Join(keys, ", "))
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config to path.
func SaveConfig(path string, config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Validate checks the limits against the encryption ceiling and the chain
// defaults against the puzzle bounds.
func (c *Config) Validate() error {
	if err := c.CodecLimits().Validate(blindfold.MaxPlaintextSize); err != nil {
		return err
	}
	if c.Chain.NodeCount < puzzle.MinNodes || c.Chain.NodeCount > puzzle.MaxNodes {
		return fmt.Errorf("%w: node_count %d must be between %d and %d", kerrors.ErrInvalidSettings, c.Chain.NodeCount, puzzle.MinNodes, puzzle.MaxNodes)
	}
	if strings.TrimSpace(c.Chain.BasePath) == "" {
		return fmt.Errorf("%w: base_path must not be empty", kerrors.ErrInvalidSettings)
	}
	if len(c.Chain.CompletionMessage) > blindfold.MaxPlaintextSize {
		return fmt.Errorf("%w: completion_message exceeds %d bytes", kerrors.ErrInvalidSettings, blindfold.MaxPlaintextSize)
	}
	return nil
}

// CodecLimits converts the settings for the codec.
func (c *Config) CodecLimits() codec.Limits {
	return codec.Limits{Soft: c.Limits.Soft, Hard: c.Limits.Hard, URLWarn: c.Limits.URLWarn}
}

// Defaults returns the values applied to chain specifications that omit them.
func (c *Config) Defaults() puzzle.Defaults {
	message := c.Chain.CompletionMessage
	if message == "" {
		message = puzzle.DefaultCompletionMessage
	}
	return puzzle.Defaults{NodeCount: c.Chain.NodeCount, CompletionMessage: message}
}
