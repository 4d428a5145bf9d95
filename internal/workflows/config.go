package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/riddlechain/internal/configs"
	kerrors "github.com/PolarWolf314/riddlechain/internal/errors"
	"github.com/PolarWolf314/riddlechain/internal/utils"
)

// ConfigInitOptions configures the config init workflow.
type ConfigInitOptions struct {
	// Path is the settings file. Defaults to the user config path.
	Path string

	// Force overwrites an existing settings file.
	Force bool
}

// ConfigResult contains the settings a config workflow read or wrote.
type ConfigResult struct {
	Config *configs.Config
	Path   string

	// Exists is false when the defaults were shown because no file exists.
	Exists bool
}

// ConfigInit writes a settings file holding the defaults.
//
// Returns ErrOutputExists if the file exists and Force is not set.
func ConfigInit(ctx context.Context, opts ConfigInitOptions) (*ConfigResult, error) {
	path := opts.Path
	if path == "" {
		path = configs.DefaultConfigPath()
	}

	exists, err := utils.FileExists(path)
	if err != nil {
		return nil, err
	}
	if exists && !opts.Force {
		return nil, fmt.Errorf("%w: %s (use --force to overwrite)", kerrors.ErrOutputExists, path)
	}

	config := configs.DefaultConfig()
	if err := configs.SaveConfig(path, config); err != nil {
		return nil, err
	}

	return &ConfigResult{Config: config, Path: path, Exists: true}, nil
}

// ConfigShow loads the settings in effect.
//
// Returns ErrInvalidSettings if the file holds unusable values.
func ConfigShow(ctx context.Context, path string) (*ConfigResult, error) {
	if path == "" {
		path = configs.DefaultConfigPath()
	}

	exists, err := utils.FileExists(path)
	if err != nil {
		return nil, err
	}

	config, err := configs.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	return &ConfigResult{Config: config, Path: path, Exists: exists}, nil
}
