package app

import (
	"os"

	"github.com/tacogips/pipegen/internal/config"
	"github.com/tacogips/pipegen/internal/debug"
)

// InitConfig writes the default configuration to path so it can be edited.
// An existing file is kept unless force is set.
func InitConfig(path string, force bool) error {
	debug.DebugSection("[app] InitConfig workflow")
	debug.DebugValue("[app] Config path", path)

	if path == "" {
		return NewAppError(ValidationFailed, "config path is empty", nil)
	}
	if _, err := os.Stat(path); err == nil && !force {
		return NewAppError(ValidationFailed,
			"configuration already exists at "+path+" (use --force to overwrite)", nil)
	}

	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return NewAppError(ConfigWriteFailed, "failed to write configuration", err)
	}
	return nil
}
