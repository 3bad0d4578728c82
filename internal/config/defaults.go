package config

import (
	"os"
	"path/filepath"

	"github.com/tacogips/pipegen/internal/introspect"
)

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "PIPEGEN_CONFIG"

// DefaultConfig returns the default configuration.
// Scan settings come from introspect.DefaultOptions.
func DefaultConfig() *Config {
	scan := introspect.DefaultOptions()
	return &Config{
		Scan: ScanConfig{
			CompiledPattern: scan.CompiledPattern,
			ScriptedPattern: scan.ScriptedPattern,
			TestPattern:     scan.TestPattern,
			IgnoreDirs:      scan.IgnoreDirs,
		},
		Templates: TemplateConfig{
			Directory:   "",
			Concurrency: 4,
		},
		Output: OutputConfig{
			Color: true,
			Quiet: false,
		},
		Defaults: DefaultsConfig{
			UseVersioning:     true,
			BuildPullRequests: true,
			RunTests:          true,
		},
	}
}

// DefaultConfigPath returns the configuration file path, honoring PIPEGEN_CONFIG.
func DefaultConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "pipegen", "config.yaml")
}
