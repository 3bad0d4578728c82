package config

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate validates the global configuration.
func Validate(config *Config) error {
	if config == nil {
		return newFieldError("", "configuration cannot be nil")
	}

	patterns := []struct {
		field string
		value string
	}{
		{"scan.compiled_pattern", config.Scan.CompiledPattern},
		{"scan.scripted_pattern", config.Scan.ScriptedPattern},
		{"scan.test_pattern", config.Scan.TestPattern},
	}
	for _, p := range patterns {
		if err := validatePattern(p.value); err != nil {
			return newFieldError(p.field, err.Error())
		}
	}

	for i, dir := range config.Scan.IgnoreDirs {
		if dir == "" || strings.ContainsAny(dir, `/\`) {
			return newFieldError(fmt.Sprintf("scan.ignore_dirs[%d]", i),
				fmt.Sprintf("ignore entry must be a single directory name, got %q", dir))
		}
	}

	if config.Templates.Concurrency < 1 {
		return newFieldError("templates.concurrency", "concurrency must be at least 1")
	}

	if strings.Contains(config.Templates.Directory, "..") {
		return newFieldError("templates.directory", "directory cannot contain '..'")
	}

	return nil
}

// validatePattern checks a glob pattern is usable against an fs.FS.
func validatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if strings.HasPrefix(pattern, "/") {
		return fmt.Errorf("pattern %q must be relative to the repository root", pattern)
	}
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid glob pattern %q", pattern)
	}
	return nil
}
