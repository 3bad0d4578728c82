// Package build provides build-time information for the CLI application.
// Version is read from the VERSION file unless overridden at link time.
package build

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// These can be overridden via ldflags:
// -X github.com/tacogips/pipegen/internal/build.version=x.y.z
var (
	version   string
	gitCommit = "unknown"
	buildDate = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
}

// Version returns the application version.
// Priority: ldflags/Set > embedded VERSION file
func Version() string {
	if version != "" && version != "dev" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}

// Set records values injected into package main at link time.
// Empty arguments leave the current value untouched.
func Set(v, commit, date string) {
	if v != "" {
		version = v
	}
	if commit != "" {
		gitCommit = commit
	}
	if date != "" {
		buildDate = date
	}
}

// Current returns the build information as a single value.
func Current() Info {
	return Info{
		Version:   Version(),
		Commit:    gitCommit,
		BuildDate: buildDate,
	}
}
