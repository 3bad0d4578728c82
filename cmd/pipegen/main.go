package main

import (
	"github.com/tacogips/pipegen/internal/cli"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	// Set version info from build-time variables
	cli.SetBuildInfo(version, gitCommit, buildDate)

	// Execute the root command
	cli.Execute()
}
