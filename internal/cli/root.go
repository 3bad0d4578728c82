// Package cli implements the pipegen command line.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacogips/pipegen/internal/build"
	"github.com/tacogips/pipegen/internal/config"
	"github.com/tacogips/pipegen/internal/debug"
	"github.com/tacogips/pipegen/internal/pipeline"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pipegen",
	Short: "CI pipeline scaffolding for .NET and Node.js App Service projects",
	Long: `pipegen inspects a repository and writes a ready-to-edit CI pipeline
under .ci/.

Use "pipegen init [path]" to:
  1. Detect .NET (src/**/*.csproj) or Node.js (package.json) projects
  2. Ask a few questions, pre-filled from the detected project and git remote
  3. Write deployment configs, scripts and the pipeline definition

Use "pipegen plan [path]" to see which files would be written.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		debug.Sync()
	},
}

// SetBuildInfo records version information injected into package main.
func SetBuildInfo(version, commit, date string) {
	build.Set(version, commit, date)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file at path, or the default location when
// path is empty. A missing default file yields defaults; a missing explicit
// file is an error.
func loadConfig(path string) (*config.Config, error) {
	loader := config.NewLoader()

	if path == "" {
		cfg, err := loader.LoadOrDefault(config.DefaultConfigPath())
		if err != nil {
			return nil, err
		}
		return finishConfig(cfg)
	}

	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}
	cfg, err := loader.Load(expanded)
	if err != nil {
		return nil, err
	}
	return finishConfig(cfg)
}

// finishConfig expands paths and applies the output section to the globals.
func finishConfig(cfg *config.Config) (*config.Config, error) {
	if cfg.Templates.Directory != "" {
		dir, err := config.ExpandPath(cfg.Templates.Directory)
		if err != nil {
			return nil, fmt.Errorf("invalid templates.directory: %w", err)
		}
		cfg.Templates.Directory = dir
	}
	if !cfg.Output.Color {
		globalNoColor = true
		debug.SetNoColor(true)
	}
	if cfg.Output.Quiet {
		globalQuiet = true
	}
	debug.DebugValue("config", cfg)
	return cfg, nil
}

// printError prints an error message to stderr
func printError(err error) {
	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		printErrorMsg("configuration: " + err.Error())
		return
	}
	printErrorMsg(err.Error())
	if pipeline.IsUnresolvable(err) {
		printErrorMsg(unresolvableHint())
	}
}

// unresolvableHint tells the user how to pick a deployment type when none was detected.
func unresolvableHint() string {
	return fmt.Sprintf("pass --%s %s to choose the deployment type", FlagType,
		strings.Join(deploymentTypeOptions(), "|"))
}
