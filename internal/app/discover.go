// Package app implements the pipegen workflows on top of the scanning,
// resolution, planning and generation packages.
package app

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tacogips/pipegen/internal/config"
	"github.com/tacogips/pipegen/internal/debug"
	"github.com/tacogips/pipegen/internal/git"
	"github.com/tacogips/pipegen/internal/introspect"
	"github.com/tacogips/pipegen/internal/pipeline"
)

// DiscoverOptions configures project discovery.
type DiscoverOptions struct {
	// Root is the project directory. Defaults to the working directory.
	Root string
	// Config supplies scan patterns and default answers. Defaults to config.DefaultConfig().
	Config *config.Config
	// Runner executes git. Defaults to git.NewExecRunner().
	Runner git.Runner
}

// Discovery is everything known about a project before any question is asked.
type Discovery struct {
	// Root is the absolute project directory.
	Root      string
	Signals   introspect.ProjectSignals
	RemoteURL string
	Defaults  pipeline.Defaults
}

// Discover scans the project root and computes prompt defaults.
func Discover(ctx context.Context, opts DiscoverOptions) (*Discovery, error) {
	log := debug.L()

	root := opts.Root
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, NewAppError(ValidationFailed, "failed to resolve project directory", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, NewAppError(ValidationFailed, "project directory is not accessible", err)
	}
	if !info.IsDir() {
		return nil, NewAppError(ValidationFailed, "project path is not a directory: "+absRoot, nil)
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	runner := opts.Runner
	if runner == nil {
		runner = git.NewExecRunner()
	}

	signals, err := introspect.Scan(os.DirFS(absRoot), scanOptions(cfg))
	if err != nil {
		return nil, NewAppError(DiscoveryFailed, "failed to scan project", err)
	}
	log.Debug("[app] scanned project",
		zap.String("root", absRoot),
		zap.Bool("compiled", signals.HasCompiledProjects),
		zap.Bool("scripted", signals.HasScriptedProjects),
		zap.String("testProject", signals.TestProjectPath))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	remoteURL, _ := git.OriginURL(ctx, runner, absRoot)
	defaults := pipeline.SuggestDefaults(filepath.Base(absRoot), remoteURL, signals, pipeline.DefaultPreferences{
		UseVersioning:     cfg.Defaults.UseVersioning,
		BuildPullRequests: cfg.Defaults.BuildPullRequests,
		RunTests:          cfg.Defaults.RunTests,
	})
	log.Debug("[app] suggested defaults",
		zap.String("name", defaults.Name),
		zap.String("repository", defaults.RepositoryURL),
		zap.Stringer("deploymentType", defaults.DeploymentType),
		zap.String("testSnippet", defaults.TestSnippet))

	return &Discovery{
		Root:      absRoot,
		Signals:   signals,
		RemoteURL: remoteURL,
		Defaults:  defaults,
	}, nil
}

func scanOptions(cfg *config.Config) introspect.Options {
	opts := introspect.DefaultOptions()
	if cfg.Scan.CompiledPattern != "" {
		opts.CompiledPattern = cfg.Scan.CompiledPattern
	}
	if cfg.Scan.ScriptedPattern != "" {
		opts.ScriptedPattern = cfg.Scan.ScriptedPattern
	}
	if cfg.Scan.TestPattern != "" {
		opts.TestPattern = cfg.Scan.TestPattern
	}
	if cfg.Scan.IgnoreDirs != nil {
		opts.IgnoreDirs = cfg.Scan.IgnoreDirs
	}
	return opts
}
