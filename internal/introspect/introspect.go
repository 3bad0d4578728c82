// Package introspect scans a repository tree for project-type markers.
//
// The scan runs over an fs.FS snapshot so callers can pass os.DirFS for a
// real checkout or a synthetic tree in tests. Matching is glob based and
// results are ordered lexicographically, which makes "last match wins" for
// the test project deterministic.
package introspect

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tacogips/pipegen/internal/debug"
)

// ProjectSignals is the immutable result of one scan.
type ProjectSignals struct {
	// HasCompiledProjects is true when a compiled-project descriptor exists under src/.
	HasCompiledProjects bool `json:"has_compiled_projects" yaml:"has_compiled_projects"`
	// HasScriptedProjects is true when a package manifest exists outside ignored directories.
	HasScriptedProjects bool `json:"has_scripted_projects" yaml:"has_scripted_projects"`
	// TestProjectPath is the slash-separated directory of the selected test
	// descriptor, or empty when none was found.
	TestProjectPath string `json:"test_project_path,omitempty" yaml:"test_project_path,omitempty"`
}

// HasTestProject reports whether a test project directory was found.
func (s ProjectSignals) HasTestProject() bool {
	return s.TestProjectPath != ""
}

// Options configures which files count as markers.
type Options struct {
	CompiledPattern string
	ScriptedPattern string
	TestPattern     string
	// IgnoreDirs are directory names; any match with such a path segment is dropped.
	IgnoreDirs []string
}

// DefaultOptions returns the patterns for .NET and npm projects.
func DefaultOptions() Options {
	return Options{
		CompiledPattern: "src/**/*.csproj",
		ScriptedPattern: "**/package.json",
		TestPattern:     "tests/**/*.csproj",
		IgnoreDirs:      []string{"node_modules"},
	}
}

// Scan inspects fsys and returns the project signals.
// An empty or marker-free tree yields zero signals and no error; errors are
// reserved for invalid patterns and unreadable directories.
func Scan(fsys fs.FS, opts Options) (ProjectSignals, error) {
	debug.DebugSection("[introspect] Scan")

	var signals ProjectSignals

	compiled, err := find(fsys, opts.CompiledPattern, opts.IgnoreDirs)
	if err != nil {
		return ProjectSignals{}, err
	}
	signals.HasCompiledProjects = len(compiled) > 0

	scripted, err := find(fsys, opts.ScriptedPattern, opts.IgnoreDirs)
	if err != nil {
		return ProjectSignals{}, err
	}
	signals.HasScriptedProjects = len(scripted) > 0

	tests, err := find(fsys, opts.TestPattern, opts.IgnoreDirs)
	if err != nil {
		return ProjectSignals{}, err
	}
	if len(tests) > 0 {
		// last match wins
		signals.TestProjectPath = path.Dir(tests[len(tests)-1])
	}

	debug.Debug("[introspect] compiled=%d scripted=%d tests=%d testProjectPath=%q",
		len(compiled), len(scripted), len(tests), signals.TestProjectPath)

	return signals, nil
}

// find returns the sorted files matching pattern, minus ignored directories.
// An empty pattern disables the marker.
func find(fsys fs.FS, pattern string, ignoreDirs []string) ([]string, error) {
	if pattern == "" {
		return nil, nil
	}

	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", pattern, err)
	}

	kept := matches[:0]
	for _, m := range matches {
		if inIgnoredDir(m, ignoreDirs) {
			continue
		}
		kept = append(kept, m)
	}
	sort.Strings(kept)
	return kept, nil
}

// inIgnoredDir reports whether any directory segment of p is in ignoreDirs.
func inIgnoredDir(p string, ignoreDirs []string) bool {
	if len(ignoreDirs) == 0 {
		return false
	}
	segments := strings.Split(path.Dir(p), "/")
	for _, seg := range segments {
		for _, ignored := range ignoreDirs {
			if seg == ignored {
				return true
			}
		}
	}
	return false
}
