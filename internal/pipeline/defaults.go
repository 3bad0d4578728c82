package pipeline

import (
	"github.com/tacogips/pipegen/internal/introspect"
)

// ScriptedTestCommand is the conventional test command assumed for scripted projects.
const ScriptedTestCommand = "npm test"

// Defaults are the values pre-filled in the prompts.
type Defaults struct {
	Name              string
	RepositoryURL     string
	UseVersioning     bool
	BuildPullRequests bool
	// DeploymentType is empty when the scan found no marker.
	DeploymentType DeploymentType
	RunTests       bool
	// TestSnippet is shown with the run-tests question. Empty means the
	// question is not asked.
	TestSnippet string
}

// AskRunTests reports whether the run-tests question applies.
func (d Defaults) AskRunTests() bool {
	return d.TestSnippet != ""
}

// DefaultPreferences carries the configurable yes/no defaults.
type DefaultPreferences struct {
	UseVersioning     bool
	BuildPullRequests bool
	RunTests          bool
}

// SuggestDefaults computes prompt defaults from the directory name, the
// remote URL reported by git and the scan.
func SuggestDefaults(dirName, remoteURL string, signals introspect.ProjectSignals, prefs DefaultPreferences) Defaults {
	d := Defaults{
		Name:              NormalizeName(dirName),
		RepositoryURL:     remoteURL,
		UseVersioning:     prefs.UseVersioning,
		BuildPullRequests: prefs.BuildPullRequests,
		RunTests:          prefs.RunTests,
	}
	if t, ok := Classify(signals); ok {
		d.DeploymentType = t
	}

	switch {
	case signals.HasTestProject():
		d.TestSnippet = signals.TestProjectPath
	case signals.HasScriptedProjects:
		d.TestSnippet = ScriptedTestCommand
	}
	return d
}

// Answers converts the defaults into an answer set, as if every prompt was
// accepted unchanged.
func (d Defaults) Answers() PipelineAnswers {
	a := PipelineAnswers{
		Name:              d.Name,
		RepositoryURL:     d.RepositoryURL,
		UseVersioning:     d.UseVersioning,
		BuildPullRequests: d.BuildPullRequests,
		DeploymentType:    d.DeploymentType,
	}
	if d.AskRunTests() {
		runTests := d.RunTests
		a.RunTests = &runTests
	}
	return a
}
