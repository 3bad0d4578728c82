// Package pipeline resolves introspection results, repository identity and
// user answers into one closed PipelineConfiguration.
package pipeline

import "strings"

// DeploymentType selects the deployment flow of the generated pipeline.
type DeploymentType string

const (
	// CompiledPaas deploys a compiled (.NET) project to an app service.
	CompiledPaas DeploymentType = "dotnet-app-service"
	// ScriptedPaas deploys a scripted (npm) project to an app service.
	ScriptedPaas DeploymentType = "node-app-service"
)

// PaaSMarker is the substring shared by every PaaS-style deployment type.
const PaaSMarker = "app-service"

// DeploymentTypes lists the selectable types in prompt order.
func DeploymentTypes() []DeploymentType {
	return []DeploymentType{CompiledPaas, ScriptedPaas}
}

// IsPaaS reports whether t targets a platform-as-a-service.
func (t DeploymentType) IsPaaS() bool {
	return strings.Contains(string(t), PaaSMarker)
}

// Valid reports whether t is one of the known deployment types.
func (t DeploymentType) Valid() bool {
	return t == CompiledPaas || t == ScriptedPaas
}

func (t DeploymentType) String() string {
	return string(t)
}

// PipelineAnswers is the answer set collected from the user, interactively
// or from an answers file.
type PipelineAnswers struct {
	Name              string         `json:"name" yaml:"name"`
	RepositoryURL     string         `json:"repository" yaml:"repository"`
	UseVersioning     bool           `json:"use_versioning" yaml:"use_versioning"`
	BuildPullRequests bool           `json:"build_pull_requests" yaml:"build_pull_requests"`
	DeploymentType    DeploymentType `json:"deployment_type,omitempty" yaml:"deployment_type,omitempty"`
	// RunTests is nil when the question was never asked.
	RunTests *bool `json:"run_tests,omitempty" yaml:"run_tests,omitempty"`
}

// PipelineConfiguration is the fully resolved input of the planner.
type PipelineConfiguration struct {
	PipelineName      string         `json:"pipeline_name" yaml:"pipeline_name"`
	Repository        string         `json:"repository" yaml:"repository"`
	RepositoryOwner   string         `json:"repository_owner" yaml:"repository_owner"`
	RepositoryName    string         `json:"repository_name" yaml:"repository_name"`
	RepositoryURI     string         `json:"repository_uri" yaml:"repository_uri"`
	TestFolder        string         `json:"test_folder,omitempty" yaml:"test_folder,omitempty"`
	BuildPullRequests bool           `json:"build_pull_requests" yaml:"build_pull_requests"`
	UseVersioning     bool           `json:"use_versioning" yaml:"use_versioning"`
	RunTests          bool           `json:"run_tests" yaml:"run_tests"`
	DeploymentType    DeploymentType `json:"deployment_type" yaml:"deployment_type"`
}

// Variables returns the template variables for substituted entries.
// gitHubVersioning is kept as an alias of useVersioning for existing templates.
func (c *PipelineConfiguration) Variables() map[string]interface{} {
	return map[string]interface{}{
		"pipelineName":      c.PipelineName,
		"repository":        c.Repository,
		"repositoryOwner":   c.RepositoryOwner,
		"repositoryName":    c.RepositoryName,
		"repositoryUri":     c.RepositoryURI,
		"testFolder":        c.TestFolder,
		"hasTestFolder":     c.TestFolder != "",
		"buildPullRequests": c.BuildPullRequests,
		"useVersioning":     c.UseVersioning,
		"gitHubVersioning":  c.UseVersioning,
		"runTests":          c.RunTests,
		"deploymentType":    string(c.DeploymentType),
	}
}
