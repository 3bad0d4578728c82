package pipeline

import (
	"strings"

	"github.com/tacogips/pipegen/internal/identity"
	"github.com/tacogips/pipegen/internal/introspect"
)

// NormalizeName lowercases name and replaces spaces with hyphens.
// Applying it twice gives the same result as applying it once.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// Classify derives the deployment type from the scan. Compiled projects take
// precedence over scripted ones; ok is false when neither marker was found.
func Classify(signals introspect.ProjectSignals) (DeploymentType, bool) {
	switch {
	case signals.HasCompiledProjects:
		return CompiledPaas, true
	case signals.HasScriptedProjects:
		return ScriptedPaas, true
	default:
		return "", false
	}
}

// Resolve combines the inputs into a PipelineConfiguration. It performs no I/O.
//
// An empty answers.DeploymentType falls back to Classify; a nil RunTests
// (question not asked) resolves to true. An explicit deployment type is
// copied as given; the planner rejects values it does not know.
func Resolve(signals introspect.ProjectSignals, id *identity.RepositoryIdentity, answers PipelineAnswers) (*PipelineConfiguration, error) {
	if id == nil {
		return nil, newResolveError(MissingIdentity, "repository identity is required", "")
	}

	deploymentType := answers.DeploymentType
	if deploymentType == "" {
		classified, ok := Classify(signals)
		if !ok {
			return nil, newResolveError(UnresolvableDeploymentType,
				"no .csproj under src/ or package.json found; choose a deployment type explicitly", "")
		}
		deploymentType = classified
	}
	runTests := true
	if answers.RunTests != nil {
		runTests = *answers.RunTests
	}

	return &PipelineConfiguration{
		PipelineName:      NormalizeName(answers.Name),
		Repository:        id.FullName(),
		RepositoryOwner:   id.Owner,
		RepositoryName:    id.Name,
		RepositoryURI:     id.CanonicalURI,
		TestFolder:        signals.TestProjectPath,
		BuildPullRequests: answers.BuildPullRequests,
		UseVersioning:     answers.UseVersioning,
		RunTests:          runTests,
		DeploymentType:    deploymentType,
	}, nil
}
