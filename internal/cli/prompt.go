package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/tacogips/pipegen/internal/app"
	"github.com/tacogips/pipegen/internal/identity"
	"github.com/tacogips/pipegen/internal/pipeline"
)

// askOne is survey.AskOne; tests replace it.
var askOne = survey.AskOne

// PromptAnswers asks the pipeline questions with defaults taken from the
// discovered project. It satisfies app.AnswerFunc.
func PromptAnswers(ctx context.Context, d *app.Discovery) (pipeline.PipelineAnswers, error) {
	var answers pipeline.PipelineAnswers
	defaults := d.Defaults

	if err := askOne(&survey.Input{
		Message: "What is the name of your pipeline?",
		Default: defaults.Name,
	}, &answers.Name, survey.WithValidator(survey.Required)); err != nil {
		return answers, err
	}

	if err := askOne(&survey.Input{
		Message: "Where is your source code?",
		Default: defaults.RepositoryURL,
		Help:    "Repository URL, e.g. https://github.com/owner/repo or git@github.com:owner/repo.git",
	}, &answers.RepositoryURL, survey.WithValidator(survey.ComposeValidators(survey.Required, validateRepositoryURL))); err != nil {
		return answers, err
	}

	if err := askOne(&survey.Confirm{
		Message: "Do you want to use github flow versioning?",
		Default: defaults.UseVersioning,
	}, &answers.UseVersioning); err != nil {
		return answers, err
	}

	if err := askOne(&survey.Confirm{
		Message: "Do you want to build pull requests?",
		Default: defaults.BuildPullRequests,
	}, &answers.BuildPullRequests); err != nil {
		return answers, err
	}

	var deploymentType string
	selectPrompt := &survey.Select{
		Message: "What kind of project would you like to create?",
		Options: deploymentTypeOptions(),
	}
	if defaults.DeploymentType != "" {
		selectPrompt.Default = defaults.DeploymentType.String()
	}
	if err := askOne(selectPrompt, &deploymentType); err != nil {
		return answers, err
	}
	answers.DeploymentType = pipeline.DeploymentType(deploymentType)

	if defaults.AskRunTests() {
		runTests := defaults.RunTests
		if err := askOne(&survey.Confirm{
			Message: runTestsMessage(defaults.TestSnippet),
			Default: defaults.RunTests,
		}, &runTests); err != nil {
			return answers, err
		}
		answers.RunTests = &runTests
	}

	if err := ctx.Err(); err != nil {
		return answers, err
	}
	return answers, nil
}

// runTestsMessage shows what would run, e.g. "[tests/Api.Tests]" or "[npm test]".
func runTestsMessage(snippet string) string {
	return fmt.Sprintf("Do you want to run tests? [%s]", snippet)
}

func deploymentTypeOptions() []string {
	types := pipeline.DeploymentTypes()
	opts := make([]string, len(types))
	for i, t := range types {
		opts[i] = t.String()
	}
	return opts
}

// validateRepositoryURL is a survey.Validator accepting URLs with an owner and a name.
func validateRepositoryURL(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return errors.New("repository URL must be text")
	}
	if _, err := identity.Resolve(s); err != nil {
		return fmt.Errorf("expected a URL like https://github.com/owner/repo: %w", err)
	}
	return nil
}
