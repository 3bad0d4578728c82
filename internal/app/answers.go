package app

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tacogips/pipegen/internal/pipeline"
)

// LoadAnswers decodes a YAML answers file. Unknown keys are rejected.
func LoadAnswers(path string) (pipeline.PipelineAnswers, error) {
	var answers pipeline.PipelineAnswers

	data, err := os.ReadFile(path)
	if err != nil {
		return answers, NewAppError(AnswersFailed, "failed to read answers file "+path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&answers); err != nil && !errors.Is(err, io.EOF) {
		return pipeline.PipelineAnswers{}, NewAppError(AnswersFailed, "invalid answers file "+path, err)
	}
	return answers, nil
}

// Overrides are answer values fixed on the command line.
type Overrides struct {
	Name           string
	RepositoryURL  string
	DeploymentType pipeline.DeploymentType
}

// Apply replaces the answers fields for every non-empty override.
func (o Overrides) Apply(a *pipeline.PipelineAnswers) {
	if o.Name != "" {
		a.Name = o.Name
	}
	if o.RepositoryURL != "" {
		a.RepositoryURL = o.RepositoryURL
	}
	if o.DeploymentType != "" {
		a.DeploymentType = o.DeploymentType
	}
}

// ApplyDefaults fills answers left empty with the discovered defaults.
// Booleans cannot be told apart from an explicit false and are left as is.
func ApplyDefaults(a *pipeline.PipelineAnswers, d pipeline.Defaults) {
	if a.Name == "" {
		a.Name = d.Name
	}
	if a.RepositoryURL == "" {
		a.RepositoryURL = d.RepositoryURL
	}
	if a.DeploymentType == "" {
		a.DeploymentType = d.DeploymentType
	}
}
