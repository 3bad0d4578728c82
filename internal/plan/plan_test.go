package plan

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tacogips/pipegen/internal/pipeline"
)

func TestBuild_ScenarioA(t *testing.T) {
	cfg := &pipeline.PipelineConfiguration{
		Repository:     "acme/widgets",
		TestFolder:     "tests/Api.Tests",
		UseVersioning:  true,
		DeploymentType: pipeline.CompiledPaas,
	}

	got, err := Build(cfg)
	require.NoError(t, err)

	want := []Entry{
		{TemplateID: TemplatePaaSConfig, Destination: ".ci/config/dev.json"},
		{TemplateID: TemplatePaaSConfig, Destination: ".ci/config/qa.json"},
		{TemplateID: TemplatePaaSConfig, Destination: ".ci/config/prod.json"},
		{TemplateID: TemplatePaaSDeploy, Destination: ".ci/scripts/deploy.sh"},
		{TemplateID: TemplateGenerateVersion, Destination: ".ci/scripts/generate_version.sh"},
		{TemplateID: TemplatePublishDotnet, Destination: ".ci/scripts/publish.sh"},
		{TemplateID: TemplatePipelineDotnet, Destination: ".ci/pipeline.yaml", RequiresSubstitution: true},
	}
	if diff := cmp.Diff(want, got.Entries); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 7, got.Len())
}

func TestBuild_ScenarioB(t *testing.T) {
	cfg := &pipeline.PipelineConfiguration{
		Repository:     "acme/widgets",
		UseVersioning:  false,
		DeploymentType: pipeline.ScriptedPaas,
	}

	got, err := Build(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{
		".ci/config/dev.json",
		".ci/config/qa.json",
		".ci/config/prod.json",
		".ci/scripts/deploy.sh",
	}, got.Destinations())
	for _, e := range got.Entries {
		assert.False(t, e.RequiresSubstitution, e.Destination)
	}
}

func TestBuild_Combinations(t *testing.T) {
	tests := []struct {
		name          string
		typ           pipeline.DeploymentType
		useVersioning bool
		wantLen       int
		wantPipeline  bool
	}{
		{"compiled with versioning", pipeline.CompiledPaas, true, 7, true},
		{"compiled without versioning", pipeline.CompiledPaas, false, 6, true},
		{"scripted with versioning", pipeline.ScriptedPaas, true, 5, false},
		{"scripted without versioning", pipeline.ScriptedPaas, false, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(&pipeline.PipelineConfiguration{DeploymentType: tt.typ, UseVersioning: tt.useVersioning})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, got.Len())

			substituted := 0
			for _, e := range got.Entries {
				if e.RequiresSubstitution {
					substituted++
					assert.Equal(t, DestPipeline, e.Destination)
				}
			}
			if tt.wantPipeline {
				assert.Equal(t, 1, substituted)
			} else {
				assert.Zero(t, substituted)
			}
		})
	}
}

func TestBuild_Deterministic(t *testing.T) {
	cfg := pipeline.PipelineConfiguration{
		PipelineName:   "widgets",
		UseVersioning:  true,
		RunTests:       true,
		DeploymentType: pipeline.CompiledPaas,
	}
	copyCfg := cfg

	first, err := Build(&cfg)
	require.NoError(t, err)
	second, err := Build(&copyCfg)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestBuild_ConfigurationError(t *testing.T) {
	tests := []struct {
		name string
		cfg  *pipeline.PipelineConfiguration
	}{
		{"nil configuration", nil},
		{"empty type", &pipeline.PipelineConfiguration{}},
		{"unknown paas type", &pipeline.PipelineConfiguration{DeploymentType: "java-app-service"}},
		{"unknown type", &pipeline.PipelineConfiguration{DeploymentType: "kubernetes", UseVersioning: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, got, "no partial plan on failure")
			assert.True(t, IsConfigurationError(err))
		})
	}
}
