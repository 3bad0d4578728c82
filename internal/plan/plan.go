// Package plan decides which pipeline templates to materialize and where.
package plan

import (
	"github.com/tacogips/pipegen/internal/pipeline"
)

// Template identifiers, relative to the template source root.
const (
	TemplatePaaSConfig      = "config/deploy.paas.template"
	TemplatePaaSDeploy      = "scripts/deploy.paas.template"
	TemplateGenerateVersion = "scripts/generate_version.template"
	TemplatePublishDotnet   = "scripts/publish.dotnet.template"
	TemplatePipelineDotnet  = "pipeline.dotnet.paas.template"
)

// Destination paths, relative to the project root.
const (
	DestDevConfig       = ".ci/config/dev.json"
	DestQAConfig        = ".ci/config/qa.json"
	DestProdConfig      = ".ci/config/prod.json"
	DestDeployScript    = ".ci/scripts/deploy.sh"
	DestGenerateVersion = ".ci/scripts/generate_version.sh"
	DestPublishScript   = ".ci/scripts/publish.sh"
	DestPipeline        = ".ci/pipeline.yaml"
)

// Entry is one materialization instruction.
type Entry struct {
	TemplateID  string `json:"template" yaml:"template"`
	Destination string `json:"destination" yaml:"destination"`
	// RequiresSubstitution marks entries rendered against the configuration;
	// all others are copied verbatim.
	RequiresSubstitution bool `json:"substitute" yaml:"substitute"`
}

// Plan is an ordered list of independent entries. Order only affects output.
type Plan struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Len returns the number of entries.
func (p *Plan) Len() int {
	return len(p.Entries)
}

// Destinations returns the destination paths in plan order.
func (p *Plan) Destinations() []string {
	out := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.Destination
	}
	return out
}

func (p *Plan) copyOf(templateID, dest string) {
	p.Entries = append(p.Entries, Entry{TemplateID: templateID, Destination: dest})
}

func (p *Plan) render(templateID, dest string) {
	p.Entries = append(p.Entries, Entry{TemplateID: templateID, Destination: dest, RequiresSubstitution: true})
}

// Build returns the plan for cfg. The rules are evaluated independently:
//
//	PaaS type        -> dev/qa/prod config + deploy script
//	UseVersioning    -> version script
//	CompiledPaas     -> publish script + substituted pipeline definition
//
// ScriptedPaas has no type-specific entries. Deployment types that are not
// known values are rejected rather than planned as an empty subset.
func Build(cfg *pipeline.PipelineConfiguration) (*Plan, error) {
	if cfg == nil {
		return nil, newConfigurationError("configuration is nil", "")
	}
	if !cfg.DeploymentType.Valid() {
		return nil, newConfigurationError("unknown deployment type", string(cfg.DeploymentType))
	}

	p := &Plan{}

	if cfg.DeploymentType.IsPaaS() {
		p.copyOf(TemplatePaaSConfig, DestDevConfig)
		p.copyOf(TemplatePaaSConfig, DestQAConfig)
		p.copyOf(TemplatePaaSConfig, DestProdConfig)
		p.copyOf(TemplatePaaSDeploy, DestDeployScript)
	}

	if cfg.UseVersioning {
		p.copyOf(TemplateGenerateVersion, DestGenerateVersion)
	}

	if cfg.DeploymentType == pipeline.CompiledPaas {
		p.copyOf(TemplatePublishDotnet, DestPublishScript)
		p.render(TemplatePipelineDotnet, DestPipeline)
	}

	return p, nil
}
