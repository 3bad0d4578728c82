package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/tacogips/pipegen/internal/config"
	"github.com/tacogips/pipegen/internal/debug"
	"github.com/tacogips/pipegen/internal/identity"
	"github.com/tacogips/pipegen/internal/pipeline"
	"github.com/tacogips/pipegen/internal/plan"
	"github.com/tacogips/pipegen/internal/template/generator"
	"github.com/tacogips/pipegen/internal/template/parser"
	"github.com/tacogips/pipegen/internal/template/provider"
)

// AnswerFunc collects answers for a discovered project, typically by prompting.
type AnswerFunc func(ctx context.Context, d *Discovery) (pipeline.PipelineAnswers, error)

// InitOptions configures Init and Preview.
type InitOptions struct {
	DiscoverOptions

	// Answer collects answers. When nil the discovered defaults are used as is.
	Answer AnswerFunc
	// Overrides win over anything Answer returns.
	Overrides Overrides

	// Overwrite replaces existing files under .ci/.
	Overwrite bool
	// DryRun renders the plan without writing.
	DryRun bool
}

// InitResult contains everything the workflow decided and did.
type InitResult struct {
	Discovery     *Discovery
	Answers       pipeline.PipelineAnswers
	Configuration *pipeline.PipelineConfiguration
	Plan          *plan.Plan
	// Files is nil for Preview.
	Files *generator.GenerateResult
}

// Init discovers the project, collects answers, resolves the configuration,
// builds the plan and materializes it (or dry-runs it).
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	debug.DebugSection("[app] Init workflow")

	result, err := prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	genOpts := generator.GenerateOptions{
		Plan:        result.Plan,
		Source:      provider.NewSource(cfg.Templates.Directory),
		Variables:   parser.NewMapVariables(result.Configuration.Variables()),
		OutputDir:   result.Discovery.Root,
		Overwrite:   opts.Overwrite,
		Concurrency: cfg.Templates.Concurrency,
	}

	gen := generator.NewGenerator()
	var files *generator.GenerateResult
	if opts.DryRun {
		files, err = gen.DryRun(ctx, genOpts)
	} else {
		files, err = gen.Generate(ctx, genOpts)
	}
	if err != nil {
		return nil, NewAppError(GenerateFailed, "failed to generate pipeline files", err)
	}
	result.Files = files

	debug.L().Debug("[app] init complete",
		zap.Bool("dryRun", opts.DryRun),
		zap.Int("created", files.FilesCreated),
		zap.Int("overwritten", files.FilesOverwritten),
		zap.Int("skipped", files.FilesSkipped))
	return result, nil
}

// Preview runs Init up to planning and writes nothing.
func Preview(ctx context.Context, opts InitOptions) (*InitResult, error) {
	debug.DebugSection("[app] Preview workflow")
	return prepare(ctx, opts)
}

// prepare runs discovery, answers, resolution and planning.
func prepare(ctx context.Context, opts InitOptions) (*InitResult, error) {
	log := debug.L()

	if opts.Config != nil {
		if err := config.Validate(opts.Config); err != nil {
			return nil, NewAppError(ValidationFailed, "invalid configuration", err)
		}
	}

	disc, err := Discover(ctx, opts.DiscoverOptions)
	if err != nil {
		return nil, err
	}

	var answers pipeline.PipelineAnswers
	if opts.Answer != nil {
		answers, err = opts.Answer(ctx, disc)
		if err != nil {
			return nil, NewAppError(AnswersFailed, "failed to collect answers", err)
		}
	} else {
		answers = disc.Defaults.Answers()
	}
	opts.Overrides.Apply(&answers)
	ApplyDefaults(&answers, disc.Defaults)

	// An empty URL (no origin remote, nothing answered) is malformed too.
	id, err := identity.Resolve(answers.RepositoryURL)
	if err != nil {
		return nil, NewAppError(ResolveFailed, "invalid repository URL", err)
	}

	pc, err := pipeline.Resolve(disc.Signals, id, answers)
	if err != nil {
		return nil, NewAppError(ResolveFailed, "failed to resolve pipeline configuration", err)
	}
	log.Debug("[app] resolved configuration",
		zap.String("pipeline", pc.PipelineName),
		zap.String("repository", pc.Repository),
		zap.Stringer("deploymentType", pc.DeploymentType),
		zap.String("testFolder", pc.TestFolder),
		zap.Bool("runTests", pc.RunTests))

	p, err := plan.Build(pc)
	if err != nil {
		return nil, NewAppError(PlanFailed, "failed to plan pipeline files", err)
	}
	log.Debug("[app] planned entries", zap.Strings("destinations", p.Destinations()))

	return &InitResult{
		Discovery:     disc,
		Answers:       answers,
		Configuration: pc,
		Plan:          p,
	}, nil
}
