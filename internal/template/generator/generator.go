// Package generator materializes a plan into files under a project root.
package generator

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/tacogips/pipegen/internal/debug"
	"github.com/tacogips/pipegen/internal/plan"
	"github.com/tacogips/pipegen/internal/template/parser"
	"github.com/tacogips/pipegen/internal/template/provider"
)

// DefaultConcurrency is used when GenerateOptions.Concurrency is not positive.
const DefaultConcurrency = 4

const (
	modeExecutable fs.FileMode = 0755
	modeRegular    fs.FileMode = 0644
)

// Generator materializes plans.
type Generator interface {
	// Generate writes every plan entry below opts.OutputDir.
	Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)

	// DryRun renders every entry and reports what Generate would do, without writing.
	DryRun(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures plan materialization.
type GenerateOptions struct {
	Plan *plan.Plan

	// Source supplies template content by ID.
	Source provider.Source

	// Variables is used for entries that require substitution.
	Variables parser.Variables

	// OutputDir is the project root destinations are resolved against.
	OutputDir string

	// Overwrite replaces existing files; otherwise they are skipped.
	Overwrite bool

	// Concurrency bounds parallel entries. Defaults to DefaultConcurrency.
	Concurrency int
}

// Action is what happened (or would happen) to a destination.
type Action int

const (
	ActionCreated Action = iota
	ActionOverwritten
	ActionSkipped
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionCreated:
		return "create"
	case ActionOverwritten:
		return "overwrite"
	case ActionSkipped:
		return "skip"
	default:
		return "unknown"
	}
}

// FileResult describes one materialized entry.
type FileResult struct {
	// Destination is the plan destination, relative to OutputDir.
	Destination string
	// Path is the absolute or OutputDir-joined filesystem path.
	Path        string
	TemplateID  string
	Substituted bool
	// Variables lists the variables a substituted template references.
	Variables []string
	Action    Action
	Mode      fs.FileMode
	// Content is the rendered content; populated in dry-run only.
	Content []byte
}

// GenerateResult contains generation results in plan order.
type GenerateResult struct {
	Files []FileResult

	FilesCreated     int
	FilesOverwritten int
	FilesSkipped     int
}

// DefaultGenerator implements Generator.
type DefaultGenerator struct {
	parser parser.Parser
	writer Writer
}

// NewGenerator creates a new DefaultGenerator.
func NewGenerator() Generator {
	return &DefaultGenerator{
		parser: parser.NewParser(),
		writer: NewFileWriter(),
	}
}

// Generate writes every plan entry below opts.OutputDir.
func (g *DefaultGenerator) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	return g.generate(ctx, opts, false)
}

// DryRun renders every entry and reports what Generate would do, without writing.
func (g *DefaultGenerator) DryRun(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	return g.generate(ctx, opts, true)
}

func (g *DefaultGenerator) generate(ctx context.Context, opts GenerateOptions, dryRun bool) (*GenerateResult, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	// Reject the whole plan before touching the filesystem.
	for _, e := range opts.Plan.Entries {
		if err := ValidateDestination(e.Destination); err != nil {
			return nil, err
		}
	}
	templates, err := g.loadTemplates(opts.Plan, opts.Source)
	if err != nil {
		return nil, err
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	debug.Debug("[generator] Materializing %d entries into %s (dryRun=%v, overwrite=%v, concurrency=%d)",
		opts.Plan.Len(), opts.OutputDir, dryRun, opts.Overwrite, limit)

	files := make([]FileResult, opts.Plan.Len())
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, entry := range opts.Plan.Entries {
		if egctx.Err() != nil {
			break
		}
		i, entry := i, entry
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			fr, err := g.materialize(egctx, entry, templates[entry.TemplateID], opts, dryRun)
			if err != nil {
				return err
			}
			files[i] = fr
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		debug.Debug("[generator] Materialization failed: %v", err)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &GenerateResult{Files: files}
	for _, f := range files {
		switch f.Action {
		case ActionCreated:
			result.FilesCreated++
		case ActionOverwritten:
			result.FilesOverwritten++
		case ActionSkipped:
			result.FilesSkipped++
		}
	}
	debug.Debug("[generator] Done: created=%d, overwritten=%d, skipped=%d",
		result.FilesCreated, result.FilesOverwritten, result.FilesSkipped)
	return result, nil
}

// loadedTemplate is a template read and checked before any entry is written.
type loadedTemplate struct {
	content []byte
	// variables is set for templates used by substituted entries.
	variables []string
}

// loadTemplates reads every template the plan uses once. Templates of
// substituted entries are syntax-checked, so a broken template from a
// user directory fails the run before the first file is written.
func (g *DefaultGenerator) loadTemplates(p *plan.Plan, src provider.Source) (map[string]loadedTemplate, error) {
	templates := make(map[string]loadedTemplate)
	for _, e := range p.Entries {
		t, ok := templates[e.TemplateID]
		if !ok {
			content, err := src.Read(e.TemplateID)
			if err != nil {
				return nil, newGeneratorError(GeneratorSourceFailed, "failed to read template", e.Destination, err)
			}
			t.content = content
		}
		if e.RequiresSubstitution && t.variables == nil {
			if err := g.parser.Validate(t.content); err != nil {
				return nil, newGeneratorError(GeneratorProcessFailed, "invalid template "+e.TemplateID, e.Destination, err)
			}
			t.variables = g.parser.ExtractVariables(t.content)
			debug.Debug("[generator] %s (%s) references %v", e.TemplateID, src.Name(), t.variables)
		}
		templates[e.TemplateID] = t
	}
	return templates, nil
}

// materialize renders one entry and, unless dryRun, writes it.
func (g *DefaultGenerator) materialize(ctx context.Context, e plan.Entry, t loadedTemplate, opts GenerateOptions, dryRun bool) (FileResult, error) {
	fr := FileResult{
		Destination: e.Destination,
		Path:        filepath.Join(opts.OutputDir, filepath.FromSlash(e.Destination)),
		TemplateID:  e.TemplateID,
		Substituted: e.RequiresSubstitution,
		Mode:        FileMode(e.Destination),
	}
	if e.RequiresSubstitution {
		fr.Variables = t.variables
	}

	exists := g.writer.Exists(fr.Path)
	switch {
	case exists && !opts.Overwrite:
		debug.Debug("[generator] Skipping existing file: %s", e.Destination)
		fr.Action = ActionSkipped
		return fr, nil
	case exists:
		fr.Action = ActionOverwritten
	default:
		fr.Action = ActionCreated
	}

	content := t.content
	if e.RequiresSubstitution {
		var err error
		content, err = g.parser.Parse(ctx, content, opts.Variables)
		if err != nil {
			return fr, newGeneratorError(GeneratorProcessFailed, "failed to render template", e.Destination, err)
		}
	}

	if dryRun {
		fr.Content = content
		return fr, nil
	}

	if err := g.writer.WriteFile(fr.Path, content, fr.Mode); err != nil {
		return fr, err
	}
	return fr, nil
}

// FileMode returns the permission bits for a destination: shell scripts are executable.
func FileMode(dest string) fs.FileMode {
	if strings.HasSuffix(dest, ".sh") {
		return modeExecutable
	}
	return modeRegular
}

// ValidateDestination rejects empty, absolute, or traversing destinations.
func ValidateDestination(dest string) error {
	if dest == "" {
		return newGeneratorError(GeneratorPathError, "destination is empty", dest, nil)
	}
	if strings.HasPrefix(dest, "/") || filepath.IsAbs(dest) || strings.Contains(dest, "\\") {
		return newGeneratorError(GeneratorPathError, "destination must be relative", dest, nil)
	}
	for _, seg := range strings.Split(dest, "/") {
		if seg == ".." {
			return newGeneratorError(GeneratorPathError, "destination must not traverse upward", dest, nil)
		}
	}
	if !fs.ValidPath(path.Clean(dest)) {
		return newGeneratorError(GeneratorPathError, "invalid destination", dest, nil)
	}
	return nil
}

func validateOptions(opts GenerateOptions) error {
	if opts.Plan == nil {
		return newGeneratorError(GeneratorInvalidOptions, "plan is nil", "", nil)
	}
	if opts.Source == nil {
		return newGeneratorError(GeneratorInvalidOptions, "template source is nil", "", nil)
	}
	if opts.OutputDir == "" {
		return newGeneratorError(GeneratorInvalidOptions, "output directory is empty", "", nil)
	}
	if opts.Variables == nil {
		for _, e := range opts.Plan.Entries {
			if e.RequiresSubstitution {
				return newGeneratorError(GeneratorInvalidOptions, "variables are required for substituted entries", e.Destination, nil)
			}
		}
	}
	if info, err := os.Stat(opts.OutputDir); err == nil && !info.IsDir() {
		return newGeneratorError(GeneratorInvalidOptions, "output path is not a directory", opts.OutputDir, nil)
	}
	return nil
}
