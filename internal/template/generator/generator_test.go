package generator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tacogips/pipegen/internal/plan"
	"github.com/tacogips/pipegen/internal/template/parser"
	"github.com/tacogips/pipegen/internal/template/provider"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mapSource serves templates from memory.
type mapSource map[string]string

func (s mapSource) Name() string { return "map" }

func (s mapSource) Read(id string) ([]byte, error) {
	content, ok := s[id]
	if !ok {
		return nil, provider.NewProviderError(provider.TemplateNotFound, s.Name(), id, nil)
	}
	return []byte(content), nil
}

func testSource() mapSource {
	return mapSource{
		plan.TemplatePaaSConfig:      `{"slot":"production"}`,
		plan.TemplatePaaSDeploy:      "#!/usr/bin/env bash\necho deploy\n",
		plan.TemplateGenerateVersion: "#!/usr/bin/env bash\necho 1.0.0\n",
		plan.TemplatePublishDotnet:   "#!/usr/bin/env bash\ndotnet publish @pipe-var:untouched@\n",
		plan.TemplatePipelineDotnet:  "name: @pipe-var:pipelineName@\n@pipe-if:runTests@test: true\n@pipe-endif@",
	}
}

func compiledPlan() *plan.Plan {
	return &plan.Plan{Entries: []plan.Entry{
		{TemplateID: plan.TemplatePaaSConfig, Destination: plan.DestDevConfig},
		{TemplateID: plan.TemplatePaaSConfig, Destination: plan.DestQAConfig},
		{TemplateID: plan.TemplatePaaSConfig, Destination: plan.DestProdConfig},
		{TemplateID: plan.TemplatePaaSDeploy, Destination: plan.DestDeployScript},
		{TemplateID: plan.TemplateGenerateVersion, Destination: plan.DestGenerateVersion},
		{TemplateID: plan.TemplatePublishDotnet, Destination: plan.DestPublishScript},
		{TemplateID: plan.TemplatePipelineDotnet, Destination: plan.DestPipeline, RequiresSubstitution: true},
	}}
}

func testOptions(dir string) GenerateOptions {
	return GenerateOptions{
		Plan:      compiledPlan(),
		Source:    testSource(),
		Variables: parser.NewMapVariables(map[string]interface{}{"pipelineName": "widgets", "runTests": true}),
		OutputDir: dir,
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerate_WritesPlan(t *testing.T) {
	dir := t.TempDir()

	result, err := NewGenerator().Generate(context.Background(), testOptions(dir))
	require.NoError(t, err)

	assert.Equal(t, 7, result.FilesCreated)
	assert.Zero(t, result.FilesSkipped)
	assert.Zero(t, result.FilesOverwritten)

	assert.Equal(t, "name: widgets\ntest: true\n", readFile(t, filepath.Join(dir, ".ci", "pipeline.yaml")))
	// Verbatim entries keep directive text as is.
	assert.Contains(t, readFile(t, filepath.Join(dir, ".ci", "scripts", "publish.sh")), "@pipe-var:untouched@")
	assert.Equal(t, `{"slot":"production"}`, readFile(t, filepath.Join(dir, ".ci", "config", "qa.json")))

	for _, f := range result.Files {
		assert.Nil(t, f.Content, f.Destination)
	}
}

func TestGenerate_FileModes(t *testing.T) {
	dir := t.TempDir()
	_, err := NewGenerator().Generate(context.Background(), testOptions(dir))
	require.NoError(t, err)

	tests := []struct {
		dest string
		mode os.FileMode
	}{
		{dest: plan.DestDeployScript, mode: 0755},
		{dest: plan.DestGenerateVersion, mode: 0755},
		{dest: plan.DestPublishScript, mode: 0755},
		{dest: plan.DestPipeline, mode: 0644},
		{dest: plan.DestDevConfig, mode: 0644},
	}
	for _, tt := range tests {
		t.Run(tt.dest, func(t *testing.T) {
			info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(tt.dest)))
			require.NoError(t, err)
			assert.Equal(t, tt.mode, info.Mode().Perm())
		})
	}
}

func TestGenerate_ResultOrderFollowsPlan(t *testing.T) {
	for _, concurrency := range []int{1, 3, 16} {
		opts := testOptions(t.TempDir())
		opts.Concurrency = concurrency

		result, err := NewGenerator().Generate(context.Background(), opts)
		require.NoError(t, err)

		got := make([]string, len(result.Files))
		for i, f := range result.Files {
			got[i] = f.Destination
		}
		assert.Equal(t, opts.Plan.Destinations(), got, "concurrency=%d", concurrency)
	}
}

func TestGenerate_SkipsExistingUnlessOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, ".ci", "pipeline.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0o755))
	require.NoError(t, os.WriteFile(existing, []byte("hand edited"), 0o644))

	result, err := NewGenerator().Generate(context.Background(), testOptions(dir))
	require.NoError(t, err)
	assert.Equal(t, 6, result.FilesCreated)
	assert.Equal(t, 1, result.FilesSkipped)
	assert.Equal(t, ActionSkipped, result.Files[6].Action)
	assert.Equal(t, "hand edited", readFile(t, existing))

	opts := testOptions(dir)
	opts.Overwrite = true
	result, err = NewGenerator().Generate(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 7, result.FilesOverwritten)
	assert.Equal(t, "name: widgets\ntest: true\n", readFile(t, existing))
}

func TestDryRun_WritesNothing(t *testing.T) {
	dir := t.TempDir()

	result, err := NewGenerator().DryRun(context.Background(), testOptions(dir))
	require.NoError(t, err)
	assert.Equal(t, 7, result.FilesCreated)
	assert.Equal(t, "name: widgets\ntest: true\n", string(result.Files[6].Content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GenerateOptions)
		errType GeneratorErrorType
	}{
		{
			name:    "nil plan",
			mutate:  func(o *GenerateOptions) { o.Plan = nil },
			errType: GeneratorInvalidOptions,
		},
		{
			name:    "nil source",
			mutate:  func(o *GenerateOptions) { o.Source = nil },
			errType: GeneratorInvalidOptions,
		},
		{
			name:    "nil variables with substituted entry",
			mutate:  func(o *GenerateOptions) { o.Variables = nil },
			errType: GeneratorInvalidOptions,
		},
		{
			name: "absolute destination",
			mutate: func(o *GenerateOptions) {
				o.Plan.Entries = append(o.Plan.Entries, plan.Entry{TemplateID: plan.TemplatePaaSConfig, Destination: "/etc/ci.json"})
			},
			errType: GeneratorPathError,
		},
		{
			name: "traversing destination",
			mutate: func(o *GenerateOptions) {
				o.Plan.Entries = append(o.Plan.Entries, plan.Entry{TemplateID: plan.TemplatePaaSConfig, Destination: ".ci/../../x.json"})
			},
			errType: GeneratorPathError,
		},
		{
			name: "missing template",
			mutate: func(o *GenerateOptions) {
				delete(o.Source.(mapSource), plan.TemplateGenerateVersion)
			},
			errType: GeneratorSourceFailed,
		},
		{
			name: "render failure",
			mutate: func(o *GenerateOptions) {
				o.Variables = parser.NewMapVariables(nil)
			},
			errType: GeneratorProcessFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(t.TempDir())
			tt.mutate(&opts)

			_, err := NewGenerator().Generate(context.Background(), opts)
			var gerr *GeneratorError
			require.True(t, errors.As(err, &gerr), "expected *GeneratorError, got %v", err)
			assert.Equal(t, tt.errType, gerr.Type)
		})
	}
}

func TestGenerate_PathErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions(dir)
	opts.Plan.Entries = append(opts.Plan.Entries, plan.Entry{TemplateID: plan.TemplatePaaSConfig, Destination: "../escape.json"})

	_, err := NewGenerator().Generate(context.Background(), opts)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator().Generate(ctx, testOptions(t.TempDir()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileMode(t *testing.T) {
	assert.Equal(t, os.FileMode(0755), FileMode(".ci/scripts/deploy.sh"))
	assert.Equal(t, os.FileMode(0644), FileMode(".ci/pipeline.yaml"))
	assert.Equal(t, os.FileMode(0644), FileMode(".ci/sh"))
}

func TestFileWriter_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")

	w := NewFileWriter()
	require.NoError(t, w.WriteFile(path, []byte("one"), 0644))
	require.NoError(t, w.WriteFile(path, []byte("two"), 0644))
	assert.True(t, w.Exists(path))
	assert.Equal(t, "two", readFile(t, path))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGenerate_InvalidTemplateWritesNothing(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions(dir)
	opts.Concurrency = 1
	// The broken template is planned last, after every verbatim entry.
	opts.Source.(mapSource)[plan.TemplatePipelineDotnet] = "name: @pipe-var:pipelineName@\n@pipe-if:runTests@test: true\n"

	_, err := NewGenerator().Generate(context.Background(), opts)
	var gerr *GeneratorError
	require.True(t, errors.As(err, &gerr), "expected *GeneratorError, got %v", err)
	assert.Equal(t, GeneratorProcessFailed, gerr.Type)
	assert.Equal(t, plan.DestPipeline, gerr.File)

	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, parser.UnclosedBlock, perr.Type)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerate_MissingTemplateWritesNothing(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions(dir)
	delete(opts.Source.(mapSource), plan.TemplatePipelineDotnet)

	_, err := NewGenerator().Generate(context.Background(), opts)
	require.Error(t, err)
	assert.True(t, provider.IsNotFound(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDryRun_ReportsReferencedVariables(t *testing.T) {
	result, err := NewGenerator().DryRun(context.Background(), testOptions(t.TempDir()))
	require.NoError(t, err)

	for _, f := range result.Files {
		if f.Substituted {
			assert.Equal(t, []string{"pipelineName", "runTests"}, f.Variables, f.Destination)
		} else {
			assert.Nil(t, f.Variables, f.Destination)
		}
	}
}
