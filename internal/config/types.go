package config

// Config represents the global pipegen configuration.
type Config struct {
	// Scan configures project marker detection.
	Scan ScanConfig `yaml:"scan"`
	// Templates configures where templates come from and how they are written.
	Templates TemplateConfig `yaml:"templates"`
	// Output configures display.
	Output OutputConfig `yaml:"output"`
	// Defaults holds the answers pre-selected in prompts.
	Defaults DefaultsConfig `yaml:"defaults"`
}

// ScanConfig represents repository introspection settings.
type ScanConfig struct {
	// CompiledPattern locates compiled-project descriptors.
	CompiledPattern string `yaml:"compiled_pattern"`
	// ScriptedPattern locates package manifests.
	ScriptedPattern string `yaml:"scripted_pattern"`
	// TestPattern locates test-project descriptors.
	TestPattern string `yaml:"test_pattern"`
	// IgnoreDirs are directory names excluded from every pattern.
	IgnoreDirs []string `yaml:"ignore_dirs"`
}

// TemplateConfig represents template source and materialization settings.
type TemplateConfig struct {
	// Directory overrides the embedded template pack when set.
	Directory string `yaml:"directory"`
	// Concurrency bounds how many plan entries are written at once.
	Concurrency int `yaml:"concurrency"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `yaml:"color"`
	// Quiet suppresses non-error output.
	Quiet bool `yaml:"quiet"`
}

// DefaultsConfig represents default answers.
type DefaultsConfig struct {
	UseVersioning     bool `yaml:"use_versioning"`
	BuildPullRequests bool `yaml:"build_pull_requests"`
	RunTests          bool `yaml:"run_tests"`
}
