package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagAnswers    = "answers"
	FlagYes        = "yes"
	FlagName       = "name"
	FlagRepository = "repository"
	FlagType       = "type"
	FlagConfig     = "config"
	FlagForce      = "force"
	FlagDryRun     = "dry-run"
	FlagVerbose    = "verbose"
	FlagFormat     = "format"
	FlagNoColor    = "no-color"
	FlagQuiet      = "quiet"
	FlagDebug      = "debug"

	// Flag descriptions
	DescAnswers    = "Read answers from a YAML file instead of prompting"
	DescYes        = "Accept all detected defaults without prompting"
	DescName       = "Pipeline name (overrides prompt and answers file)"
	DescRepository = "Repository URL (overrides prompt and answers file)"
	DescType       = "Deployment type: dotnet-app-service or node-app-service"
	DescConfig     = "Path to config file"
	DescForce      = "Overwrite existing files under .ci/"
	DescDryRun     = "Show actions without writing files"
	DescVerbose    = "Verbose output"
	DescFormat     = "Output format: text, json or yaml"
	DescNoColor    = "Disable colored output"
	DescQuiet      = "Suppress non-error output"
	DescDebug      = "Enable debug logging"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)
