package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/tacogips/pipegen/internal/pipeline"
	"github.com/tacogips/pipegen/internal/plan"
	"github.com/tacogips/pipegen/internal/template/generator"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var bannerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("6")).
	Bold(true).
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// paint renders text with s unless color is disabled.
func paint(s lipgloss.Style, text string) string {
	if globalNoColor {
		return text
	}
	return s.Render(text)
}

func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", paint(successStyle, "✓"), msg)
}

func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", paint(warningStyle, "⚠"), msg)
}

// printErrorMsg is never silenced by --quiet.
func printErrorMsg(msg string) {
	fmt.Fprintf(stderr, "%s %s\n", paint(errorStyle, "✗"), msg)
}

func printVerbose(verbose bool, msg string) {
	if !verbose || globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", paint(mutedStyle, "[VERBOSE]"), msg)
}

func printHeader(title string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "\n%s\n", paint(headerStyle, "=== "+title+" ==="))
}

// printBanner prints the greeting shown before the interactive questions.
func printBanner() {
	if globalQuiet {
		return
	}
	const msg = "Deploying code for the first time? Answer a few questions to get started..."
	if globalNoColor {
		fmt.Fprintln(stdout, msg)
		return
	}
	fmt.Fprintln(stdout, bannerStyle.Render(msg))
}

// planView is the machine-readable plan output.
type planView struct {
	Configuration *pipeline.PipelineConfiguration `json:"configuration" yaml:"configuration"`
	Entries       []plan.Entry                    `json:"entries" yaml:"entries"`
}

// formatPlan renders a configuration and plan in the given format.
func formatPlan(format string, cfg *pipeline.PipelineConfiguration, p *plan.Plan) (string, error) {
	view := planView{Configuration: cfg, Entries: p.Entries}

	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal plan: %w", err)
		}
		return string(data) + "\n", nil
	case FormatYAML:
		data, err := yaml.Marshal(view)
		if err != nil {
			return "", fmt.Errorf("failed to marshal plan: %w", err)
		}
		return string(data), nil
	case FormatText, "":
		return formatPlanText(cfg, p), nil
	default:
		return "", fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatText, FormatJSON, FormatYAML)
	}
}

func formatPlanText(cfg *pipeline.PipelineConfiguration, p *plan.Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Pipeline:    %s\n", cfg.PipelineName)
	fmt.Fprintf(&b, "Repository:  %s (%s)\n", cfg.Repository, cfg.RepositoryURI)
	fmt.Fprintf(&b, "Deployment:  %s\n", cfg.DeploymentType)
	if cfg.TestFolder != "" {
		fmt.Fprintf(&b, "Tests:       %s (run: %t)\n", cfg.TestFolder, cfg.RunTests)
	}
	fmt.Fprintf(&b, "Versioning:  %t\n", cfg.UseVersioning)
	fmt.Fprintf(&b, "Build PRs:   %t\n", cfg.BuildPullRequests)
	fmt.Fprintf(&b, "\nFiles (%d):\n", p.Len())
	for _, e := range p.Entries {
		mark := ""
		if e.RequiresSubstitution {
			mark = " *"
		}
		fmt.Fprintf(&b, "  %-32s <- %s%s\n", e.Destination, e.TemplateID, mark)
	}
	return b.String()
}

// printFileResults prints one line per materialized file.
func printFileResults(result *generator.GenerateResult, dryRun, verbose bool) {
	for _, f := range result.Files {
		action := f.Action.String()
		if dryRun {
			action = "would " + action
		}
		line := fmt.Sprintf("%-16s %s", action, f.Destination)
		switch f.Action {
		case generator.ActionSkipped:
			printWarning(line + " (exists, use --force to overwrite)")
		default:
			printSuccess(line)
		}
		if len(f.Variables) > 0 {
			printVerbose(verbose, fmt.Sprintf("%s uses variables: %s", f.Destination, strings.Join(f.Variables, ", ")))
		}
		if verbose && dryRun && f.Content != nil {
			printVerbose(verbose, fmt.Sprintf("%s (%d bytes, mode %o):\n%s", f.Destination, len(f.Content), f.Mode, f.Content))
		}
	}
}
