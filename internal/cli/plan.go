package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/pipegen/internal/app"
)

var planCmd = &cobra.Command{
	Use:   "plan [path]",
	Short: "Show which pipeline files init would write",
	Long: `Resolve the pipeline configuration from detected defaults (plus any
answers file or flags) and print the files init would write. Nothing is
written and no questions are asked.

Examples:
  pipegen plan
  pipegen plan ./service --format json
  pipegen plan --type dotnet-app-service --repository https://github.com/acme/api`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlan,
}

var (
	planFlags  answerFlags
	planFormat string
)

func init() {
	planFlags.register(planCmd)
	planCmd.Flags().StringVarP(&planFormat, FlagFormat, "o", FormatText, DescFormat)
}

func runPlan(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	cfg, err := loadConfig(planFlags.configPath)
	if err != nil {
		return err
	}
	answer, err := planFlags.fileAnswers()
	if err != nil {
		return err
	}

	result, err := app.Preview(cmd.Context(), app.InitOptions{
		DiscoverOptions: app.DiscoverOptions{Root: root, Config: cfg},
		Answer:          answer,
		Overrides:       planFlags.overrides(),
	})
	if err != nil {
		return err
	}

	out, err := formatPlan(planFormat, result.Configuration, result.Plan)
	if err != nil {
		return err
	}
	// Plan output is the command's result, so --quiet does not hide it.
	fmt.Fprint(stdout, out)
	return nil
}
